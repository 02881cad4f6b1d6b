package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"folio-server/internal/domain/model"
	"folio-server/pkg/errors"
)

func newAnalyticsService(
	analyticsRepo *MockAnalyticsRepository,
	portfolioRepo *MockPortfolioRepository,
	caseStudyRepo *MockCaseStudyRepository,
) *AnalyticsService {
	logger := zap.NewNop()
	portfolios := NewPortfolioService(portfolioRepo, new(MockUserRepository), logger)
	return NewAnalyticsService(analyticsRepo, portfolioRepo, caseStudyRepo, portfolios, logger)
}

func TestAnalyticsService_RecordView_UnpublishedPortfolio(t *testing.T) {
	portfolioID := primitive.NewObjectID()

	analyticsRepo := new(MockAnalyticsRepository)
	portfolioRepo := new(MockPortfolioRepository)
	portfolioRepo.On("GetByID", mock.Anything, portfolioID).
		Return(&model.Portfolio{ID: portfolioID, Published: false}, nil)

	service := newAnalyticsService(analyticsRepo, portfolioRepo, new(MockCaseStudyRepository))

	err := service.RecordView(context.Background(), portfolioID, nil, model.EventMetadata{})

	assert.Error(t, err)
	assert.Equal(t, errors.ErrNotFound, errors.CodeOf(err))
	// A rejected view must leave no trace: no event, no counter update.
	analyticsRepo.AssertNotCalled(t, "InsertPageView", mock.Anything, mock.Anything)
	analyticsRepo.AssertNotCalled(t, "IncTotalViews", mock.Anything, mock.Anything)
	analyticsRepo.AssertNotCalled(t, "IncCaseStudyViews", mock.Anything, mock.Anything, mock.Anything)
}

func TestAnalyticsService_RecordView_MissingPortfolio(t *testing.T) {
	portfolioID := primitive.NewObjectID()

	analyticsRepo := new(MockAnalyticsRepository)
	portfolioRepo := new(MockPortfolioRepository)
	portfolioRepo.On("GetByID", mock.Anything, portfolioID).
		Return(nil, errors.NewAppError(errors.ErrNotFound, "Portfolio not found", nil))

	service := newAnalyticsService(analyticsRepo, portfolioRepo, new(MockCaseStudyRepository))

	err := service.RecordView(context.Background(), portfolioID, nil, model.EventMetadata{})

	assert.Error(t, err)
	assert.Equal(t, errors.ErrNotFound, errors.CodeOf(err))
	analyticsRepo.AssertNotCalled(t, "InsertPageView", mock.Anything, mock.Anything)
}

func TestAnalyticsService_RecordView_WithCaseStudy(t *testing.T) {
	portfolioID := primitive.NewObjectID()
	caseStudyID := primitive.NewObjectID()
	meta := model.EventMetadata{IPAddress: "203.0.113.7", UserAgent: "test-agent", Referrer: "https://example.com"}

	analyticsRepo := new(MockAnalyticsRepository)
	portfolioRepo := new(MockPortfolioRepository)
	portfolioRepo.On("GetByID", mock.Anything, portfolioID).
		Return(&model.Portfolio{ID: portfolioID, Published: true}, nil)
	analyticsRepo.On("InsertPageView", mock.Anything, mock.MatchedBy(func(v *model.PageView) bool {
		return v.Portfolio == portfolioID && v.CaseStudy != nil && *v.CaseStudy == caseStudyID &&
			v.IPAddress == meta.IPAddress && v.UserAgent == meta.UserAgent && v.Referrer == meta.Referrer
	})).Return(nil)
	analyticsRepo.On("IncTotalViews", mock.Anything, portfolioID).Return(nil)
	analyticsRepo.On("IncCaseStudyViews", mock.Anything, portfolioID, caseStudyID).Return(nil)

	service := newAnalyticsService(analyticsRepo, portfolioRepo, new(MockCaseStudyRepository))

	err := service.RecordView(context.Background(), portfolioID, &caseStudyID, meta)

	assert.NoError(t, err)
	analyticsRepo.AssertExpectations(t)
}

func TestAnalyticsService_RecordView_WithoutCaseStudy(t *testing.T) {
	portfolioID := primitive.NewObjectID()

	analyticsRepo := new(MockAnalyticsRepository)
	portfolioRepo := new(MockPortfolioRepository)
	portfolioRepo.On("GetByID", mock.Anything, portfolioID).
		Return(&model.Portfolio{ID: portfolioID, Published: true}, nil)
	analyticsRepo.On("InsertPageView", mock.Anything, mock.Anything).Return(nil)
	analyticsRepo.On("IncTotalViews", mock.Anything, portfolioID).Return(nil)

	service := newAnalyticsService(analyticsRepo, portfolioRepo, new(MockCaseStudyRepository))

	err := service.RecordView(context.Background(), portfolioID, nil, model.EventMetadata{})

	assert.NoError(t, err)
	analyticsRepo.AssertNotCalled(t, "IncCaseStudyViews", mock.Anything, mock.Anything, mock.Anything)
}

func TestAnalyticsService_RecordClick_NoExistenceCheck(t *testing.T) {
	portfolioID := primitive.NewObjectID()

	analyticsRepo := new(MockAnalyticsRepository)
	portfolioRepo := new(MockPortfolioRepository)
	analyticsRepo.On("InsertClickEvent", mock.Anything, mock.MatchedBy(func(c *model.ClickEvent) bool {
		return c.Portfolio == portfolioID && c.CaseStudy == nil &&
			c.ElementID == "contact-button" && c.ElementType == "button"
	})).Return(nil)

	service := newAnalyticsService(analyticsRepo, portfolioRepo, new(MockCaseStudyRepository))

	err := service.RecordClick(context.Background(), portfolioID, nil, "contact-button", "button", model.EventMetadata{})

	assert.NoError(t, err)
	// Clicks are stored even for portfolios that do not exist.
	portfolioRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	analyticsRepo.AssertNotCalled(t, "IncTotalViews", mock.Anything, mock.Anything)
	analyticsRepo.AssertExpectations(t)
}

func TestAnalyticsService_RecordClick_KeepsCaseStudyReference(t *testing.T) {
	portfolioID := primitive.NewObjectID()
	caseStudyID := primitive.NewObjectID()

	analyticsRepo := new(MockAnalyticsRepository)
	analyticsRepo.On("InsertClickEvent", mock.Anything, mock.MatchedBy(func(c *model.ClickEvent) bool {
		return c.Portfolio == portfolioID && c.CaseStudy != nil && *c.CaseStudy == caseStudyID &&
			c.ElementID == "media-gallery-2" && c.ElementType == "image"
	})).Return(nil)

	service := newAnalyticsService(analyticsRepo, new(MockPortfolioRepository), new(MockCaseStudyRepository))

	err := service.RecordClick(context.Background(), portfolioID, &caseStudyID, "media-gallery-2", "image", model.EventMetadata{})

	assert.NoError(t, err)
	analyticsRepo.AssertExpectations(t)
}

func TestAnalyticsService_GetSummary_ZeroState(t *testing.T) {
	userID := primitive.NewObjectID()
	portfolioID := primitive.NewObjectID()

	analyticsRepo := new(MockAnalyticsRepository)
	portfolioRepo := new(MockPortfolioRepository)
	caseStudyRepo := new(MockCaseStudyRepository)
	portfolioRepo.On("GetByUser", mock.Anything, userID).
		Return(&model.Portfolio{ID: portfolioID, User: userID, Published: true}, nil)
	analyticsRepo.On("GetByPortfolio", mock.Anything, portfolioID).
		Return(&model.Analytics{Portfolio: portfolioID, TotalViews: 0, CaseStudyViews: []model.CaseStudyViews{}}, nil)
	analyticsRepo.On("RecentPageViews", mock.Anything, portfolioID, 10).
		Return([]model.PageView{}, nil)

	service := newAnalyticsService(analyticsRepo, portfolioRepo, caseStudyRepo)

	summary, err := service.GetSummary(context.Background(), userID)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), summary.TotalViews)
	assert.Empty(t, summary.CaseStudyViews)
	assert.Empty(t, summary.PopularCaseStudies)
	assert.Empty(t, summary.RecentViews)
	// Nothing was ever viewed so there is nothing to look up.
	caseStudyRepo.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
}

func TestAnalyticsService_GetSummary_ExpandsAndRanks(t *testing.T) {
	userID := primitive.NewObjectID()
	portfolioID := primitive.NewObjectID()
	idA := primitive.NewObjectID()
	idB := primitive.NewObjectID()
	idC := primitive.NewObjectID()
	idD := primitive.NewObjectID()
	now := time.Now()

	analyticsRepo := new(MockAnalyticsRepository)
	portfolioRepo := new(MockPortfolioRepository)
	caseStudyRepo := new(MockCaseStudyRepository)
	portfolioRepo.On("GetByUser", mock.Anything, userID).
		Return(&model.Portfolio{ID: portfolioID, User: userID}, nil)
	analyticsRepo.On("GetByPortfolio", mock.Anything, portfolioID).
		Return(&model.Analytics{
			Portfolio:  portfolioID,
			TotalViews: 18,
			CaseStudyViews: []model.CaseStudyViews{
				{CaseStudy: idA, Views: 3},
				{CaseStudy: idB, Views: 7},
				{CaseStudy: idC, Views: 7},
				{CaseStudy: idD, Views: 1},
			},
			LastUpdated: now,
		}, nil)
	analyticsRepo.On("RecentPageViews", mock.Anything, portfolioID, 10).
		Return([]model.PageView{
			{Portfolio: portfolioID, CaseStudy: &idA, Timestamp: now},
			{Portfolio: portfolioID, Timestamp: now.Add(-time.Minute)},
		}, nil)
	caseStudyRepo.On("GetByIDs", mock.Anything, mock.Anything).
		Return([]model.CaseStudy{
			{ID: idA, Title: "Alpha", Slug: "alpha"},
			{ID: idB, Title: "Beta", Slug: "beta"},
			{ID: idC, Title: "Gamma", Slug: "gamma"},
			{ID: idD, Title: "Delta", Slug: "delta"},
		}, nil)

	service := newAnalyticsService(analyticsRepo, portfolioRepo, caseStudyRepo)

	summary, err := service.GetSummary(context.Background(), userID)

	assert.NoError(t, err)
	assert.Equal(t, int64(18), summary.TotalViews)
	assert.Len(t, summary.CaseStudyViews, 4)
	assert.Equal(t, "Alpha", summary.CaseStudyViews[0].CaseStudy.Title)
	assert.Equal(t, "alpha", summary.CaseStudyViews[0].CaseStudy.Slug)

	// Ties keep the rollup's array order: B before C, both above A, D last.
	ranked := summary.PopularCaseStudies
	assert.Len(t, ranked, 4)
	assert.Equal(t, idB, ranked[0].CaseStudy.ID)
	assert.Equal(t, idC, ranked[1].CaseStudy.ID)
	assert.Equal(t, idA, ranked[2].CaseStudy.ID)
	assert.Equal(t, idD, ranked[3].CaseStudy.ID)

	assert.Len(t, summary.RecentViews, 2)
	assert.NotNil(t, summary.RecentViews[0].CaseStudy)
	assert.Equal(t, "alpha", summary.RecentViews[0].CaseStudy.Slug)
	assert.Nil(t, summary.RecentViews[1].CaseStudy)
}

func TestAnalyticsService_GetSummary_DeletedCaseStudy(t *testing.T) {
	userID := primitive.NewObjectID()
	portfolioID := primitive.NewObjectID()
	deletedID := primitive.NewObjectID()

	analyticsRepo := new(MockAnalyticsRepository)
	portfolioRepo := new(MockPortfolioRepository)
	caseStudyRepo := new(MockCaseStudyRepository)
	portfolioRepo.On("GetByUser", mock.Anything, userID).
		Return(&model.Portfolio{ID: portfolioID, User: userID}, nil)
	analyticsRepo.On("GetByPortfolio", mock.Anything, portfolioID).
		Return(&model.Analytics{
			Portfolio:      portfolioID,
			TotalViews:     4,
			CaseStudyViews: []model.CaseStudyViews{{CaseStudy: deletedID, Views: 4}},
		}, nil)
	analyticsRepo.On("RecentPageViews", mock.Anything, portfolioID, 10).
		Return([]model.PageView{}, nil)
	caseStudyRepo.On("GetByIDs", mock.Anything, []primitive.ObjectID{deletedID}).
		Return([]model.CaseStudy{}, nil)

	service := newAnalyticsService(analyticsRepo, portfolioRepo, caseStudyRepo)

	summary, err := service.GetSummary(context.Background(), userID)

	assert.NoError(t, err)
	// The count survives deletion; only the expansion comes back empty.
	assert.Len(t, summary.CaseStudyViews, 1)
	assert.Equal(t, int64(4), summary.CaseStudyViews[0].Views)
	assert.Equal(t, deletedID, summary.CaseStudyViews[0].CaseStudy.ID)
	assert.Empty(t, summary.CaseStudyViews[0].CaseStudy.Title)
}

func TestPopularCaseStudies_TopFive(t *testing.T) {
	counts := make([]CaseStudyViewCount, 0, 7)
	for i := 0; i < 7; i++ {
		counts = append(counts, CaseStudyViewCount{
			CaseStudy: CaseStudyRef{ID: primitive.NewObjectID()},
			Views:     int64(i),
		})
	}

	ranked := popularCaseStudies(counts)

	assert.Len(t, ranked, 5)
	assert.Equal(t, int64(6), ranked[0].Views)
	assert.Equal(t, int64(2), ranked[4].Views)
	// The input order must not be disturbed.
	assert.Equal(t, int64(0), counts[0].Views)
}
