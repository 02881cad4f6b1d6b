package usecase

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"folio-server/internal/domain/model"
	domainRepo "folio-server/internal/domain/repository"
	"folio-server/pkg/errors"
)

const (
	recentViewsLimit = 10
	popularTopLimit  = 5
)

// CaseStudyRef is the expanded form of a case study reference in summaries.
// Title and slug are empty when the case study has since been deleted.
type CaseStudyRef struct {
	ID    primitive.ObjectID `json:"id"`
	Title string             `json:"title"`
	Slug  string             `json:"slug"`
}

// CaseStudyViewCount pairs a case study with its accumulated view count.
type CaseStudyViewCount struct {
	CaseStudy CaseStudyRef `json:"caseStudy"`
	Views     int64        `json:"views"`
}

// RecentView is a single page view in the summary's recency window.
type RecentView struct {
	CaseStudy *CaseStudyRef `json:"caseStudy,omitempty"`
	UserAgent string        `json:"userAgent,omitempty"`
	Referrer  string        `json:"referrer,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// AnalyticsSummary is the owner-facing rollup of a portfolio's traffic.
type AnalyticsSummary struct {
	TotalViews         int64                `json:"totalViews"`
	CaseStudyViews     []CaseStudyViewCount `json:"caseStudyViews"`
	PopularCaseStudies []CaseStudyViewCount `json:"popularCaseStudies"`
	RecentViews        []RecentView         `json:"recentViews"`
	LastUpdated        time.Time            `json:"lastUpdated"`
}

// AnalyticsService records visitor events and builds owner summaries.
type AnalyticsService struct {
	analyticsRepo domainRepo.AnalyticsRepository
	portfolioRepo domainRepo.PortfolioRepository
	caseStudyRepo domainRepo.CaseStudyRepository
	portfolios    *PortfolioService
	logger        *zap.Logger
}

// NewAnalyticsService creates a new analytics service instance.
func NewAnalyticsService(
	analyticsRepo domainRepo.AnalyticsRepository,
	portfolioRepo domainRepo.PortfolioRepository,
	caseStudyRepo domainRepo.CaseStudyRepository,
	portfolios *PortfolioService,
	logger *zap.Logger,
) *AnalyticsService {
	return &AnalyticsService{
		analyticsRepo: analyticsRepo,
		portfolioRepo: portfolioRepo,
		caseStudyRepo: caseStudyRepo,
		portfolios:    portfolios,
		logger:        logger,
	}
}

// RecordView records a visit to a published portfolio: the raw page view is
// appended and the rollup counters are incremented atomically in the store.
// Unpublished or missing portfolios are rejected before any write happens.
func (s *AnalyticsService) RecordView(ctx context.Context, portfolioID primitive.ObjectID, caseStudyID *primitive.ObjectID, meta model.EventMetadata) error {
	portfolio, err := s.portfolioRepo.GetByID(ctx, portfolioID)
	if err != nil {
		return err
	}
	if !portfolio.Published {
		return errors.NewAppError(errors.ErrNotFound, "Portfolio not found", nil)
	}

	view := &model.PageView{
		Portfolio: portfolioID,
		CaseStudy: caseStudyID,
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
		Referrer:  meta.Referrer,
	}
	if err := s.analyticsRepo.InsertPageView(ctx, view); err != nil {
		return err
	}

	if err := s.analyticsRepo.IncTotalViews(ctx, portfolioID); err != nil {
		return err
	}

	if caseStudyID != nil {
		if err := s.analyticsRepo.IncCaseStudyViews(ctx, portfolioID, *caseStudyID); err != nil {
			return err
		}
	}

	return nil
}

// RecordClick records an interaction event. Clicks are stored raw and never
// touch the rollup, and the target portfolio is not validated.
func (s *AnalyticsService) RecordClick(ctx context.Context, portfolioID primitive.ObjectID, caseStudyID *primitive.ObjectID, elementID, elementType string, meta model.EventMetadata) error {
	click := &model.ClickEvent{
		Portfolio:   portfolioID,
		CaseStudy:   caseStudyID,
		ElementID:   elementID,
		ElementType: elementType,
		IPAddress:   meta.IPAddress,
		UserAgent:   meta.UserAgent,
		Referrer:    meta.Referrer,
	}
	return s.analyticsRepo.InsertClickEvent(ctx, click)
}

// GetSummary builds the owner's analytics view from three point-in-time
// reads: the rollup, the recent page views and the referenced case studies.
// A portfolio that was never visited yields an all-zero summary.
func (s *AnalyticsService) GetSummary(ctx context.Context, userID primitive.ObjectID) (*AnalyticsSummary, error) {
	portfolio, err := s.portfolios.ResolveOwnedPortfolio(ctx, userID)
	if err != nil {
		return nil, err
	}

	analytics, err := s.analyticsRepo.GetByPortfolio(ctx, portfolio.ID)
	if err != nil {
		return nil, err
	}

	recent, err := s.analyticsRepo.RecentPageViews(ctx, portfolio.ID, recentViewsLimit)
	if err != nil {
		return nil, err
	}

	refs, err := s.caseStudyRefs(ctx, analytics, recent)
	if err != nil {
		return nil, err
	}

	counts := make([]CaseStudyViewCount, 0, len(analytics.CaseStudyViews))
	for _, entry := range analytics.CaseStudyViews {
		counts = append(counts, CaseStudyViewCount{
			CaseStudy: refs[entry.CaseStudy],
			Views:     entry.Views,
		})
	}

	summary := &AnalyticsSummary{
		TotalViews:         analytics.TotalViews,
		CaseStudyViews:     counts,
		PopularCaseStudies: popularCaseStudies(counts),
		RecentViews:        make([]RecentView, 0, len(recent)),
		LastUpdated:        analytics.LastUpdated,
	}

	for _, view := range recent {
		rv := RecentView{
			UserAgent: view.UserAgent,
			Referrer:  view.Referrer,
			Timestamp: view.Timestamp,
		}
		if view.CaseStudy != nil {
			ref := refs[*view.CaseStudy]
			rv.CaseStudy = &ref
		}
		summary.RecentViews = append(summary.RecentViews, rv)
	}

	return summary, nil
}

// caseStudyRefs resolves every case study id referenced by the rollup or the
// recent views in a single fetch. Deleted case studies resolve to a ref with
// only the id set.
func (s *AnalyticsService) caseStudyRefs(ctx context.Context, analytics *model.Analytics, recent []model.PageView) (map[primitive.ObjectID]CaseStudyRef, error) {
	refs := make(map[primitive.ObjectID]CaseStudyRef)
	for _, entry := range analytics.CaseStudyViews {
		refs[entry.CaseStudy] = CaseStudyRef{ID: entry.CaseStudy}
	}
	for _, view := range recent {
		if view.CaseStudy != nil {
			refs[*view.CaseStudy] = CaseStudyRef{ID: *view.CaseStudy}
		}
	}
	if len(refs) == 0 {
		return refs, nil
	}

	ids := make([]primitive.ObjectID, 0, len(refs))
	for id := range refs {
		ids = append(ids, id)
	}

	caseStudies, err := s.caseStudyRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, cs := range caseStudies {
		refs[cs.ID] = CaseStudyRef{ID: cs.ID, Title: cs.Title, Slug: cs.Slug}
	}
	return refs, nil
}

// popularCaseStudies returns the top entries by view count. The sort is
// stable so equal counts keep the rollup's array order.
func popularCaseStudies(counts []CaseStudyViewCount) []CaseStudyViewCount {
	popular := make([]CaseStudyViewCount, len(counts))
	copy(popular, counts)
	sort.SliceStable(popular, func(i, j int) bool {
		return popular[i].Views > popular[j].Views
	})
	if len(popular) > popularTopLimit {
		popular = popular[:popularTopLimit]
	}
	return popular
}
