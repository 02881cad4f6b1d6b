package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"folio-server/internal/domain/model"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockPortfolioRepository is a mock implementation of PortfolioRepository
type MockPortfolioRepository struct {
	mock.Mock
}

func (m *MockPortfolioRepository) Create(ctx context.Context, portfolio *model.Portfolio) (*model.Portfolio, error) {
	args := m.Called(ctx, portfolio)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Portfolio), args.Error(1)
}

func (m *MockPortfolioRepository) Update(ctx context.Context, portfolio *model.Portfolio) (*model.Portfolio, error) {
	args := m.Called(ctx, portfolio)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Portfolio), args.Error(1)
}

func (m *MockPortfolioRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Portfolio, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Portfolio), args.Error(1)
}

func (m *MockPortfolioRepository) GetByUser(ctx context.Context, userID primitive.ObjectID) (*model.Portfolio, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Portfolio), args.Error(1)
}

func (m *MockPortfolioRepository) GetByUsername(ctx context.Context, username string) (*model.Portfolio, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Portfolio), args.Error(1)
}

func (m *MockPortfolioRepository) UsernameTaken(ctx context.Context, username string, exclude *primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, username, exclude)
	return args.Bool(0), args.Error(1)
}

func (m *MockPortfolioRepository) UpdateUsername(ctx context.Context, userID primitive.ObjectID, username string) (*model.Portfolio, error) {
	args := m.Called(ctx, userID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Portfolio), args.Error(1)
}

// MockCaseStudyRepository is a mock implementation of CaseStudyRepository
type MockCaseStudyRepository struct {
	mock.Mock
}

func (m *MockCaseStudyRepository) Create(ctx context.Context, caseStudy *model.CaseStudy) (*model.CaseStudy, error) {
	args := m.Called(ctx, caseStudy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CaseStudy), args.Error(1)
}

func (m *MockCaseStudyRepository) Update(ctx context.Context, caseStudy *model.CaseStudy) (*model.CaseStudy, error) {
	args := m.Called(ctx, caseStudy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CaseStudy), args.Error(1)
}

func (m *MockCaseStudyRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCaseStudyRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.CaseStudy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CaseStudy), args.Error(1)
}

func (m *MockCaseStudyRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.CaseStudy, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CaseStudy), args.Error(1)
}

func (m *MockCaseStudyRepository) ListByPortfolio(ctx context.Context, portfolioID primitive.ObjectID, publishedOnly bool) ([]model.CaseStudy, error) {
	args := m.Called(ctx, portfolioID, publishedOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CaseStudy), args.Error(1)
}

func (m *MockCaseStudyRepository) SlugTaken(ctx context.Context, portfolioID primitive.ObjectID, slug string, exclude *primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, portfolioID, slug, exclude)
	return args.Bool(0), args.Error(1)
}

func (m *MockCaseStudyRepository) Reorder(ctx context.Context, portfolioID primitive.ObjectID, ids []primitive.ObjectID) error {
	args := m.Called(ctx, portfolioID, ids)
	return args.Error(0)
}

// MockThemeRepository is a mock implementation of ThemeRepository
type MockThemeRepository struct {
	mock.Mock
}

func (m *MockThemeRepository) Create(ctx context.Context, theme *model.Theme) (*model.Theme, error) {
	args := m.Called(ctx, theme)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Theme), args.Error(1)
}

func (m *MockThemeRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Theme, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Theme), args.Error(1)
}

func (m *MockThemeRepository) ListSystem(ctx context.Context) ([]model.Theme, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Theme), args.Error(1)
}

// MockAnalyticsRepository is a mock implementation of AnalyticsRepository
type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) InsertPageView(ctx context.Context, view *model.PageView) error {
	args := m.Called(ctx, view)
	return args.Error(0)
}

func (m *MockAnalyticsRepository) InsertClickEvent(ctx context.Context, click *model.ClickEvent) error {
	args := m.Called(ctx, click)
	return args.Error(0)
}

func (m *MockAnalyticsRepository) IncTotalViews(ctx context.Context, portfolioID primitive.ObjectID) error {
	args := m.Called(ctx, portfolioID)
	return args.Error(0)
}

func (m *MockAnalyticsRepository) IncCaseStudyViews(ctx context.Context, portfolioID, caseStudyID primitive.ObjectID) error {
	args := m.Called(ctx, portfolioID, caseStudyID)
	return args.Error(0)
}

func (m *MockAnalyticsRepository) GetByPortfolio(ctx context.Context, portfolioID primitive.ObjectID) (*model.Analytics, error) {
	args := m.Called(ctx, portfolioID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Analytics), args.Error(1)
}

func (m *MockAnalyticsRepository) RecentPageViews(ctx context.Context, portfolioID primitive.ObjectID, limit int) ([]model.PageView, error) {
	args := m.Called(ctx, portfolioID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PageView), args.Error(1)
}
