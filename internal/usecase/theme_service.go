package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"folio-server/internal/domain/model"
	domainRepo "folio-server/internal/domain/repository"
)

// ThemeService handles system themes and user-created custom themes.
type ThemeService struct {
	themeRepo domainRepo.ThemeRepository
	logger    *zap.Logger
}

// NewThemeService creates a new theme service instance.
func NewThemeService(themeRepo domainRepo.ThemeRepository, logger *zap.Logger) *ThemeService {
	return &ThemeService{
		themeRepo: themeRepo,
		logger:    logger,
	}
}

// ListSystem returns the built-in themes available to every portfolio.
func (s *ThemeService) ListSystem(ctx context.Context) ([]model.Theme, error) {
	return s.themeRepo.ListSystem(ctx)
}

// Get returns a theme by id.
func (s *ThemeService) Get(ctx context.Context, id primitive.ObjectID) (*model.Theme, error) {
	return s.themeRepo.GetByID(ctx, id)
}

// CreateCustom stores a user-defined theme attributed to its creator.
// Custom themes are never system themes regardless of the input.
func (s *ThemeService) CreateCustom(ctx context.Context, userID primitive.ObjectID, theme *model.Theme) (*model.Theme, error) {
	theme.IsSystemTheme = false
	theme.CreatedBy = &userID

	created, err := s.themeRepo.Create(ctx, theme)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Custom theme created",
		zap.String("theme_id", created.ID.Hex()),
		zap.String("created_by", userID.Hex()))
	return created, nil
}
