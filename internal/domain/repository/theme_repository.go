package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"folio-server/internal/domain/model"
)

// ThemeRepository persists shared and custom themes. Theme names are unique.
type ThemeRepository interface {
	// Create inserts a new theme. A duplicate name surfaces as a CONFLICT error.
	Create(ctx context.Context, theme *model.Theme) (*model.Theme, error)

	// GetByID returns the theme with the given id, or a NOT_FOUND error.
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Theme, error)

	// ListSystem returns all system themes.
	ListSystem(ctx context.Context) ([]model.Theme, error)
}
