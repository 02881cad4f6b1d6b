package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"folio-server/internal/domain/model"
)

// PortfolioRepository persists portfolios. The store enforces both
// uniqueness invariants through unique indexes: one portfolio per user and
// one owner per username.
type PortfolioRepository interface {
	// Create inserts a new portfolio. Duplicate username or duplicate owner
	// surfaces as a CONFLICT error.
	Create(ctx context.Context, portfolio *model.Portfolio) (*model.Portfolio, error)

	// Update replaces the stored portfolio document.
	Update(ctx context.Context, portfolio *model.Portfolio) (*model.Portfolio, error)

	// GetByID returns the portfolio with the given id, or a NOT_FOUND error.
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Portfolio, error)

	// GetByUser returns the single portfolio owned by the given user, or a
	// NOT_FOUND error when the user has none yet.
	GetByUser(ctx context.Context, userID primitive.ObjectID) (*model.Portfolio, error)

	// GetByUsername returns the portfolio published under the given username,
	// or a NOT_FOUND error.
	GetByUsername(ctx context.Context, username string) (*model.Portfolio, error)

	// UsernameTaken reports whether a portfolio other than exclude already
	// uses the given username. This is the non-authoritative fast path; the
	// unique index decides the race.
	UsernameTaken(ctx context.Context, username string, exclude *primitive.ObjectID) (bool, error)

	// UpdateUsername sets the username on the portfolio owned by userID and
	// returns the updated document, or a NOT_FOUND error when the user has no
	// portfolio. A lost uniqueness race surfaces as a CONFLICT error.
	UpdateUsername(ctx context.Context, userID primitive.ObjectID, username string) (*model.Portfolio, error)
}
