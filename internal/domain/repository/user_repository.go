package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"folio-server/internal/domain/model"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// Create inserts a new user. A duplicate email surfaces as a CONFLICT error.
	Create(ctx context.Context, user *model.User) (*model.User, error)

	// GetByID returns the user with the given id, or a NOT_FOUND error.
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)

	// GetByEmail returns the user with the given email, or a NOT_FOUND error.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}
