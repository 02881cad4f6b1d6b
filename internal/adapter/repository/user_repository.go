package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"folio-server/internal/domain/model"
	domainRepo "folio-server/internal/domain/repository"
	"folio-server/pkg/errors"
)

const userCollection = "users"

// userRepository implements the UserRepository interface on MongoDB.
type userRepository struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

// NewUserRepository creates a new user repository instance.
func NewUserRepository(db *mongo.Database, logger *zap.Logger) domainRepo.UserRepository {
	return &userRepository{
		coll:   db.Collection(userCollection),
		logger: logger,
	}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	result, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, errors.NewAppError(errors.ErrConflict, "Email is already registered", err)
		}
		errors.LogError(r.logger, err, "Failed to insert user",
			zap.String("email", user.Email))
		return nil, errors.Wrap(err, "failed to create user")
	}

	user.ID = result.InsertedID.(primitive.ObjectID)
	return user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	var user model.User

	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.NewAppError(errors.ErrNotFound, "User not found", err)
		}
		errors.LogError(r.logger, err, "Failed to get user by id",
			zap.String("user_id", id.Hex()))
		return nil, errors.Wrap(err, "failed to get user")
	}

	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User

	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.NewAppError(errors.ErrNotFound, "User not found", err)
		}
		errors.LogError(r.logger, err, "Failed to get user by email",
			zap.String("email", email))
		return nil, errors.Wrap(err, "failed to get user")
	}

	return &user, nil
}
