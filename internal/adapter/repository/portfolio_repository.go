package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"folio-server/internal/domain/model"
	domainRepo "folio-server/internal/domain/repository"
	"folio-server/pkg/errors"
)

const portfolioCollection = "portfolios"

// portfolioRepository implements the PortfolioRepository interface on MongoDB.
type portfolioRepository struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

// NewPortfolioRepository creates a new portfolio repository instance.
func NewPortfolioRepository(db *mongo.Database, logger *zap.Logger) domainRepo.PortfolioRepository {
	return &portfolioRepository{
		coll:   db.Collection(portfolioCollection),
		logger: logger,
	}
}

func (r *portfolioRepository) Create(ctx context.Context, portfolio *model.Portfolio) (*model.Portfolio, error) {
	now := time.Now()
	portfolio.CreatedAt = now
	portfolio.UpdatedAt = now

	result, err := r.coll.InsertOne(ctx, portfolio)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, errors.NewAppError(errors.ErrConflict, "Username is already taken", err)
		}
		errors.LogError(r.logger, err, "Failed to insert portfolio",
			zap.String("user_id", portfolio.User.Hex()),
			zap.String("username", portfolio.Username))
		return nil, errors.Wrap(err, "failed to create portfolio")
	}

	portfolio.ID = result.InsertedID.(primitive.ObjectID)
	return portfolio, nil
}

func (r *portfolioRepository) Update(ctx context.Context, portfolio *model.Portfolio) (*model.Portfolio, error) {
	portfolio.UpdatedAt = time.Now()

	err := r.coll.FindOneAndReplace(ctx,
		bson.M{"_id": portfolio.ID},
		portfolio,
		options.FindOneAndReplace().SetReturnDocument(options.After),
	).Decode(portfolio)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.NewAppError(errors.ErrNotFound, "Portfolio not found", err)
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, errors.NewAppError(errors.ErrConflict, "Username is already taken", err)
		}
		errors.LogError(r.logger, err, "Failed to update portfolio",
			zap.String("portfolio_id", portfolio.ID.Hex()))
		return nil, errors.Wrap(err, "failed to update portfolio")
	}

	return portfolio, nil
}

func (r *portfolioRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Portfolio, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *portfolioRepository) GetByUser(ctx context.Context, userID primitive.ObjectID) (*model.Portfolio, error) {
	return r.findOne(ctx, bson.M{"user": userID})
}

func (r *portfolioRepository) GetByUsername(ctx context.Context, username string) (*model.Portfolio, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *portfolioRepository) findOne(ctx context.Context, filter bson.M) (*model.Portfolio, error) {
	var portfolio model.Portfolio

	err := r.coll.FindOne(ctx, filter).Decode(&portfolio)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.NewAppError(errors.ErrNotFound, "Portfolio not found", err)
		}
		errors.LogError(r.logger, err, "Failed to get portfolio",
			zap.Any("filter", filter))
		return nil, errors.Wrap(err, "failed to get portfolio")
	}

	return &portfolio, nil
}

// UsernameTaken is a non-authoritative availability check. The check and the
// eventual write are not one transaction; a conflicting insert can land in
// between, so writers still have to treat a duplicate-key failure as taken.
func (r *portfolioRepository) UsernameTaken(ctx context.Context, username string, exclude *primitive.ObjectID) (bool, error) {
	filter := bson.M{"username": username}
	if exclude != nil {
		filter["_id"] = bson.M{"$ne": *exclude}
	}

	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		errors.LogError(r.logger, err, "Failed to check username availability",
			zap.String("username", username))
		return false, errors.Wrap(err, "failed to check username")
	}

	return count > 0, nil
}

func (r *portfolioRepository) UpdateUsername(ctx context.Context, userID primitive.ObjectID, username string) (*model.Portfolio, error) {
	var portfolio model.Portfolio

	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"user": userID},
		bson.M{"$set": bson.M{"username": username, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&portfolio)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.NewAppError(errors.ErrNotFound, "Portfolio not found", err)
		}
		if mongo.IsDuplicateKeyError(err) {
			// Lost the race against a concurrent claim of the same username.
			return nil, errors.NewAppError(errors.ErrConflict, "Username is already taken", err)
		}
		errors.LogError(r.logger, err, "Failed to update username",
			zap.String("user_id", userID.Hex()),
			zap.String("username", username))
		return nil, errors.Wrap(err, "failed to update username")
	}

	return &portfolio, nil
}
