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

const themeCollection = "themes"

// themeRepository implements the ThemeRepository interface on MongoDB.
type themeRepository struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

// NewThemeRepository creates a new theme repository instance.
func NewThemeRepository(db *mongo.Database, logger *zap.Logger) domainRepo.ThemeRepository {
	return &themeRepository{
		coll:   db.Collection(themeCollection),
		logger: logger,
	}
}

func (r *themeRepository) Create(ctx context.Context, theme *model.Theme) (*model.Theme, error) {
	theme.CreatedAt = time.Now()

	result, err := r.coll.InsertOne(ctx, theme)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, errors.NewAppError(errors.ErrConflict, "Theme name is already taken", err)
		}
		errors.LogError(r.logger, err, "Failed to insert theme",
			zap.String("name", theme.Name))
		return nil, errors.Wrap(err, "failed to create theme")
	}

	theme.ID = result.InsertedID.(primitive.ObjectID)
	return theme, nil
}

func (r *themeRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Theme, error) {
	var theme model.Theme

	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&theme)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.NewAppError(errors.ErrNotFound, "Theme not found", err)
		}
		errors.LogError(r.logger, err, "Failed to get theme",
			zap.String("theme_id", id.Hex()))
		return nil, errors.Wrap(err, "failed to get theme")
	}

	return &theme, nil
}

func (r *themeRepository) ListSystem(ctx context.Context) ([]model.Theme, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"isSystemTheme": true})
	if err != nil {
		errors.LogError(r.logger, err, "Failed to list system themes")
		return nil, errors.Wrap(err, "failed to list system themes")
	}

	themes := []model.Theme{}
	if err := cursor.All(ctx, &themes); err != nil {
		return nil, errors.Wrap(err, "failed to decode themes")
	}

	return themes, nil
}
