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

const caseStudyCollection = "casestudies"

// caseStudyRepository implements the CaseStudyRepository interface on MongoDB.
type caseStudyRepository struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

// NewCaseStudyRepository creates a new case study repository instance.
func NewCaseStudyRepository(db *mongo.Database, logger *zap.Logger) domainRepo.CaseStudyRepository {
	return &caseStudyRepository{
		coll:   db.Collection(caseStudyCollection),
		logger: logger,
	}
}

func (r *caseStudyRepository) Create(ctx context.Context, caseStudy *model.CaseStudy) (*model.CaseStudy, error) {
	now := time.Now()
	caseStudy.CreatedAt = now
	caseStudy.UpdatedAt = now

	result, err := r.coll.InsertOne(ctx, caseStudy)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, errors.NewAppError(errors.ErrConflict, "Slug must be unique within your portfolio", err)
		}
		errors.LogError(r.logger, err, "Failed to insert case study",
			zap.String("portfolio_id", caseStudy.Portfolio.Hex()),
			zap.String("slug", caseStudy.Slug))
		return nil, errors.Wrap(err, "failed to create case study")
	}

	caseStudy.ID = result.InsertedID.(primitive.ObjectID)
	return caseStudy, nil
}

func (r *caseStudyRepository) Update(ctx context.Context, caseStudy *model.CaseStudy) (*model.CaseStudy, error) {
	caseStudy.UpdatedAt = time.Now()

	err := r.coll.FindOneAndReplace(ctx,
		bson.M{"_id": caseStudy.ID},
		caseStudy,
		options.FindOneAndReplace().SetReturnDocument(options.After),
	).Decode(caseStudy)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.NewAppError(errors.ErrNotFound, "Case study not found", err)
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, errors.NewAppError(errors.ErrConflict, "Slug must be unique within your portfolio", err)
		}
		errors.LogError(r.logger, err, "Failed to update case study",
			zap.String("case_study_id", caseStudy.ID.Hex()))
		return nil, errors.Wrap(err, "failed to update case study")
	}

	return caseStudy, nil
}

func (r *caseStudyRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		errors.LogError(r.logger, err, "Failed to delete case study",
			zap.String("case_study_id", id.Hex()))
		return errors.Wrap(err, "failed to delete case study")
	}
	if result.DeletedCount == 0 {
		return errors.NewAppError(errors.ErrNotFound, "Case study not found", nil)
	}

	return nil
}

func (r *caseStudyRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.CaseStudy, error) {
	var caseStudy model.CaseStudy

	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&caseStudy)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.NewAppError(errors.ErrNotFound, "Case study not found", err)
		}
		errors.LogError(r.logger, err, "Failed to get case study",
			zap.String("case_study_id", id.Hex()))
		return nil, errors.Wrap(err, "failed to get case study")
	}

	return &caseStudy, nil
}

func (r *caseStudyRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.CaseStudy, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		errors.LogError(r.logger, err, "Failed to get case studies by ids")
		return nil, errors.Wrap(err, "failed to get case studies")
	}

	var caseStudies []model.CaseStudy
	if err := cursor.All(ctx, &caseStudies); err != nil {
		return nil, errors.Wrap(err, "failed to decode case studies")
	}

	return caseStudies, nil
}

func (r *caseStudyRepository) ListByPortfolio(ctx context.Context, portfolioID primitive.ObjectID, publishedOnly bool) ([]model.CaseStudy, error) {
	filter := bson.M{"portfolio": portfolioID}
	if publishedOnly {
		filter["published"] = true
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		errors.LogError(r.logger, err, "Failed to list case studies",
			zap.String("portfolio_id", portfolioID.Hex()))
		return nil, errors.Wrap(err, "failed to list case studies")
	}

	caseStudies := []model.CaseStudy{}
	if err := cursor.All(ctx, &caseStudies); err != nil {
		return nil, errors.Wrap(err, "failed to decode case studies")
	}

	return caseStudies, nil
}

// SlugTaken is the fast-path availability check. Like UsernameTaken, it is
// racy against concurrent inserts; the compound unique index is authoritative.
func (r *caseStudyRepository) SlugTaken(ctx context.Context, portfolioID primitive.ObjectID, slug string, exclude *primitive.ObjectID) (bool, error) {
	filter := bson.M{"portfolio": portfolioID, "slug": slug}
	if exclude != nil {
		filter["_id"] = bson.M{"$ne": *exclude}
	}

	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		errors.LogError(r.logger, err, "Failed to check slug availability",
			zap.String("portfolio_id", portfolioID.Hex()),
			zap.String("slug", slug))
		return false, errors.Wrap(err, "failed to check slug")
	}

	return count > 0, nil
}

// Reorder applies all order assignments as one BulkWrite. The batch is not
// atomic across documents: a mid-batch failure can leave a partially applied
// order, which is an accepted weak point of the store model.
func (r *caseStudyRepository) Reorder(ctx context.Context, portfolioID primitive.ObjectID, ids []primitive.ObjectID) error {
	if len(ids) == 0 {
		return nil
	}

	models := make([]mongo.WriteModel, 0, len(ids))
	for index, id := range ids {
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": id, "portfolio": portfolioID}).
			SetUpdate(bson.M{"$set": bson.M{"order": index}}))
	}

	if _, err := r.coll.BulkWrite(ctx, models); err != nil {
		errors.LogError(r.logger, err, "Failed to reorder case studies",
			zap.String("portfolio_id", portfolioID.Hex()),
			zap.Int("count", len(ids)))
		return errors.Wrap(err, "failed to reorder case studies")
	}

	return nil
}
