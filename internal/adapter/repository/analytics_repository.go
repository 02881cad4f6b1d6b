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

const (
	analyticsCollection  = "analytics"
	pageViewCollection   = "pageviews"
	clickEventCollection = "clickevents"

	// Attempts for the inc-or-push loop below. Two suffice for any single
	// lost race; the third absorbs back-to-back losses.
	incCaseStudyViewsAttempts = 3
)

// analyticsRepository implements the AnalyticsRepository interface on MongoDB.
type analyticsRepository struct {
	analytics   *mongo.Collection
	pageViews   *mongo.Collection
	clickEvents *mongo.Collection
	logger      *zap.Logger
}

// NewAnalyticsRepository creates a new analytics repository instance.
func NewAnalyticsRepository(db *mongo.Database, logger *zap.Logger) domainRepo.AnalyticsRepository {
	return &analyticsRepository{
		analytics:   db.Collection(analyticsCollection),
		pageViews:   db.Collection(pageViewCollection),
		clickEvents: db.Collection(clickEventCollection),
		logger:      logger,
	}
}

func (r *analyticsRepository) InsertPageView(ctx context.Context, view *model.PageView) error {
	view.Timestamp = time.Now()
	if _, err := r.pageViews.InsertOne(ctx, view); err != nil {
		errors.LogError(r.logger, err, "Failed to insert page view",
			zap.String("portfolio_id", view.Portfolio.Hex()))
		return errors.Wrap(err, "failed to insert page view")
	}
	return nil
}

func (r *analyticsRepository) InsertClickEvent(ctx context.Context, click *model.ClickEvent) error {
	click.Timestamp = time.Now()
	if _, err := r.clickEvents.InsertOne(ctx, click); err != nil {
		errors.LogError(r.logger, err, "Failed to insert click event",
			zap.String("portfolio_id", click.Portfolio.Hex()))
		return errors.Wrap(err, "failed to insert click event")
	}
	return nil
}

// IncTotalViews is a single atomic upsert: the first view creates the rollup
// with totalViews=1, every later view increments in place. No read-modify-
// write is involved, so concurrent callers cannot lose increments.
func (r *analyticsRepository) IncTotalViews(ctx context.Context, portfolioID primitive.ObjectID) error {
	_, err := r.analytics.UpdateOne(ctx,
		bson.M{"portfolio": portfolioID},
		bson.M{
			"$inc":         bson.M{"totalViews": 1},
			"$set":         bson.M{"lastUpdated": time.Now()},
			"$setOnInsert": bson.M{"caseStudyViews": bson.A{}},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		// Two concurrent upserts can race on first creation; the loser fails
		// on the unique portfolio index and its increment would be lost, so
		// retry once as a plain update against the now-existing document.
		if mongo.IsDuplicateKeyError(err) {
			_, err = r.analytics.UpdateOne(ctx,
				bson.M{"portfolio": portfolioID},
				bson.M{
					"$inc": bson.M{"totalViews": 1},
					"$set": bson.M{"lastUpdated": time.Now()},
				},
			)
		}
		if err != nil {
			errors.LogError(r.logger, err, "Failed to increment total views",
				zap.String("portfolio_id", portfolioID.Hex()))
			return errors.Wrap(err, "failed to increment total views")
		}
	}
	return nil
}

// IncCaseStudyViews lazily upserts the per-case-study counter entry. The
// positional $inc only matches an existing entry; when none exists the entry
// is pushed with views=1, guarded by $ne so concurrent first views insert at
// most one entry. A caller that loses the push race loops and lands its
// increment on the entry the winner inserted, keeping counts exact.
func (r *analyticsRepository) IncCaseStudyViews(ctx context.Context, portfolioID, caseStudyID primitive.ObjectID) error {
	for attempt := 0; attempt < incCaseStudyViewsAttempts; attempt++ {
		result, err := r.analytics.UpdateOne(ctx,
			bson.M{"portfolio": portfolioID, "caseStudyViews.caseStudy": caseStudyID},
			bson.M{"$inc": bson.M{"caseStudyViews.$.views": 1}},
		)
		if err != nil {
			errors.LogError(r.logger, err, "Failed to increment case study views",
				zap.String("portfolio_id", portfolioID.Hex()),
				zap.String("case_study_id", caseStudyID.Hex()))
			return errors.Wrap(err, "failed to increment case study views")
		}
		if result.ModifiedCount > 0 {
			return nil
		}

		// No entry for this case study yet. IncTotalViews has already
		// upserted the rollup document, so only the array entry is missing.
		result, err = r.analytics.UpdateOne(ctx,
			bson.M{"portfolio": portfolioID, "caseStudyViews.caseStudy": bson.M{"$ne": caseStudyID}},
			bson.M{"$push": bson.M{"caseStudyViews": model.CaseStudyViews{CaseStudy: caseStudyID, Views: 1}}},
		)
		if err != nil {
			errors.LogError(r.logger, err, "Failed to insert case study views entry",
				zap.String("portfolio_id", portfolioID.Hex()),
				zap.String("case_study_id", caseStudyID.Hex()))
			return errors.Wrap(err, "failed to insert case study views entry")
		}
		if result.ModifiedCount > 0 {
			return nil
		}
		// Lost the push race; retry the positional increment.
	}

	return errors.NewAppError(errors.ErrInternal, "Failed to record case study view after retries", nil)
}

// GetByPortfolio returns a zero-valued rollup when no views were ever
// recorded. An empty summary is a valid state, not an error.
func (r *analyticsRepository) GetByPortfolio(ctx context.Context, portfolioID primitive.ObjectID) (*model.Analytics, error) {
	var analytics model.Analytics

	err := r.analytics.FindOne(ctx, bson.M{"portfolio": portfolioID}).Decode(&analytics)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &model.Analytics{
				Portfolio:      portfolioID,
				TotalViews:     0,
				CaseStudyViews: []model.CaseStudyViews{},
			}, nil
		}
		errors.LogError(r.logger, err, "Failed to get analytics",
			zap.String("portfolio_id", portfolioID.Hex()))
		return nil, errors.Wrap(err, "failed to get analytics")
	}

	if analytics.CaseStudyViews == nil {
		analytics.CaseStudyViews = []model.CaseStudyViews{}
	}

	return &analytics, nil
}

func (r *analyticsRepository) RecentPageViews(ctx context.Context, portfolioID primitive.ObjectID, limit int) ([]model.PageView, error) {
	cursor, err := r.pageViews.Find(ctx,
		bson.M{"portfolio": portfolioID},
		options.Find().
			// _id desc breaks timestamp ties in insertion order.
			SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}}).
			SetLimit(int64(limit)),
	)
	if err != nil {
		errors.LogError(r.logger, err, "Failed to get recent page views",
			zap.String("portfolio_id", portfolioID.Hex()))
		return nil, errors.Wrap(err, "failed to get recent page views")
	}

	views := []model.PageView{}
	if err := cursor.All(ctx, &views); err != nil {
		return nil, errors.Wrap(err, "failed to decode page views")
	}

	return views, nil
}
