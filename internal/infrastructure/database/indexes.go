package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// EnsureIndexes creates the indexes the application relies on. The unique
// indexes are the authoritative uniqueness checks: application-level
// pre-checks only exist for friendlier error messages.
func EnsureIndexes(ctx context.Context, db *mongo.Database, log *zap.Logger) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string][]mongo.IndexModel{
		"users": {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		"portfolios": {
			{Keys: bson.D{{Key: "user", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
		},
		"casestudies": {
			// Slug uniqueness is scoped to the owning portfolio.
			{Keys: bson.D{{Key: "portfolio", Value: 1}, {Key: "slug", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "portfolio", Value: 1}, {Key: "order", Value: 1}}},
		},
		"themes": {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
		},
		"analytics": {
			{Keys: bson.D{{Key: "portfolio", Value: 1}}, Options: unique},
		},
		"pageviews": {
			{Keys: bson.D{{Key: "portfolio", Value: 1}, {Key: "timestamp", Value: -1}}},
		},
		"clickevents": {
			{Keys: bson.D{{Key: "portfolio", Value: 1}, {Key: "timestamp", Value: -1}}},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", collection, err)
		}
		log.Debug("Indexes ensured", zap.String("collection", collection))
	}

	return nil
}
