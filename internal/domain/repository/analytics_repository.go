package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"folio-server/internal/domain/model"
)

// AnalyticsRepository persists raw view/click events and the per-portfolio
// rollup. All counter mutations are expressed as atomic store updates so
// concurrent writers never lose increments.
type AnalyticsRepository interface {
	// InsertPageView appends one immutable view event.
	InsertPageView(ctx context.Context, view *model.PageView) error

	// InsertClickEvent appends one immutable click event.
	InsertClickEvent(ctx context.Context, click *model.ClickEvent) error

	// IncTotalViews atomically increments the portfolio's totalViews counter,
	// creating the rollup document with totalViews=1 when absent.
	IncTotalViews(ctx context.Context, portfolioID primitive.ObjectID) error

	// IncCaseStudyViews atomically increments the matching caseStudyViews
	// entry, inserting a fresh {caseStudy, views: 1} entry when none exists.
	IncCaseStudyViews(ctx context.Context, portfolioID, caseStudyID primitive.ObjectID) error

	// GetByPortfolio returns the portfolio's rollup document. When no views
	// were ever recorded it returns a zero-valued rollup, not an error.
	GetByPortfolio(ctx context.Context, portfolioID primitive.ObjectID) (*model.Analytics, error)

	// RecentPageViews returns up to limit view events, newest first, ties
	// broken by insertion order.
	RecentPageViews(ctx context.Context, portfolioID primitive.ObjectID, limit int) ([]model.PageView, error)
}
