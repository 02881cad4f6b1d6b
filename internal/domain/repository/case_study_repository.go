package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"folio-server/internal/domain/model"
)

// CaseStudyRepository persists case studies. The (portfolio, slug) pair is
// enforced unique by a compound index.
type CaseStudyRepository interface {
	// Create inserts a new case study. A duplicate (portfolio, slug) pair
	// surfaces as a CONFLICT error.
	Create(ctx context.Context, caseStudy *model.CaseStudy) (*model.CaseStudy, error)

	// Update replaces the stored case study document.
	Update(ctx context.Context, caseStudy *model.CaseStudy) (*model.CaseStudy, error)

	// Delete removes the case study with the given id.
	Delete(ctx context.Context, id primitive.ObjectID) error

	// GetByID returns the case study with the given id, or a NOT_FOUND error.
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.CaseStudy, error)

	// GetByIDs returns the case studies matching the given ids, in no
	// particular order. Missing ids are silently skipped.
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.CaseStudy, error)

	// ListByPortfolio returns the portfolio's case studies sorted by their
	// display order, optionally restricted to published ones.
	ListByPortfolio(ctx context.Context, portfolioID primitive.ObjectID, publishedOnly bool) ([]model.CaseStudy, error)

	// SlugTaken reports whether a case study other than exclude already uses
	// the given slug within the portfolio. Fast-path check only; the compound
	// unique index decides the race.
	SlugTaken(ctx context.Context, portfolioID primitive.ObjectID, slug string, exclude *primitive.ObjectID) (bool, error)

	// Reorder assigns order=index to each listed case study as one batched
	// multi-document write scoped to the portfolio. Case studies not listed
	// keep their order.
	Reorder(ctx context.Context, portfolioID primitive.ObjectID, ids []primitive.ObjectID) error
}
