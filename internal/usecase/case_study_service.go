package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"folio-server/internal/domain/model"
	domainRepo "folio-server/internal/domain/repository"
	"folio-server/pkg/errors"
)

// CaseStudyInput carries a partial case study update. Nil fields are left
// unchanged on the stored document.
type CaseStudyInput struct {
	Title             *string
	Slug              *string
	Overview          *string
	ProblemStatement  *string
	Solution          *string
	MediaGallery      *[]model.MediaItem
	Timeline          *[]model.TimelineItem
	ToolsTechnologies *[]string
	Outcomes          *model.Outcomes
	Published         *bool
}

// CaseStudyService handles case study CRUD, slug uniqueness and ordering.
type CaseStudyService struct {
	caseStudyRepo domainRepo.CaseStudyRepository
	portfolioRepo domainRepo.PortfolioRepository
	portfolios    *PortfolioService
	logger        *zap.Logger
}

// NewCaseStudyService creates a new case study service instance.
func NewCaseStudyService(
	caseStudyRepo domainRepo.CaseStudyRepository,
	portfolioRepo domainRepo.PortfolioRepository,
	portfolios *PortfolioService,
	logger *zap.Logger,
) *CaseStudyService {
	return &CaseStudyService{
		caseStudyRepo: caseStudyRepo,
		portfolioRepo: portfolioRepo,
		portfolios:    portfolios,
		logger:        logger,
	}
}

// ListPublicByUsername lists the published case studies of a published
// portfolio, sorted by display order.
func (s *CaseStudyService) ListPublicByUsername(ctx context.Context, username string) ([]model.CaseStudy, error) {
	portfolio, err := s.portfolios.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.caseStudyRepo.ListByPortfolio(ctx, portfolio.ID, true)
}

// ListMine lists all of the caller's case studies, drafts included.
func (s *CaseStudyService) ListMine(ctx context.Context, userID primitive.ObjectID) ([]model.CaseStudy, error) {
	portfolio, err := s.portfolios.ResolveOwnedPortfolio(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.caseStudyRepo.ListByPortfolio(ctx, portfolio.ID, false)
}

// Get returns a case study owned by the caller.
func (s *CaseStudyService) Get(ctx context.Context, userID, id primitive.ObjectID) (*model.CaseStudy, error) {
	caseStudy, err := s.caseStudyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.portfolios.AuthorizeOwnership(ctx, userID, caseStudy.Portfolio); err != nil {
		return nil, err
	}
	return caseStudy, nil
}

// Create adds a case study to the caller's portfolio. New case studies are
// appended after the existing ones.
func (s *CaseStudyService) Create(ctx context.Context, userID primitive.ObjectID, input CaseStudyInput) (*model.CaseStudy, error) {
	portfolio, err := s.portfolios.ResolveOwnedPortfolio(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Slug != nil {
		taken, err := s.caseStudyRepo.SlugTaken(ctx, portfolio.ID, *input.Slug, nil)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errors.NewAppError(errors.ErrConflict, "Slug must be unique within your portfolio", nil)
		}
	}

	existing, err := s.caseStudyRepo.ListByPortfolio(ctx, portfolio.ID, false)
	if err != nil {
		return nil, err
	}

	caseStudy := &model.CaseStudy{
		Portfolio: portfolio.ID,
		Order:     len(existing),
	}
	applyCaseStudyInput(caseStudy, input)

	created, err := s.caseStudyRepo.Create(ctx, caseStudy)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Case study created",
		zap.String("portfolio_id", portfolio.ID.Hex()),
		zap.String("case_study_id", created.ID.Hex()),
		zap.String("slug", created.Slug))
	return created, nil
}

// Update modifies a case study owned by the caller. The slug is re-checked
// only when the update actually changes it, so saving a case study under its
// current slug never conflicts with itself.
func (s *CaseStudyService) Update(ctx context.Context, userID, id primitive.ObjectID, input CaseStudyInput) (*model.CaseStudy, error) {
	caseStudy, err := s.caseStudyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.portfolios.AuthorizeOwnership(ctx, userID, caseStudy.Portfolio); err != nil {
		return nil, err
	}

	if input.Slug != nil && *input.Slug != caseStudy.Slug {
		taken, err := s.caseStudyRepo.SlugTaken(ctx, caseStudy.Portfolio, *input.Slug, &caseStudy.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errors.NewAppError(errors.ErrConflict, "Slug must be unique within your portfolio", nil)
		}
	}

	applyCaseStudyInput(caseStudy, input)
	return s.caseStudyRepo.Update(ctx, caseStudy)
}

// Delete removes a case study owned by the caller.
func (s *CaseStudyService) Delete(ctx context.Context, userID, id primitive.ObjectID) error {
	caseStudy, err := s.caseStudyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.portfolios.AuthorizeOwnership(ctx, userID, caseStudy.Portfolio); err != nil {
		return err
	}
	return s.caseStudyRepo.Delete(ctx, id)
}

// Reorder assigns each listed case study the order of its position in the
// list. Case studies not in the list keep their stored order.
func (s *CaseStudyService) Reorder(ctx context.Context, userID primitive.ObjectID, ids []primitive.ObjectID) ([]model.CaseStudy, error) {
	portfolio, err := s.portfolios.ResolveOwnedPortfolio(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(ids) > 0 {
		if err := s.caseStudyRepo.Reorder(ctx, portfolio.ID, ids); err != nil {
			return nil, err
		}
	}

	return s.caseStudyRepo.ListByPortfolio(ctx, portfolio.ID, false)
}

func applyCaseStudyInput(caseStudy *model.CaseStudy, input CaseStudyInput) {
	if input.Title != nil {
		caseStudy.Title = *input.Title
	}
	if input.Slug != nil {
		caseStudy.Slug = *input.Slug
	}
	if input.Overview != nil {
		caseStudy.Overview = *input.Overview
	}
	if input.ProblemStatement != nil {
		caseStudy.ProblemStatement = *input.ProblemStatement
	}
	if input.Solution != nil {
		caseStudy.Solution = *input.Solution
	}
	if input.MediaGallery != nil {
		caseStudy.MediaGallery = *input.MediaGallery
	}
	if input.Timeline != nil {
		caseStudy.Timeline = *input.Timeline
	}
	if input.ToolsTechnologies != nil {
		caseStudy.ToolsTechnologies = *input.ToolsTechnologies
	}
	if input.Outcomes != nil {
		caseStudy.Outcomes = *input.Outcomes
	}
	if input.Published != nil {
		caseStudy.Published = *input.Published
	}
}
