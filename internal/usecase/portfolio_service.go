package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"folio-server/internal/domain/model"
	domainRepo "folio-server/internal/domain/repository"
	"folio-server/pkg/errors"
)

// PortfolioInput carries a partial portfolio update. Nil fields are left
// unchanged on the stored document.
type PortfolioInput struct {
	Title         *string
	Bio           *string
	Skills        *[]string
	SocialLinks   *model.SocialLinks
	SelectedTheme *primitive.ObjectID
	CustomTheme   *model.CustomTheme
	Published     *bool
}

// PortfolioService handles portfolio profiles and username uniqueness.
type PortfolioService struct {
	portfolioRepo domainRepo.PortfolioRepository
	userRepo      domainRepo.UserRepository
	logger        *zap.Logger
}

// NewPortfolioService creates a new portfolio service instance.
func NewPortfolioService(
	portfolioRepo domainRepo.PortfolioRepository,
	userRepo domainRepo.UserRepository,
	logger *zap.Logger,
) *PortfolioService {
	return &PortfolioService{
		portfolioRepo: portfolioRepo,
		userRepo:      userRepo,
		logger:        logger,
	}
}

// ResolveOwnedPortfolio returns the portfolio owned by the given user.
func (s *PortfolioService) ResolveOwnedPortfolio(ctx context.Context, userID primitive.ObjectID) (*model.Portfolio, error) {
	return s.portfolioRepo.GetByUser(ctx, userID)
}

// AuthorizeOwnership verifies that the resource's parent portfolio is the
// principal's own portfolio.
func (s *PortfolioService) AuthorizeOwnership(ctx context.Context, userID, resourcePortfolioID primitive.ObjectID) (*model.Portfolio, error) {
	portfolio, err := s.portfolioRepo.GetByUser(ctx, userID)
	if err != nil {
		if errors.CodeOf(err) == errors.ErrNotFound {
			return nil, errors.NewAppError(errors.ErrUnauthenticated, "Not authorized to access this resource", nil)
		}
		return nil, err
	}
	if portfolio.ID != resourcePortfolioID {
		s.logger.Warn("Ownership check failed",
			zap.String("user_id", userID.Hex()),
			zap.String("resource_portfolio_id", resourcePortfolioID.Hex()))
		return nil, errors.NewAppError(errors.ErrUnauthenticated, "Not authorized to access this resource", nil)
	}
	return portfolio, nil
}

// GetByUsername returns a published portfolio for public viewing. Unpublished
// portfolios are indistinguishable from missing ones.
func (s *PortfolioService) GetByUsername(ctx context.Context, username string) (*model.Portfolio, error) {
	portfolio, err := s.portfolioRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if !portfolio.Published {
		return nil, errors.NewAppError(errors.ErrNotFound, "Portfolio not found", nil)
	}
	return portfolio, nil
}

// Save creates the caller's portfolio on first use and partially updates it
// afterwards. The initial username is taken from the user account.
func (s *PortfolioService) Save(ctx context.Context, userID primitive.ObjectID, input PortfolioInput) (*model.Portfolio, error) {
	portfolio, err := s.portfolioRepo.GetByUser(ctx, userID)
	if err != nil {
		if errors.CodeOf(err) != errors.ErrNotFound {
			return nil, err
		}
		user, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		portfolio = &model.Portfolio{
			User:     userID,
			Username: user.Username,
		}
		applyPortfolioInput(portfolio, input)
		created, err := s.portfolioRepo.Create(ctx, portfolio)
		if err != nil {
			return nil, err
		}
		s.logger.Info("Portfolio created",
			zap.String("user_id", userID.Hex()),
			zap.String("portfolio_id", created.ID.Hex()))
		return created, nil
	}

	applyPortfolioInput(portfolio, input)
	return s.portfolioRepo.Update(ctx, portfolio)
}

func applyPortfolioInput(portfolio *model.Portfolio, input PortfolioInput) {
	if input.Title != nil {
		portfolio.Title = *input.Title
	}
	if input.Bio != nil {
		portfolio.Bio = *input.Bio
	}
	if input.Skills != nil {
		portfolio.Skills = *input.Skills
	}
	if input.SocialLinks != nil {
		portfolio.SocialLinks = *input.SocialLinks
	}
	if input.SelectedTheme != nil {
		portfolio.SelectedTheme = input.SelectedTheme
	}
	if input.CustomTheme != nil {
		portfolio.CustomTheme = input.CustomTheme
	}
	if input.Published != nil {
		portfolio.Published = *input.Published
	}
}

// CheckUsername reports whether the candidate username is free to claim.
// The answer is advisory: the unique index decides at commit time.
func (s *PortfolioService) CheckUsername(ctx context.Context, username string) (bool, error) {
	taken, err := s.portfolioRepo.UsernameTaken(ctx, username, nil)
	if err != nil {
		return false, err
	}
	return !taken, nil
}

// UpdateUsername changes the caller's public username. The pre-check gives a
// friendly error; a concurrent claim still surfaces as a conflict from the
// unique index.
func (s *PortfolioService) UpdateUsername(ctx context.Context, userID primitive.ObjectID, username string) (*model.Portfolio, error) {
	portfolio, err := s.portfolioRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if portfolio.Username == username {
		return portfolio, nil
	}

	taken, err := s.portfolioRepo.UsernameTaken(ctx, username, &portfolio.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errors.NewAppError(errors.ErrConflict, "Username is already taken", nil)
	}

	return s.portfolioRepo.UpdateUsername(ctx, userID, username)
}
