package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"folio-server/internal/domain/model"
	domainRepo "folio-server/internal/domain/repository"
	"folio-server/internal/middleware/auth"
	"folio-server/pkg/errors"
)

// AuthService handles registration, login and principal lookup.
type AuthService struct {
	userRepo domainRepo.UserRepository
	tokens   *auth.Manager
	logger   *zap.Logger
}

// NewAuthService creates a new auth service instance.
func NewAuthService(userRepo domainRepo.UserRepository, tokens *auth.Manager, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register creates a user with a bcrypt-hashed password and returns the user
// together with a signed token.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*model.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, "", errors.Wrap(err, "failed to hash password")
	}

	user, err := s.userRepo.Create(ctx, &model.User{
		Username: username,
		Email:    email,
		Password: string(hash),
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.IssueToken(user.ID)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to issue token")
	}

	s.logger.Info("User registered",
		zap.String("user_id", user.ID.Hex()),
		zap.String("username", username))
	return user, token, nil
}

// Login verifies the credentials and returns the user with a signed token.
// Unknown email and wrong password produce the same error so the response
// does not reveal which accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.CodeOf(err) == errors.ErrNotFound {
			return nil, "", errors.NewAppError(errors.ErrUnauthenticated, "Invalid email or password", nil)
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.logger.Warn("Login failed", zap.String("user_id", user.ID.Hex()))
		return nil, "", errors.NewAppError(errors.ErrUnauthenticated, "Invalid email or password", nil)
	}

	token, err := s.tokens.IssueToken(user.ID)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to issue token")
	}

	return user, token, nil
}

// Me returns the authenticated user.
func (s *AuthService) Me(ctx context.Context, userID primitive.ObjectID) (*model.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}
