package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"folio-server/internal/middleware/auth"
	"folio-server/internal/usecase"
	"folio-server/pkg/errors"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	logger      *zap.Logger
	authService *usecase.AuthService
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(logger *zap.Logger, authService *usecase.AuthService) *AuthHandler {
	return &AuthHandler{
		logger:      logger,
		authService: authService,
	}
}

type registerRequest struct {
	Username string `json:"username" validate:"required,alphanum,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrInvalidArgument, "Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrInvalidArgument, err.Error(), err))
	}

	user, token, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return errors.ToHTTPResponse(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"token": token,
		"user":  user,
	})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrInvalidArgument, "Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrInvalidArgument, err.Error(), err))
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return errors.ToHTTPResponse(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"user":  user,
	})
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrUnauthenticated, "Authentication required", nil))
	}

	user, err := h.authService.Me(c.Request().Context(), userID)
	if err != nil {
		return errors.ToHTTPResponse(c, err)
	}

	return c.JSON(http.StatusOK, user)
}
