package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"folio-server/internal/domain/model"
	"folio-server/internal/middleware/auth"
	"folio-server/internal/usecase"
	"folio-server/pkg/errors"
)

// PortfolioHandler handles portfolio HTTP requests
type PortfolioHandler struct {
	logger           *zap.Logger
	portfolioService *usecase.PortfolioService
}

// NewPortfolioHandler creates a new portfolio handler instance
func NewPortfolioHandler(logger *zap.Logger, portfolioService *usecase.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		logger:           logger,
		portfolioService: portfolioService,
	}
}

type portfolioRequest struct {
	Title         *string            `json:"title" validate:"omitempty,max=120"`
	Bio           *string            `json:"bio"`
	Skills        *[]string          `json:"skills"`
	SocialLinks   *model.SocialLinks `json:"socialLinks"`
	SelectedTheme *string            `json:"selectedTheme" validate:"omitempty,len=24,hexadecimal"`
	CustomTheme   *model.CustomTheme `json:"customTheme"`
	Published     *bool              `json:"published"`
}

type updateUsernameRequest struct {
	Username string `json:"username" validate:"required,alphanum,min=3,max=30"`
}

// GetPublic handles GET /api/portfolio/:username
func (h *PortfolioHandler) GetPublic(c echo.Context) error {
	portfolio, err := h.portfolioService.GetByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return errors.ToHTTPResponse(c, err)
	}
	return c.JSON(http.StatusOK, portfolio)
}

// GetMine handles GET /api/portfolio/me
func (h *PortfolioHandler) GetMine(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrUnauthenticated, "Authentication required", nil))
	}

	portfolio, err := h.portfolioService.ResolveOwnedPortfolio(c.Request().Context(), userID)
	if err != nil {
		return errors.ToHTTPResponse(c, err)
	}
	return c.JSON(http.StatusOK, portfolio)
}

// Save handles POST /api/portfolio
func (h *PortfolioHandler) Save(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrUnauthenticated, "Authentication required", nil))
	}

	var req portfolioRequest
	if err := c.Bind(&req); err != nil {
		return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrInvalidArgument, "Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrInvalidArgument, err.Error(), err))
	}

	input := usecase.PortfolioInput{
		Title:       req.Title,
		Bio:         req.Bio,
		Skills:      req.Skills,
		SocialLinks: req.SocialLinks,
		CustomTheme: req.CustomTheme,
		Published:   req.Published,
	}
	if req.SelectedTheme != nil {
		themeID, err := primitive.ObjectIDFromHex(*req.SelectedTheme)
		if err != nil {
			return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrInvalidArgument, "Invalid theme id", err))
		}
		input.SelectedTheme = &themeID
	}

	portfolio, err := h.portfolioService.Save(c.Request().Context(), userID, input)
	if err != nil {
		return errors.ToHTTPResponse(c, err)
	}
	return c.JSON(http.StatusOK, portfolio)
}

// CheckUsername handles GET /api/portfolio/check-username/:username
func (h *PortfolioHandler) CheckUsername(c echo.Context) error {
	username := c.Param("username")

	available, err := h.portfolioService.CheckUsername(c.Request().Context(), username)
	if err != nil {
		return errors.ToHTTPResponse(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"username":  username,
		"available": available,
	})
}

// UpdateUsername handles PUT /api/portfolio/username
func (h *PortfolioHandler) UpdateUsername(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrUnauthenticated, "Authentication required", nil))
	}

	var req updateUsernameRequest
	if err := c.Bind(&req); err != nil {
		return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrInvalidArgument, "Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrInvalidArgument, err.Error(), err))
	}

	portfolio, err := h.portfolioService.UpdateUsername(c.Request().Context(), userID, req.Username)
	if err != nil {
		return errors.ToHTTPResponse(c, err)
	}
	return c.JSON(http.StatusOK, portfolio)
}
