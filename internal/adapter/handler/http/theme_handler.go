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

// ThemeHandler handles theme HTTP requests
type ThemeHandler struct {
	logger       *zap.Logger
	themeService *usecase.ThemeService
}

// NewThemeHandler creates a new theme handler instance
func NewThemeHandler(logger *zap.Logger, themeService *usecase.ThemeService) *ThemeHandler {
	return &ThemeHandler{
		logger:       logger,
		themeService: themeService,
	}
}

type customThemeRequest struct {
	Name        string            `json:"name" validate:"required,min=1,max=60"`
	Description string            `json:"description"`
	Colors      model.ThemeColors `json:"colors" validate:"required"`
	Fonts       model.ThemeFonts  `json:"fonts" validate:"required"`
}

// ListSystem handles GET /api/theme/system
func (h *ThemeHandler) ListSystem(c echo.Context) error {
	themes, err := h.themeService.ListSystem(c.Request().Context())
	if err != nil {
		return errors.ToHTTPResponse(c, err)
	}
	return c.JSON(http.StatusOK, themes)
}

// Get handles GET /api/theme/:id
func (h *ThemeHandler) Get(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrInvalidArgument, "Invalid theme id", err))
	}

	theme, err := h.themeService.Get(c.Request().Context(), id)
	if err != nil {
		return errors.ToHTTPResponse(c, err)
	}
	return c.JSON(http.StatusOK, theme)
}

// CreateCustom handles POST /api/theme/custom
func (h *ThemeHandler) CreateCustom(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrUnauthenticated, "Authentication required", nil))
	}

	var req customThemeRequest
	if err := c.Bind(&req); err != nil {
		return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrInvalidArgument, "Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrInvalidArgument, err.Error(), err))
	}

	theme, err := h.themeService.CreateCustom(c.Request().Context(), userID, &model.Theme{
		Name:        req.Name,
		Description: req.Description,
		Colors:      req.Colors,
		Fonts:       req.Fonts,
	})
	if err != nil {
		return errors.ToHTTPResponse(c, err)
	}
	return c.JSON(http.StatusCreated, theme)
}
