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

// AnalyticsHandler handles visitor tracking and owner summary requests
type AnalyticsHandler struct {
	logger           *zap.Logger
	analyticsService *usecase.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler instance
func NewAnalyticsHandler(logger *zap.Logger, analyticsService *usecase.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		logger:           logger,
		analyticsService: analyticsService,
	}
}

type trackViewRequest struct {
	PortfolioID string  `json:"portfolioId" validate:"required,len=24,hexadecimal"`
	CaseStudyID *string `json:"caseStudyId" validate:"omitempty,len=24,hexadecimal"`
}

type trackClickRequest struct {
	PortfolioID string  `json:"portfolioId" validate:"required,len=24,hexadecimal"`
	CaseStudyID *string `json:"caseStudyId" validate:"omitempty,len=24,hexadecimal"`
	ElementID   string  `json:"elementId" validate:"required"`
	ElementType string  `json:"elementType" validate:"required"`
}

func eventMetadata(c echo.Context) model.EventMetadata {
	return model.EventMetadata{
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
		Referrer:  c.Request().Referer(),
	}
}

// TrackView handles POST /api/analytics/track-view
func (h *AnalyticsHandler) TrackView(c echo.Context) error {
	var req trackViewRequest
	if err := c.Bind(&req); err != nil {
		return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrInvalidArgument, "Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrInvalidArgument, err.Error(), err))
	}

	portfolioID, err := primitive.ObjectIDFromHex(req.PortfolioID)
	if err != nil {
		return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrInvalidArgument, "Invalid portfolio id", err))
	}

	var caseStudyID *primitive.ObjectID
	if req.CaseStudyID != nil {
		id, err := primitive.ObjectIDFromHex(*req.CaseStudyID)
		if err != nil {
			return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrInvalidArgument, "Invalid case study id", err))
		}
		caseStudyID = &id
	}

	if err := h.analyticsService.RecordView(c.Request().Context(), portfolioID, caseStudyID, eventMetadata(c)); err != nil {
		return errors.ToHTTPResponse(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// TrackClick handles POST /api/analytics/track-click
func (h *AnalyticsHandler) TrackClick(c echo.Context) error {
	var req trackClickRequest
	if err := c.Bind(&req); err != nil {
		return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrInvalidArgument, "Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrInvalidArgument, err.Error(), err))
	}

	portfolioID, err := primitive.ObjectIDFromHex(req.PortfolioID)
	if err != nil {
		return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrInvalidArgument, "Invalid portfolio id", err))
	}

	var caseStudyID *primitive.ObjectID
	if req.CaseStudyID != nil {
		id, err := primitive.ObjectIDFromHex(*req.CaseStudyID)
		if err != nil {
			return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrInvalidArgument, "Invalid case study id", err))
		}
		caseStudyID = &id
	}

	if err := h.analyticsService.RecordClick(c.Request().Context(), portfolioID, caseStudyID, req.ElementID, req.ElementType, eventMetadata(c)); err != nil {
		return errors.ToHTTPResponse(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// GetSummary handles GET /api/analytics/portfolio
func (h *AnalyticsHandler) GetSummary(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrUnauthenticated, "Authentication required", nil))
	}

	summary, err := h.analyticsService.GetSummary(c.Request().Context(), userID)
	if err != nil {
		return errors.ToHTTPResponse(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}
