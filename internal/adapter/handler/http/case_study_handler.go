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

// CaseStudyHandler handles case study HTTP requests
type CaseStudyHandler struct {
	logger           *zap.Logger
	caseStudyService *usecase.CaseStudyService
}

// NewCaseStudyHandler creates a new case study handler instance
func NewCaseStudyHandler(logger *zap.Logger, caseStudyService *usecase.CaseStudyService) *CaseStudyHandler {
	return &CaseStudyHandler{
		logger:           logger,
		caseStudyService: caseStudyService,
	}
}

type caseStudyRequest struct {
	Title             *string               `json:"title" validate:"omitempty,max=160"`
	Slug              *string               `json:"slug" validate:"omitempty,min=1,max=80"`
	Overview          *string               `json:"overview"`
	ProblemStatement  *string               `json:"problemStatement"`
	Solution          *string               `json:"solution"`
	MediaGallery      *[]model.MediaItem    `json:"mediaGallery" validate:"omitempty,dive"`
	Timeline          *[]model.TimelineItem `json:"timeline"`
	ToolsTechnologies *[]string             `json:"toolsTechnologies"`
	Outcomes          *model.Outcomes       `json:"outcomes"`
	Published         *bool                 `json:"published"`
}

func (r *caseStudyRequest) toInput() usecase.CaseStudyInput {
	return usecase.CaseStudyInput{
		Title:             r.Title,
		Slug:              r.Slug,
		Overview:          r.Overview,
		ProblemStatement:  r.ProblemStatement,
		Solution:          r.Solution,
		MediaGallery:      r.MediaGallery,
		Timeline:          r.Timeline,
		ToolsTechnologies: r.ToolsTechnologies,
		Outcomes:          r.Outcomes,
		Published:         r.Published,
	}
}

type reorderRequest struct {
	Order []string `json:"order" validate:"required,dive,len=24,hexadecimal"`
}

// ListPublic handles GET /api/case-study/portfolio/:username
func (h *CaseStudyHandler) ListPublic(c echo.Context) error {
	caseStudies, err := h.caseStudyService.ListPublicByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return errors.ToHTTPResponse(c, err)
	}
	return c.JSON(http.StatusOK, caseStudies)
}

// ListMine handles GET /api/case-study/me
func (h *CaseStudyHandler) ListMine(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrUnauthenticated, "Authentication required", nil))
	}

	caseStudies, err := h.caseStudyService.ListMine(c.Request().Context(), userID)
	if err != nil {
		return errors.ToHTTPResponse(c, err)
	}
	return c.JSON(http.StatusOK, caseStudies)
}

// Get handles GET /api/case-study/:id
func (h *CaseStudyHandler) Get(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrUnauthenticated, "Authentication required", nil))
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrInvalidArgument, "Invalid case study id", err))
	}

	caseStudy, err := h.caseStudyService.Get(c.Request().Context(), userID, id)
	if err != nil {
		return errors.ToHTTPResponse(c, err)
	}
	return c.JSON(http.StatusOK, caseStudy)
}

// Create handles POST /api/case-study
func (h *CaseStudyHandler) Create(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrUnauthenticated, "Authentication required", nil))
	}

	var req caseStudyRequest
	if err := c.Bind(&req); err != nil {
		return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrInvalidArgument, "Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrInvalidArgument, err.Error(), err))
	}
	if req.Title == nil || req.Slug == nil {
		return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrInvalidArgument, "Title and slug are required", nil))
	}

	caseStudy, err := h.caseStudyService.Create(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return errors.ToHTTPResponse(c, err)
	}
	return c.JSON(http.StatusCreated, caseStudy)
}

// Update handles PUT /api/case-study/:id
func (h *CaseStudyHandler) Update(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrUnauthenticated, "Authentication required", nil))
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrInvalidArgument, "Invalid case study id", err))
	}

	var req caseStudyRequest
	if err := c.Bind(&req); err != nil {
		return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrInvalidArgument, "Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrInvalidArgument, err.Error(), err))
	}

	caseStudy, err := h.caseStudyService.Update(c.Request().Context(), userID, id, req.toInput())
	if err != nil {
		return errors.ToHTTPResponse(c, err)
	}
	return c.JSON(http.StatusOK, caseStudy)
}

// Delete handles DELETE /api/case-study/:id
func (h *CaseStudyHandler) Delete(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrUnauthenticated, "Authentication required", nil))
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrInvalidArgument, "Invalid case study id", err))
	}

	if err := h.caseStudyService.Delete(c.Request().Context(), userID, id); err != nil {
		return errors.ToHTTPResponse(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// Reorder handles PUT /api/case-study/reorder
func (h *CaseStudyHandler) Reorder(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrUnauthenticated, "Authentication required", nil))
	}

	var req reorderRequest
	if err := c.Bind(&req); err != nil {
		return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrInvalidArgument, "Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrInvalidArgument, err.Error(), err))
	}

	ids := make([]primitive.ObjectID, 0, len(req.Order))
	for _, raw := range req.Order {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return errors.ToHTTPResponse(c, errors.NewAppError(errors.ErrInvalidArgument, "Invalid case study id in order list", err))
		}
		ids = append(ids, id)
	}

	caseStudies, err := h.caseStudyService.Reorder(c.Request().Context(), userID, ids)
	if err != nil {
		return errors.ToHTTPResponse(c, err)
	}
	return c.JSON(http.StatusOK, caseStudies)
}
