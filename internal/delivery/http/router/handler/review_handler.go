package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "tripdesk/internal/delivery/context"
	"tripdesk/internal/delivery/http/response"
	"tripdesk/internal/domain/entity"
	"tripdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReviewHandler holds dependencies for the review handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{uc: uc, logger: logger}
}

type createReviewRequest struct {
	BusinessType string    `json:"business_type" validate:"required,oneof=Restaurant Shop Task"`
	BusinessID   uuid.UUID `json:"business_id" validate:"required"`
	Title        string    `json:"title"`
	Rating       int       `json:"rating" validate:"required,min=1,max=5"`
	Description  string    `json:"description"`
}

// Create stores a review from a verified customer and recomputes the target's
// aggregate rating.
func (h *ReviewHandler) Create(c echo.Context) error {
	claims, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing principal")
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	kind := entity.BusinessKind(req.BusinessType)

	review, err := h.uc.Create(c.Request().Context(), usecase.CreateReviewInput{
		BookingID:   claims.SubjectID,
		Business:    entity.BusinessRef{Kind: kind, ID: req.BusinessID},
		Title:       req.Title,
		Rating:      req.Rating,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review, "Review submitted successfully")
}

// ListForBusiness returns the non-deleted reviews of a business.
func (h *ReviewHandler) ListForBusiness(c echo.Context) error {
	kind := entity.BusinessKind(c.Param("business_type"))
	if !kind.IsValid() {
		return response.BadRequest(c, "INVALID_BUSINESS_TYPE", "Unknown business type")
	}

	businessID, err := uuid.Parse(c.Param("business_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid business ID")
	}

	reviews, err := h.uc.ListForBusiness(c.Request().Context(), kind, businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "")
}

// Delete soft-deletes a review and recomputes the target's rating.
func (h *ReviewHandler) Delete(c echo.Context) error {
	reviewID, err := uuid.Parse(c.Param("review_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid review ID")
	}

	if err := h.uc.Delete(c.Request().Context(), reviewID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Review deleted successfully")
}
