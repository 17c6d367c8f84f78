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

// TaskHandler holds dependencies for the activity task handlers.
type TaskHandler struct {
	uc     usecase.TaskUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler, injected by Fx.
func NewTaskHandler(uc usecase.TaskUsecase, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{uc: uc, logger: logger}
}

type createTaskRequest struct {
	Name               string          `json:"name" validate:"required"`
	Description        string          `json:"description"`
	WhatsIncluded      []string        `json:"whats_included"`
	AdditionalInfo     entity.TaskInfo `json:"additional_info"`
	Price              float64         `json:"price" validate:"required,gt=0"`
	Slots              []string        `json:"slots"`
	DiscountPercentage float64         `json:"discount_percentage" validate:"omitempty,gte=0,lte=100"`
	ImageURLs          []string        `json:"image_url"`
	Filter             []string        `json:"filter"`
	CanReserve         *bool           `json:"canReserve"`
}

// Create adds a task owned by the calling activity organizer.
func (h *TaskHandler) Create(c echo.Context) error {
	claims, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing principal")
	}

	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	task, err := h.uc.Create(c.Request().Context(), usecase.CreateTaskInput{
		OwnerID:            claims.SubjectID,
		Name:               req.Name,
		Description:        req.Description,
		WhatsIncluded:      req.WhatsIncluded,
		AdditionalInfo:     req.AdditionalInfo,
		Price:              req.Price,
		Slots:              req.Slots,
		DiscountPercentage: req.DiscountPercentage,
		ImageURLs:          req.ImageURLs,
		Filter:             req.Filter,
		CanReserve:         req.CanReserve,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, task, "Task created successfully")
}

// Get returns a single task.
func (h *TaskHandler) Get(c echo.Context) error {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid task ID")
	}

	task, err := h.uc.Get(c.Request().Context(), taskID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, task, "")
}

type listTaskRequest struct {
	ActivityID uuid.UUID `query:"activity_id"`
	Name       string    `query:"name"`
	MinPrice   *float64  `query:"min_price"`
	MaxPrice   *float64  `query:"max_price"`
	Filter     []string  `query:"filter"`
	Deleted    *bool     `query:"deleted"`
}

// List returns tasks matching the query filter.
func (h *TaskHandler) List(c echo.Context) error {
	var req listTaskRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task filter")
	}

	tasks, err := h.uc.List(c.Request().Context(), usecase.ListTaskInput{
		ActivityID: req.ActivityID,
		Name:       req.Name,
		MinPrice:   req.MinPrice,
		MaxPrice:   req.MaxPrice,
		Filter:     req.Filter,
		Deleted:    req.Deleted,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tasks, "")
}

type updateTaskRequest struct {
	Name               *string          `json:"name" validate:"omitempty,min=1"`
	Description        *string          `json:"description"`
	WhatsIncluded      []string         `json:"whats_included"`
	AdditionalInfo     *entity.TaskInfo `json:"additional_info"`
	Price              *float64         `json:"price" validate:"omitempty,gt=0"`
	Slots              []string         `json:"slots"`
	DiscountPercentage *float64         `json:"discount_percentage" validate:"omitempty,gte=0,lte=100"`
	ImageURLs          []string         `json:"image_url"`
	Filter             []string         `json:"filter"`
	CanReserve         *bool            `json:"canReserve"`
	Deleted            *bool            `json:"deleted"`
}

// Update patches a task owned by the caller.
func (h *TaskHandler) Update(c echo.Context) error {
	claims, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing principal")
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid task ID")
	}

	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task patch")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	task, err := h.uc.Update(c.Request().Context(), usecase.UpdateTaskInput{
		TaskID:             taskID,
		CallerID:           claims.SubjectID,
		Name:               req.Name,
		Description:        req.Description,
		WhatsIncluded:      req.WhatsIncluded,
		AdditionalInfo:     req.AdditionalInfo,
		Price:              req.Price,
		Slots:              req.Slots,
		DiscountPercentage: req.DiscountPercentage,
		ImageURLs:          req.ImageURLs,
		Filter:             req.Filter,
		CanReserve:         req.CanReserve,
		Deleted:            req.Deleted,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, task, "Task updated successfully")
}

// Delete soft-deletes a task owned by the caller.
func (h *TaskHandler) Delete(c echo.Context) error {
	claims, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing principal")
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid task ID")
	}

	if err := h.uc.Delete(c.Request().Context(), taskID, claims.SubjectID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Task deleted successfully")
}
