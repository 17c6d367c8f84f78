package handler

import (
	"log/slog"
	"net/http"

	"tripdesk/internal/delivery/http/response"
	"tripdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SuperAdminHandler holds dependencies for the administrative handlers.
type SuperAdminHandler struct {
	uc     usecase.SuperAdminUsecase
	logger *slog.Logger
}

// NewSuperAdminHandler is the constructor for SuperAdminHandler, injected by Fx.
func NewSuperAdminHandler(uc usecase.SuperAdminUsecase, logger *slog.Logger) *SuperAdminHandler {
	return &SuperAdminHandler{uc: uc, logger: logger}
}

type superAdminSignupRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	Password    string `json:"password" validate:"required,min=6"`
}

// Signup creates the single SuperAdmin account and logs it in immediately.
func (h *SuperAdminHandler) Signup(c echo.Context) error {
	var req superAdminSignupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	output, err := h.uc.Signup(c.Request().Context(), usecase.SuperAdminSignupInput{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "SuperAdmin account created")
}

type reviewRegistrationRequest struct {
	UserID   uuid.UUID `json:"user_id" validate:"required"`
	Approved bool      `json:"approved"`
}

// ReviewRegistration approves or rejects a pending registration.
func (h *SuperAdminHandler) ReviewRegistration(c echo.Context) error {
	var req reviewRegistrationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	err := h.uc.ReviewRegistration(c.Request().Context(), usecase.ReviewRegistrationInput{
		UserID:   req.UserID,
		Approved: req.Approved,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	msg := "Registration approved"
	if !req.Approved {
		msg = "Registration rejected"
	}
	return response.Success(c, http.StatusOK, nil, msg)
}

type listUsersRequest struct {
	Role    string `query:"role"`
	Pending *bool  `query:"pending"`
	Index   int    `query:"index"`
	Limit   int    `query:"limit"`
}

// ListUsers returns accounts matching the query filter merged with their
// role-profile public fields.
func (h *SuperAdminHandler) ListUsers(c echo.Context) error {
	var req listUsersRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing filter")
	}

	views, err := h.uc.ListUsers(c.Request().Context(), usecase.ListUsersInput{
		Role:    req.Role,
		Pending: req.Pending,
		Index:   req.Index,
		Limit:   req.Limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views, "")
}

// ListPendingUsers returns the registrations still waiting for approval.
func (h *SuperAdminHandler) ListPendingUsers(c echo.Context) error {
	var req listUsersRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing filter")
	}

	pending := true
	views, err := h.uc.ListUsers(c.Request().Context(), usecase.ListUsersInput{
		Role:    req.Role,
		Pending: &pending,
		Index:   req.Index,
		Limit:   req.Limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views, "")
}

// ListApprovedUsers returns the registrations already approved.
func (h *SuperAdminHandler) ListApprovedUsers(c echo.Context) error {
	var req listUsersRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing filter")
	}

	pending := false
	views, err := h.uc.ListUsers(c.Request().Context(), usecase.ListUsersInput{
		Role:    req.Role,
		Pending: &pending,
		Index:   req.Index,
		Limit:   req.Limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views, "")
}

// UpdateUser applies a mixed identity/profile patch to an account.
func (h *SuperAdminHandler) UpdateUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	fields := map[string]any{}
	if err := c.Bind(&fields); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update payload")
	}

	user, err := h.uc.UpdateUser(c.Request().Context(), usecase.UpdateUserInput{
		UserID: userID,
		Fields: fields,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User updated successfully")
}

// DeleteUser permanently removes an account and its role profile.
func (h *SuperAdminHandler) DeleteUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	if err := h.uc.DeleteUser(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User deleted successfully")
}
