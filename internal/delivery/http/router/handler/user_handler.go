// Package handler contains the HTTP handlers for the application.
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

// UserHandler holds dependencies for account registration and login handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: logger}
}

// registerRequest is the union of the identity fields and every role's
// profile fields; the route's role selects which subset becomes the profile.
type registerRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	Password    string `json:"password" validate:"required,min=6"`

	CompanyName string `json:"company_name"`
	Logo        string `json:"logo"`

	LocationID        uuid.UUID            `json:"location_id"`
	BusinessName      string               `json:"business_name"`
	OwnerName         string               `json:"owner_name"`
	ImageURLs         []string             `json:"image_url"`
	LogoURL           string               `json:"logo_url"`
	Address           string               `json:"address"`
	SingleLineAddress string               `json:"single_line_address"`
	City              string               `json:"city"`
	Pincode           string               `json:"pincode"`
	Category          []string             `json:"category"`
	Discount          float64              `json:"discount"`
	BusinessHours     entity.BusinessHours `json:"businessHours"`
	Description       string               `json:"description"`
	MapURL            string               `json:"map_url"`
	CanReserve        bool                 `json:"canReserve"`
	ShopType          string               `json:"shopType"`
	Title             string               `json:"title"`
}

// profile builds the role-specific profile entity from the request payload.
func (r *registerRequest) profile(role entity.Role) entity.Profile {
	switch role {
	case entity.RoleAgent:
		return &entity.AgentProfile{
			CompanyName: r.CompanyName,
			Logo:        r.Logo,
			Address:     r.Address,
			Pincode:     r.Pincode,
			City:        r.City,
		}
	case entity.RoleRestaurant:
		return &entity.RestaurantProfile{
			LocationID:        r.LocationID,
			BusinessName:      r.BusinessName,
			OwnerName:         r.OwnerName,
			ImageURLs:         r.ImageURLs,
			LogoURL:           r.LogoURL,
			Address:           r.Address,
			SingleLineAddress: r.SingleLineAddress,
			City:              r.City,
			Pincode:           r.Pincode,
			Category:          r.Category,
			Discount:          r.Discount,
			BusinessHours:     r.BusinessHours,
			Description:       r.Description,
			MapURL:            r.MapURL,
			CanReserve:        r.CanReserve,
		}
	case entity.RoleShop:
		return &entity.ShopProfile{
			LocationID:        r.LocationID,
			BusinessName:      r.BusinessName,
			OwnerName:         r.OwnerName,
			ImageURLs:         r.ImageURLs,
			LogoURL:           r.LogoURL,
			Address:           r.Address,
			SingleLineAddress: r.SingleLineAddress,
			City:              r.City,
			Pincode:           r.Pincode,
			ShopType:          r.ShopType,
			Discount:          r.Discount,
			BusinessHours:     r.BusinessHours,
			Description:       r.Description,
			MapURL:            r.MapURL,
		}
	case entity.RoleActivity:
		return &entity.ActivityProfile{
			LocationID:        r.LocationID,
			BusinessName:      r.BusinessName,
			OwnerName:         r.OwnerName,
			Address:           r.Address,
			SingleLineAddress: r.SingleLineAddress,
			City:              r.City,
			Pincode:           r.Pincode,
			ImageURLs:         r.ImageURLs,
			LogoURL:           r.LogoURL,
			BusinessHours:     r.BusinessHours,
			Title:             r.Title,
			Description:       r.Description,
		}
	default:
		return nil
	}
}

// Register handles partner and agent registration for the role bound to the
// route. The created account stays pending until a SuperAdmin approves it.
func (h *UserHandler) Register(role entity.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req registerRequest
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
		}

		if err := c.Validate(&req); err != nil {
			return response.ValidationFailed(c, err)
		}

		output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
			Name:        req.Name,
			Email:       req.Email,
			PhoneNumber: req.PhoneNumber,
			Password:    req.Password,
			Profile:     req.profile(role),
		})
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusCreated, output.User, "Registration submitted for approval")
	}
}

// loginRequest carries the credentials for any role's login.
type loginRequest struct {
	Email       string `json:"email" validate:"required_without=PhoneNumber,omitempty,email"`
	PhoneNumber string `json:"phone_number" validate:"required_without=Email"`
	Password    string `json:"password" validate:"required"`
	Role        string `json:"role" validate:"required"`
}

// Login handles the account login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		Role:        req.Role,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// GetProfile returns the authenticated account merged with its role profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	claims, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing principal")
	}

	output, err := h.uc.GetProfile(c.Request().Context(), claims.SubjectID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
