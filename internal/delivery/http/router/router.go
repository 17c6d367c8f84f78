// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tripdesk/internal/delivery/http/middleware"
	"tripdesk/internal/delivery/http/router/handler"
	"tripdesk/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler        *handler.UserHandler
	SuperAdminHandler  *handler.SuperAdminHandler
	BookingHandler     *handler.BookingHandler
	DishHandler        *handler.DishHandler
	ProductHandler     *handler.ProductHandler
	TaskHandler        *handler.TaskHandler
	ReviewHandler      *handler.ReviewHandler
	ReservationHandler *handler.ReservationHandler
	PartnerHandler     *handler.PartnerHandler
	PlaceHandler       *handler.PlaceHandler
	UploadHandler      *handler.UploadHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	user        *handler.UserHandler
	superAdmin  *handler.SuperAdminHandler
	booking     *handler.BookingHandler
	dish        *handler.DishHandler
	product     *handler.ProductHandler
	task        *handler.TaskHandler
	review      *handler.ReviewHandler
	reservation *handler.ReservationHandler
	partner     *handler.PartnerHandler
	place       *handler.PlaceHandler
	upload      *handler.UploadHandler
	auth        *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		user:        params.UserHandler,
		superAdmin:  params.SuperAdminHandler,
		booking:     params.BookingHandler,
		dish:        params.DishHandler,
		product:     params.ProductHandler,
		task:        params.TaskHandler,
		review:      params.ReviewHandler,
		reservation: params.ReservationHandler,
		partner:     params.PartnerHandler,
		place:       params.PlaceHandler,
		upload:      params.UploadHandler,
		auth:        params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/api/auth")
	{
		authGroup.POST("/login", r.user.Login)
		authGroup.GET("/profile", r.user.GetProfile, r.auth.Authenticate)
	}

	// Administrative routes; signup itself is open, everything else is
	// restricted to the SuperAdmin
	adminGroup := e.Group("/api/superadmin")
	{
		adminGroup.POST("/signup", r.superAdmin.Signup)

		registrationGroup := adminGroup.Group("/registrations")
		registrationGroup.Use(r.auth.Authenticate)
		registrationGroup.Use(r.auth.RequireRole(entity.RoleSuperAdmin))
		{
			registrationGroup.GET("/pending", r.superAdmin.ListPendingUsers)
			registrationGroup.GET("/approved", r.superAdmin.ListApprovedUsers)
			registrationGroup.POST("/review", r.superAdmin.ReviewRegistration)
		}
	}

	// Account administration
	userGroup := e.Group("/api/user")
	userGroup.Use(r.auth.Authenticate)
	userGroup.Use(r.auth.RequireRole(entity.RoleSuperAdmin))
	{
		userGroup.GET("", r.superAdmin.ListUsers)
		userGroup.PUT("/:id", r.superAdmin.UpdateUser)
		userGroup.DELETE("/:id", r.superAdmin.DeleteUser)
	}

	// Agent routes
	agentGroup := e.Group("/api/agent")
	{
		agentGroup.POST("/register", r.user.Register(entity.RoleAgent))
		agentGroup.GET("/profile", r.user.GetProfile,
			r.auth.Authenticate, r.auth.RequireRole(entity.RoleAgent))
	}

	// Partner routes: open registration and public browse
	restaurantGroup := e.Group("/api/restaurant")
	{
		restaurantGroup.POST("", r.user.Register(entity.RoleRestaurant))
		restaurantGroup.GET("", r.partner.ListRestaurants)
		restaurantGroup.GET("/:id", r.partner.GetRestaurant)
	}
	shopGroup := e.Group("/api/shop")
	{
		shopGroup.POST("", r.user.Register(entity.RoleShop))
		shopGroup.GET("", r.partner.ListShops)
		shopGroup.GET("/:id", r.partner.GetShop)
	}
	activityGroup := e.Group("/api/activities")
	{
		activityGroup.POST("", r.user.Register(entity.RoleActivity))
		activityGroup.GET("", r.partner.ListActivities)
		activityGroup.GET("/:id", r.partner.GetActivity)
	}

	// Booking routes: anonymous verification, token-scoped customer views and
	// agent-only management
	bookingGroup := e.Group("/api/booking")
	{
		bookingGroup.POST("/verify", r.booking.Verify)
		bookingGroup.POST("/verify-qr", r.booking.VerifyQR)
		bookingGroup.GET("/profile", r.booking.GetProfile,
			r.auth.Authenticate, r.auth.RequireBooking)

		agentOwnedGroup := bookingGroup.Group("")
		agentOwnedGroup.Use(r.auth.Authenticate)
		{
			agentOwnedGroup.GET("", r.booking.List)

			mutationGroup := agentOwnedGroup.Group("")
			mutationGroup.Use(r.auth.RequireRole(entity.RoleAgent))
			{
				mutationGroup.POST("/create", r.booking.Create)
				mutationGroup.PUT("/:id", r.booking.Update)
				mutationGroup.DELETE("/:id", r.booking.Delete)
				mutationGroup.GET("/:id/qr", r.booking.GenerateQR)
			}
		}
	}

	// Restaurant menu routes: public reads, owner-only mutations
	dishGroup := e.Group("/api/dish")
	{
		dishGroup.GET("", r.dish.List)
		dishGroup.GET("/:id", r.dish.Get)

		dishOwnerGroup := dishGroup.Group("")
		dishOwnerGroup.Use(r.auth.Authenticate)
		dishOwnerGroup.Use(r.auth.RequireRole(entity.RoleRestaurant))
		{
			dishOwnerGroup.POST("", r.dish.Create)
			dishOwnerGroup.PUT("/:id", r.dish.Update)
			dishOwnerGroup.DELETE("/:id", r.dish.Delete)
		}
	}

	// Shop catalog routes: public reads, owner-only mutations
	productGroup := e.Group("/api/product")
	{
		productGroup.GET("", r.product.List)
		productGroup.GET("/:id", r.product.Get)

		productOwnerGroup := productGroup.Group("")
		productOwnerGroup.Use(r.auth.Authenticate)
		productOwnerGroup.Use(r.auth.RequireRole(entity.RoleShop))
		{
			productOwnerGroup.POST("", r.product.Create)
			productOwnerGroup.PUT("/:id", r.product.Update)
			productOwnerGroup.DELETE("/:id", r.product.Delete)
		}
	}

	// Activity task routes: public reads, owner-only mutations
	taskGroup := e.Group("/api/task")
	{
		taskGroup.GET("", r.task.List)
		taskGroup.GET("/:id", r.task.Get)

		taskOwnerGroup := taskGroup.Group("")
		taskOwnerGroup.Use(r.auth.Authenticate)
		taskOwnerGroup.Use(r.auth.RequireRole(entity.RoleActivity))
		{
			taskOwnerGroup.POST("", r.task.Create)
			taskOwnerGroup.PUT("/:id", r.task.Update)
			taskOwnerGroup.DELETE("/:id", r.task.Delete)
		}
	}

	// Review routes: verified customers write, public listing, admin moderation
	reviewGroup := e.Group("/api/review")
	{
		reviewGroup.POST("", r.review.Create,
			r.auth.Authenticate, r.auth.RequireBooking)
		reviewGroup.GET("/business/:business_id/:business_type", r.review.ListForBusiness)
		reviewGroup.DELETE("/:review_id", r.review.Delete,
			r.auth.Authenticate, r.auth.RequireRole(entity.RoleSuperAdmin))
	}

	// Reservation routes: verified customers book and list, reservable
	// business roles manage their own book
	reservationGroup := e.Group("/api/reservation")
	reservationGroup.Use(r.auth.Authenticate)
	{
		reservationGroup.POST("/book", r.reservation.Book, r.auth.RequireBooking)
		reservationGroup.GET("", r.reservation.ListByBooking, r.auth.RequireBooking)

		businessGroup := reservationGroup.Group("")
		businessGroup.Use(r.auth.RequireRole(entity.RoleRestaurant, entity.RoleActivity))
		{
			businessGroup.GET("/business/:business_id/:type", r.reservation.ListForBusiness)
			businessGroup.PUT("/:reservation_id", r.reservation.Update)
			businessGroup.DELETE("/:reservation_id", r.reservation.Cancel)
		}
	}

	// Reference data: public reads, SuperAdmin mutations
	adminOnly := []echo.MiddlewareFunc{r.auth.Authenticate, r.auth.RequireRole(entity.RoleSuperAdmin)}

	locationGroup := e.Group("/api/location")
	{
		locationGroup.GET("", r.place.ListLocations)
		locationGroup.GET("/dropdown/list", r.place.ListLocationOptions)
		locationGroup.GET("/:id", r.place.GetLocation)
		locationGroup.POST("", r.place.CreateLocation, adminOnly...)
		locationGroup.PUT("/:id", r.place.UpdateLocation, adminOnly...)
		locationGroup.DELETE("/:id", r.place.DeleteLocation, adminOnly...)
	}
	destinationGroup := e.Group("/api/destination")
	{
		destinationGroup.GET("", r.place.ListDestinations)
		destinationGroup.GET("/:location_id", r.place.ListDestinations)
		destinationGroup.GET("/detail/:id", r.place.GetDestination)
		destinationGroup.POST("", r.place.CreateDestination, adminOnly...)
		destinationGroup.PUT("/:id", r.place.UpdateDestination, adminOnly...)
		destinationGroup.DELETE("/:id", r.place.DeleteDestination, adminOnly...)
	}
	thingsGroup := e.Group("/api/things-to-carry")
	{
		thingsGroup.GET("/:location_id", r.place.ListThingsToCarry)
		thingsGroup.POST("", r.place.CreateThingToCarry, adminOnly...)
		thingsGroup.PUT("/:id", r.place.UpdateThingToCarry, adminOnly...)
		thingsGroup.DELETE("/:id", r.place.DeleteThingToCarry, adminOnly...)
	}

	// Upload passthrough for authenticated actors
	uploadGroup := e.Group("/api/upload")
	uploadGroup.Use(r.auth.Authenticate)
	{
		uploadGroup.POST("/single", r.upload.UploadFile)
		uploadGroup.POST("/multiple", r.upload.UploadFiles)
	}
}
