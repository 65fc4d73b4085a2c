package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Leganyst/barbershop-booking/internal/auth"
	"github.com/Leganyst/barbershop-booking/internal/config"
	"github.com/Leganyst/barbershop-booking/internal/handler"
	"github.com/Leganyst/barbershop-booking/internal/middleware"
	"github.com/Leganyst/barbershop-booking/internal/model"
	"github.com/Leganyst/barbershop-booking/internal/repository"
)

// Handlers — все обработчики API.
type Handlers struct {
	Auth    *handler.AuthHandler
	Profile *handler.ProfileHandler
	Barber  *handler.BarberHandler
	Booking *handler.BookingHandler
	Company *handler.CompanyHandler
}

// New собирает gin-роутер: общие middleware, публичные и защищённые группы.
func New(
	cfg *config.Config,
	logger *zap.Logger,
	issuer *auth.TokenIssuer,
	users repository.UserRepository,
	h Handlers,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RateLimit(cfg.RateLimitPerMin, logger))
	r.Use(cors.Default())

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
	}

	authed := api.Group("")
	authed.Use(middleware.JWTAuth(issuer, users))
	{
		authed.GET("/profile", h.Profile.Get)
		authed.PATCH("/profile", h.Profile.Update)

		authed.GET("/barbers", h.Barber.List)
		authed.GET("/barbers/:id/availability", h.Barber.Availability)

		authed.POST("/bookings", h.Booking.Create)
		authed.GET("/bookings", h.Booking.List)
		authed.GET("/bookings/:id", h.Booking.Get)
		authed.PATCH("/bookings/:id", h.Booking.Update)
		authed.DELETE("/bookings/:id", h.Booking.Cancel)

		authed.GET("/companies", h.Company.List)
		authed.GET("/companies/:id", h.Company.Get)
	}

	admin := api.Group("")
	admin.Use(middleware.JWTAuth(issuer, users), middleware.RequireRole(model.UserRoleAdmin))
	{
		admin.PUT("/barbers/:id/working-hours", h.Barber.SetWorkingHours)
		admin.POST("/companies", h.Company.Create)
		admin.PATCH("/companies/:id", h.Company.Update)
	}

	return r
}
