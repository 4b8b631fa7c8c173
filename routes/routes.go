package routes

import (
	"time"

	"helpnest/handlers"
	"helpnest/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration, login and self-profile endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)
		api.GET("/user", middleware.AuthMiddleware(hb.AccountRepo), hb.Auth.MeHandler)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints. Creation,
// provider discovery and rating are public; dashboard and status changes
// require an authenticated service provider.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Bookings.CreateBookingHandler)
		api.GET("/available-providers", hb.Bookings.AvailableProvidersHandler)
		api.PUT("/:id/rate", hb.Bookings.RateBookingHandler)
		api.GET("/my-dashboard", middleware.AuthMiddleware(hb.AccountRepo), hb.Bookings.MyDashboardHandler)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(hb.AccountRepo), middleware.RequireServiceProvider())
		protected.PUT("/:id/status", hb.Bookings.UpdateStatusHandler)
		protected.PUT("/profile/availability", hb.Users.AvailabilityHandler)
	}
}

// RegisterUserRoutes registers the public account listing.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.GET("", hb.Users.ListAccountsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/api/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterHealthRoute(r)
}
