package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"turfdesk/handlers"
	"turfdesk/middleware"
	"turfdesk/services/session"
)

// RegisterAuthRoutes registers the sign-in, signup and password recovery endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle, store *session.Store) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.LoginHandler)
		api.POST("/signup", hb.SignupHandler)
		api.POST("/forget-password", hb.ForgotPasswordHandler)
		api.POST("/reset-password", hb.ResetPasswordHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.AuthMiddleware(store))
		api.POST("/register-venue", hb.RegisterVenueHandler)
		api.POST("/logout", hb.LogoutHandler)
	}
}

// RegisterDashboardRoutes registers the overview and export endpoints.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle, store *session.Store) {
	api := r.Group("/api/dashboard")
	{
		api.Use(middleware.AuthMiddleware(store))
		api.GET("/overview", hb.DashboardHandler)
		api.GET("/export", hb.ExportBookingsHandler)
	}
}

// RegisterBookingRoutes registers the walk-in booking wizard endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle, store *session.Store) {
	api := r.Group("/api/booking")
	{
		api.Use(middleware.AuthMiddleware(store))
		api.GET("/slots", hb.AvailabilityGridHandler)
		api.POST("/check", hb.CheckAvailabilityHandler)
		api.POST("/offline", hb.ConfirmBookingHandler)
		api.GET("/guest-history", hb.GuestHistoryHandler)
	}
}

// RegisterVenueRoutes registers venue management endpoints.
func RegisterVenueRoutes(r *gin.Engine, hb *handlers.HandlerBundle, store *session.Store) {
	api := r.Group("/api/venue")
	{
		api.Use(middleware.AuthMiddleware(store))
		api.GET("", hb.VenueHandler)
		api.PUT("/details", hb.UpdateVenueHandler)
		api.PUT("/court", hb.UpdateCourtHandler)
		api.PUT("/hours", hb.UpdateHoursHandler)
		api.DELETE("", hb.DeleteVenueHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm TurfDesk"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, store *session.Store) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb, store)
	RegisterDashboardRoutes(r, hb, store)
	RegisterBookingRoutes(r, hb, store)
	RegisterVenueRoutes(r, hb, store)
}
