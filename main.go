package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"turfdesk/config"
	"turfdesk/cron"
	"turfdesk/handlers"
	"turfdesk/middleware"
	"turfdesk/routes"
	"turfdesk/services/auth"
	"turfdesk/services/booking"
	"turfdesk/services/dashboard"
	"turfdesk/services/session"
	"turfdesk/services/upstream"
	"turfdesk/services/venue"
	"turfdesk/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionStore()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Upstream client and session store.
	upstreamClient := upstream.NewClient()
	sessionStore := session.NewStore(utils.GetSessionClient(), utils.GetCacheClient())

	// services.
	authService := &auth.DefaultAuthService{
		Upstream: upstreamClient,
		Sessions: sessionStore,
	}
	venueService := &venue.DefaultVenueService{
		Upstream: upstreamClient,
		Sessions: sessionStore,
	}
	dashboardService := &dashboard.DefaultDashboardService{
		Upstream: upstreamClient,
	}
	bookingService := &booking.DefaultOfflineBookingService{
		Upstream: upstreamClient,
		Venues:   venueService,
	}

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(authService, dashboardService, bookingService, venueService)
	routes.RegisterRoutes(router, handlerBundle, sessionStore)

	// Background snapshot refresher.
	cron.InitSnapshotWorker(sessionStore, venueService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
