package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"helpnest/config"
	"helpnest/database"
	accountRepoPkg "helpnest/database/repository/account"
	bookingRepoPkg "helpnest/database/repository/booking"
	"helpnest/handlers"
	"helpnest/middleware"
	"helpnest/routes"
	"helpnest/services/account"
	"helpnest/services/booking"
	"helpnest/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	accRepo := accountRepoPkg.NewMongoAccountRepo()
	bkRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	accountService := &account.DefaultAccountService{Repo: accRepo}
	bookingService := &booking.DefaultBookingService{Repo: bkRepo, Accounts: accRepo}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AccountRepo: accRepo,
		Auth:        handlers.NewAuthHandler(accountService),
		Bookings:    handlers.NewBookingHandler(bookingService, logger),
		Users:       handlers.NewUsersHandler(accountService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetAuthCacheClient(), database.MongoClient)

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
