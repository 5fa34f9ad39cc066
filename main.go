// File: courtside/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"courtside/config"
	"courtside/cron"
	"courtside/database"
	bookingRepoPkg "courtside/database/repository/booking"
	courtRepoPkg "courtside/database/repository/court"
	"courtside/handlers"
	"courtside/routes"
	"courtside/services/booking"
	"courtside/services/payment"
	"courtside/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	courtRepo := courtRepoPkg.NewMongoCourtRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	stripeProcessor := payment.NewStripeProcessor(config.AppConfig.StripeKey, config.AppConfig.Currency)
	bookingService := &booking.DefaultBookingService{
		CourtRepo:   courtRepo,
		BookingRepo: bookingRepo,
		Payments:    stripeProcessor,
		CacheClient: utils.GetCacheClient(),
		Locks:       booking.NewCourtLocks(),
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Booking:      handlers.NewBookingHandler(bookingService),
		Availability: handlers.NewAvailabilityHandler(bookingService),
		Court:        handlers.NewCourtHandler(bookingService),
		Payment:      handlers.NewPaymentHandler(bookingService, config.AppConfig.StripeWebhookSecret),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Background jobs and dependency health.
	cron.InitWorkers(bookingRepo, courtRepo)
	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient()}, database.MongoClient)

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
