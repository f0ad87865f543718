// File: meetsync/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meetsync/config"
	"meetsync/database"
	meetingRepoPkg "meetsync/database/repository/meeting"
	notificationRepoPkg "meetsync/database/repository/notification"
	"meetsync/handlers"
	"meetsync/middleware"
	"meetsync/routes"
	"meetsync/services/availability"
	"meetsync/services/meeting"
	"meetsync/services/notification"
	"meetsync/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	mongoClient, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	cacheClient, err := database.NewCacheClient(
		config.AppConfig.RedisAddr,
		config.AppConfig.RedisPassword,
		config.AppConfig.RedisCacheDB,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to Redis: %v", err)
	}
	utils.StartHealthMonitor(cacheClient, mongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	meetingRepo := meetingRepoPkg.NewMongoMeetingRepo(mongoClient, config.AppConfig.DatabaseName)
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo(mongoClient, config.AppConfig.DatabaseName)

	// services.
	availabilityService := &availability.DefaultAvailabilityService{
		MeetingRepo: meetingRepo,
		Cache:       cacheClient,
		CacheTTL:    time.Duration(config.AppConfig.AvailabilityCacheTTL) * time.Second,
	}
	meetingService := &meeting.DefaultMeetingService{
		Repo:         meetingRepo,
		Availability: availabilityService,
	}
	notificationService := &notification.DefaultNotificationService{
		Repo: notificationRepo,
	}

	meetingHandler := handlers.NewMeetingHandler(meetingService, logger)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService, logger)
	notificationHandler := handlers.NewNotificationHandler(notificationService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Meeting endpoints.
		ListMeetingsHandler:  meetingHandler.ListMeetings,
		GetMeetingHandler:    meetingHandler.GetMeeting,
		CreateMeetingHandler: meetingHandler.CreateMeeting,
		UpdateMeetingHandler: meetingHandler.UpdateMeeting,
		DeleteMeetingHandler: meetingHandler.DeleteMeeting,

		// Availability endpoint.
		GetAvailabilityHandler: availabilityHandler.GetAvailability,

		// Notification endpoints.
		GetNotificationsHandler:         notificationHandler.GetNotifications,
		MarkNotificationReadHandler:     notificationHandler.MarkAsRead,
		MarkAllNotificationsReadHandler: notificationHandler.MarkAllAsRead,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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

	if err := cacheClient.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close Redis client: %v", err)
	}
	if err := database.Disconnect(mongoClient); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect MongoDB client: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
