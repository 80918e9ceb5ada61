// File: slotwise/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slotwise/config"
	"slotwise/database"
	contactRepoPkg "slotwise/database/repository/contact"
	meetingRepoPkg "slotwise/database/repository/meeting"
	scheduleRepoPkg "slotwise/database/repository/schedule"
	userRepoPkg "slotwise/database/repository/user"
	"slotwise/handlers"
	"slotwise/middleware"
	"slotwise/routes"
	"slotwise/services/contact"
	"slotwise/services/meeting"
	"slotwise/services/schedule"
	"slotwise/services/user"
	"slotwise/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	schedRepo := scheduleRepoPkg.NewMongoScheduleRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	meetingRepo := meetingRepoPkg.NewMongoMeetingRepo()
	contactRepo := contactRepoPkg.NewMongoContactRepo()

	// services.
	scheduleService := schedule.NewScheduleService(schedRepo)
	userService := &user.DefaultUserService{
		Repo:     userRepo,
		Schedule: scheduleService,
		Meetings: meetingRepo,
		Contacts: contactRepo,
	}
	meetingService := &meeting.DefaultMeetingService{
		Repo:     meetingRepo,
		Users:    userService,
		Schedule: scheduleService,
	}
	contactService := &contact.DefaultContactService{
		Repo:  contactRepo,
		Users: userService,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Auth:     handlers.NewAuthHandler(userService),
		Schedule: handlers.NewScheduleHandler(scheduleService, userService),
		Meeting:  handlers.NewMeetingHandler(meetingService),
		Contact:  handlers.NewContactHandler(contactService),
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

	logger.Sugar().Info("main: server stopped gracefully")
}
