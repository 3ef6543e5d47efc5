// File: mediq/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mediq/config"
	"mediq/database"
	auditRepo "mediq/database/repository/audit"
	doctorRepo "mediq/database/repository/doctor"
	scheduleRepo "mediq/database/repository/schedule"
	"mediq/handlers"
	"mediq/middleware"
	"mediq/routes"
	"mediq/services/availability"
	"mediq/services/booking"
	"mediq/services/schedule"
	"mediq/utils"

	"github.com/gin-gonic/gin"
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
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	doctors := doctorRepo.NewMongoDoctorRepo()
	schedules := scheduleRepo.NewMongoScheduleRepo()
	audits := auditRepo.NewMongoAuditRepo()

	if err := doctors.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure doctor indexes: %v", err)
	}
	if err := schedules.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure schedule indexes: %v", err)
	}

	cacheTTL := time.Duration(config.AppConfig.AvailabilityCacheTTL) * time.Second
	cache := utils.NewRedisCache(utils.GetCacheClient(), cacheTTL)

	// services.
	availabilityService := &availability.DefaultAvailabilityService{
		Schedules: schedules,
		Doctors:   doctors,
		Cache:     cache,
		CacheTTL:  cacheTTL,
	}
	scheduleService := &schedule.DefaultScheduleService{
		Repo:    schedules,
		Doctors: doctors,
		Cache:   cache,
	}
	bookingService := &booking.DefaultBookingService{
		Schedules: schedules,
		Doctors:   doctors,
		Audit:     audits,
		Cache:     cache,
	}

	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	doctorHandler := handlers.NewDoctorHandler(doctors)
	healthHandler := handlers.NewHealthHandler(database.MongoClient, utils.GetCacheClient())

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		CreateDayHandler:    scheduleHandler.CreateDayHandler,
		ListByDoctorHandler: scheduleHandler.ListByDoctorHandler,
		GetDayHandler:       scheduleHandler.GetDayHandler,
		DeleteDayHandler:    scheduleHandler.DeleteDayHandler,

		GetDoctorAvailabilityHandler:    availabilityHandler.GetDoctorAvailabilityHandler,
		GetSpecialtyAvailabilityHandler: availabilityHandler.GetSpecialtyAvailabilityHandler,

		ToggleSlotHandler: bookingHandler.ToggleSlotHandler,

		GetDoctorByIDHandler:         doctorHandler.GetDoctorByIDHandler,
		GetDoctorsBySpecialtyHandler: doctorHandler.GetDoctorsBySpecialtyHandler,

		HealthHandler: healthHandler.HealthHandler,
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
