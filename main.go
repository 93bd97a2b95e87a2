// File: dhara/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dhara/config"
	"dhara/cron"
	"dhara/database"
	appointmentRepo "dhara/database/repository/appointment"
	availabilityRepo "dhara/database/repository/availability"
	"dhara/handlers"
	"dhara/middleware"
	"dhara/routes"
	"dhara/services/calendar"
	"dhara/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	utils.SetSigningSecret(config.AppConfig.JWTSecret)

	database.InitDB()
	utils.InitRedis()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// repositories.
	db := database.GetDatabase()
	slotRepo := availabilityRepo.NewMongoAvailabilityRepo(db)
	apptRepo := appointmentRepo.NewMongoAppointmentRepo(db)
	if err := slotRepo.EnsureIndexes(ctx); err != nil {
		logger.Warn("main: availability indexes", zap.Error(err))
	}
	if err := apptRepo.EnsureIndexes(ctx); err != nil {
		logger.Warn("main: appointment indexes", zap.Error(err))
	}

	// services.
	metrics := calendar.NewMetrics(prometheus.DefaultRegisterer)
	calendarService := &calendar.DefaultCalendarService{
		Slots:        slotRepo,
		Appointments: apptRepo,
		Cache:        calendar.NewRedisViewCache(utils.GetCacheClient()),
		CacheTTL:     config.AppConfig.CalendarCacheTTL,
		Metrics:      metrics,
		Logger:       logger.Named("calendar"),
		WeekStartsOn: config.CalendarDefaults().WeekStartsOn,
	}

	calendarHandler := handlers.NewCalendarHandler(calendarService, config.CalendarDefaults())
	availabilityHandler := handlers.NewAvailabilityHandler(calendarService)
	appointmentHandler := handlers.NewAppointmentHandler(calendarService)

	handlerBundle := &handlers.HandlerBundle{
		AuthCache: utils.GetAuthCacheClient(),

		GetCalendarHandler:    calendarHandler.GetCalendarHandler,
		ExportCalendarHandler: calendarHandler.ExportCalendarHandler,

		ListSlotsHandler:  availabilityHandler.ListSlotsHandler,
		CreateSlotHandler: availabilityHandler.CreateSlotHandler,
		UpdateSlotHandler: availabilityHandler.UpdateSlotHandler,
		DeleteSlotHandler: availabilityHandler.DeleteSlotHandler,

		ListAppointmentsHandler:        appointmentHandler.ListAppointmentsHandler,
		UpdateAppointmentStatusHandler: appointmentHandler.UpdateAppointmentStatusHandler,

		RevokeTokenHandler: handlers.RevokeTokenHandler(utils.GetAuthCacheClient()),
	}

	// Create the Gin router.
	router := gin.New()
	if err := router.SetTrustedProxies(config.AppConfig.TrustedProxies); err != nil {
		logger.Sugar().Fatalf("main: invalid TRUSTED_PROXIES: %v", err)
	}
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(ctx, []*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()}, database.MongoClient)

	if spec := config.AppConfig.OccupancySnapshotSchedule; spec != "" {
		scheduler, err := cron.StartOccupancyJob(ctx, spec, &cron.OccupancyJob{
			Calendar:     calendarService,
			Appointments: apptRepo,
			Metrics:      metrics,
			Options:      config.CalendarDefaults(),
			Logger:       logger.Named("cron"),
		})
		if err != nil {
			logger.Sugar().Fatalf("main: invalid occupancy schedule %q: %v", spec, err)
		}
		defer scheduler.Stop()
	}

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
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
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := database.Disconnect(shutdownCtx); err != nil {
		logger.Warn("main: mongo disconnect", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
