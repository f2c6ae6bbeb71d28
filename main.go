package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"turnero/config"
	"turnero/cron"
	"turnero/database"
	appointmentRepo "turnero/database/repository/appointment"
	tenantRepo "turnero/database/repository/tenant"
	"turnero/handlers"
	"turnero/middleware"
	"turnero/routes"
	"turnero/services/booking"
	"turnero/services/dedupe"
	"turnero/services/events"
	ai "turnero/services/intelligence"
	"turnero/services/reservation"
	"turnero/services/session"
	"turnero/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
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
	tenants := tenantRepo.NewMongoTenantRepo()
	appointments := appointmentRepo.NewMongoAppointmentRepo()

	// stores.
	sessionStore := session.NewRedisStore(
		utils.GetSessionCacheClient(),
		time.Duration(config.AppConfig.SessionTTLMinutes)*time.Minute,
	)
	reservationStore := reservation.NewRedisStore(utils.GetReservationCacheClient())
	dedupeGuard := dedupe.NewRedisGuard(
		utils.GetDedupeCacheClient(),
		time.Duration(config.AppConfig.DedupeTTLSeconds)*time.Second,
	)

	// AI router: Gemini when a key is configured, keyword matching otherwise.
	var intentRouter ai.Router
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		gem, err := ai.NewGeminiRouter(key, time.Duration(config.AppConfig.AITimeoutSeconds)*time.Second)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize gemini router: %v", err)
		}
		intentRouter = gem
	} else {
		logger.Sugar().Warn("main: GEMINI_API_KEY not set, using heuristic intent router")
		intentRouter = ai.NewHeuristicRouter()
	}

	// Event pipeline: confirmed bookings go through the queue to Mongo.
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()
	publisher := events.NewAsynqPublisher(queueClient)
	cron.InitBookingWorker(appointments)

	engine := booking.NewEngine(sessionStore, reservationStore, intentRouter, publisher, booking.EngineConfig{
		HorizonDays:  config.AppConfig.SlotHorizonDays,
		Hours:        config.AppConfig.SlotHours,
		OfferCount:   config.AppConfig.SlotOfferCount,
		StoreTimeout: time.Duration(config.AppConfig.StoreTimeoutMS) * time.Millisecond,
		AITimeout:    time.Duration(config.AppConfig.AITimeoutSeconds) * time.Second,
	})

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Webhook: handlers.NewWebhookHandler(engine, tenants, dedupeGuard),
		Chat:    handlers.NewChatHandler(engine, tenants),
		Admin:   handlers.NewAdminHandler(tenants, appointments),
	}

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
