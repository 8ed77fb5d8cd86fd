package main

import (
	"alcyxob/workout-tracker/internal/api"
	"alcyxob/workout-tracker/internal/cache"
	"alcyxob/workout-tracker/internal/config"
	"alcyxob/workout-tracker/internal/logger"
	"alcyxob/workout-tracker/internal/repository/mongo"
	"alcyxob/workout-tracker/internal/service"
	"alcyxob/workout-tracker/internal/storage"
	"alcyxob/workout-tracker/internal/validation"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

// @title Workout Tracker API
// @version 1.0
// @description API for recording workouts, lift names and a workout in progress.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		// No configured logger yet.
		logger.New(config.LogConfig{}).WithError(err).Fatal("could not load config")
	}
	log := logger.New(cfg.Log)
	log.WithField("address", cfg.Server.Address).Info("starting workout tracker")

	if cfg.JWT.Secret == "" {
		log.Fatal("jwt.secret (JWT_SECRET) must be set")
	}

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.WithError(err).Fatal("could not connect to MongoDB")
	}
	defer func() {
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.WithError(err).Error("failed to disconnect MongoDB")
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)

	// --- Ensure Indexes ---
	go func() { // Run index creation in the background
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		if err := mongo.EnsureIndexes(ctx, appDB); err != nil {
			log.WithError(err).Error("index creation failed")
			return
		}
		log.Info("index creation completed")
	}()

	// --- Redis ---
	redisCtx, cancelRedis := context.WithTimeout(context.Background(), 5*time.Second)
	rdb, err := cache.NewRedisClient(redisCtx, cfg.Redis)
	cancelRedis()
	if err != nil {
		log.WithError(err).Fatal("could not connect to Redis")
	}
	defer func() { _ = rdb.Close() }()

	// --- Initialize Storage ---
	fileStorage, err := storage.NewS3Storage(context.Background(), cfg.S3, log)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize S3 storage")
	}

	// --- Initialize Repositories ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	profileRepo := mongo.NewMongoProfileRepository(appDB)
	workoutRepo := mongo.NewMongoWorkoutRepository(appDB)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, profileRepo, cache.NewRedisTokenDenylist(rdb), cfg.JWT.Secret, cfg.JWT.Expiration)
	profileService := service.NewProfileService(profileRepo, fileStorage, log)
	workoutService := service.NewWorkoutService(workoutRepo, profileRepo, log)
	sessionService := service.NewSessionService(profileService, workoutRepo)
	draftService := service.NewDraftService(cache.NewRedisDraftStore(rdb, cfg.Drafts.TTL), workoutService, log)

	// --- Initialize Gin Engine ---
	gin.SetMode(cfg.Server.Mode)
	validation.Init()
	router, err := api.NewRouter(cfg.Server.TrustedProxyList())
	if err != nil {
		log.WithError(err).Fatal("invalid server configuration")
	}

	api.SetupRoutes(router, api.Services{
		Auth:    authService,
		Profile: profileService,
		Workout: workoutService,
		Session: sessionService,
		Draft:   draftService,
	}, log, api.RouterOptions{
		CORSOrigins:   cfg.Server.CORSOriginList(),
		AuthLimiter:   cache.NewRedisRateLimiter(rdb, cfg.RateLimit.Window),
		AuthRateLimit: cfg.RateLimit.Requests,
	})

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("ListenAndServe error")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.WithError(err).Error("server forced to shutdown")
	}
	log.Info("server exited")
}
