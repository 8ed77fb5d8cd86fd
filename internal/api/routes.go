package api

import (
	"alcyxob/workout-tracker/internal/cache"
	"alcyxob/workout-tracker/internal/service"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Services groups what the handlers depend on.
type Services struct {
	Auth    service.AuthService
	Profile service.ProfileService
	Workout service.WorkoutService
	Session service.SessionService
	Draft   service.DraftService
}

// RouterOptions carries the HTTP-level settings.
type RouterOptions struct {
	CORSOrigins []string
	// AuthLimiter and AuthRateLimit cap register/login attempts per client IP.
	AuthLimiter   cache.RateLimiter
	AuthRateLimit int
}

// NewRouter builds the engine with panic recovery. Forwarded headers are only
// believed from trustedProxies; with none, ClientIP is the peer address.
func NewRouter(trustedProxies []string) (*gin.Engine, error) {
	router := gin.New()
	router.Use(gin.Recovery())
	if err := router.SetTrustedProxies(trustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	return router, nil
}

// SetupRoutes installs the global middleware and every API route on router.
func SetupRoutes(router *gin.Engine, svc Services, log logrus.FieldLogger, opts RouterOptions) {
	router.Use(RequestIDMiddleware(), LoggerMiddleware(log))
	if len(opts.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     opts.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", requestIDHeader},
			ExposeHeaders:    []string{"Content-Length", requestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	authHandler := NewAuthHandler(svc.Auth, svc.Profile)
	profileHandler := NewProfileHandler(svc.Profile)
	workoutHandler := NewWorkoutHandler(svc.Workout)
	sessionHandler := NewSessionHandler(svc.Session)
	draftHandler := NewDraftHandler(svc.Draft)

	authMiddleware := AuthMiddleware(svc.Auth)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			limited := authGroup.Group("", RateLimitMiddleware(opts.AuthLimiter, opts.AuthRateLimit))
			limited.POST("/register", authHandler.Register)
			limited.POST("/login", authHandler.Login)
			authGroup.POST("/logout", authMiddleware, authHandler.Logout)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", authHandler.Me)
		protected.GET("/session", sessionHandler.GetSession)

		profileGroup := protected.Group("/profile")
		{
			profileGroup.GET("", profileHandler.GetProfile)
			profileGroup.PATCH("", profileHandler.UpdateProfile)
			profileGroup.POST("/photo/upload-url", profileHandler.RequestPhotoUploadURL)
			profileGroup.PUT("/photo", profileHandler.ConfirmPhoto)
		}

		// /names/lifts and /names/workouts
		nameGroup := protected.Group("/names/:kind")
		{
			nameGroup.POST("", profileHandler.AddName)
			nameGroup.PUT("/:id", profileHandler.RenameName)
			nameGroup.DELETE("/:id", profileHandler.DeleteName)
		}

		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.GET("", workoutHandler.ListWorkouts)
			workoutGroup.POST("", workoutHandler.CreateWorkout)
			workoutGroup.GET("/:workoutId", workoutHandler.GetWorkout)
			workoutGroup.PUT("/:workoutId", workoutHandler.UpdateWorkout)
			workoutGroup.DELETE("/:workoutId", workoutHandler.DeleteWorkout)
		}

		draftGroup := protected.Group("/draft")
		{
			draftGroup.GET("", draftHandler.GetDraft)
			draftGroup.PUT("", draftHandler.SaveDraft)
			draftGroup.DELETE("", draftHandler.ClearDraft)
			draftGroup.POST("/commit", draftHandler.CommitDraft)
		}
	}
}
