package api

import (
	"alcyxob/workout-tracker/internal/cache"
	"alcyxob/workout-tracker/internal/service"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Constants for context keys
const (
	ContextUserIDKey    = "userID"
	ContextClaimsKey    = "claims"
	ContextRequestIDKey = "requestID"
)

const requestIDHeader = "X-Request-ID"

// AuthMiddleware creates a Gin middleware for JWT authentication.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, http.StatusUnauthorized, "Authorization header is missing")
			return
		}

		// Expecting "Bearer <token>"
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			abortWithError(c, http.StatusUnauthorized, "Authorization header format must be Bearer {token}")
			return
		}

		claims, err := authService.Authenticate(c.Request.Context(), parts[1])
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenExpired):
				abortWithError(c, http.StatusUnauthorized, "Token has expired")
			case errors.Is(err, service.ErrTokenRevoked):
				abortWithError(c, http.StatusUnauthorized, "Token has been revoked")
			case errors.Is(err, service.ErrInvalidToken):
				abortWithError(c, http.StatusUnauthorized, "Invalid token")
			default:
				_ = c.Error(err)
				abortWithError(c, http.StatusInternalServerError, "Could not verify token")
			}
			return
		}

		// Set user information in the context for downstream handlers
		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextClaimsKey, claims)
		c.Next()
	}
}

// RequestIDMiddleware tags every request with an ID, reusing the caller's
// X-Request-ID when present.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Set(ContextRequestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// LoggerMiddleware writes one structured line per request. Errors attached
// with c.Error are included so 5xx responses can be traced.
func LoggerMiddleware(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		status := c.Writer.Status()
		entry := log.WithFields(logrus.Fields{
			"requestId": c.GetString(ContextRequestIDKey),
			"method":    c.Request.Method,
			"path":      path,
			"status":    status,
			"latency":   time.Since(start).String(),
			"clientIp":  c.ClientIP(),
		})
		if uid := c.GetString(ContextUserIDKey); uid != "" {
			entry = entry.WithField("userId", uid)
		}
		if len(c.Errors) > 0 {
			entry = entry.WithField("error", c.Errors.String())
		}

		switch {
		case status >= http.StatusInternalServerError:
			entry.Error("request failed")
		case status >= http.StatusBadRequest:
			entry.Warn("request rejected")
		default:
			entry.Info("request handled")
		}
	}
}

// RateLimitMiddleware caps requests per client IP and route. A nil limiter or
// a non-positive max disables it; limiter errors let the request through.
func RateLimitMiddleware(limiter cache.RateLimiter, max int) gin.HandlerFunc {
	if limiter == nil || max <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}
		count, reset, err := limiter.Hit(c.Request.Context(), c.FullPath()+":"+ip)
		if err != nil {
			_ = c.Error(err)
			c.Next()
			return
		}

		remaining := int64(max) - count
		if remaining < 0 {
			remaining = 0
		}
		resetSec := strconv.Itoa(int(reset.Round(time.Second).Seconds()))
		c.Header("X-RateLimit-Limit", strconv.Itoa(max))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		c.Header("X-RateLimit-Reset", resetSec)

		if count > int64(max) {
			c.Header("Retry-After", resetSec)
			abortWithError(c, http.StatusTooManyRequests, "Too many requests, please try again later")
			return
		}
		c.Next()
	}
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// abortWithDetails is abortWithError plus per-field messages.
func abortWithDetails(c *gin.Context, code int, message string, details map[string]string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message, "details": details})
}

// Helper function to get User ID from context (used by handlers)
func getUserIDFromContext(c *gin.Context) (primitive.ObjectID, error) {
	idStr := c.GetString(ContextUserIDKey)
	if idStr == "" {
		return primitive.NilObjectID, errors.New("user ID not found in context")
	}
	return primitive.ObjectIDFromHex(idStr)
}

func getClaimsFromContext(c *gin.Context) (*service.Claims, error) {
	raw, exists := c.Get(ContextClaimsKey)
	if !exists {
		return nil, errors.New("claims not found in context")
	}
	claims, ok := raw.(*service.Claims)
	if !ok {
		return nil, errors.New("invalid claims type in context")
	}
	return claims, nil
}

// requireUserID resolves the caller or aborts with 401.
func requireUserID(c *gin.Context) (primitive.ObjectID, bool) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return primitive.NilObjectID, false
	}
	return userID, true
}
