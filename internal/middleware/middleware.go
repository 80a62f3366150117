package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries the per-request correlation ID.
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// RequestIDMiddleware assigns each request a UUID, reusing an inbound
// X-Request-ID when present.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the request's correlation ID, if one was assigned.
func GetRequestID(c *gin.Context) (string, bool) {
	id, ok := c.Get(requestIDKey)
	if !ok {
		return "", false
	}
	s, ok := id.(string)
	return s, ok
}

// LoggerMiddleware logs one line per request with method, path, status,
// latency and the request ID.
func LoggerMiddleware(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		requestID, _ := GetRequestID(c)
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", requestID),
		)
	}
}

// RecoveryMiddleware converts panics into a 500 and logs the panic value.
func RecoveryMiddleware(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				requestID, _ := GetRequestID(c)
				log.Error("panic recovered",
					zap.Any("panic", r),
					zap.String("path", c.Request.URL.Path),
					zap.String("request_id", requestID),
				)
				c.AbortWithStatusJSON(500, gin.H{"success": false, "error": gin.H{
					"kind":    "internal",
					"message": "internal server error",
				}})
			}
		}()
		c.Next()
	}
}

// CORSMiddleware allows cross-origin calls from browser frontends.
func CORSMiddleware() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowHeaders = append(cfg.AllowHeaders, RequestIDHeader)
	return cors.New(cfg)
}

// SecurityHeadersMiddleware sets conservative security headers on every
// response.
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		c.Next()
	}
}
