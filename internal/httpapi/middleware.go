package httpapi

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/xid"
)

// RequestIDHeader carries the per-request id in both directions
const RequestIDHeader = "X-Request-ID"

// requestID reuses an incoming X-Request-ID or assigns a new one
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = xid.New().String()
		}
		c.Set(RequestIDHeader, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// accessLog logs one line per request
func accessLog(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_us", time.Since(start).Microseconds(),
			"request_id", c.GetString(RequestIDHeader))
	}
}

// rateLimit rejects clients that exceed their budget
func rateLimit(rl *rateLimiter, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := rl.Allow(c.ClientIP()); err != nil {
			log.Warn("request rejected", "error", err, "request_id", c.GetString(RequestIDHeader))
			TooManyRequests(c)
			return
		}
		c.Next()
	}
}
