package server

import (
	"auction-marketplace/utils"
	"time"

	"github.com/gin-gonic/gin"
)

// requestIDKey is the context key under which the request id is stored.
const requestIDKey = "request_id"

// RequestIDMiddleware assigns each request a unique id, echoed back in the
// X-Request-ID header and attached to the request log line.
func RequestIDMiddleware(c *gin.Context) {
	id := c.GetHeader("X-Request-ID")
	if id == "" {
		id = utils.GenerateRequestID()
	}
	c.Set(requestIDKey, id)
	c.Writer.Header().Set("X-Request-ID", id)

	c.Next()
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
		"request_id": c.GetString(requestIDKey),
	})
}
