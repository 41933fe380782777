package middlewares

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestLogger tags every request with an id and logs method, path,
// status and latency. The id is echoed in X-Request-ID so a client
// error report can be matched to a log line.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := uuid.NewString()
		c.Set("requestID", reqID)
		c.Header("X-Request-ID", reqID)

		start := time.Now()
		c.Next()

		log.Printf("[%s] %d %s %s %v", reqID[:8], c.Writer.Status(), c.Request.Method, c.Request.URL.Path, time.Since(start))
	}
}
