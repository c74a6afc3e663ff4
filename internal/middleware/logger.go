package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yukikurage/task-invoice-manager/internal/logger"
)

// RequestLogger logs one line per request once it has been served
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		log.Infow("request completed",
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
			"request_id", GetRequestID(c),
			"client_ip", c.ClientIP(),
		)
	}
}
