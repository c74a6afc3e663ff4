package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ierr "github.com/yukikurage/task-invoice-manager/internal/errors"
	"github.com/yukikurage/task-invoice-manager/internal/logger"
)

// ErrorHandler turns the last error attached with c.Error into the JSON
// error envelope. Responses that already started streaming are left alone.
func ErrorHandler(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := ierr.HTTPStatusFromErr(err)

		fields := []interface{}{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"request_id", GetRequestID(c),
			"error", err.Error(),
		}
		if status >= http.StatusInternalServerError {
			log.Errorw("request failed", fields...)
		} else {
			log.Debugw("request rejected", fields...)
		}

		if c.Writer.Written() {
			return
		}
		ierr.Respond(c, err)
	}
}
