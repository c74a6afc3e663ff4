package handlers

import (
	"github.com/gin-gonic/gin"

	ierr "github.com/yukikurage/task-invoice-manager/internal/errors"
	"github.com/yukikurage/task-invoice-manager/internal/middleware"
)

// bindJSON decodes the request body into req. Malformed bodies are
// reported as validation errors.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		_ = c.Error(ierr.WithError(err).
			WithHint("Invalid request body").
			Mark(ierr.ErrValidation))
		return false
	}
	return true
}

// pathID returns the ID parsed by middleware.RequireID
func pathID(c *gin.Context) (uint64, bool) {
	id, ok := middleware.GetID(c)
	if !ok {
		_ = c.Error(ierr.NewError("path id missing from context").Mark(ierr.ErrSystem))
	}
	return id, ok
}
