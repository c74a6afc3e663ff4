package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/yukikurage/task-invoice-manager/internal/constants"
	"github.com/yukikurage/task-invoice-manager/internal/utils"
)

// RequireID parses a numeric path parameter and stores it in the context.
// Non-numeric values are rejected with 400.
func RequireID(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := utils.ParseID(c.Param(param))
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyID, id)
		c.Next()
	}
}

// GetID retrieves the path ID stored by RequireID
func GetID(c *gin.Context) (uint64, bool) {
	id, exists := c.Get(constants.ContextKeyID)
	if !exists {
		return 0, false
	}

	value, ok := id.(uint64)
	return value, ok
}
