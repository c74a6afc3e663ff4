package utils

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	ierr "github.com/yukikurage/task-invoice-manager/internal/errors"
)

// ParseID parses a positive numeric identifier
func ParseID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, ierr.NewError("invalid id").
			WithHintf("Invalid id %q", raw).
			Mark(ierr.ErrValidation)
	}
	return id, nil
}

// OptionalQueryID reads an optional numeric query parameter. It returns nil
// when the parameter is absent or empty.
func OptionalQueryID(c *gin.Context, key string) (*uint64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, ierr.NewError("invalid query parameter").
			WithHintf("Invalid %s", key).
			WithReportableDetails(map[string]any{key: raw}).
			Mark(ierr.ErrValidation)
	}
	return &id, nil
}

// OptionalQuery reads an optional string query parameter converted to T
func OptionalQuery[T ~string](c *gin.Context, key string) *T {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	value := T(raw)
	return &value
}
