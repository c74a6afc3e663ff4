package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ierr "github.com/yukikurage/task-invoice-manager/internal/errors"
)

type sample struct {
	Name   string `validate:"required"`
	Status string `validate:"omitempty,oneof=draft sent paid"`
	Count  int    `validate:"gte=0"`
}

func TestValidateRequest(t *testing.T) {
	require.NoError(t, ValidateRequest(sample{Name: "ok", Status: "sent"}))

	err := ValidateRequest(sample{Status: "sent"})
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
	assert.Equal(t, "Name is required", ierr.FromError(err).Message)

	err = ValidateRequest(sample{Name: "ok", Status: "lost"})
	require.Error(t, err)
	assert.Equal(t, "Status must be one of: draft sent paid", ierr.FromError(err).Message)

	err = ValidateRequest(sample{Name: "ok", Count: -1})
	require.Error(t, err)
	assert.Equal(t, "Count must be at least 0", ierr.FromError(err).Message)
}

type jsonSample struct {
	ProjectID uint64 `json:"project_id" validate:"required"`
}

func TestValidateRequest_UsesJSONNames(t *testing.T) {
	err := ValidateRequest(jsonSample{})
	require.Error(t, err)

	apiErr := ierr.FromError(err)
	assert.Equal(t, "project_id is required", apiErr.Message)
	assert.Equal(t, map[string]any{"project_id": "required"}, apiErr.Details)
}
