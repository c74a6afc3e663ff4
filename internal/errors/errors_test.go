package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusFromErr(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", NewError("title missing").Mark(ErrValidation), http.StatusBadRequest, ErrCodeInvalidInput},
		{"not found", NewError("no row").Mark(ErrNotFound), http.StatusNotFound, ErrCodeNotFound},
		{"conflict", NewError("duplicate").Mark(ErrAlreadyExists), http.StatusConflict, ErrCodeConflict},
		{"database", NewError("disk full").Mark(ErrDatabase), http.StatusInternalServerError, ErrCodeInternalError},
		{"unmarked", fmt.Errorf("boom"), http.StatusInternalServerError, ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, HTTPStatusFromErr(tt.err))
			assert.Equal(t, tt.code, CodeFromErr(tt.err))
		})
	}
}

func TestMarkSurvivesWrapping(t *testing.T) {
	err := NewError("project 7 not found").Mark(ErrNotFound)
	wrapped := fmt.Errorf("create invoice: %w", err)

	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsValidation(wrapped))
}

func TestFromError_UsesHintForClientErrors(t *testing.T) {
	err := NewError("issue_date is nil").
		WithHint("issue_date is required").
		WithReportableDetails(map[string]any{"field": "issue_date"}).
		Mark(ErrValidation)

	apiErr := FromError(err)

	assert.Equal(t, ErrCodeInvalidInput, apiErr.Code)
	assert.Equal(t, "issue_date is required", apiErr.Message)
	assert.Equal(t, map[string]any{"field": "issue_date"}, apiErr.Details)
}

func TestFromError_HidesStorageMessages(t *testing.T) {
	err := WithError(fmt.Errorf("pq: relation \"invoices\" does not exist")).
		WithHint("Failed to create invoice").
		Mark(ErrDatabase)

	apiErr := FromError(err)

	assert.Equal(t, ErrCodeInternalError, apiErr.Code)
	assert.Equal(t, "Internal server error", apiErr.Message)
	assert.Nil(t, apiErr.Details)
}

func TestFromError_FallsBackToSentinelMessage(t *testing.T) {
	apiErr := FromError(NewError("invoice 3").Mark(ErrNotFound))

	assert.Equal(t, "resource not found", apiErr.Message)
}
