package errors

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

const jsonDetailsPrefix = "__json__:"

// APIError represents a standardized API error response
type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new APIError
func NewAPIError(code, message string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
	}
}

// NewAPIErrorWithDetails creates a new APIError with details
func NewAPIErrorWithDetails(code, message string, details interface{}) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// FromError builds the response body for err. Server-side failures never
// leak their internal message.
func FromError(err error) *APIError {
	cl := classify(err)

	message := displayMessage(err)
	if cl.status >= http.StatusInternalServerError || message == "" {
		message = defaultMessage(cl.status, cl.sentinel)
	}

	details := safeDetails(err)
	if len(details) == 0 {
		return NewAPIError(cl.code, message)
	}
	return NewAPIErrorWithDetails(cl.code, message, details)
}

// RespondWithError sends an error response
func RespondWithError(c *gin.Context, statusCode int, err *APIError) {
	c.JSON(statusCode, err)
}

// Respond writes err as a JSON error envelope with the matching status
func Respond(c *gin.Context, err error) {
	RespondWithError(c, HTTPStatusFromErr(err), FromError(err))
}

func defaultMessage(status int, sentinel error) string {
	if status >= http.StatusInternalServerError {
		return "Internal server error"
	}
	return sentinel.Error()
}

func displayMessage(err error) string {
	// GetAllHints is a post-order traversal; take the first non-empty hint
	for _, hint := range errors.GetAllHints(err) {
		if hint = strings.TrimSpace(hint); hint != "" {
			return hint
		}
	}
	return ""
}

func safeDetails(err error) map[string]any {
	details := make(map[string]any)

	for _, sdp := range errors.GetAllSafeDetails(err) {
		for _, payload := range sdp.SafeDetails {
			if !strings.HasPrefix(payload, jsonDetailsPrefix) {
				continue
			}
			var jsonDetails map[string]any
			if err := json.Unmarshal([]byte(payload[len(jsonDetailsPrefix):]), &jsonDetails); err == nil {
				for k, v := range jsonDetails {
					details[k] = v
				}
			}
		}
	}

	return details
}
