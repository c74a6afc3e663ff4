package errors

import (
	"net/http"

	"github.com/cockroachdb/errors"
)

// Error codes
const (
	// Validation errors
	ErrCodeInvalidInput = "INVALID_INPUT"

	// Resource errors
	ErrCodeNotFound = "NOT_FOUND"
	ErrCodeConflict = "CONFLICT"

	// Service errors
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// Sentinels every domain error is marked with. Use the builder to attach
// a hint and mark the error, e.g.
//
//	ierr.NewError("project not found").WithHint("Project not found").Mark(ierr.ErrNotFound)
var (
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrDatabase      = errors.New("database error")
	ErrSystem        = errors.New("system error")
)

type classification struct {
	sentinel error
	status   int
	code     string
}

// Order matters: the first matching sentinel wins.
var classifications = []classification{
	{ErrValidation, http.StatusBadRequest, ErrCodeInvalidInput},
	{ErrNotFound, http.StatusNotFound, ErrCodeNotFound},
	{ErrAlreadyExists, http.StatusConflict, ErrCodeConflict},
	{ErrDatabase, http.StatusInternalServerError, ErrCodeInternalError},
	{ErrSystem, http.StatusInternalServerError, ErrCodeInternalError},
}

func classify(err error) classification {
	for _, cl := range classifications {
		if errors.Is(err, cl.sentinel) {
			return cl
		}
	}
	return classification{ErrSystem, http.StatusInternalServerError, ErrCodeInternalError}
}

// HTTPStatusFromErr maps an error to the HTTP status it should surface as
func HTTPStatusFromErr(err error) int {
	return classify(err).status
}

// CodeFromErr maps an error to its machine-readable code
func CodeFromErr(err error) string {
	return classify(err).code
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is a uniqueness violation
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsDatabase checks if an error is a storage failure
func IsDatabase(err error) bool {
	return errors.Is(err, ErrDatabase)
}
