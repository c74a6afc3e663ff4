// Package services holds the business logic behind the HTTP handlers.
package services

import (
	"strings"

	ierr "github.com/yukikurage/task-invoice-manager/internal/errors"
)

// requireNonBlank rejects values that are empty after trimming
func requireNonBlank(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return ierr.NewError(field+" is blank").
			WithHintf("%s is required", field).
			WithReportableDetails(map[string]any{field: "required"}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// invalidField builds a validation error naming a field and its bad value
func invalidField(field string, value any) error {
	return ierr.NewError("invalid "+field).
		WithHintf("%s is invalid", field).
		WithReportableDetails(map[string]any{field: value}).
		Mark(ierr.ErrValidation)
}
