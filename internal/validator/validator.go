package validator

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	ierr "github.com/yukikurage/task-invoice-manager/internal/errors"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Report fields by their JSON names so hints match the request body
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// ValidateRequest validates a struct and marks failures as validation errors.
// The hint names the first failing field; all failing fields are reported as details.
func ValidateRequest(req interface{}) error {
	if err := GetValidator().Struct(req); err != nil {
		details := make(map[string]any)
		hint := "Request validation failed"

		var validateErrs validator.ValidationErrors
		if ierr.As(err, &validateErrs) {
			for i, fe := range validateErrs {
				details[fe.Field()] = fe.Tag()
				if i == 0 {
					hint = fieldHint(fe)
				}
			}
		}

		return ierr.WithError(err).
			WithHint(hint).
			WithReportableDetails(details).
			Mark(ierr.ErrValidation)
	}
	return nil
}

func fieldHint(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	case "gte", "min":
		return fe.Field() + " must be at least " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}
