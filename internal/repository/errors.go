package repository

import (
	"errors"

	ierr "github.com/yukikurage/task-invoice-manager/internal/errors"
	"gorm.io/gorm"
)

// translate marks a gorm error with the matching domain sentinel
func translate(err error, entity string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ierr.WithError(err).
			WithHintf("%s not found", entity).
			Mark(ierr.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ierr.WithError(err).
			WithHintf("%s already exists", entity).
			Mark(ierr.ErrAlreadyExists)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ierr.WithError(err).
			WithHintf("%s references a record that does not exist", entity).
			Mark(ierr.ErrValidation)
	default:
		return ierr.WithError(err).
			WithHintf("Failed to access %s", entity).
			Mark(ierr.ErrDatabase)
	}
}
