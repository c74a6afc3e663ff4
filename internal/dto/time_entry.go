package dto

import (
	"time"

	"github.com/yukikurage/task-invoice-manager/internal/models"
	"github.com/yukikurage/task-invoice-manager/internal/validator"
)

// CreateTimeEntryRequest represents the body of POST /time-entries
type CreateTimeEntryRequest struct {
	TaskID          uint64     `json:"task_id" validate:"required"`
	DurationMinutes *int       `json:"duration_minutes" validate:"required,gte=0"`
	Description     *string    `json:"description"`
	StartedAt       *time.Time `json:"started_at"`
	EndedAt         *time.Time `json:"ended_at"`
}

func (r *CreateTimeEntryRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateTimeEntryRequest) ToTimeEntry() *models.TimeEntry {
	return &models.TimeEntry{
		TaskID:          r.TaskID,
		DurationMinutes: *r.DurationMinutes,
		Description:     r.Description,
		StartedAt:       r.StartedAt,
		EndedAt:         r.EndedAt,
	}
}

// UpdateTimeEntryRequest replaces the mutable fields of a time entry
type UpdateTimeEntryRequest struct {
	DurationMinutes *int       `json:"duration_minutes" validate:"required,gte=0"`
	Description     *string    `json:"description"`
	StartedAt       *time.Time `json:"started_at"`
	EndedAt         *time.Time `json:"ended_at"`
}

func (r *UpdateTimeEntryRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *UpdateTimeEntryRequest) Apply(entry *models.TimeEntry) {
	entry.DurationMinutes = *r.DurationMinutes
	entry.Description = r.Description
	entry.StartedAt = r.StartedAt
	entry.EndedAt = r.EndedAt
}
