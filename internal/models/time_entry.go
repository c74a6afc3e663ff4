package models

import "time"

// TimeEntry records work on a task. DurationMinutes is authoritative;
// StartedAt and EndedAt are informational.
type TimeEntry struct {
	ID              uint64     `gorm:"primarykey" json:"id"`
	TaskID          uint64     `gorm:"not null;index" json:"task_id"`
	DurationMinutes int        `gorm:"not null" json:"duration_minutes"`
	Description     *string    `gorm:"type:text" json:"description"`
	StartedAt       *time.Time `json:"started_at"`
	EndedAt         *time.Time `json:"ended_at"`
	CreatedAt       time.Time  `json:"created_at"`
}
