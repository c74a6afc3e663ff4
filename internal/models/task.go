package models

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusRequesting TaskStatus = "requesting"
	TaskStatusWaiting    TaskStatus = "waiting"
	TaskStatusCompleted  TaskStatus = "completed"
)

type TaskInvoiceStatus string

const (
	TaskInvoiceStatusNotInvoiced  TaskInvoiceStatus = "not_invoiced"
	TaskInvoiceStatusInvoiceReady TaskInvoiceStatus = "invoice_ready"
	TaskInvoiceStatusInvoiced     TaskInvoiceStatus = "invoiced"
	TaskInvoiceStatusPaid         TaskInvoiceStatus = "paid"
)

// RateType classifies how a task is billed. It is informational only.
type RateType string

const (
	RateTypeHourly  RateType = "hourly"
	RateTypeMonthly RateType = "monthly"
	RateTypeSpot    RateType = "spot"
)

type Task struct {
	ID            uint64            `gorm:"primarykey" json:"id"`
	ProjectID     *uint64           `gorm:"index" json:"project_id"`
	CompanyID     *uint64           `gorm:"index" json:"company_id"`
	Title         string            `gorm:"type:varchar(255);not null" json:"title"`
	Description   *string           `gorm:"type:text" json:"description"`
	Amount        float64           `gorm:"not null" json:"amount"`
	RateType      RateType          `gorm:"type:varchar(20);not null" json:"rate_type"`
	Status        TaskStatus        `gorm:"type:varchar(20);not null;index" json:"status"`
	InvoiceStatus TaskInvoiceStatus `gorm:"type:varchar(20);not null" json:"invoice_status"`
	DueDate       *Date             `json:"due_date"`
	SortOrder     int               `gorm:"not null" json:"sort_order"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`

	// Relations
	TimeEntries  []TimeEntry   `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"time_entries,omitempty"`
	InvoiceItems []InvoiceItem `gorm:"foreignKey:TaskID;constraint:OnDelete:SET NULL" json:"-"`
}

// IsValid reports whether s is a known task status
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusRequesting, TaskStatusWaiting, TaskStatusCompleted:
		return true
	}
	return false
}

// IsValid reports whether s is a known invoice status of a task
func (s TaskInvoiceStatus) IsValid() bool {
	switch s {
	case TaskInvoiceStatusNotInvoiced, TaskInvoiceStatusInvoiceReady, TaskInvoiceStatusInvoiced, TaskInvoiceStatusPaid:
		return true
	}
	return false
}

// IsValid reports whether r is a known rate type
func (r RateType) IsValid() bool {
	switch r {
	case RateTypeHourly, RateTypeMonthly, RateTypeSpot:
		return true
	}
	return false
}
