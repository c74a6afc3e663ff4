package models

import "time"

type InvoiceStatus string

const (
	InvoiceStatusDraft InvoiceStatus = "draft"
	InvoiceStatusSent  InvoiceStatus = "sent"
	InvoiceStatusPaid  InvoiceStatus = "paid"
)

type Invoice struct {
	ID            uint64        `gorm:"primarykey" json:"id"`
	ProjectID     *uint64       `gorm:"index" json:"project_id"`
	CompanyID     *uint64       `gorm:"index" json:"company_id"`
	InvoiceNumber string        `gorm:"type:varchar(64);uniqueIndex;not null" json:"invoice_number"`
	TotalAmount   float64       `gorm:"not null" json:"total_amount"`
	IssueDate     Date          `gorm:"not null" json:"issue_date"`
	DueDate       *Date         `json:"due_date"`
	Status        InvoiceStatus `gorm:"type:varchar(20);not null" json:"status"`
	Notes         *string       `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time     `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	// Relations
	Items []InvoiceItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// InvoiceItem is an immutable snapshot of a priced task. TaskID is cleared
// when the originating task is deleted.
type InvoiceItem struct {
	ID          uint64  `gorm:"primarykey" json:"id"`
	InvoiceID   uint64  `gorm:"not null;index" json:"invoice_id"`
	TaskID      *uint64 `gorm:"index" json:"task_id"`
	Description string  `gorm:"type:text;not null" json:"description"`
	Quantity    float64 `gorm:"not null" json:"quantity"`
	UnitPrice   float64 `gorm:"not null" json:"unit_price"`
	Amount      float64 `gorm:"not null" json:"amount"`
}
