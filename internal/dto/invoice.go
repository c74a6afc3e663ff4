package dto

import (
	"github.com/yukikurage/task-invoice-manager/internal/models"
	"github.com/yukikurage/task-invoice-manager/internal/validator"
)

// CreateInvoiceRequest represents the body of POST /invoices. Validation of
// the required fields happens in the invoice service.
type CreateInvoiceRequest struct {
	ProjectID uint64       `json:"project_id"`
	IssueDate *models.Date `json:"issue_date"`
	DueDate   *models.Date `json:"due_date"`
	Notes     *string      `json:"notes"`
	TaskIDs   []uint64     `json:"task_ids"`
}

// UpdateInvoiceRequest represents the body of PUT /invoices/:id. All three
// fields are overwritten.
type UpdateInvoiceRequest struct {
	Status  models.InvoiceStatus `json:"status" validate:"required,oneof=draft sent paid"`
	Notes   *string              `json:"notes"`
	DueDate *models.Date         `json:"due_date"`
}

func (r *UpdateInvoiceRequest) Validate() error {
	return validator.ValidateRequest(r)
}
