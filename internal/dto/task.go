package dto

import (
	"github.com/yukikurage/task-invoice-manager/internal/models"
	"github.com/yukikurage/task-invoice-manager/internal/validator"
)

// CreateTaskRequest represents the body of POST /tasks
type CreateTaskRequest struct {
	Title         string                   `json:"title" validate:"required"`
	ProjectID     *uint64                  `json:"project_id"`
	CompanyID     *uint64                  `json:"company_id"`
	Description   *string                  `json:"description"`
	Amount        float64                  `json:"amount"`
	RateType      models.RateType          `json:"rate_type" validate:"omitempty,oneof=hourly monthly spot"`
	Status        models.TaskStatus        `json:"status" validate:"omitempty,oneof=pending in_progress requesting waiting completed"`
	InvoiceStatus models.TaskInvoiceStatus `json:"invoice_status" validate:"omitempty,oneof=not_invoiced invoice_ready invoiced paid"`
	DueDate       *models.Date             `json:"due_date"`
	SortOrder     int                      `json:"sort_order"`
}

func (r *CreateTaskRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// ToTask converts the request to a new task with defaults applied
func (r *CreateTaskRequest) ToTask() *models.Task {
	task := &models.Task{
		Title:         r.Title,
		ProjectID:     r.ProjectID,
		CompanyID:     r.CompanyID,
		Description:   r.Description,
		Amount:        r.Amount,
		RateType:      r.RateType,
		Status:        r.Status,
		InvoiceStatus: r.InvoiceStatus,
		DueDate:       r.DueDate,
		SortOrder:     r.SortOrder,
	}

	if task.RateType == "" {
		task.RateType = models.RateTypeSpot
	}
	if task.Status == "" {
		task.Status = models.TaskStatusPending
	}
	if task.InvoiceStatus == "" {
		task.InvoiceStatus = models.TaskInvoiceStatusNotInvoiced
	}

	return task
}

// UpdateTaskRequest represents the body of PUT /tasks/:id. Only fields
// present in the body change; null clears nullable fields.
type UpdateTaskRequest struct {
	Title         Optional[string]                   `json:"title"`
	ProjectID     Optional[uint64]                   `json:"project_id"`
	CompanyID     Optional[uint64]                   `json:"company_id"`
	Description   Optional[string]                   `json:"description"`
	Amount        Optional[float64]                  `json:"amount"`
	RateType      Optional[models.RateType]          `json:"rate_type"`
	Status        Optional[models.TaskStatus]        `json:"status"`
	InvoiceStatus Optional[models.TaskInvoiceStatus] `json:"invoice_status"`
	DueDate       Optional[models.Date]              `json:"due_date"`
	SortOrder     Optional[int]                      `json:"sort_order"`
}
