package services

import (
	"io"

	"github.com/yukikurage/task-invoice-manager/internal/billing"
	"github.com/yukikurage/task-invoice-manager/internal/constants"
	"github.com/yukikurage/task-invoice-manager/internal/dto"
	ierr "github.com/yukikurage/task-invoice-manager/internal/errors"
	"github.com/yukikurage/task-invoice-manager/internal/logger"
	"github.com/yukikurage/task-invoice-manager/internal/models"
	"github.com/yukikurage/task-invoice-manager/internal/pdf"
	"github.com/yukikurage/task-invoice-manager/internal/repository"
	"github.com/yukikurage/task-invoice-manager/internal/utils"
	"github.com/yukikurage/task-invoice-manager/internal/validator"
)

// DocumentRenderer draws an invoice document to a writer
type DocumentRenderer interface {
	Render(w io.Writer, doc pdf.Document) error
}

// InvoiceService turns billable tasks into persisted invoices and renders
// them as documents
type InvoiceService struct {
	invoiceRepo repository.InvoiceRepository
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
	renderer    DocumentRenderer
	log         *logger.Logger

	newInvoiceNumber func() string
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	projectRepo repository.ProjectRepository,
	taskRepo repository.TaskRepository,
	renderer DocumentRenderer,
	log *logger.Logger,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:      invoiceRepo,
		projectRepo:      projectRepo,
		taskRepo:         taskRepo,
		renderer:         renderer,
		log:              log,
		newInvoiceNumber: utils.GenerateInvoiceNumber,
	}
}

// CreateInvoiceInput represents input for creating an invoice. An empty
// TaskIDs bills every task of the project.
type CreateInvoiceInput struct {
	ProjectID uint64       `json:"project_id" validate:"required"`
	IssueDate *models.Date `json:"issue_date" validate:"required"`
	DueDate   *models.Date `json:"due_date"`
	Notes     *string      `json:"notes"`
	TaskIDs   []uint64     `json:"task_ids"`
}

// NewCreateInvoiceInput converts the request body into workflow input
func NewCreateInvoiceInput(req dto.CreateInvoiceRequest) CreateInvoiceInput {
	return CreateInvoiceInput{
		ProjectID: req.ProjectID,
		IssueDate: req.IssueDate,
		DueDate:   req.DueDate,
		Notes:     req.Notes,
		TaskIDs:   req.TaskIDs,
	}
}

// CreateInvoice prices the project's tasks and stores the invoice header
// with one item per task. The header and items are written atomically;
// the tasks themselves are not modified.
func (s *InvoiceService) CreateInvoice(input CreateInvoiceInput) (*models.Invoice, error) {
	if err := validator.ValidateRequest(input); err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FindByID(input.ProjectID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.ListForInvoice(project.ID, input.TaskIDs)
	if err != nil {
		return nil, err
	}
	tasks = billing.FilterProjectTasks(tasks, input.TaskIDs)

	result := billing.ComputeInvoiceLines(*project, tasks)

	var lastErr error
	for attempt := 1; attempt <= constants.MaxInvoiceNumberAttempts; attempt++ {
		invoice := &models.Invoice{
			ProjectID:     &project.ID,
			CompanyID:     project.CompanyID,
			InvoiceNumber: s.newInvoiceNumber(),
			TotalAmount:   result.Total,
			IssueDate:     *input.IssueDate,
			DueDate:       input.DueDate,
			Status:        models.InvoiceStatusDraft,
			Notes:         input.Notes,
		}

		err := s.invoiceRepo.CreateWithItems(invoice, toInvoiceItems(result.Lines))
		if err == nil {
			s.log.Infow("invoice created",
				"invoice_id", invoice.ID,
				"invoice_number", invoice.InvoiceNumber,
				"project_id", project.ID,
				"items", len(invoice.Items),
				"total", invoice.TotalAmount,
			)
			return invoice, nil
		}
		if !ierr.IsAlreadyExists(err) {
			s.log.Errorw("failed to create invoice", "project_id", project.ID, "error", err)
			return nil, err
		}

		s.log.Warnw("invoice number collision, regenerating",
			"invoice_number", invoice.InvoiceNumber,
			"attempt", attempt,
		)
		lastErr = err
	}

	return nil, ierr.WithError(lastErr).
		WithHint("Could not allocate a unique invoice number").
		Mark(ierr.ErrAlreadyExists)
}

func toInvoiceItems(lines []billing.Line) []models.InvoiceItem {
	items := make([]models.InvoiceItem, 0, len(lines))
	for _, line := range lines {
		taskID := line.TaskID
		items = append(items, models.InvoiceItem{
			TaskID:      &taskID,
			Description: line.Description,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Amount:      line.Amount,
		})
	}
	return items
}

// ListInvoices returns invoice headers newest first
func (s *InvoiceService) ListInvoices(projectID *uint64) ([]models.Invoice, error) {
	return s.invoiceRepo.List(projectID)
}

// GetInvoice returns an invoice with its items
func (s *InvoiceService) GetInvoice(id uint64) (*models.Invoice, error) {
	return s.invoiceRepo.FindByID(id)
}

// UpdateInvoice overwrites status, notes and due date. Status transitions
// are not enforced.
func (s *InvoiceService) UpdateInvoice(id uint64, req dto.UpdateInvoiceRequest) (*models.Invoice, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	invoice, err := s.invoiceRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	invoice.Status = req.Status
	invoice.Notes = req.Notes
	invoice.DueDate = req.DueDate

	if err := s.invoiceRepo.Update(invoice); err != nil {
		return nil, err
	}

	s.log.Infow("invoice updated", "invoice_id", id, "status", invoice.Status)
	return invoice, nil
}

// DeleteInvoice deletes an invoice and its items
func (s *InvoiceService) DeleteInvoice(id uint64) error {
	if _, err := s.invoiceRepo.FindByID(id); err != nil {
		return err
	}

	if err := s.invoiceRepo.Delete(id); err != nil {
		return err
	}

	s.log.Infow("invoice deleted", "invoice_id", id)
	return nil
}

// LoadInvoiceDocument gathers the invoice, its items and its project for
// rendering. The project is omitted when it no longer exists.
func (s *InvoiceService) LoadInvoiceDocument(id uint64) (*pdf.Document, error) {
	invoice, err := s.invoiceRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	doc := &pdf.Document{
		Invoice: *invoice,
		Items:   invoice.Items,
	}

	if invoice.ProjectID != nil {
		project, err := s.projectRepo.FindByID(*invoice.ProjectID)
		switch {
		case err == nil:
			doc.Project = project
		case !ierr.IsNotFound(err):
			return nil, err
		}
	}

	return doc, nil
}

// RenderInvoice writes doc to w
func (s *InvoiceService) RenderInvoice(w io.Writer, doc *pdf.Document) error {
	if err := s.renderer.Render(w, *doc); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to render invoice").
			Mark(ierr.ErrSystem)
	}
	return nil
}
