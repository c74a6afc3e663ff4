package repository

import (
	"github.com/yukikurage/task-invoice-manager/internal/models"
)

// CompanyRepository defines the interface for company data access
type CompanyRepository interface {
	// Create creates a new company
	Create(company *models.Company) error

	// FindByID finds a company by ID
	FindByID(id uint64) (*models.Company, error)

	// List returns all companies ordered by name
	List() ([]models.Company, error)

	// Update updates a company
	Update(company *models.Company) error

	// Delete deletes a company and clears every reference to it
	Delete(id uint64) error
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(project *models.Project) error

	// FindByID finds a project by ID
	FindByID(id uint64) (*models.Project, error)

	// List returns projects newest first
	List(filter ProjectFilter) ([]models.Project, error)

	// Update updates a project
	Update(project *models.Project) error

	// Delete deletes a project with its tasks, time entries and invoices
	Delete(id uint64) error
}

// ProjectFilter holds filtering options for listing projects
type ProjectFilter struct {
	CompanyID *uint64
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Task, error)

	// List retrieves tasks in kanban order
	List(filter TaskFilter) ([]models.Task, error)

	// ListForInvoice returns the project's tasks ordered by ID with their
	// time entries preloaded, restricted to taskIDs when non-empty
	ListForInvoice(projectID uint64, taskIDs []uint64) ([]models.Task, error)

	// Update updates a task
	Update(task *models.Task) error

	// Delete deletes a task and its time entries
	Delete(id uint64) error
}

// TaskFilter holds filtering options for listing tasks
type TaskFilter struct {
	ProjectID     *uint64
	CompanyID     *uint64
	Status        *models.TaskStatus
	InvoiceStatus *models.TaskInvoiceStatus
}

// TimeEntryRepository defines the interface for time entry data access
type TimeEntryRepository interface {
	// Create creates a new time entry
	Create(entry *models.TimeEntry) error

	// FindByID finds a time entry by ID
	FindByID(id uint64) (*models.TimeEntry, error)

	// ListByTask returns a task's time entries newest first
	ListByTask(taskID uint64) ([]models.TimeEntry, error)

	// Update updates a time entry
	Update(entry *models.TimeEntry) error

	// Delete deletes a time entry
	Delete(id uint64) error
}

// InvoiceRepository defines the interface for invoice data access
type InvoiceRepository interface {
	// CreateWithItems writes the invoice header and all of its items in a
	// single transaction
	CreateWithItems(invoice *models.Invoice, items []models.InvoiceItem) error

	// FindByID finds an invoice by ID with its items
	FindByID(id uint64) (*models.Invoice, error)

	// List returns invoice headers newest first
	List(projectID *uint64) ([]models.Invoice, error)

	// Update updates an invoice header
	Update(invoice *models.Invoice) error

	// Delete deletes an invoice and its items
	Delete(id uint64) error
}
