package repository

import (
	"github.com/yukikurage/task-invoice-manager/internal/database"
	"github.com/yukikurage/task-invoice-manager/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const entityTask = "Task"

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	if err := r.db.Omit(clause.Associations).Create(task).Error; err != nil {
		return translate(err, entityTask)
	}
	return nil
}

// FindByID finds a task by ID with optional preloading
func (r *GormTaskRepository) FindByID(id uint64, preload ...string) (*models.Task, error) {
	var task models.Task
	query := r.db

	// Apply preloading if specified
	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&task, id).Error; err != nil {
		return nil, translate(err, entityTask)
	}

	return &task, nil
}

// List retrieves tasks in kanban order: sort_order first, then newest
func (r *GormTaskRepository) List(filter TaskFilter) ([]models.Task, error) {
	tasks := []models.Task{}

	err := r.db.Model(&models.Task{}).
		Scopes(
			database.WhereOptional("tasks.project_id", filter.ProjectID),
			database.WhereOptional("tasks.company_id", filter.CompanyID),
			database.WhereOptional("tasks.status", filter.Status),
			database.WhereOptional("tasks.invoice_status", filter.InvoiceStatus),
		).
		Order("tasks.sort_order ASC").
		Scopes(database.NewestFirst("tasks")).
		Find(&tasks).Error
	if err != nil {
		return nil, translate(err, entityTask)
	}

	return tasks, nil
}

// ListForInvoice returns the project's tasks in ID order with time entries
// preloaded. IDs in taskIDs that are not part of the project are ignored.
func (r *GormTaskRepository) ListForInvoice(projectID uint64, taskIDs []uint64) ([]models.Task, error) {
	tasks := []models.Task{}

	query := r.db.
		Preload("TimeEntries", func(db *gorm.DB) *gorm.DB {
			return db.Order("time_entries.id ASC")
		}).
		Where("project_id = ?", projectID)

	if len(taskIDs) > 0 {
		query = query.Where("id IN ?", taskIDs)
	}

	if err := query.Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, translate(err, entityTask)
	}

	return tasks, nil
}

// Update updates a task
func (r *GormTaskRepository) Update(task *models.Task) error {
	if err := r.db.Omit(clause.Associations).Save(task).Error; err != nil {
		return translate(err, entityTask)
	}
	return nil
}

// Delete deletes a task and its time entries. Invoice items keep their
// snapshot with the task reference cleared.
func (r *GormTaskRepository) Delete(id uint64) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.InvoiceItem{}).Where("task_id = ?", id).Update("task_id", nil).Error; err != nil {
			return err
		}

		if err := tx.Where("task_id = ?", id).Delete(&models.TimeEntry{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Task{}, id).Error
	})
	if err != nil {
		return translate(err, entityTask)
	}
	return nil
}
