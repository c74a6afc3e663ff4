package repository

import (
	"github.com/yukikurage/task-invoice-manager/internal/database"
	"github.com/yukikurage/task-invoice-manager/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const entityProject = "Project"

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(project *models.Project) error {
	if err := r.db.Omit(clause.Associations).Create(project).Error; err != nil {
		return translate(err, entityProject)
	}
	return nil
}

// FindByID finds a project by ID
func (r *GormProjectRepository) FindByID(id uint64) (*models.Project, error) {
	var project models.Project
	if err := r.db.First(&project, id).Error; err != nil {
		return nil, translate(err, entityProject)
	}
	return &project, nil
}

// List returns projects newest first
func (r *GormProjectRepository) List(filter ProjectFilter) ([]models.Project, error) {
	projects := []models.Project{}
	err := r.db.
		Scopes(
			database.WhereOptional("company_id", filter.CompanyID),
			database.NewestFirst("projects"),
		).
		Find(&projects).Error
	if err != nil {
		return nil, translate(err, entityProject)
	}
	return projects, nil
}

// Update updates a project
func (r *GormProjectRepository) Update(project *models.Project) error {
	if err := r.db.Omit(clause.Associations).Save(project).Error; err != nil {
		return translate(err, entityProject)
	}
	return nil
}

// Delete deletes a project and everything that only makes sense inside it:
// its tasks with their time entries, and its invoices with their items.
// Items on other invoices that point at a deleted task keep their snapshot
// and lose the task link.
func (r *GormProjectRepository) Delete(id uint64) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		taskIDs := func() *gorm.DB {
			return tx.Model(&models.Task{}).Select("id").Where("project_id = ?", id)
		}
		invoiceIDs := func() *gorm.DB {
			return tx.Model(&models.Invoice{}).Select("id").Where("project_id = ?", id)
		}

		if err := tx.Where("invoice_id IN (?)", invoiceIDs()).Delete(&models.InvoiceItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.Invoice{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.InvoiceItem{}).Where("task_id IN (?)", taskIDs()).Update("task_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("task_id IN (?)", taskIDs()).Delete(&models.TimeEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Project{}, id).Error
	})
	if err != nil {
		return translate(err, entityProject)
	}
	return nil
}
