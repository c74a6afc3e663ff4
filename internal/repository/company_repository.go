package repository

import (
	"github.com/yukikurage/task-invoice-manager/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const entityCompany = "Company"

// GormCompanyRepository is a GORM implementation of CompanyRepository
type GormCompanyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &GormCompanyRepository{db: db}
}

// Create creates a new company
func (r *GormCompanyRepository) Create(company *models.Company) error {
	if err := r.db.Omit(clause.Associations).Create(company).Error; err != nil {
		return translate(err, entityCompany)
	}
	return nil
}

// FindByID finds a company by ID
func (r *GormCompanyRepository) FindByID(id uint64) (*models.Company, error) {
	var company models.Company
	if err := r.db.First(&company, id).Error; err != nil {
		return nil, translate(err, entityCompany)
	}
	return &company, nil
}

// List returns all companies ordered by name
func (r *GormCompanyRepository) List() ([]models.Company, error) {
	companies := []models.Company{}
	if err := r.db.Order("name ASC").Find(&companies).Error; err != nil {
		return nil, translate(err, entityCompany)
	}
	return companies, nil
}

// Update updates a company
func (r *GormCompanyRepository) Update(company *models.Company) error {
	if err := r.db.Omit(clause.Associations).Save(company).Error; err != nil {
		return translate(err, entityCompany)
	}
	return nil
}

// Delete deletes a company in a transaction. Projects, tasks and invoices
// linked to it are kept with their company reference cleared.
func (r *GormCompanyRepository) Delete(id uint64) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{&models.Project{}, &models.Task{}, &models.Invoice{}} {
			if err := tx.Model(model).Where("company_id = ?", id).Update("company_id", nil).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.Company{}, id).Error
	})
	if err != nil {
		return translate(err, entityCompany)
	}
	return nil
}
