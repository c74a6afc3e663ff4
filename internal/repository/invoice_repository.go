package repository

import (
	"errors"
	"fmt"

	"github.com/yukikurage/task-invoice-manager/internal/database"
	"github.com/yukikurage/task-invoice-manager/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const entityInvoice = "Invoice"

var (
	// ErrCreateInvoiceHeader is returned when inserting the invoice row fails inside the create transaction.
	ErrCreateInvoiceHeader = errors.New("invoice repository: create invoice failed")
	// ErrCreateInvoiceItems is returned when inserting the items fails inside the create transaction.
	ErrCreateInvoiceItems = errors.New("invoice repository: create invoice items failed")
)

// GormInvoiceRepository is a GORM implementation of InvoiceRepository
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new InvoiceRepository
func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// CreateWithItems creates the invoice header and its items atomically. A
// failure on any item rolls back the header as well.
func (r *GormInvoiceRepository) CreateWithItems(invoice *models.Invoice, items []models.InvoiceItem) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(invoice).Error; err != nil {
			return fmt.Errorf("%w: %w", ErrCreateInvoiceHeader, err)
		}

		if len(items) == 0 {
			return nil
		}

		for i := range items {
			items[i].InvoiceID = invoice.ID
		}

		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("%w: %w", ErrCreateInvoiceItems, err)
		}

		return nil
	})
	if err != nil {
		invoice.ID = 0
		return translate(err, entityInvoice)
	}

	invoice.Items = items
	return nil
}

// FindByID finds an invoice by ID with its items in insertion order
func (r *GormInvoiceRepository) FindByID(id uint64) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("invoice_items.id ASC")
		}).
		First(&invoice, id).Error
	if err != nil {
		return nil, translate(err, entityInvoice)
	}
	return &invoice, nil
}

// List returns invoice headers newest first, optionally for one project
func (r *GormInvoiceRepository) List(projectID *uint64) ([]models.Invoice, error) {
	invoices := []models.Invoice{}
	err := r.db.
		Scopes(
			database.WhereOptional("project_id", projectID),
			database.NewestFirst("invoices"),
		).
		Find(&invoices).Error
	if err != nil {
		return nil, translate(err, entityInvoice)
	}
	return invoices, nil
}

// Update updates an invoice header. Items are never touched.
func (r *GormInvoiceRepository) Update(invoice *models.Invoice) error {
	if err := r.db.Omit(clause.Associations).Save(invoice).Error; err != nil {
		return translate(err, entityInvoice)
	}
	return nil
}

// Delete deletes an invoice and its items in a transaction
func (r *GormInvoiceRepository) Delete(id uint64) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", id).Delete(&models.InvoiceItem{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Invoice{}, id).Error
	})
	if err != nil {
		return translate(err, entityInvoice)
	}
	return nil
}
