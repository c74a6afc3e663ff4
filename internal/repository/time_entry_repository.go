package repository

import (
	"github.com/yukikurage/task-invoice-manager/internal/database"
	"github.com/yukikurage/task-invoice-manager/internal/models"
	"gorm.io/gorm"
)

const entityTimeEntry = "Time entry"

// GormTimeEntryRepository is a GORM implementation of TimeEntryRepository
type GormTimeEntryRepository struct {
	db *gorm.DB
}

// NewTimeEntryRepository creates a new TimeEntryRepository
func NewTimeEntryRepository(db *gorm.DB) TimeEntryRepository {
	return &GormTimeEntryRepository{db: db}
}

func (r *GormTimeEntryRepository) Create(entry *models.TimeEntry) error {
	if err := r.db.Create(entry).Error; err != nil {
		return translate(err, entityTimeEntry)
	}
	return nil
}

func (r *GormTimeEntryRepository) FindByID(id uint64) (*models.TimeEntry, error) {
	var entry models.TimeEntry
	if err := r.db.First(&entry, id).Error; err != nil {
		return nil, translate(err, entityTimeEntry)
	}
	return &entry, nil
}

func (r *GormTimeEntryRepository) ListByTask(taskID uint64) ([]models.TimeEntry, error) {
	entries := []models.TimeEntry{}
	err := r.db.
		Where("task_id = ?", taskID).
		Scopes(database.NewestFirst("time_entries")).
		Find(&entries).Error
	if err != nil {
		return nil, translate(err, entityTimeEntry)
	}
	return entries, nil
}

func (r *GormTimeEntryRepository) Update(entry *models.TimeEntry) error {
	if err := r.db.Save(entry).Error; err != nil {
		return translate(err, entityTimeEntry)
	}
	return nil
}

func (r *GormTimeEntryRepository) Delete(id uint64) error {
	if err := r.db.Delete(&models.TimeEntry{}, id).Error; err != nil {
		return translate(err, entityTimeEntry)
	}
	return nil
}
