package database

import (
	"fmt"

	"github.com/yukikurage/task-invoice-manager/internal/logger"
	"github.com/yukikurage/task-invoice-manager/internal/models"
	"gorm.io/gorm"
)

// AddIndexes adds the composite indexes used by list queries
func AddIndexes(db *gorm.DB, log *logger.Logger) error {
	indexes := []struct {
		model   interface{}
		name    string
		columns string
	}{
		// Kanban ordering within a project
		{&models.Task{}, "idx_tasks_project_sort", "project_id, sort_order"},

		// Invoice list, newest first per project
		{&models.Invoice{}, "idx_invoices_project_created", "project_id, created_at"},

		// Time entries per task, newest first
		{&models.TimeEntry{}, "idx_time_entries_task_created", "task_id, created_at"},
	}

	migrator := db.Migrator()
	for _, idx := range indexes {
		if migrator.HasIndex(idx.model, idx.name) {
			log.Debugw("index already exists, skipping", "index", idx.name)
			continue
		}

		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(idx.model); err != nil {
			return fmt.Errorf("failed to parse model for index %s: %w", idx.name, err)
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, stmt.Schema.Table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.Infow("created index", "index", idx.name, "table", stmt.Schema.Table, "columns", idx.columns)
	}

	return nil
}
