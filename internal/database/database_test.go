package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yukikurage/task-invoice-manager/internal/config"
	"github.com/yukikurage/task-invoice-manager/internal/database"
	"github.com/yukikurage/task-invoice-manager/internal/logger"
	"github.com/yukikurage/task-invoice-manager/internal/models"
	"github.com/yukikurage/task-invoice-manager/internal/testutil"
)

func TestMigrate_CreatesTablesAndIndexes(t *testing.T) {
	db := testutil.NewTestDB(t)

	for _, model := range models.All() {
		assert.True(t, db.Migrator().HasTable(model))
	}
	assert.True(t, db.Migrator().HasIndex(&models.Task{}, "idx_tasks_project_sort"))
	assert.True(t, db.Migrator().HasIndex(&models.Invoice{}, "idx_invoices_project_created"))

	// Running again is a no-op
	require.NoError(t, database.Migrate(db, logger.NewNop()))
}

func TestDialector_RejectsUnknownDriver(t *testing.T) {
	_, err := database.Dialector(&config.Config{DBDriver: "oracle"})
	assert.Error(t, err)

	d, err := database.Dialector(&config.Config{DBDriver: config.DriverPostgres})
	require.NoError(t, err)
	assert.Equal(t, "postgres", d.Name())
}
