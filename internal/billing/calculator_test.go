package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yukikurage/task-invoice-manager/internal/models"
)

func entries(minutes ...int) []models.TimeEntry {
	out := make([]models.TimeEntry, len(minutes))
	for i, m := range minutes {
		out[i] = models.TimeEntry{DurationMinutes: m}
	}
	return out
}

func TestComputeInvoiceLines_MixedPricing(t *testing.T) {
	project := models.Project{ID: 1, HourlyRate: 5000}
	tasks := []models.Task{
		{ID: 1, Title: "Design", TimeEntries: entries(30, 45)},
		{ID: 2, Title: "Setup", Amount: 5000},
	}

	result := ComputeInvoiceLines(project, tasks)

	require.Len(t, result.Lines, 2)
	assert.Equal(t, Line{TaskID: 1, Description: "Design", Quantity: 1, UnitPrice: 6250, Amount: 6250}, result.Lines[0])
	assert.Equal(t, Line{TaskID: 2, Description: "Setup", Quantity: 1, UnitPrice: 5000, Amount: 5000}, result.Lines[1])
	assert.Equal(t, 11250.0, result.Total)
}

func TestComputeInvoiceLines_HoursOverrideFlatAmount(t *testing.T) {
	project := models.Project{HourlyRate: 6000}
	tasks := []models.Task{
		{ID: 1, Title: "Build", Amount: 99999, TimeEntries: entries(60)},
		{ID: 2, Title: "Fixed", Amount: 5000},
	}

	result := ComputeInvoiceLines(project, tasks)

	require.Len(t, result.Lines, 2)
	assert.Equal(t, 6000.0, result.Lines[0].Amount)
	assert.Equal(t, 5000.0, result.Lines[1].Amount)
	assert.Equal(t, 11000.0, result.Total)
}

func TestComputeInvoiceLines_ZeroRateUsesFlatAmount(t *testing.T) {
	project := models.Project{HourlyRate: 0}
	tasks := []models.Task{
		{ID: 1, Title: "Logged", Amount: 1200, TimeEntries: entries(120)},
		{ID: 2, Title: "Unpriced"},
	}

	result := ComputeInvoiceLines(project, tasks)

	require.Len(t, result.Lines, 2)
	assert.Equal(t, 1200.0, result.Lines[0].Amount)
	assert.Zero(t, result.Lines[1].Amount)
	assert.Equal(t, 1200.0, result.Total)
}

func TestComputeInvoiceLines_NoTasks(t *testing.T) {
	result := ComputeInvoiceLines(models.Project{HourlyRate: 100}, nil)

	assert.Empty(t, result.Lines)
	assert.Zero(t, result.Total)
}

func TestComputeInvoiceLines_TotalMatchesLines(t *testing.T) {
	project := models.Project{HourlyRate: 7500}
	tasks := []models.Task{
		{ID: 3, Title: "a", TimeEntries: entries(10)},
		{ID: 1, Title: "b", Amount: 333.33},
		{ID: 2, Title: "c", TimeEntries: entries(5, 5, 5)},
	}

	result := ComputeInvoiceLines(project, tasks)

	var sum float64
	for i, line := range result.Lines {
		assert.Equal(t, tasks[i].ID, line.TaskID)
		assert.Equal(t, line.UnitPrice, line.Amount)
		assert.Equal(t, 1.0, line.Quantity)
		sum += line.Amount
	}
	assert.InDelta(t, sum, result.Total, 1e-9)
}

func TestHours(t *testing.T) {
	assert.Equal(t, 1.25, Hours(entries(30, 45)))
	assert.Zero(t, Hours(nil))
}

func TestFilterProjectTasks(t *testing.T) {
	tasks := []models.Task{{ID: 1}, {ID: 2}, {ID: 3}}

	assert.Len(t, FilterProjectTasks(tasks, nil), 3)

	filtered := FilterProjectTasks(tasks, []uint64{3, 1, 99})
	require.Len(t, filtered, 2)
	assert.Equal(t, uint64(1), filtered[0].ID)
	assert.Equal(t, uint64(3), filtered[1].ID)

	assert.Empty(t, FilterProjectTasks(tasks, []uint64{42}))
}
