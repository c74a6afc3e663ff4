package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ierr "github.com/yukikurage/task-invoice-manager/internal/errors"
	"github.com/yukikurage/task-invoice-manager/internal/models"
)

func TestUpdateTaskRequest_DistinguishesAbsentFromNull(t *testing.T) {
	var req UpdateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(`{"status":"completed","due_date":null,"sort_order":3}`), &req))

	assert.True(t, req.Status.Set)
	assert.Equal(t, models.TaskStatusCompleted, *req.Status.Value)
	assert.True(t, req.DueDate.IsNull())
	assert.True(t, req.SortOrder.Set)
	assert.False(t, req.Title.Set)
	assert.False(t, req.Description.Set)

	description := "kept"
	due := models.Date{}
	task := models.Task{Title: "Original", Description: &description, DueDate: &due}

	req.Title.ApplyValue(&task.Title)
	req.Description.Apply(&task.Description)
	req.DueDate.Apply(&task.DueDate)
	req.SortOrder.ApplyValue(&task.SortOrder)

	assert.Equal(t, "Original", task.Title)
	require.NotNil(t, task.Description)
	assert.Equal(t, "kept", *task.Description)
	assert.Nil(t, task.DueDate)
	assert.Equal(t, 3, task.SortOrder)
}

func TestOptional_RejectsWrongType(t *testing.T) {
	var req UpdateTaskRequest
	assert.Error(t, json.Unmarshal([]byte(`{"sort_order":"first"}`), &req))
}

func TestCreateTaskRequest_Defaults(t *testing.T) {
	req := CreateTaskRequest{Title: "Design"}
	require.NoError(t, req.Validate())

	task := req.ToTask()
	assert.Equal(t, models.RateTypeSpot, task.RateType)
	assert.Equal(t, models.TaskStatusPending, task.Status)
	assert.Equal(t, models.TaskInvoiceStatusNotInvoiced, task.InvoiceStatus)
}

func TestCreateTaskRequest_Validate(t *testing.T) {
	err := (&CreateTaskRequest{}).Validate()
	assert.True(t, ierr.IsValidation(err))

	err = (&CreateTaskRequest{Title: "x", Status: "archived"}).Validate()
	assert.True(t, ierr.IsValidation(err))
}

func TestCreateTimeEntryRequest_Validate(t *testing.T) {
	minutes := 30
	assert.NoError(t, (&CreateTimeEntryRequest{TaskID: 1, DurationMinutes: &minutes}).Validate())

	assert.True(t, ierr.IsValidation((&CreateTimeEntryRequest{TaskID: 1}).Validate()))
	assert.True(t, ierr.IsValidation((&CreateTimeEntryRequest{DurationMinutes: &minutes}).Validate()))

	negative := -5
	assert.True(t, ierr.IsValidation((&CreateTimeEntryRequest{TaskID: 1, DurationMinutes: &negative}).Validate()))

	zero := 0
	assert.NoError(t, (&CreateTimeEntryRequest{TaskID: 1, DurationMinutes: &zero}).Validate())
}

func TestProjectRequest_ApplyDefaultsPricingType(t *testing.T) {
	req := ProjectRequest{Name: "Site", HourlyRate: 5000}
	require.NoError(t, req.Validate())

	var project models.Project
	req.Apply(&project)
	assert.Equal(t, models.PricingTypeHourly, project.PricingType)
	assert.Equal(t, 5000.0, project.HourlyRate)

	assert.True(t, ierr.IsValidation((&ProjectRequest{Name: "x", PricingType: "retainer"}).Validate()))
}

func TestUpdateInvoiceRequest_Validate(t *testing.T) {
	assert.NoError(t, (&UpdateInvoiceRequest{Status: models.InvoiceStatusSent}).Validate())
	assert.True(t, ierr.IsValidation((&UpdateInvoiceRequest{}).Validate()))
	assert.True(t, ierr.IsValidation((&UpdateInvoiceRequest{Status: "void"}).Validate()))
}
