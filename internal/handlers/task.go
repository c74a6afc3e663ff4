package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yukikurage/task-invoice-manager/internal/dto"
	"github.com/yukikurage/task-invoice-manager/internal/models"
	"github.com/yukikurage/task-invoice-manager/internal/repository"
	"github.com/yukikurage/task-invoice-manager/internal/services"
	"github.com/yukikurage/task-invoice-manager/internal/utils"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns tasks in board order
// Can filter by project_id, company_id, status and invoice_status
func (h *TaskHandler) ListTasks(c *gin.Context) {
	projectID, err := utils.OptionalQueryID(c, "project_id")
	if err != nil {
		_ = c.Error(err)
		return
	}
	companyID, err := utils.OptionalQueryID(c, "company_id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	filter := repository.TaskFilter{
		ProjectID:     projectID,
		CompanyID:     companyID,
		Status:        utils.OptionalQuery[models.TaskStatus](c, "status"),
		InvoiceStatus: utils.OptionalQuery[models.TaskInvoiceStatus](c, "invoice_status"),
	}

	tasks, err := h.taskService.ListTasks(filter)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GetTask returns a specific task by ID
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// CreateTask creates a new task
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.taskService.CreateTask(req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// UpdateTask updates only the fields present in the body
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.taskService.UpdateTask(id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask deletes a task
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(id); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
