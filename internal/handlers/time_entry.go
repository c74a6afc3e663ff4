package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yukikurage/task-invoice-manager/internal/dto"
	"github.com/yukikurage/task-invoice-manager/internal/services"
	"github.com/yukikurage/task-invoice-manager/internal/utils"
)

type TimeEntryHandler struct {
	timeEntryService *services.TimeEntryService
}

func NewTimeEntryHandler(timeEntryService *services.TimeEntryService) *TimeEntryHandler {
	return &TimeEntryHandler{
		timeEntryService: timeEntryService,
	}
}

// ListTimeEntries returns the entries of the task given by task_id
func (h *TimeEntryHandler) ListTimeEntries(c *gin.Context) {
	taskID, err := utils.OptionalQueryID(c, "task_id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	entries, err := h.timeEntryService.ListTimeEntries(taskID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (h *TimeEntryHandler) GetTimeEntry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	entry, err := h.timeEntryService.GetTimeEntry(id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *TimeEntryHandler) CreateTimeEntry(c *gin.Context) {
	var req dto.CreateTimeEntryRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.timeEntryService.CreateTimeEntry(req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *TimeEntryHandler) UpdateTimeEntry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateTimeEntryRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.timeEntryService.UpdateTimeEntry(id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *TimeEntryHandler) DeleteTimeEntry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.timeEntryService.DeleteTimeEntry(id); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Time entry deleted successfully"})
}
