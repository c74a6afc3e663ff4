package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yukikurage/task-invoice-manager/internal/dto"
)

// Health reports that the API is up
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "ok",
		Message: "Task Invoice Manager API is running",
	})
}
