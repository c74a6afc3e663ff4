package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yukikurage/task-invoice-manager/internal/dto"
	"github.com/yukikurage/task-invoice-manager/internal/repository"
	"github.com/yukikurage/task-invoice-manager/internal/services"
	"github.com/yukikurage/task-invoice-manager/internal/utils"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// ListProjects returns projects newest first
// Can filter by company_id
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	companyID, err := utils.OptionalQueryID(c, "company_id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	projects, err := h.projectService.ListProjects(repository.ProjectFilter{CompanyID: companyID})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.ProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projectService.CreateProject(req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.ProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projectService.UpdateProject(id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject deletes a project together with its tasks and invoices
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(id); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
