package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yukikurage/task-invoice-manager/internal/dto"
	"github.com/yukikurage/task-invoice-manager/internal/services"
)

type CompanyHandler struct {
	companyService *services.CompanyService
}

func NewCompanyHandler(companyService *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
	}
}

// ListCompanies returns all companies ordered by name
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	companies, err := h.companyService.ListCompanies()
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, companies)
}

// GetCompany returns a specific company by ID
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	company, err := h.companyService.GetCompany(id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, company)
}

// CreateCompany creates a new company
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req dto.CompanyRequest
	if !bindJSON(c, &req) {
		return
	}

	company, err := h.companyService.CreateCompany(req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, company)
}

// UpdateCompany replaces an existing company
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.CompanyRequest
	if !bindJSON(c, &req) {
		return
	}

	company, err := h.companyService.UpdateCompany(id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, company)
}

// DeleteCompany deletes a company
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.companyService.DeleteCompany(id); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Company deleted successfully"})
}
