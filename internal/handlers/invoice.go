package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yukikurage/task-invoice-manager/internal/constants"
	"github.com/yukikurage/task-invoice-manager/internal/dto"
	"github.com/yukikurage/task-invoice-manager/internal/services"
	"github.com/yukikurage/task-invoice-manager/internal/utils"
)

type InvoiceHandler struct {
	invoiceService *services.InvoiceService
}

func NewInvoiceHandler(invoiceService *services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
	}
}

// ListInvoices returns invoice headers newest first
// Can filter by project_id
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	projectID, err := utils.OptionalQueryID(c, "project_id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	invoices, err := h.invoiceService.ListInvoices(projectID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, invoices)
}

// GetInvoice returns an invoice with its items
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.GetInvoice(id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// CreateInvoice bills a project's tasks into a new draft invoice
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if !bindJSON(c, &req) {
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(services.NewCreateInvoiceInput(req))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, invoice)
}

// UpdateInvoice overwrites status, notes and due date
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateInvoiceRequest
	if !bindJSON(c, &req) {
		return
	}

	invoice, err := h.invoiceService.UpdateInvoice(id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// DeleteInvoice deletes an invoice and its items
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.invoiceService.DeleteInvoice(id); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted successfully"})
}

// DownloadInvoicePDF writes the rendered invoice as an attachment
func (h *InvoiceHandler) DownloadInvoicePDF(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	doc, err := h.invoiceService.LoadInvoiceDocument(id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Header("Content-Type", constants.PDFContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.pdf", doc.Invoice.InvoiceNumber))
	c.Status(http.StatusOK)

	if err := h.invoiceService.RenderInvoice(c.Writer, doc); err != nil {
		if !c.Writer.Written() {
			c.Writer.Header().Del("Content-Type")
			c.Writer.Header().Del("Content-Disposition")
		}
		_ = c.Error(err)
	}
}
