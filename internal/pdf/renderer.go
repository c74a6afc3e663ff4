// Package pdf renders invoices as fixed-layout PDF documents.
package pdf

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"github.com/yukikurage/task-invoice-manager/internal/models"
)

// Layout, in points on an A4 page
const (
	margin      = 50.0
	rightEdge   = 550.0
	rowHeight   = 25.0
	lineHeight  = 16.0
	colDescX    = 50.0
	colQtyX     = 300.0
	colPriceX   = 380.0
	colAmountX  = 480.0
	colDescW    = colQtyX - colDescX - 10
	colQtyW     = colPriceX - colQtyX - 10
	colPriceW   = colAmountX - colPriceX - 10
	colAmountW  = rightEdge - colAmountX
	contentW    = rightEdge - margin
	bodyFamily  = "Helvetica"
	utf8Family  = "InvoiceBody"
	titleSize   = 24.0
	headingSize = 12.0
	bodySize    = 10.0
)

// Options configures the renderer
type Options struct {
	CurrencySymbol   string
	CurrencyDecimals int32
	// FontPath points to a TrueType font registered for UTF-8 text. The
	// built-in Helvetica with a cp1252 translation is used when empty.
	FontPath string
}

// Document is everything printed on one invoice. Project is nil when the
// invoice's project has been removed.
type Document struct {
	Invoice models.Invoice
	Project *models.Project
	Items   []models.InvoiceItem
}

// Renderer draws invoice documents
type Renderer struct {
	opts Options
}

// NewRenderer creates a new Renderer
func NewRenderer(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

// Render writes doc as a PDF to w. The document is assembled in memory
// first and copied to w once complete.
func (r *Renderer) Render(w io.Writer, doc Document) error {
	f, err := r.build(doc)
	if err != nil {
		return err
	}
	if err := f.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}

// page tracks the drawing state of one document
type page struct {
	f      *gofpdf.Fpdf
	family string
	tr     func(string) string
	y      float64
	bottom float64
}

func (r *Renderer) build(doc Document) (*gofpdf.Fpdf, error) {
	fontDir, fontFile := "", ""
	if r.opts.FontPath != "" {
		fontDir, fontFile = filepath.Split(r.opts.FontPath)
	}

	f := gofpdf.New("P", "pt", "A4", fontDir)
	f.SetMargins(margin, margin, margin)
	f.SetAutoPageBreak(true, margin)
	f.SetTitle("Invoice "+doc.Invoice.InvoiceNumber, true)

	p := &page{f: f, family: bodyFamily, tr: f.UnicodeTranslatorFromDescriptor("")}
	if r.opts.FontPath != "" {
		f.AddUTF8Font(utf8Family, "", fontFile)
		f.AddUTF8Font(utf8Family, "B", fontFile)
		p.family = utf8Family
		p.tr = func(s string) string { return s }
	}
	if err := f.Error(); err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	_, pageH := f.GetPageSize()
	p.bottom = pageH - margin

	f.AddPage()
	p.y = margin

	r.drawHeader(p, doc)
	r.drawItems(p, doc.Items)
	r.drawTotal(p, doc.Invoice.TotalAmount)
	r.drawNotes(p, doc.Invoice.Notes)

	if err := f.Error(); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return f, nil
}

func (r *Renderer) drawHeader(p *page, doc Document) {
	inv := doc.Invoice

	p.font("B", titleSize)
	p.cell(margin, contentW, 30, "INVOICE", "L")
	p.y += 40

	p.font("", bodySize)
	p.cell(margin, contentW, lineHeight, "Invoice number: "+inv.InvoiceNumber, "L")
	p.y += lineHeight
	p.cell(margin, contentW, lineHeight, "Issue date: "+inv.IssueDate.String(), "L")
	p.y += lineHeight
	if inv.DueDate != nil {
		p.cell(margin, contentW, lineHeight, "Due date: "+inv.DueDate.String(), "L")
		p.y += lineHeight
	}

	if project := doc.Project; project != nil {
		p.y += lineHeight
		if project.ClientName != nil && *project.ClientName != "" {
			p.font("B", headingSize)
			p.cell(margin, contentW, lineHeight, "Bill to: "+*project.ClientName, "L")
			p.y += lineHeight + 4
		}

		p.font("", bodySize)
		p.cell(margin, contentW, lineHeight, "Project: "+project.Name, "L")
		p.y += lineHeight
		if project.Description != nil && *project.Description != "" {
			p.multi(*project.Description)
		}
	}

	p.y += 20
	r.drawTableHeader(p)
}

func (r *Renderer) drawTableHeader(p *page) {
	if p.y+rowHeight > p.bottom {
		p.newPage()
	}

	p.font("B", bodySize)
	p.cell(colDescX, colDescW, rowHeight, "Description", "L")
	p.cell(colQtyX, colQtyW, rowHeight, "Qty", "L")
	p.cell(colPriceX, colPriceW, rowHeight, "Unit price", "L")
	p.cell(colAmountX, colAmountW, rowHeight, "Amount", "R")
	p.y += rowHeight
	p.f.Line(margin, p.y, rightEdge, p.y)
	p.font("", bodySize)
}

func (r *Renderer) drawItems(p *page, items []models.InvoiceItem) {
	for _, item := range items {
		if p.y+rowHeight > p.bottom {
			p.newPage()
			r.drawTableHeader(p)
		}

		p.cell(colDescX, colDescW, rowHeight, p.fit(item.Description, colDescW), "L")
		p.cell(colQtyX, colQtyW, rowHeight, FormatQuantity(item.Quantity), "L")
		p.cell(colPriceX, colPriceW, rowHeight, r.FormatCurrency(item.UnitPrice), "L")
		p.cell(colAmountX, colAmountW, rowHeight, r.FormatCurrency(item.Amount), "R")
		p.y += rowHeight
	}
}

func (r *Renderer) drawTotal(p *page, total float64) {
	// rule, gap and total line must stay together
	if p.y+10+rowHeight > p.bottom {
		p.newPage()
	}

	p.y += 5
	p.f.Line(margin, p.y, rightEdge, p.y)
	p.y += 5

	p.font("B", headingSize)
	p.cell(colPriceX, colPriceW, rowHeight, "Total", "L")
	p.cell(colAmountX, colAmountW, rowHeight, r.FormatCurrency(total), "R")
	p.y += rowHeight
}

func (r *Renderer) drawNotes(p *page, notes *string) {
	if notes == nil || *notes == "" {
		return
	}

	p.y += 20
	if p.y+2*lineHeight > p.bottom {
		p.newPage()
	}

	p.font("B", bodySize)
	p.cell(margin, contentW, lineHeight, "Notes:", "L")
	p.y += lineHeight
	p.font("", bodySize)
	p.multi(*notes)
}

func (p *page) font(style string, size float64) {
	p.f.SetFont(p.family, style, size)
}

func (p *page) cell(x, w, h float64, text, align string) {
	p.f.SetXY(x, p.y)
	p.f.CellFormat(w, h, p.tr(text), "", 0, align+"M", false, 0, "")
}

// multi writes wrapping text across the content width, following page breaks
func (p *page) multi(text string) {
	p.f.SetXY(margin, p.y)
	p.f.MultiCell(contentW, lineHeight, p.tr(text), "", "L", false)
	p.y = p.f.GetY()
}

func (p *page) newPage() {
	p.f.AddPage()
	p.y = margin
}

// fit shortens text with an ellipsis until it fits width
func (p *page) fit(text string, width float64) string {
	if p.f.GetStringWidth(p.tr(text)) <= width {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + "..."
		if p.f.GetStringWidth(p.tr(candidate)) <= width {
			return candidate
		}
	}
	return ""
}
