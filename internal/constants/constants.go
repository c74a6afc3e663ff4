package constants

// Context keys
const (
	ContextKeyRequestID = "request_id"
	ContextKeyID        = "id"
)

// Headers
const (
	HeaderRequestID = "X-Request-ID"
)

// Invoicing
const (
	// InvoiceNumberPrefix is prepended to every generated invoice number
	InvoiceNumberPrefix = "INV-"

	// MaxInvoiceNumberAttempts bounds regeneration after a unique-index collision
	MaxInvoiceNumberAttempts = 3

	// DefaultItemQuantity is the quantity recorded on computed invoice lines
	DefaultItemQuantity = 1.0

	// DateLayout is the wire and storage format of calendar dates
	DateLayout = "2006-01-02"
)

// Document rendering
const (
	PDFContentType = "application/pdf"
)
