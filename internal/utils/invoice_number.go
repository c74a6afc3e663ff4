package utils

import (
	"github.com/oklog/ulid/v2"

	"github.com/yukikurage/task-invoice-manager/internal/constants"
)

// GenerateInvoiceNumber returns a new invoice number in the format INV-<ULID>.
// ULIDs sort by creation time, so numbers issued later sort later.
func GenerateInvoiceNumber() string {
	return constants.InvoiceNumberPrefix + ulid.Make().String()
}
