package errors

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// ErrorBuilder chains the client hint and details onto an error before it is
// marked with one of the sentinels
type ErrorBuilder struct {
	err error
}

// NewError starts a chain from a new internal message
func NewError(msg string) *ErrorBuilder {
	return &ErrorBuilder{err: errors.New(msg)}
}

// WithError starts a chain from a lower level error, keeping it as the cause
func WithError(err error) *ErrorBuilder {
	return &ErrorBuilder{err: err}
}

// WithHint sets the message shown in the API response
func (b *ErrorBuilder) WithHint(hint string) *ErrorBuilder {
	b.err = errors.WithHint(b.err, hint)
	return b
}

func (b *ErrorBuilder) WithHintf(format string, args ...any) *ErrorBuilder {
	b.err = errors.WithHintf(b.err, format, args...)
	return b
}

// WithReportableDetails attaches details rendered under "details" in the API
// response. Details that cannot be encoded are dropped.
func (b *ErrorBuilder) WithReportableDetails(details map[string]any) *ErrorBuilder {
	encoded, err := json.Marshal(details)
	if err != nil {
		return b
	}
	b.err = errors.WithSafeDetails(b.err, jsonDetailsPrefix+"%s", errors.Safe(string(encoded)))
	return b
}

// Mark ends the chain, tagging the error with its category
func (b *ErrorBuilder) Mark(category error) error {
	return errors.Mark(b.err, category)
}
