package sales

import (
	"fmt"
	"strings"

	"github.com/vladislav25v/sales-bonus/internal/domain/shared"
)

// Validation messages
const (
	MsgIncorrectData    = "incorrect input data"
	MsgIncorrectOptions = "incorrect options"
	MsgMissingPolicies  = "missing required functions in options"
)

// ValidationError is returned when a report run is rejected before any
// aggregation starts. It is not retryable: fix the input and resubmit.
type ValidationError struct {
	Message string
	Fields  []string
}

// NewValidationError creates a validation error for the given fields
func NewValidationError(message string, fields ...string) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return e.Message + ": " + strings.Join(e.Fields, ", ")
}

// Unwrap lets errors.Is match shared.ErrInvalidInput
func (e *ValidationError) Unwrap() error {
	return shared.ErrInvalidInput
}

// Reference kinds reported by IntegrityError
const (
	RefSeller  = "seller"
	RefProduct = "product"
)

// IntegrityError is returned when a purchase record points at a seller id
// or product SKU that is not part of the dataset.
type IntegrityError struct {
	Kind      string
	Key       string
	ReceiptID string
}

// Error implements the error interface
func (e *IntegrityError) Error() string {
	if e.ReceiptID == "" {
		return fmt.Sprintf("purchase record references unknown %s %q", e.Kind, e.Key)
	}
	return fmt.Sprintf("purchase record %q references unknown %s %q", e.ReceiptID, e.Kind, e.Key)
}

// Unwrap lets errors.Is match shared.ErrIntegrityViolation
func (e *IntegrityError) Unwrap() error {
	return shared.ErrIntegrityViolation
}
