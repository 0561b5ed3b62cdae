package entity

import (
	"fmt"
	"strings"
)

// Row is the flat snake_case storage representation handed to the database
// collaborator. Values are nil for NULL columns; array-valued concepts are
// stored JSON-encoded in a single column.
type Row map[string]any

// FieldError attributes a single validation message to a field path,
// e.g. "shippingAddress" or "items[2].quantity".
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationError carries every violation found in one submission so the
// caller can render them all at once instead of only the first.
type ValidationError struct {
	Fields []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Path, f.Message))
	}
	return strings.Join(msgs, "; ")
}

// Has reports whether a violation was recorded for the given path.
func (e *ValidationError) Has(path string) bool {
	for _, f := range e.Fields {
		if f.Path == path {
			return true
		}
	}
	return false
}

// PartialFailure reports that the order row was created but a follow-up
// item-row write failed. There is no cross-table transaction on this path,
// so the assigned id must survive to the caller instead of being lost.
type PartialFailure struct {
	OrderID int
	Err     error
}

func (e *PartialFailure) Error() string {
	return fmt.Sprintf("order %d created but items failed: %v", e.OrderID, e.Err)
}

func (e *PartialFailure) Unwrap() error {
	return e.Err
}

// SubmitResult is the outcome of a successful (or partially successful)
// order submission.
type SubmitResult struct {
	ID      int    `json:"id"`
	Warning string `json:"warning,omitempty"`
}
