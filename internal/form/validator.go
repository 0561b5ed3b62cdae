// Package form validates inbound request payloads. Violations are
// accumulated into entity.ValidationError so a submission with several
// problems reports all of them at once, keyed by field path.
package form

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/printline/printline-manager/internal/entity"
)

// Errors collects field violations in check order.
type Errors struct {
	fields []entity.FieldError
}

// Check runs ozzo rules against a single value and records any violation
// under the given path. Unlike validation.ValidateStruct this keeps full
// control of the path, which is what indexed item sub-forms need.
func (e *Errors) Check(path string, value interface{}, rules ...validation.Rule) {
	if err := validation.Validate(value, rules...); err != nil {
		e.Add(path, err.Error())
	}
}

// Add records a violation verbatim.
func (e *Errors) Add(path, message string) {
	e.fields = append(e.fields, entity.FieldError{Path: path, Message: message})
}

// Empty reports whether no violation has been recorded yet.
func (e *Errors) Empty() bool {
	return len(e.fields) == 0
}

// Err returns the accumulated violations as a *entity.ValidationError, or
// nil when the payload was clean.
func (e *Errors) Err() error {
	if len(e.fields) == 0 {
		return nil
	}
	return &entity.ValidationError{Fields: e.fields}
}

func itemPath(idx int, field string) string {
	return fmt.Sprintf("items[%d].%s", idx, field)
}

// blank implements the "empty string and absent are the same thing" rule
// for required-field checks.
func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
