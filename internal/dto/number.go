// Package dto contains the wire-facing order types and the row mapper that
// translates between the domain order and its flat storage representation.
package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Number is a JSON scalar that tolerates numeric fields arriving either as
// numbers or as numeric strings. The raw token is kept as-is so the
// validator can reject garbage with a field-specific message instead of a
// decode-time type error.
type Number string

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Number(strings.TrimSpace(s))
		return nil
	}
	*n = Number(data)
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if n == "" {
		return []byte("null"), nil
	}
	if _, err := strconv.ParseFloat(string(n), 64); err == nil {
		return []byte(n), nil
	}
	return json.Marshal(string(n))
}

// Present reports whether any value was provided. Empty string and JSON
// null both count as "not provided".
func (n Number) Present() bool {
	return n != ""
}

func (n Number) Float64() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}

// Int parses the value as an integer. Numeric strings are accepted,
// fractional values are not.
func (n Number) Int() (int, error) {
	f, err := n.Float64()
	if err != nil {
		return 0, err
	}
	i := int(f)
	if float64(i) != f {
		return 0, strconv.ErrSyntax
	}
	return i, nil
}

// IsPositiveInt reports whether the value parses as an integer greater
// than zero.
func (n Number) IsPositiveInt() bool {
	i, err := n.Int()
	return err == nil && i > 0
}
