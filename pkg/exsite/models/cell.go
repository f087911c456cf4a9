// Package models defines the grid and record structures used for site extraction.
package models

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Formatted is a display-formatted value read from a non-text cell that could
// not be parsed as a number (dates, currency, percentages).
type Formatted string

// Cell holds an optional scalar value.
// Value is nil (empty), string (text), int64, float64, bool or Formatted.
type Cell struct {
	Value interface{} `json:"v,omitempty"`
}

// IsEmpty reports whether the cell carries no value.
func (c Cell) IsEmpty() bool {
	switch v := c.Value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case Formatted:
		return v == ""
	}
	return false
}

// IsText reports whether the cell holds a text value.
func (c Cell) IsText() bool {
	_, ok := c.Value.(string)
	return ok
}

// String returns the stringified cell value.
func (c Cell) String() string {
	switch v := c.Value.(type) {
	case nil:
		return ""
	case string:
		return v
	case Formatted:
		return string(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		if v {
			return "True"
		}
		return "False"
	}
	return ""
}

// Trimmed returns the stringified value without surrounding whitespace.
func (c Cell) Trimmed() string {
	return strings.TrimSpace(c.String())
}

// Len returns the number of characters in the stringified value.
func (c Cell) Len() int {
	return utf8.RuneCountInString(c.String())
}
