package discovery

import (
	"fmt"
	"strings"
)

// SheetSample lists some identifiers available in one lookup sheet.
type SheetSample struct {
	Sheet string   `json:"sheet"`
	IDs   []string `json:"ids"`
}

// NotFoundError reports an identifier missing from every lookup sheet.
// Samples are for diagnostics only.
type NotFoundError struct {
	Target  string
	Samples []SheetSample
}

func (e *NotFoundError) Error() string {
	if len(e.Samples) == 0 {
		return fmt.Sprintf("site id %q not found: no lookup sheets in workbook", e.Target)
	}
	return fmt.Sprintf("site id %q not found in %d lookup sheet(s)", e.Target, len(e.Samples))
}

// SampleIDs flattens the per-sheet samples, keeping sheet order.
func (e *NotFoundError) SampleIDs() []string {
	var ids []string
	for _, s := range e.Samples {
		ids = append(ids, s.IDs...)
	}
	return ids
}

// Describe renders the samples one sheet per line.
func (e *NotFoundError) Describe() string {
	var b strings.Builder
	for _, s := range e.Samples {
		fmt.Fprintf(&b, "%s: %s\n", s.Sheet, strings.Join(s.IDs, ", "))
	}
	return b.String()
}
