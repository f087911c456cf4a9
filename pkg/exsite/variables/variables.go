// Package variables reads ordered site variable defaults from a template sheet.
package variables

import (
	"fmt"
	"strings"

	"github.com/ukaji3/exsite-go/pkg/exsite/models"
	"go.uber.org/zap"
)

// DefaultSheet is the template sheet name used when none is configured.
const DefaultSheet = "Site Variables"

// missingValue is used when a variable row has no second column.
const missingValue = "0"

// headerKeywords mark section header rows in the template sheet.
var headerKeywords = []string{"branch type", "template", "type:"}

// TemplateUnavailableError reports a template sheet that is missing or
// unreadable. Resolution degrades to an empty list.
type TemplateUnavailableError struct {
	SheetName string
}

func (e *TemplateUnavailableError) Error() string {
	return fmt.Sprintf("template sheet %q not found", e.SheetName)
}

// Options configures template resolution.
type Options struct {
	// SheetName is the template sheet to read.
	SheetName string
	// StartMarker, when set, delays collection until the row whose name equals
	// it exactly. Empty means collect from the first row.
	StartMarker string
	// Logger receives warnings. Nil disables logging.
	Logger *zap.Logger
}

// Resolve returns the template variables of wb in row order.
// A missing sheet yields an empty list and a *TemplateUnavailableError that
// callers may log and ignore.
func Resolve(wb *models.Workbook, opts Options) ([]models.Variable, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	sheetName := opts.SheetName
	if sheetName == "" {
		sheetName = DefaultSheet
	}

	sheet, ok := wb.Sheet(sheetName)
	if !ok {
		err := &TemplateUnavailableError{SheetName: sheetName}
		log.Warn("could not load variable template", zap.String("sheet", sheetName), zap.Error(err))
		return []models.Variable{}, err
	}

	vars := FromSheet(sheet, opts.StartMarker)
	log.Info("loaded variable templates", zap.String("sheet", sheetName), zap.Int("count", len(vars)))
	return vars, nil
}

// FromSheet extracts variables from the first two columns of a sheet.
// Duplicate names are kept as separate entries.
func FromSheet(sheet models.Sheet, startMarker string) []models.Variable {
	vars := []models.Variable{}
	started := startMarker == ""

	for _, row := range sheet.Rows {
		if len(row) == 0 {
			continue
		}
		first := row[0]
		if first.IsEmpty() || !first.IsText() {
			continue
		}
		name := strings.TrimSpace(first.String())
		if isHeader(name) {
			continue
		}
		if !started && name == startMarker {
			started = true
		}
		if !started {
			continue
		}

		value := missingValue
		if len(row) > 1 && !row[1].IsEmpty() {
			value = row[1].String()
		}
		if value == "" || value == "undefined" {
			continue
		}
		vars = append(vars, models.Variable{Name: name, Value: value})
	}

	return vars
}

func isHeader(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range headerKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
