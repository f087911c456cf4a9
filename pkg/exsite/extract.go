package exsite

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/ukaji3/exsite-go/pkg/exsite/discovery"
	"github.com/ukaji3/exsite-go/pkg/exsite/models"
	"github.com/ukaji3/exsite-go/pkg/exsite/parser"
	"github.com/ukaji3/exsite-go/pkg/exsite/record"
	"github.com/ukaji3/exsite-go/pkg/exsite/variables"
	"go.uber.org/zap"
)

// Result is the outcome of one extraction.
type Result struct {
	// Record is the assembled site record.
	Record models.CanonicalRecord `json:"record"`
	// Raw holds the fields discovered around the identifier.
	Raw *models.RawRecord `json:"raw"`
	// Variables lists the template defaults in row order.
	Variables []models.Variable `json:"variables"`
	// Warnings collects non-fatal problems: skipped sheets and a missing
	// template sheet.
	Warnings []error `json:"-"`
}

// Extract reads the workbook at path and builds the record for targetID.
func Extract(path, targetID string, opts Options) (*Result, error) {
	if err := CheckIdentifier(targetID, opts.MinIdentifierLength); err != nil {
		return nil, err
	}

	wb, warnings, err := parser.ReadWorkbook(path, opts.logger())
	if err != nil {
		return nil, err
	}

	res, err := ExtractWorkbook(wb, targetID, opts)
	if err != nil {
		return nil, err
	}
	res.Warnings = append(warnings, res.Warnings...)
	return res, nil
}

// ExtractWorkbook builds the record for targetID from an already loaded
// workbook.
func ExtractWorkbook(wb *models.Workbook, targetID string, opts Options) (*Result, error) {
	log := opts.logger()

	raw, err := discovery.Discover(wb, targetID, opts.discoveryOptions())
	if err != nil {
		return nil, err
	}

	res := &Result{Raw: raw}
	vars, err := variables.Resolve(wb, opts.variableOptions())
	if err != nil {
		var unavailable *variables.TemplateUnavailableError
		if !errors.As(err, &unavailable) {
			return nil, err
		}
		res.Warnings = append(res.Warnings, err)
	}
	res.Variables = vars

	res.Record = record.Assemble(raw, vars, targetID, opts.Group)

	log.Info("record assembled",
		zap.String("site_id", targetID),
		zap.String("name", res.Record.Name),
		zap.Int("vars", len(vars)))
	return res, nil
}

// CheckIdentifier rejects identifiers shorter than minLength characters
// after trimming.
func CheckIdentifier(id string, minLength int) error {
	if utf8.RuneCountInString(strings.TrimSpace(id)) < minLength {
		return invalidIdentifier(id, minLength)
	}
	return nil
}
