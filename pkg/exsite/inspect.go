package exsite

import (
	"github.com/ukaji3/exsite-go/pkg/exsite/discovery"
	"github.com/ukaji3/exsite-go/pkg/exsite/models"
	"github.com/ukaji3/exsite-go/pkg/exsite/parser"
)

// SheetReport describes how discovery treats one sheet.
type SheetReport struct {
	Sheet      string            `json:"sheet"`
	Excluded   bool              `json:"excluded"`
	Candidates int               `json:"candidates"`
	Retained   bool              `json:"retained"`
	Sample     []string          `json:"sample,omitempty"`
	DataRange  *parser.DataRange `json:"data_range,omitempty"`
}

// Inspect reads the workbook at path and reports every sheet.
func Inspect(path string, opts Options) ([]SheetReport, []error, error) {
	wb, warnings, err := parser.ReadWorkbook(path, opts.logger())
	if err != nil {
		return nil, nil, err
	}
	return InspectWorkbook(wb, opts), warnings, nil
}

// InspectWorkbook reports every sheet of an already loaded workbook in
// declaration order.
func InspectWorkbook(wb *models.Workbook, opts Options) []SheetReport {
	dopts := opts.discoveryOptions()
	reports := make([]SheetReport, 0, len(wb.Sheets))

	for _, sheet := range wb.Sheets {
		report := SheetReport{
			Sheet:    sheet.Name,
			Excluded: dopts.IsExcluded(sheet.Name),
		}
		pool := discovery.ScanSheet(sheet, dopts.MinIdentifierLength)
		report.Candidates = len(pool.Candidates)
		report.Retained = !report.Excluded && discovery.IsLookupTable(pool)
		report.Sample = pool.Sample(5)
		if dr, ok := parser.DetectDataRange(sheet, parser.DefaultRangeParams()); ok {
			report.DataRange = &dr
		}
		reports = append(reports, report)
	}

	return reports
}
