package parser

import (
	"testing"

	"github.com/ukaji3/exsite-go/pkg/exsite/models"
)

func textRow(values ...string) []models.Cell {
	row := make([]models.Cell, len(values))
	for i, v := range values {
		if v != "" {
			row[i] = models.Cell{Value: v}
		}
	}
	return row
}

func TestDetectDataRange(t *testing.T) {
	sheet := models.NewSheet("Sites", [][]models.Cell{
		textRow(),
		textRow("", "ID", "Address", "Location"),
		textRow("", "SITE001", "1 Main St", "Springfield"),
		textRow("", "SITE002", "", "Shelbyville"),
	})

	got, ok := DetectDataRange(sheet, DefaultRangeParams())
	if !ok {
		t.Fatalf("Expected a data range")
	}
	if got.Ref != "B2:D4" {
		t.Errorf("Expected B2:D4, got %s", got.Ref)
	}
	if got.NonEmpty != 8 {
		t.Errorf("Expected 8 non-empty cells, got %d", got.NonEmpty)
	}
}

func TestDetectDataRangeTooSparse(t *testing.T) {
	tests := []struct {
		name  string
		sheet models.Sheet
	}{
		{"empty", models.NewSheet("Empty", nil)},
		{"two cells", models.NewSheet("Notes", [][]models.Cell{textRow("a", "b")})},
	}

	for _, tt := range tests {
		if _, ok := DetectDataRange(tt.sheet, DefaultRangeParams()); ok {
			t.Errorf("%s: expected no data range", tt.name)
		}
	}
}
