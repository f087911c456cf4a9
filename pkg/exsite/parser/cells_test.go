package parser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ukaji3/exsite-go/pkg/exsite/models"
	"github.com/xuri/excelize/v2"
)

func TestExtractCells(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Header1")
	f.SetCellValue(sheetName, "B1", "Header2")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B2", 200.5)
	f.SetCellValue(sheetName, "A3", "Text")

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	sheet, err := ExtractCells(f2, sheetName)
	if err != nil {
		t.Fatalf("ExtractCells failed: %v", err)
	}

	if sheet.RowCount() != 3 {
		t.Errorf("Expected 3 rows, got %d", sheet.RowCount())
	}
	if sheet.ColCount() != 2 {
		t.Errorf("Expected 2 columns, got %d", sheet.ColCount())
	}

	if got := sheet.Cell(0, 0).Value; got != "Header1" {
		t.Errorf("Expected 'Header1', got %v", got)
	}
	if !sheet.Cell(0, 0).IsText() {
		t.Errorf("Expected A1 to be text")
	}

	// Check numeric values
	if got := sheet.Cell(1, 0).Value; got != int64(100) {
		t.Errorf("Expected int64(100), got %v (type: %T)", got, got)
	}
	if got := sheet.Cell(1, 1).Value; got != 200.5 {
		t.Errorf("Expected 200.5, got %v", got)
	}

	// Short rows are padded
	if !sheet.Cell(2, 1).IsEmpty() {
		t.Errorf("Expected B3 to be empty, got %v", sheet.Cell(2, 1).Value)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}

func TestTypedValue(t *testing.T) {
	tests := []struct {
		cellType excelize.CellType
		input    string
		expected interface{}
	}{
		{excelize.CellTypeSharedString, "1234", "1234"},
		{excelize.CellTypeInlineString, "SITE001", "SITE001"},
		{excelize.CellTypeNumber, "1234", int64(1234)},
		{excelize.CellTypeUnset, "12.5", 12.5},
		{excelize.CellTypeNumber, "01-02-24", models.Formatted("01-02-24")},
		{excelize.CellTypeBool, "TRUE", true},
		{excelize.CellTypeError, "#N/A", models.Formatted("#N/A")},
	}

	for _, tt := range tests {
		result := typedValue(tt.cellType, tt.input)
		if result != tt.expected {
			t.Errorf("typedValue(%v, %q) = %v (type: %T), expected %v (type: %T)",
				tt.cellType, tt.input, result, result, tt.expected, tt.expected)
		}
	}
}

func TestReadWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Sites"); err != nil {
		t.Fatalf("SetSheetName failed: %v", err)
	}
	if _, err := f.NewSheet("Site Variables"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	f.SetCellValue("Sites", "A1", "SITE001")
	f.SetCellValue("Site Variables", "A1", "vlan")

	tmpFile := filepath.Join(t.TempDir(), "book.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	wb, warnings, err := ReadWorkbook(tmpFile, nil)
	if err != nil {
		t.Fatalf("ReadWorkbook failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", warnings)
	}
	if wb.BookName != "book.xlsx" {
		t.Errorf("Expected book name 'book.xlsx', got %q", wb.BookName)
	}
	names := wb.SheetNames()
	if len(names) != 2 || names[0] != "Sites" || names[1] != "Site Variables" {
		t.Errorf("Unexpected sheet order: %v", names)
	}
}

func TestReadWorkbookErrors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := ReadWorkbook(filepath.Join(dir, "missing.xlsx"), nil)
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got %v", err)
	}

	bogus := filepath.Join(dir, "bogus.xlsx")
	if err := os.WriteFile(bogus, []byte("not a workbook"), 0644); err != nil {
		t.Fatalf("Failed to write bogus file: %v", err)
	}
	_, _, err = ReadWorkbook(bogus, nil)
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat, got %v", err)
	}
}
