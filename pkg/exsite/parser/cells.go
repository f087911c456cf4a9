package parser

import (
	"strconv"

	"github.com/ukaji3/exsite-go/pkg/exsite/models"
	"github.com/xuri/excelize/v2"
)

// ExtractCells reads a sheet into a dense grid.
// Text cells keep their string value; numeric cells are parsed into int64 or
// float64 and fall back to models.Formatted when the display value is not a
// plain number.
func ExtractCells(f *excelize.File, sheetName string) (models.Sheet, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return models.Sheet{}, err
	}

	grid := make([][]models.Cell, len(rows))
	for rowIdx, row := range rows {
		cells := make([]models.Cell, len(row))
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return models.Sheet{}, err
			}
			cellType, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return models.Sheet{}, err
			}
			cells[colIdx] = models.Cell{Value: typedValue(cellType, cellValue)}
		}
		grid[rowIdx] = cells
	}

	return models.NewSheet(sheetName, grid), nil
}

// typedValue converts a display value according to the stored cell type.
func typedValue(cellType excelize.CellType, s string) interface{} {
	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return s
	case excelize.CellTypeBool:
		return s == "TRUE" || s == "1"
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		if v, ok := parseValue(s).(string); ok {
			return models.Formatted(v)
		}
		return parseValue(s)
	}
	return models.Formatted(s)
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
