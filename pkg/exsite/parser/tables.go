package parser

import (
	"fmt"

	"github.com/ukaji3/exsite-go/pkg/exsite/models"
	"github.com/xuri/excelize/v2"
)

// RangeParams holds thresholds for reporting a sheet's data range.
type RangeParams struct {
	DensityMin       float64
	MinNonemptyCells int
}

// DefaultRangeParams returns default data range parameters.
func DefaultRangeParams() RangeParams {
	return RangeParams{
		DensityMin:       0.04,
		MinNonemptyCells: 3,
	}
}

// DataRange describes the block of non-empty cells in a sheet.
type DataRange struct {
	// Ref is the range in Excel notation, e.g. "A1:D10".
	Ref string `json:"ref"`
	// NonEmpty is the number of non-empty cells inside the range.
	NonEmpty int `json:"non_empty"`
	// Density is NonEmpty divided by the range area.
	Density float64 `json:"density"`
}

// DetectDataRange returns the bounding box of a sheet's non-empty cells when it
// looks like a table, i.e. it is dense enough and holds enough cells.
func DetectDataRange(sheet models.Sheet, params RangeParams) (DataRange, bool) {
	minRow, maxRow, minCol, maxCol := findDataBounds(sheet.Rows)
	if minRow < 0 {
		return DataRange{}, false
	}

	totalCells := (maxRow - minRow + 1) * (maxCol - minCol + 1)
	nonEmptyCells := countNonEmptyCells(sheet.Rows, minRow, maxRow, minCol, maxCol)
	if nonEmptyCells < params.MinNonemptyCells {
		return DataRange{}, false
	}

	density := float64(nonEmptyCells) / float64(totalCells)
	if density < params.DensityMin {
		return DataRange{}, false
	}

	startCell, _ := excelize.CoordinatesToCellName(minCol+1, minRow+1)
	endCell, _ := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)

	return DataRange{
		Ref:      fmt.Sprintf("%s:%s", startCell, endCell),
		NonEmpty: nonEmptyCells,
		Density:  density,
	}, true
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]models.Cell) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell.IsEmpty() {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(rows [][]models.Cell, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if !row[colIdx].IsEmpty() {
				count++
			}
		}
	}
	return count
}
