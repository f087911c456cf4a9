package models

// Sheet is a dense, rectangular grid of cells addressed by zero-based
// (row, column) indexes.
type Sheet struct {
	// Name is the sheet name as declared in the workbook.
	Name string `json:"name"`
	// Rows holds the grid; every row has the same length.
	Rows [][]Cell `json:"rows,omitempty"`
}

// NewSheet builds a rectangular sheet from ragged rows by padding short rows
// with empty cells.
func NewSheet(name string, rows [][]Cell) Sheet {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	grid := make([][]Cell, len(rows))
	for i, row := range rows {
		padded := make([]Cell, width)
		copy(padded, row)
		grid[i] = padded
	}
	return Sheet{Name: name, Rows: grid}
}

// RowCount returns the number of rows.
func (s Sheet) RowCount() int {
	return len(s.Rows)
}

// ColCount returns the number of columns.
func (s Sheet) ColCount() int {
	if len(s.Rows) == 0 {
		return 0
	}
	return len(s.Rows[0])
}

// Cell returns the cell at (row, col), or an empty cell when out of range.
func (s Sheet) Cell(row, col int) Cell {
	if row < 0 || row >= len(s.Rows) {
		return Cell{}
	}
	r := s.Rows[row]
	if col < 0 || col >= len(r) {
		return Cell{}
	}
	return r[col]
}

// Row returns the cells of a row, or nil when out of range.
func (s Sheet) Row(row int) []Cell {
	if row < 0 || row >= len(s.Rows) {
		return nil
	}
	return s.Rows[row]
}
