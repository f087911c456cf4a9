package parser

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// SheetReadError reports a sheet that could not be read. The sheet is skipped
// and the rest of the workbook is still loaded.
type SheetReadError struct {
	SheetName string
	Err       error
}

func (e *SheetReadError) Error() string {
	return fmt.Sprintf("could not read sheet %q: %v", e.SheetName, e.Err)
}

func (e *SheetReadError) Unwrap() error {
	return e.Err
}
