package parser

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ukaji3/exsite-go/pkg/exsite/models"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ReadWorkbook loads every sheet of an xlsx file into memory.
// Sheets that fail to read are left out and reported as *SheetReadError
// warnings. Failing to open the file at all is fatal.
func ReadWorkbook(path string, logger *zap.Logger) (*models.Workbook, []error, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	wb, warnings := ReadSheets(f, logger)
	wb.BookName = filepath.Base(path)
	return wb, warnings, nil
}

// ReadSheets converts an open excelize file into a workbook, sheet by sheet in
// declaration order.
func ReadSheets(f *excelize.File, logger *zap.Logger) (*models.Workbook, []error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	wb := &models.Workbook{}
	var warnings []error

	for _, sheetName := range f.GetSheetList() {
		sheet, err := ExtractCells(f, sheetName)
		if err != nil {
			readErr := &SheetReadError{SheetName: sheetName, Err: err}
			logger.Warn("skipping unreadable sheet", zap.String("sheet", sheetName), zap.Error(err))
			warnings = append(warnings, readErr)
			continue
		}
		logger.Debug("sheet loaded",
			zap.String("sheet", sheetName),
			zap.Int("rows", sheet.RowCount()),
			zap.Int("cols", sheet.ColCount()))
		wb.Sheets = append(wb.Sheets, sheet)
	}

	return wb, warnings
}
