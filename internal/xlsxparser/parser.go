// =============================================================================
// Document List Report - XLSX Parser Module
// =============================================================================
//
// This module reads a document list exported as an Excel workbook instead of
// a CSV file. The workbook follows the same layout as the CSV export:
//
//   | Column A | Column B      | Column C                     | Column D       |
//   |----------|---------------|------------------------------|----------------|
//   | id       | document_type | partner                      | items          |
//   | D1       | INVOICE       | {"id":5,"name":"Acme"}       | [{"unit_...}]  |
//
// Only the first sheet is read. Cells are read raw (unformatted) so that a
// numeric cell yields "10" rather than the display text "10.00".
//
// Excel drops trailing empty cells from a row. Short rows are therefore
// padded with empty cells, and only rows wider than the header are ragged.
//
// =============================================================================

package xlsxparser

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/document-list-report/internal/document"
)

// =============================================================================
// SHEET DATA STRUCTURE
// =============================================================================

// SheetData represents the parsed first worksheet of a workbook.
type SheetData struct {
	// SourceFile is the name the workbook was read from, for log messages.
	SourceFile string

	// Sheet is the name of the worksheet that was read.
	Sheet string

	// Headers contains the cleaned column headers from the first row.
	Headers []string

	// Documents contains one Document per data row, in sheet order.
	Documents []document.Document

	// RaggedRows counts data rows wider than the header.
	RaggedRows int
}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads the first worksheet of the workbook in r.
//
// PARAMETERS:
//   - r: The open workbook. The caller owns and closes it.
//   - sourceName: The file name, used in log messages.
//   - logger: Receives a warning for every ragged row.
//
// RETURNS:
//   - A pointer to the SheetData struct. A sheet without rows yields empty
//     data, not an error.
//   - An error if the workbook cannot be opened or read.
func Parse(r io.Reader, sourceName string, logger *slog.Logger) (*SheetData, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	data := &SheetData{
		SourceFile: sourceName,
		Sheet:      sheetName,
		Documents:  []document.Document{},
	}

	for i, row := range rows {
		rowNumber := i + 1

		if data.Headers == nil {
			if isRowEmpty(row) {
				continue
			}
			data.Headers = document.CleanHeaders(row)
			continue
		}

		if isRowEmpty(row) {
			continue
		}

		if len(row) > len(data.Headers) {
			data.RaggedRows++
			logger.Warn("row length differs from header",
				"file", sourceName,
				"sheet", sheetName,
				"row", rowNumber,
				"fields", len(row),
				"headers", len(data.Headers),
			)
		}

		data.Documents = append(data.Documents, document.ParseRow(rowNumber, data.Headers, padRow(row, len(data.Headers))))
	}

	return data, nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// padRow extends row with empty cells up to width.
func padRow(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}

// isRowEmpty checks if a row contains only empty cells.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
