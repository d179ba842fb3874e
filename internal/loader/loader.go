// =============================================================================
// Document List Report - Document Loader
// =============================================================================
//
// The loader opens the input file and hands it to the matching parser:
//   - *.xlsx  -> xlsxparser (first worksheet)
//   - others  -> csvparser
//
// A file that cannot be opened is not an error. The report then simply has
// no documents and prints only its header, the way the legacy tool behaves
// when the export has not been produced yet.
//
// =============================================================================

package loader

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ginjaninja78/document-list-report/internal/config"
	"github.com/ginjaninja78/document-list-report/internal/csvparser"
	"github.com/ginjaninja78/document-list-report/internal/document"
	"github.com/ginjaninja78/document-list-report/internal/xlsxparser"
)

// Load reads every document from path.
//
// RETURNS:
//   - The documents in file order. Empty when the file cannot be opened.
//   - An error if the file was opened but could not be parsed.
func Load(path string, settings config.CSVSettings, logger *slog.Logger) ([]document.Document, error) {
	file, err := os.Open(path)
	if err != nil {
		logger.Debug("input file not readable, no documents loaded", "file", path, "error", err)
		return []document.Document{}, nil
	}
	defer file.Close()

	name := filepath.Base(path)

	if IsWorkbook(path) {
		data, err := xlsxparser.Parse(file, name, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", name, err)
		}
		logger.Debug("loaded workbook", "file", name, "sheet", data.Sheet, "documents", len(data.Documents), "ragged_rows", data.RaggedRows)
		return data.Documents, nil
	}

	data, err := csvparser.Parse(file, name, settings, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", name, err)
	}
	logger.Debug("loaded CSV", "file", name, "documents", len(data.Documents), "ragged_rows", data.RaggedRows)
	return data.Documents, nil
}

// IsWorkbook reports whether path names an Excel workbook.
func IsWorkbook(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xlsx")
}
