// =============================================================================
// Document List Report - CSV Parser Module
// =============================================================================
//
// This module reads the document list CSV. Reading follows the rules of the
// legacy exporter that produces these files:
//   - Fields are separated by ";" (configurable)
//   - JSON cells are written without quoting, so bare quotes inside an
//     unquoted field are literal: D1;{"id":5,"name":"Acme"}
//   - Rows may be ragged; the row parser pads or drops cells
//   - The first record is the header row
//
// ENCODINGS:
//   UTF-8 input may start with a byte order mark, which is stripped so the
//   first header reads "id". Latin-1 and Windows-1252 input is transcoded to
//   UTF-8 before parsing.
//
// =============================================================================

package csvparser

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/ginjaninja78/document-list-report/internal/config"
	"github.com/ginjaninja78/document-list-report/internal/document"
)

// =============================================================================
// CSV DATA STRUCTURE
// =============================================================================

// CSVData represents the parsed CSV file.
type CSVData struct {
	// Headers contains the column headers from the first record.
	Headers []string

	// Documents contains one Document per data row, in file order.
	Documents []document.Document

	// SourceFile is the name the data was read from, for log messages.
	SourceFile string

	// RaggedRows counts data rows whose length differs from the header.
	RaggedRows int
}

// ErrUnknownEncoding is returned for an encoding name the parser cannot decode.
var ErrUnknownEncoding = errors.New("unknown encoding")

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads CSV data from r.
//
// PARAMETERS:
//   - r: The open input. The caller owns and closes it.
//   - sourceName: The file name, used in log messages.
//   - settings: The CSV parsing settings.
//   - logger: Receives a warning for every ragged row.
//
// RETURNS:
//   - A pointer to the CSVData struct. An input without any record yields
//     empty data, not an error.
//   - An error if the encoding is unknown or the CSV is malformed.
func Parse(r io.Reader, sourceName string, settings config.CSVSettings, logger *slog.Logger) (*CSVData, error) {
	decoded, err := decodeReader(r, settings.Encoding)
	if err != nil {
		return nil, err
	}

	csvReader := csv.NewReader(bufio.NewReader(decoded))
	if err := configureReader(csvReader, settings); err != nil {
		return nil, err
	}

	data := &CSVData{
		SourceFile: sourceName,
		Documents:  []document.Document{},
	}

	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}

		line, _ := csvReader.FieldPos(0)

		if data.Headers == nil {
			data.Headers = document.CleanHeaders(record)
			continue
		}

		if isRowEmpty(record) {
			continue
		}

		if len(record) != len(data.Headers) {
			data.RaggedRows++
			logger.Warn("row length differs from header",
				"file", sourceName,
				"row", line,
				"fields", len(record),
				"headers", len(data.Headers),
			)
		}

		data.Documents = append(data.Documents, document.ParseRow(line, data.Headers, record))
	}

	return data, nil
}

// configureReader configures the CSV reader based on the settings.
func configureReader(reader *csv.Reader, settings config.CSVSettings) error {
	comma, err := settings.Comma()
	if err != nil {
		return err
	}
	reader.Comma = comma

	// Ragged rows are handled by the row parser.
	reader.FieldsPerRecord = -1

	// JSON cells are written unquoted and contain bare quotes.
	reader.LazyQuotes = true

	reader.TrimLeadingSpace = settings.TrimLeadingSpace

	return nil
}

// decodeReader wraps r so that it yields UTF-8 without a byte order mark.
func decodeReader(r io.Reader, encoding string) (io.Reader, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(encoding), "_", "-"))

	switch normalized {
	case "", "UTF-8", "UTF8":
		return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())), nil
	case "ISO-8859-1", "ISO8859-1", "LATIN1", "LATIN-1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case "WINDOWS-1252", "CP1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownEncoding, encoding)
	}
}

// isRowEmpty checks if a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
