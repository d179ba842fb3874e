// =============================================================================
// Document List Report - Text Report Writer
// =============================================================================
//
// The text report is a fixed-width table:
//
//   document_id         document_type       partner name        total
//   ================================================================================
//   D1                  INVOICE             Acme                20
//
// Every cell is left-justified and padded to the column width. Cells that
// are already wider are printed in full, never truncated. Width is counted
// in terminal cells, so accented and East Asian names line up.
//
// =============================================================================

package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/ginjaninja78/document-list-report/internal/converter"
)

// Header labels, in column order.
var Header = []string{"document_id", "document_type", "partner name", "total"}

// TextWriter writes the fixed-width report.
type TextWriter struct {
	w     *bufio.Writer
	width int
}

// NewTextWriter creates a TextWriter with the given column width.
func NewTextWriter(w io.Writer, width int) *TextWriter {
	return &TextWriter{w: bufio.NewWriter(w), width: width}
}

// Write prints the header block followed by every row of result.
func (t *TextWriter) Write(result *converter.Result) error {
	if err := t.WriteHeader(); err != nil {
		return err
	}
	return t.WriteRows(result.Rows)
}

// WriteHeader prints the labels line and the separator line.
func (t *TextWriter) WriteHeader() error {
	t.writeLine(Header)
	t.w.WriteString(strings.Repeat("=", t.width*len(Header)))
	t.w.WriteString("\n")
	return t.flush()
}

// WriteRows prints one line per row.
func (t *TextWriter) WriteRows(rows []converter.Row) error {
	for _, row := range rows {
		t.writeLine([]string{row.ID, row.DocumentType, row.PartnerName, row.Total.String()})
	}
	return t.flush()
}

func (t *TextWriter) writeLine(cells []string) {
	for _, cell := range cells {
		t.w.WriteString(runewidth.FillRight(cell, t.width))
	}
	t.w.WriteString("\n")
}

func (t *TextWriter) flush() error {
	if err := t.w.Flush(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
