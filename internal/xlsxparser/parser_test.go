package xlsxparser

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/document-list-report/internal/logging"
)

// buildWorkbook writes rows into the first sheet of a new workbook.
func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		row := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestParse_FirstSheet(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"id", "document_type", "partner", "items"},
		{"D1", "INVOICE", `{"id":5,"name":"Acme"}`, `[{"unit_price":10,"quantity":2}]`},
		{"D2", "ORDER", `{"id":6,"name":"Beta"}`, "[]"},
	})

	data, err := Parse(buf, "list.xlsx", logging.Discard())
	require.NoError(t, err)

	require.Equal(t, "Sheet1", data.Sheet)
	require.Equal(t, []string{"id", "document_type", "partner", "items"}, data.Headers)
	require.Len(t, data.Documents, 2)

	doc := data.Documents[0]
	require.Equal(t, 2, doc.RowNumber)
	require.Equal(t, "D1", doc.ID().Text())
	require.Equal(t, "5", doc.Partner().ID().Text())
	require.Equal(t, "Acme", doc.Partner().Name().Text())
	require.Len(t, doc.Items().Elements(), 1)

	require.Equal(t, "ORDER", data.Documents[1].Type().Text())
}

func TestParse_NumericCellsAreRaw(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"id", "amount"},
		{42, 2.5},
	})

	data, err := Parse(buf, "list.xlsx", logging.Discard())
	require.NoError(t, err)
	require.Len(t, data.Documents, 1)

	require.Equal(t, "42", data.Documents[0].ID().Text())
	require.Equal(t, "2.5", data.Documents[0].Value("amount").Text())
}

func TestParse_ShortRowsArePaddedAndWideRowsCounted(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"id", "document_type", "partner"},
		{"D1"},
		{"D2", "INVOICE", "{}", "extra"},
	})

	data, err := Parse(buf, "list.xlsx", logging.Discard())
	require.NoError(t, err)

	require.Equal(t, 1, data.RaggedRows)
	require.Len(t, data.Documents, 2)
	require.Equal(t, "", data.Documents[0].Type().Text())
	require.False(t, data.Documents[0].Type().IsNull())
	require.Equal(t, []string{"id", "document_type", "partner"}, data.Documents[1].Names())
}

func TestParse_SkipsEmptyRows(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"id"},
		{"D1"},
		{""},
		{"D3"},
	})

	data, err := Parse(buf, "list.xlsx", logging.Discard())
	require.NoError(t, err)

	require.Len(t, data.Documents, 2)
	require.Equal(t, "D3", data.Documents[1].ID().Text())
	require.Equal(t, 4, data.Documents[1].RowNumber)
}

func TestParse_EmptySheet(t *testing.T) {
	buf := buildWorkbook(t, nil)

	data, err := Parse(buf, "list.xlsx", logging.Discard())
	require.NoError(t, err)
	require.Nil(t, data.Headers)
	require.Empty(t, data.Documents)
}

func TestParse_NotAWorkbook(t *testing.T) {
	_, err := Parse(strings.NewReader("id;name\n"), "list.xlsx", logging.Discard())
	require.ErrorContains(t, err, "failed to open workbook")
}
