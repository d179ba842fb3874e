package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const headerBlock = "document_id         document_type       partner name        total               \n" +
	"================================================================================\n"

const sampleCSV = "id;document_type;partner;items\n" +
	`D1;INVOICE;{"id":5,"name":"Acme"};[{"unit_price":10,"quantity":2}]` + "\n"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := ExecuteArgs(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestExecute_WrongArgumentCount(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"INVOICE", "5"},
		{"INVOICE", "5", "10", "extra"},
	} {
		code, stdout, stderr := run(t, args...)
		require.Equal(t, 1, code, args)
		require.Empty(t, stdout, args)
		require.Equal(t, "Ambiguous number of parameters!\n", stderr, args)
	}
}

func TestExecute_PrintsMatchingRows(t *testing.T) {
	input := writeFile(t, "document_list.csv", sampleCSV)

	code, stdout, stderr := run(t, "--file", input, "INVOICE", "5", "10")
	require.Equal(t, 0, code)
	require.Empty(t, stderr)
	require.Equal(t, headerBlock+
		"D1                  INVOICE             Acme                20                  \n",
		stdout)
}

func TestExecute_TotalEqualToThresholdPrintsHeaderOnly(t *testing.T) {
	input := writeFile(t, "document_list.csv", sampleCSV)

	code, stdout, _ := run(t, "--file", input, "INVOICE", "5", "20")
	require.Equal(t, 0, code)
	require.Equal(t, headerBlock, stdout)
}

func TestExecute_NegativeThresholdIsAnArgument(t *testing.T) {
	input := writeFile(t, "document_list.csv", sampleCSV)

	code, stdout, _ := run(t, "--file", input, "INVOICE", "5", "-5")
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "D1 ")
}

func TestExecute_MissingInputPrintsHeaderOnly(t *testing.T) {
	code, stdout, stderr := run(t, "--file", filepath.Join(t.TempDir(), "absent.csv"), "INVOICE", "5", "0")
	require.Equal(t, 0, code)
	require.Equal(t, headerBlock, stdout)
	require.Empty(t, stderr)
}

func TestExecute_XMLFormat(t *testing.T) {
	input := writeFile(t, "document_list.csv", sampleCSV)

	code, stdout, _ := run(t, "--file", input, "--format", "xml", "INVOICE", "5", "10")
	require.Equal(t, 0, code)
	require.True(t, strings.HasPrefix(stdout, `<?xml version="1.0" encoding="UTF-8"?>`))
	require.Contains(t, stdout, `document_type="INVOICE" partner_id="5" min_total="10"`)
	require.Contains(t, stdout, "<partner_name>Acme</partner_name>")
	require.Contains(t, stdout, "<total>20</total>")
}

func TestExecute_ConfigFile(t *testing.T) {
	input := writeFile(t, "document_list.csv", strings.ReplaceAll(sampleCSV, ";", "|"))
	cfgPath := writeFile(t, "report.yaml", "input_file: "+input+"\ncolumn_width: 4\ncsv_settings:\n  delimiter: \"|\"\n")

	code, stdout, stderr := run(t, "--config", cfgPath, "INVOICE", "5", "10")
	require.Equal(t, 0, code, stderr)
	require.Equal(t, "document_iddocument_typepartner nametotal\n"+
		"================\n"+
		"D1  INVOICEAcme20  \n",
		stdout)
}

func TestExecute_MissingExplicitConfig(t *testing.T) {
	code, stdout, stderr := run(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"), "INVOICE", "5", "10")
	require.Equal(t, 1, code)
	require.Empty(t, stdout)
	require.Contains(t, stderr, "Error: failed to read config file")
}

func TestExecute_UnknownFormat(t *testing.T) {
	code, _, stderr := run(t, "--format", "pdf", "INVOICE", "5", "10")
	require.Equal(t, 1, code)
	require.Contains(t, stderr, `unknown output_format "pdf"`)
}

func TestExecute_VerboseLogsToStderr(t *testing.T) {
	input := writeFile(t, "document_list.csv", sampleCSV)

	code, stdout, stderr := run(t, "-v", "--file", input, "INVOICE", "5", "10")
	require.Equal(t, 0, code)
	require.NotContains(t, stdout, "level=")
	require.Contains(t, stderr, "level=DEBUG")
	require.Contains(t, stderr, "run_id=")
	require.Contains(t, stderr, "msg=\"report complete\"")
}

func TestExecute_Version(t *testing.T) {
	code, stdout, _ := run(t, "--version")
	require.Equal(t, 0, code)
	require.True(t, strings.HasPrefix(stdout, "Document List Report\nVersion:    "+Version+"\n"))
}
