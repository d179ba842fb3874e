package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
input_file: docs.xlsx
column_width: 24
output_format: xml
log_level: debug
log_format: json
csv_settings:
  delimiter: pipe
  encoding: Windows-1252
  trim_leading_space: true
`)

	cfg, err := Load(path, true)
	require.NoError(t, err)

	require.Equal(t, "docs.xlsx", cfg.InputFile)
	require.Equal(t, 24, cfg.ColumnWidth)
	require.Equal(t, FormatXML, cfg.OutputFormat)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, "Windows-1252", cfg.CSVSettings.Encoding)
	require.True(t, cfg.CSVSettings.TrimLeadingSpace)

	comma, err := cfg.CSVSettings.Comma()
	require.NoError(t, err)
	require.Equal(t, '|', comma)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "column_width: 30\n"), true)
	require.NoError(t, err)

	require.Equal(t, DefaultInputFile, cfg.InputFile)
	require.Equal(t, 30, cfg.ColumnWidth)
	require.Equal(t, FormatText, cfg.OutputFormat)
	require.Equal(t, DefaultLogLevel, cfg.LogLevel)
	require.Equal(t, ";", cfg.CSVSettings.Delimiter)
	require.Equal(t, "UTF-8", cfg.CSVSettings.Encoding)
}

func TestLoad_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	cfg, err := Load(missing, false)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	_, err = Load(missing, true)
	require.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "column_width: [1"},
		{"negative width", "column_width: -1"},
		{"unknown format", "output_format: pdf"},
		{"unknown log level", "log_level: loud"},
		{"unknown log format", "log_format: xml"},
		{"long delimiter", "csv_settings:\n  delimiter: ';;'"},
		{"quote delimiter", "csv_settings:\n  delimiter: '\"'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content), true)
			require.Error(t, err)
		})
	}
}

func TestComma(t *testing.T) {
	tests := map[string]rune{
		";":         ';',
		"semicolon": ';',
		",":         ',',
		"tab":       '\t',
		`\t`:        '\t',
		"|":         '|',
		"#":         '#',
	}
	for delimiter, want := range tests {
		got, err := CSVSettings{Delimiter: delimiter}.Comma()
		require.NoError(t, err, delimiter)
		require.Equal(t, want, got, delimiter)
	}
}
