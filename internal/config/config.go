// =============================================================================
// Document List Report - Configuration Module
// =============================================================================
//
// This module loads the optional report configuration file. Every setting
// has a default, so the report runs the same without any file at all:
//
//   input_file: document_list.csv
//   column_width: 20
//   output_format: text        # text | xml
//   log_level: warn            # debug | info | warn | error
//   log_format: text           # text | json
//   csv_settings:
//     delimiter: ";"
//     encoding: UTF-8          # UTF-8 | ISO-8859-1 | Windows-1252
//     trim_leading_space: false
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// DEFAULTS
// =============================================================================

const (
	DefaultInputFile    = "document_list.csv"
	DefaultColumnWidth  = 20
	DefaultOutputFormat = FormatText
	DefaultLogLevel     = "warn"
	DefaultLogFormat    = "text"
	DefaultDelimiter    = ";"
	DefaultEncoding     = "UTF-8"
)

// Output formats understood by the report command.
const (
	FormatText = "text"
	FormatXML  = "xml"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// ReportConfig holds the settings for a report run.
type ReportConfig struct {
	// InputFile is the document list to read. Files ending in .xlsx are
	// read from their first worksheet, anything else is read as CSV.
	InputFile string `yaml:"input_file"`

	// ColumnWidth is the minimum width of every report column.
	ColumnWidth int `yaml:"column_width"`

	// OutputFormat selects the report writer: "text" or "xml".
	OutputFormat string `yaml:"output_format"`

	// LogLevel controls the verbosity of the diagnostic log on stderr.
	LogLevel string `yaml:"log_level"`

	// LogFormat is "text" or "json".
	LogFormat string `yaml:"log_format"`

	// CSVSettings contains settings for parsing the input CSV file.
	CSVSettings CSVSettings `yaml:"csv_settings"`
}

// CSVSettings contains settings for parsing CSV files.
type CSVSettings struct {
	// Delimiter separates fields. Accepts a single character or one of the
	// names "semicolon", "comma", "tab", "pipe".
	Delimiter string `yaml:"delimiter"`

	// Encoding is the character encoding of the file. A UTF-8 byte order
	// mark is always stripped.
	Encoding string `yaml:"encoding"`

	// TrimLeadingSpace drops leading white space from every field.
	TrimLeadingSpace bool `yaml:"trim_leading_space"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Default returns the configuration used when no file is given.
func Default() *ReportConfig {
	cfg := &ReportConfig{}
	applyDefaults(cfg)
	return cfg
}

// Load reads the configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the configuration file.
//   - required: When false, a missing file yields the defaults.
//
// RETURNS:
//   - A pointer to the ReportConfig struct.
//   - An error if the file cannot be read, parsed or validated.
func Load(configPath string, required bool) (*ReportConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg ReportConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *ReportConfig) {
	if cfg.InputFile == "" {
		cfg.InputFile = DefaultInputFile
	}
	if cfg.ColumnWidth == 0 {
		cfg.ColumnWidth = DefaultColumnWidth
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = DefaultOutputFormat
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	if cfg.CSVSettings.Delimiter == "" {
		cfg.CSVSettings.Delimiter = DefaultDelimiter
	}
	if cfg.CSVSettings.Encoding == "" {
		cfg.CSVSettings.Encoding = DefaultEncoding
	}
}

// Validate checks the settings that cannot be defaulted.
func (c *ReportConfig) Validate() error {
	if c.ColumnWidth < 1 {
		return fmt.Errorf("column_width must be at least 1, got %d", c.ColumnWidth)
	}

	switch strings.ToLower(c.OutputFormat) {
	case FormatText, FormatXML:
	default:
		return fmt.Errorf("unknown output_format %q", c.OutputFormat)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log_format %q", c.LogFormat)
	}

	if _, err := c.CSVSettings.Comma(); err != nil {
		return err
	}

	return nil
}

// Comma resolves the configured delimiter to a single rune.
func (s CSVSettings) Comma() (rune, error) {
	switch s.Delimiter {
	case ";", "semicolon":
		return ';', nil
	case ",", "comma":
		return ',', nil
	case "\\t", "\t", "tab", "TAB":
		return '\t', nil
	case "|", "pipe", "PIPE":
		return '|', nil
	}

	runes := []rune(s.Delimiter)
	if len(runes) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s.Delimiter)
	}
	switch runes[0] {
	case '"', '\r', '\n':
		return 0, fmt.Errorf("delimiter %q is not allowed", s.Delimiter)
	}
	return runes[0], nil
}
