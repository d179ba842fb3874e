// =============================================================================
// Document List Report - Report Run
// =============================================================================
//
// runReport wires one invocation together:
//   1. Load configuration and apply flag overrides
//   2. Build the logger (stderr, tagged with a run id)
//   3. Run the converter over the input file
//   4. Write the result to stdout in the configured format
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/document-list-report/internal/config"
	"github.com/ginjaninja78/document-list-report/internal/converter"
	"github.com/ginjaninja78/document-list-report/internal/logging"
	"github.com/ginjaninja78/document-list-report/internal/report"
	"github.com/ginjaninja78/document-list-report/internal/xmlwriter"
)

// reportWriter renders a converter result.
type reportWriter interface {
	Write(result *converter.Result) error
}

func runReport(cmd *cobra.Command, opts *rootOptions, args []string) error {
	// =========================================================================
	// STEP 1: CONFIGURATION
	// =========================================================================
	// A missing config.yaml is fine unless --config was given explicitly.

	cfg, err := config.Load(opts.cfgFile, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}

	if opts.inputFile != "" {
		cfg.InputFile = opts.inputFile
	}
	if opts.format != "" {
		cfg.OutputFormat = opts.format
	}
	if opts.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// =========================================================================
	// STEP 2: LOGGING
	// =========================================================================

	runID := uuid.New().String()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr()).With("run_id", runID)
	logger.Debug("configuration loaded", "config", opts.cfgFile, "input_file", cfg.InputFile, "format", cfg.OutputFormat)

	// =========================================================================
	// STEP 3: RUN
	// =========================================================================

	criteria := converter.Criteria{
		DocumentType: args[0],
		PartnerID:    args[1],
		MinTotal:     args[2],
	}

	result, err := converter.New(cfg, logger).Run(criteria)
	if err != nil {
		return err
	}

	// =========================================================================
	// STEP 4: OUTPUT
	// =========================================================================

	return newReportWriter(cfg, cmd.OutOrStdout(), runID).Write(result)
}

// newReportWriter picks the writer for the configured output format.
// The format has already been validated.
func newReportWriter(cfg *config.ReportConfig, w io.Writer, runID string) reportWriter {
	if strings.EqualFold(cfg.OutputFormat, config.FormatXML) {
		return xmlwriter.NewWriter(w, runID)
	}
	return report.NewTextWriter(w, cfg.ColumnWidth)
}
