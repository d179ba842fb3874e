// =============================================================================
// Document List Report - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The report has no
// subcommands; the root command takes the three report arguments directly:
//
//   document-report [flags] <document_type> <partner_id> <min_total>
//
// Flags must come before the arguments. Interspersed parsing is turned off
// so that a negative threshold such as -5 is read as an argument.
//
// EXIT STATUS:
//   0  report printed (possibly without rows)
//   1  wrong number of arguments, bad configuration or unreadable input
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// =============================================================================
// ERRORS
// =============================================================================

// InvocationError is returned when the command is not called with exactly
// three arguments.
type InvocationError struct {
	// Got is the number of arguments received.
	Got int
}

func (e *InvocationError) Error() string {
	return "Ambiguous number of parameters!"
}

// =============================================================================
// COMMAND OPTIONS
// =============================================================================

// rootOptions holds the flag values of one invocation.
type rootOptions struct {
	// cfgFile is the path to the configuration file.
	cfgFile string

	// inputFile overrides input_file from the configuration.
	inputFile string

	// format overrides output_format from the configuration.
	format string

	// verbose forces debug logging.
	verbose bool
}

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// newRootCmd builds the root command. A fresh command per invocation keeps
// flag values from leaking between runs.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "document-report <document_type> <partner_id> <min_total>",
		Short: "Document List Report - list documents of a partner above a minimum total",
		Long: `Document List Report reads the document list export (a semicolon
separated CSV file, or an XLSX workbook) and prints every document of the
given type and partner whose total is greater than the minimum total.

The total of a document is the sum of unit_price * quantity over its items.`,
		Example: `  document-report INVOICE 5 10
  document-report --file exports/list.csv INVOICE 5 10
  document-report --format xml --config report.yaml ORDER 17 0`,

		Version: versionString(),
		Args:    exactArgs,

		// Errors are printed by ExecuteArgs.
		SilenceErrors: true,
		SilenceUsage:  true,

		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},

		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, opts, args)
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetVersionTemplate(versionTemplate)

	flags := rootCmd.Flags()
	flags.SetInterspersed(false)

	flags.StringVar(
		&opts.cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file",
	)

	flags.StringVar(
		&opts.inputFile,
		"file",
		"",
		"Input file to read, overrides input_file (default document_list.csv)",
	)

	flags.StringVar(
		&opts.format,
		"format",
		"",
		"Output format: text or xml, overrides output_format",
	)

	flags.BoolVarP(
		&opts.verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging on stderr",
	)

	return rootCmd
}

// exactArgs accepts exactly three positional arguments.
func exactArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 3 {
		return &InvocationError{Got: len(args)}
	}
	return nil
}

// =============================================================================
// EXECUTE FUNCTIONS
// =============================================================================

// ExecuteArgs runs the command with args and returns the exit status.
func ExecuteArgs(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	rootCmd := newRootCmd(stdout, stderr)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		var invocationErr *InvocationError
		if errors.As(err, &invocationErr) {
			fmt.Fprintln(stderr, invocationErr.Error())
			return 1
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// Execute is called by main.main().
func Execute() {
	os.Exit(ExecuteArgs(os.Args[1:], os.Stdout, os.Stderr))
}
