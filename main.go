// =============================================================================
// Document List Report - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Document List Report CLI. It hands
// control to the Cobra root command in the cmd package.
//
// USAGE:
//   document-report [flags] <document_type> <partner_id> <min_total>
//
// ARCHITECTURE:
//   - cmd/           : CLI command definition (Cobra)
//   - internal/      : Loading, filtering, totals and report writers
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/document-list-report/cmd"
)

func main() {
	cmd.Execute()
}
