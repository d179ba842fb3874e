// =============================================================================
// Document List Report - Version Information
// =============================================================================
//
// The version is printed by the root command's --version flag:
//
//   $ document-report --version
//   Document List Report
//   Version:    1.0.0
//   Build Date: 2024-01-01
//   Go Version: go1.24.11
//
// =============================================================================

package cmd

import (
	"fmt"
	"runtime"
)

// These variables are set at build time using ldflags:
//   go build -ldflags "-X 'github.com/ginjaninja78/document-list-report/cmd.Version=1.0.0' -X 'github.com/ginjaninja78/document-list-report/cmd.BuildDate=2024-01-01'"

// Version is the application version.
var Version = "1.0.0"

// BuildDate is the date the application was built.
var BuildDate = "unknown"

const versionTemplate = "Document List Report\n{{.Version}}\n"

// versionString formats the lines printed after the program name.
func versionString() string {
	return fmt.Sprintf("Version:    %s\nBuild Date: %s\nGo Version: %s",
		Version, BuildDate, runtime.Version())
}
