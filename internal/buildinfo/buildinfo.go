// Package buildinfo exposes build-time metadata stamped via -ldflags.
package buildinfo

import (
	"fmt"
	"io"
)

// Populated at build time, e.g.:
//
//	go build -ldflags "-X github.com/stitchdesk/stitchdesk/internal/buildinfo.buildVersion=v1.2.0"
var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

// PrintBuildData writes the build version, date and commit to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", buildVersion)
	fmt.Fprintf(w, "Build date: %s\n", buildDate)
	fmt.Fprintf(w, "Build commit: %s\n", buildCommit)
}
