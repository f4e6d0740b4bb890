// Package version exposes build-time version information.
package version

// Populated via -ldflags at build time.
var (
	GitCommit = "dev"
	BuildDate = "unknown"
)
