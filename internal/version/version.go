// Package version reports build information stamped in by the linker.
package version

import (
	"fmt"
	"runtime/debug"
)

// These variables are set at build time via ldflags, e.g.
// -X github.com/example/loom/internal/version.Commit=$(git rev-parse HEAD)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String returns the version line shown by `loom --version`.
func String() string {
	return fmt.Sprintf("loom %s (commit: %s, built: %s)", Version, shortCommit(), BuildTime)
}

// shortCommit falls back to the VCS revision recorded by `go build`
// when no commit was stamped.
func shortCommit() string {
	commit := Commit
	if commit == "unknown" {
		commit = vcsRevision()
	}
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}

func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			return s.Value
		}
	}
	return "unknown"
}
