// Package version reports the twtheme build. Release builds set Version,
// Commit and Date with -ldflags "-X github.com/jmylchreest/twtheme/internal/version.<Name>=<value>".
package version

import (
	"fmt"
	"runtime"
)

const unset = "unknown"

var (
	// Version is the twtheme release, "dev" for local builds.
	Version = "dev"

	// Commit is the git revision the binary was built from.
	Commit = unset

	// Date is the RFC3339 build time.
	Date = unset
)

// Info is the build metadata printed by `twtheme version --json`.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo collects the build metadata.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String formats the metadata on one line. Commit and date are included
// only for release builds.
func String() string {
	info := GetInfo()
	if info.Commit == unset || info.Date == unset {
		return fmt.Sprintf("twtheme version %s (%s, %s)", info.Version, info.GoVersion, info.Platform)
	}
	return fmt.Sprintf("twtheme version %s (commit: %s, built: %s, %s, %s)",
		info.Version, shortCommit(info.Commit), info.Date, info.GoVersion, info.Platform)
}

// Short returns the bare version for cobra's --version flag.
func Short() string {
	return Version
}

func shortCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
