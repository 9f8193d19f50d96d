// Package versions provides build version information, injected at link
// time via ldflags.
package versions

import (
	"fmt"
	"runtime"
	"time"
)

const unknownStr = "unknown"

// Version info set by build using ldflags
var (
	// Version is the current version of the application
	Version = "dev"
	// Commit is the git commit hash of the build
	Commit = unknownStr
	// BuildDate is the date the binary was built
	BuildDate = unknownStr
)

// VersionInfo represents the version information of the application
type VersionInfo struct {
	// Version is the current version of the application
	Version string `json:"version"`
	// Commit is the git commit hash of the build
	Commit string `json:"commit"`
	// BuildDate is the date the binary was built
	BuildDate string `json:"build_date"`
	// GoVersion is the version of Go used to build the binary
	GoVersion string `json:"go_version"`
	// Platform is the OS and architecture the binary runs on
	Platform string `json:"platform"`
}

// GetVersionInfo returns the version information of the application
func GetVersionInfo() VersionInfo {
	version := Version
	if version == "dev" {
		if Commit != unknownStr {
			commit := Commit
			if len(commit) > 8 {
				commit = commit[:8]
			}
			version = fmt.Sprintf("build-%s", commit)
		} else {
			version = "build-unknown"
		}
	}

	buildDate := BuildDate
	if t, err := time.Parse(time.RFC3339, buildDate); err == nil {
		buildDate = t.Format("2006-01-02 15:04:05 MST")
	}

	return VersionInfo{
		Version:   version,
		Commit:    Commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}
