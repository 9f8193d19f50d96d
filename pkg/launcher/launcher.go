// Package launcher derives the engine executable path from the path of the
// launcher binary that started it.
package launcher

import (
	"strings"
)

const launcherSuffix = "-launcher"

// ExecutablePath strips the trailing "-launcher" (or "-launcher.exe",
// matched case-insensitively) from a launcher path and appends ".exe" back
// only when the input had an ".exe" suffix. The original casing of the
// remaining path is preserved.
func ExecutablePath(launcherPath string) string {
	isExe := strings.HasSuffix(strings.ToLower(launcherPath), ".exe")

	suffixLen := len(launcherSuffix)
	if isExe {
		suffixLen = len(launcherSuffix + ".exe")
	}
	if len(launcherPath) < suffixLen {
		return launcherPath
	}

	executable := launcherPath[:len(launcherPath)-suffixLen]
	if isExe {
		executable += ".exe"
	}
	return executable
}
