//go:build windows

package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/simonmarcel/ja2-stracciatella/pkg/errors"
)

// FindStracciatellaHome resolves the per-user settings directory to
// <Documents>/JA2, creating the documents folder tree if the platform has
// not done so yet. The JA2 directory itself is not guaranteed to exist.
func FindStracciatellaHome() (string, error) {
	documents := xdg.UserDirs.Documents
	if documents == "" {
		return "", errors.NewHomeNotFoundError("Could not get documents folder", nil)
	}
	if err := os.MkdirAll(documents, 0o755); err != nil {
		return "", errors.NewHomeNotFoundError("Could not get documents folder", err)
	}
	return filepath.Join(documents, "JA2"), nil
}
