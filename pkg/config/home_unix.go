//go:build !windows

package config

import (
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/simonmarcel/ja2-stracciatella/pkg/errors"
)

// FindStracciatellaHome resolves the per-user settings directory to
// <home>/.ja2. The directory is not guaranteed to exist yet.
func FindStracciatellaHome() (string, error) {
	if xdg.Home == "" {
		return "", errors.NewHomeNotFoundError("Could not find home directory", nil)
	}
	return filepath.Join(xdg.Home, ".ja2"), nil
}
