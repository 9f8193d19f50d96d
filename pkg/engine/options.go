// Package engine defines the runtime options record for the engine host.
//
// An Options value is created with documented defaults, populated from the
// persisted settings file, overlaid with command-line values, validated
// once, and then handed to the host. Only a fixed subset of fields is
// persisted; everything else is derived or session-scoped.
package engine

import (
	"github.com/simonmarcel/ja2-stracciatella/pkg/resources"
)

// Options is the single validated runtime configuration record.
//
// Struct field order matters: the JSON encoder emits keys in declaration
// order, which is the fixed key order of the settings file. Fields tagged
// `json:"-"` never round-trip through the file; values for them in the
// JSON are silently discarded on load.
type Options struct {
	// StracciatellaHome is the per-user settings directory. Derived at
	// resolution time and always overwritten after load.
	StracciatellaHome string `json:"-"`

	// VanillaDataDir points at the original game's data. The empty string
	// means unset; resolution fails if it is still empty at the end.
	VanillaDataDir string `json:"data_dir"`

	// Mods lists active mod identifiers, insertion order = activation order.
	Mods []string `json:"mods"`

	// Resolution is the requested screen resolution.
	Resolution Resolution `json:"res"`

	// ResourceVersion is the localization of the installed game data.
	ResourceVersion resources.ResourceVersion `json:"resversion"`

	// Session flags, reset to false on every load.
	ShowHelp     bool `json:"-"`
	RunUnitTests bool `json:"-"`
	RunEditor    bool `json:"-"`

	// StartInFullscreen is the one windowing flag that is persisted; the
	// --window switch clears it rather than setting anything else.
	StartInFullscreen bool `json:"fullscreen"`

	// StartInWindow defaults to true and is not persisted. Nothing drives
	// it; kept because the boundary layer exposes it read-only.
	StartInWindow bool `json:"-"`

	StartInDebugMode  bool `json:"debug"`
	StartWithoutSound bool `json:"nosound"`
}

// NewOptions returns an options record seeded with the documented defaults.
func NewOptions() *Options {
	return &Options{
		StracciatellaHome: "",
		VanillaDataDir:    "",
		Mods:              []string{},
		Resolution:        Resolution{Width: 640, Height: 480},
		ResourceVersion:   resources.English,
		ShowHelp:          false,
		RunUnitTests:      false,
		RunEditor:         false,
		StartInFullscreen: false,
		StartInWindow:     true,
		StartInDebugMode:  false,
		StartWithoutSound: false,
	}
}
