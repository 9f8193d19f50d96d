// Package cli defines the command-line option surface of the engine and
// merges parsed values onto an options record.
//
// The surface is long-only: every option has a long name and no shorthand.
// A single leading dash is accepted for compatibility with the historical
// launcher (`-res 800x600` and `--res 800x600` are equivalent).
package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/simonmarcel/ja2-stracciatella/pkg/engine"
	"github.com/simonmarcel/ja2-stracciatella/pkg/errors"
	"github.com/simonmarcel/ja2-stracciatella/pkg/resources"
)

// CLI holds one argument vector, program name included at index 0.
type CLI struct {
	args []string
}

// New creates a CLI for the given argument vector.
func New(args []string) *CLI {
	return &CLI{args: args}
}

// flagValues collects the parsed state of one invocation.
type flagValues struct {
	dataDirs        []string
	mods            []string
	res             string
	resourceVersion string
	unitTests       bool
	editor          bool
	fullscreen      bool
	noSound         bool
	window          bool
	debug           bool
	help            bool
}

// newFlagSet defines the full option surface onto a fresh flag set.
func newFlagSet(vals *flagValues) *pflag.FlagSet {
	fs := pflag.NewFlagSet("ja2", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringArrayVar(&vals.dataDirs, "datadir", nil,
		fmt.Sprintf("Set path for data directory, e.g. %s", dataDirExample))
	fs.StringArrayVar(&vals.mods, "mod", nil,
		"Start one of the game modifications. MOD_NAME is the name of modification, "+
			"e.g. 'from-russia-with-love'. See mods folder for possible options")
	fs.StringVar(&vals.res, "res", "",
		"Screen resolution, e.g. 800x600. Default value is 640x480")
	fs.StringVar(&vals.resourceVersion, "resversion", "",
		"Version of the game resources. Possible values: "+
			strings.Join(resources.Tags(), ", ")+
			". Default value is ENGLISH. RUSSIAN is for BUKA Agonia Vlasty release. "+
			"RUSSIAN_GOLD is for Gold release")
	fs.BoolVar(&vals.unitTests, "unittests", false, "Perform unit tests")
	fs.BoolVar(&vals.editor, "editor", false, "Start the map editor (Editor.slf is required)")
	fs.BoolVar(&vals.fullscreen, "fullscreen", false, "Start the game in the fullscreen mode")
	fs.BoolVar(&vals.noSound, "nosound", false, "Turn the sound and music off")
	fs.BoolVar(&vals.window, "window", false, "Start the game in a window")
	fs.BoolVar(&vals.debug, "debug", false, "Enable Debug Mode")
	fs.BoolVar(&vals.help, "help", false, "Print this help menu")

	return fs
}

// UsageText returns the help text for the option surface.
func UsageText() string {
	fs := newFlagSet(&flagValues{})
	return "Usage: ja2 [options]\n\nOptions:\n" + fs.FlagUsages()
}

// normalizeLongOnly rewrites single-dash long options to their double-dash
// form so the flag set never interprets them as shorthand clusters.
// "-" and the "--" terminator pass through untouched.
func normalizeLongOnly(args []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		if len(arg) > 2 && arg[0] == '-' && arg[1] != '-' {
			out[i] = "-" + arg
		} else {
			out[i] = arg
		}
	}
	return out
}

// MergeOptions overlays explicitly provided command-line values onto the
// record. Flags are monotonic within one invocation: absence never resets
// anything, defaults come only from the pre-seeded record.
func (c *CLI) MergeOptions(opts *engine.Options) error {
	var vals flagValues
	fs := newFlagSet(&vals)

	args := c.args
	if len(args) > 0 {
		args = args[1:]
	}

	if err := fs.Parse(normalizeLongOnly(args)); err != nil {
		return errors.NewUnrecognizedOptionError(err.Error(), nil)
	}

	if fs.NArg() > 0 {
		return errors.NewUnknownArgumentsError(
			fmt.Sprintf("Unknown arguments: '%s'.", strings.Join(fs.Args(), " ")))
	}

	if vals.fullscreen && vals.window {
		return errors.NewConflictingFlagsError(
			"Cannot use fullscreen and window switches at the same time.")
	}

	// Repeated --datadir is accepted syntactically but only the first
	// occurrence is kept; precedence between occurrences is unspecified.
	if len(vals.dataDirs) > 0 {
		dataDir, err := canonicalizeDataDir(vals.dataDirs[0])
		if err != nil {
			return err
		}
		opts.VanillaDataDir = dataDir
	}

	if len(vals.mods) > 0 {
		opts.Mods = vals.mods
	}

	if fs.Changed("res") {
		res, err := engine.ParseResolution(vals.res)
		if err != nil {
			return err
		}
		opts.Resolution = res
	}

	if fs.Changed("resversion") {
		version, err := resources.FromString(vals.resourceVersion)
		if err != nil {
			return err
		}
		opts.ResourceVersion = version
	}

	if vals.help {
		opts.ShowHelp = true
	}
	if vals.unitTests {
		opts.RunUnitTests = true
	}
	if vals.editor {
		opts.RunEditor = true
	}
	if vals.fullscreen {
		opts.StartInFullscreen = true
	}
	if vals.window {
		opts.StartInFullscreen = false
	}
	if vals.noSound {
		opts.StartWithoutSound = true
	}
	if vals.debug {
		opts.StartInDebugMode = true
	}

	return nil
}

// canonicalizeDataDir resolves the path to its absolute, symlink-free form
// and strips any UNC prefix from the result.
func canonicalizeDataDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.NewInvalidDataDirError("Please specify an existing datadir.", nil)
	}
	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", errors.NewInvalidDataDirError("Please specify an existing datadir.", nil)
	}
	return stripUNCPrefix(canonical), nil
}

// stripUNCPrefix removes two leading path separators plus the following
// path segment from a canonical path (Windows network-path naming).
func stripUNCPrefix(path string) string {
	if !strings.HasPrefix(path, `\\`) {
		return path
	}
	trimmed := path[2:]
	idx := strings.Index(trimmed, `\`)
	if idx < 0 {
		return trimmed
	}
	return trimmed[idx+1:]
}
