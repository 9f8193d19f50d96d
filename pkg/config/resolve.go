package config

import (
	"github.com/simonmarcel/ja2-stracciatella/pkg/cli"
	"github.com/simonmarcel/ja2-stracciatella/pkg/engine"
	"github.com/simonmarcel/ja2-stracciatella/pkg/errors"
	"github.com/simonmarcel/ja2-stracciatella/pkg/logger"
)

// findHome resolves the settings home; replaced in tests.
var findHome = FindStracciatellaHome

// ResolveOptions builds the single validated options record from the
// settings file and the given argument vector (program name included).
// Stages run in a fixed order and the first failure aborts resolution:
// locate home, ensure the settings file, parse it, stamp the home onto the
// record, overlay command-line values, check the data dir is set.
func ResolveOptions(args []string) (*engine.Options, error) {
	home, err := findHome()
	if err != nil {
		return nil, err
	}

	store := NewStore(home)
	if err := store.EnsureExistence(); err != nil {
		return nil, err
	}

	opts, err := store.Parse()
	if err != nil {
		return nil, err
	}

	// The file cannot decide where it lives.
	opts.StracciatellaHome = home

	if err := cli.New(args).MergeOptions(opts); err != nil {
		return nil, err
	}

	if opts.VanillaDataDir == "" {
		return nil, errors.NewMissingDataDirError(
			"Vanilla data directory has to be set either in config file or per command line switch")
	}

	logger.Debugw("resolved engine options",
		"home", opts.StracciatellaHome,
		"data_dir", opts.VanillaDataDir,
		"res", opts.Resolution.String(),
		"resversion", opts.ResourceVersion.String())

	return opts, nil
}
