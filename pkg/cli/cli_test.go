package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonmarcel/ja2-stracciatella/pkg/engine"
	"github.com/simonmarcel/ja2-stracciatella/pkg/errors"
	"github.com/simonmarcel/ja2-stracciatella/pkg/resources"
)

func TestMergeOptions_NoArgs(t *testing.T) {
	t.Parallel()

	got := engine.NewOptions()
	expected := engine.NewOptions()

	require.NoError(t, New([]string{"ja2"}).MergeOptions(got))

	assert.Empty(t, cmp.Diff(expected, got))
}

func TestMergeOptions_EmptyVector(t *testing.T) {
	t.Parallel()

	got := engine.NewOptions()

	require.NoError(t, New(nil).MergeOptions(got))
}

func TestMergeOptions_DataDirCanonicalized(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tempDir, "foo"), 0o755))

	input := filepath.Join(tempDir, "foo", "..", "foo", "..")
	got := engine.NewOptions()

	require.NoError(t, New([]string{"ja2", "--datadir", input}).MergeOptions(got))

	expected, err := filepath.EvalSymlinks(tempDir)
	require.NoError(t, err)
	assert.Equal(t, expected, got.VanillaDataDir)
}

func TestMergeOptions_DataDirMissing(t *testing.T) {
	t.Parallel()

	got := engine.NewOptions()
	err := New([]string{"ja2", "--datadir", "/somewhere/that/does/not/exist"}).MergeOptions(got)

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrInvalidDataDir))
	assert.Equal(t, "Please specify an existing datadir.", err.Error())
	assert.Empty(t, got.VanillaDataDir)
}

func TestMergeOptions_Mods(t *testing.T) {
	t.Parallel()

	got := engine.NewOptions()

	require.NoError(t, New([]string{"ja2", "--mod", "a", "--mod", "b"}).MergeOptions(got))

	assert.Equal(t, []string{"a", "b"}, got.Mods)
}

func TestMergeOptions_ModsReplaceExisting(t *testing.T) {
	t.Parallel()

	got := engine.NewOptions()
	got.Mods = []string{"from-file"}

	require.NoError(t, New([]string{"ja2", "--mod", "a"}).MergeOptions(got))

	assert.Equal(t, []string{"a"}, got.Mods)
}

func TestMergeOptions_Resolution(t *testing.T) {
	t.Parallel()

	got := engine.NewOptions()

	require.NoError(t, New([]string{"ja2", "--res", "120x120"}).MergeOptions(got))

	assert.Equal(t, engine.Resolution{Width: 120, Height: 120}, got.Resolution)
}

func TestMergeOptions_InvalidResolution(t *testing.T) {
	t.Parallel()

	got := engine.NewOptions()
	err := New([]string{"ja2", "--res", "a"}).MergeOptions(got)

	require.Error(t, err)
	assert.Equal(t, "Incorrect resolution format, should be WIDTHxHEIGHT.", err.Error())
}

func TestMergeOptions_ResourceVersion(t *testing.T) {
	t.Parallel()

	got := engine.NewOptions()

	require.NoError(t, New([]string{"ja2", "--resversion", "RUSSIAN_GOLD"}).MergeOptions(got))

	assert.Equal(t, resources.RussianGold, got.ResourceVersion)
}

func TestMergeOptions_UnknownResourceVersion(t *testing.T) {
	t.Parallel()

	got := engine.NewOptions()
	err := New([]string{"ja2", "--resversion", "a"}).MergeOptions(got)

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrUnknownResourceVersion))
	assert.Equal(t, "Resource version a is unknown", err.Error())
}

func TestMergeOptions_Flags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		flag  string
		check func(*engine.Options) bool
	}{
		{"--help", func(o *engine.Options) bool { return o.ShowHelp }},
		{"--unittests", func(o *engine.Options) bool { return o.RunUnitTests }},
		{"--editor", func(o *engine.Options) bool { return o.RunEditor }},
		{"--fullscreen", func(o *engine.Options) bool { return o.StartInFullscreen }},
		{"--nosound", func(o *engine.Options) bool { return o.StartWithoutSound }},
		{"--debug", func(o *engine.Options) bool { return o.StartInDebugMode }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.flag, func(t *testing.T) {
			t.Parallel()

			got := engine.NewOptions()
			require.NoError(t, New([]string{"ja2", tt.flag}).MergeOptions(got))
			assert.True(t, tt.check(got))
		})
	}
}

func TestMergeOptions_WindowClearsFullscreen(t *testing.T) {
	t.Parallel()

	got := engine.NewOptions()
	got.StartInFullscreen = true

	require.NoError(t, New([]string{"ja2", "--window"}).MergeOptions(got))

	assert.False(t, got.StartInFullscreen)
	// --window does not drive the separate window field
	assert.True(t, got.StartInWindow)
}

func TestMergeOptions_FullscreenWindowConflict(t *testing.T) {
	t.Parallel()

	orders := [][]string{
		{"ja2", "--window", "--fullscreen"},
		{"ja2", "--fullscreen", "--window"},
	}

	for _, args := range orders {
		got := engine.NewOptions()
		err := New(args).MergeOptions(got)

		require.Error(t, err)
		assert.True(t, errors.IsConflictingFlags(err))
		assert.Equal(t, "Cannot use fullscreen and window switches at the same time.", err.Error())
		// nothing was mutated before the conflict was detected
		assert.Empty(t, cmp.Diff(engine.NewOptions(), got))
	}
}

func TestMergeOptions_UnknownArguments(t *testing.T) {
	t.Parallel()

	got := engine.NewOptions()
	err := New([]string{"ja2", "aaa"}).MergeOptions(got)

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrUnknownArguments))
	assert.Equal(t, "Unknown arguments: 'aaa'.", err.Error())
}

func TestMergeOptions_MultipleUnknownArguments(t *testing.T) {
	t.Parallel()

	got := engine.NewOptions()
	err := New([]string{"ja2", "aaa", "bbb"}).MergeOptions(got)

	require.Error(t, err)
	assert.Equal(t, "Unknown arguments: 'aaa bbb'.", err.Error())
}

func TestMergeOptions_UnrecognizedOption(t *testing.T) {
	t.Parallel()

	got := engine.NewOptions()
	err := New([]string{"ja2", "--somethingunknown"}).MergeOptions(got)

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrUnrecognizedOption))
	assert.Contains(t, err.Error(), "somethingunknown")
}

func TestMergeOptions_SingleDashLongForm(t *testing.T) {
	t.Parallel()

	got := engine.NewOptions()

	require.NoError(t, New([]string{"ja2", "-res", "800x600", "-nosound"}).MergeOptions(got))

	assert.Equal(t, engine.Resolution{Width: 800, Height: 600}, got.Resolution)
	assert.True(t, got.StartWithoutSound)
}

func TestUsageText(t *testing.T) {
	t.Parallel()

	usage := UsageText()

	assert.Contains(t, usage, "Usage: ja2 [options]")
	for _, flag := range []string{"datadir", "mod", "res", "resversion",
		"unittests", "editor", "fullscreen", "nosound", "window", "debug", "help"} {
		assert.Contains(t, usage, "--"+flag)
	}
}
