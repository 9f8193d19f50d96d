//go:build !windows

package config

// defaultJSONContent is written when no settings file exists yet. The help
// key is purely informational and ignored on load.
const defaultJSONContent = `{
    "help": "Put the directory to your original ja2 installation into the line below",
    "data_dir": "/some/place/where/the/data/is"
}`
