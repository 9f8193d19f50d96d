//go:build windows

package config

// defaultJSONContent is written when no settings file exists yet. The help
// key is purely informational and ignored on load.
const defaultJSONContent = `{
    "help": "Put the directory to your original ja2 installation into the line below. Make sure to use double backslashes.",
    "data_dir": "C:\\Program Files\\Jagged Alliance 2"
}`
