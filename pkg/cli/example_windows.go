//go:build windows

package cli

// dataDirExample is the platform-appropriate example shown in help text.
const dataDirExample = `C:\JA2`
