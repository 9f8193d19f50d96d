package engine

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/simonmarcel/ja2-stracciatella/pkg/errors"
)

// Resolution is a screen resolution. It travels as the string
// "WIDTHxHEIGHT" in the settings file and on the command line.
type Resolution struct {
	Width  uint16
	Height uint16
}

// String returns the wire form of the resolution.
func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// ParseResolution parses a "WIDTHxHEIGHT" string. Both components must be
// positive and fit in 16 bits.
func ParseResolution(s string) (Resolution, error) {
	invalid := errors.NewInvalidResolutionError(
		"Incorrect resolution format, should be WIDTHxHEIGHT.")

	parts := strings.Split(s, "x")
	if len(parts) != 2 {
		return Resolution{}, invalid
	}

	width, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil || width == 0 {
		return Resolution{}, invalid
	}
	height, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil || height == 0 {
		return Resolution{}, invalid
	}

	return Resolution{Width: uint16(width), Height: uint16(height)}, nil
}

// MarshalJSON implements json.Marshaler.
func (r Resolution) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Resolution) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseResolution(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
