// Package resources defines the closed set of game-data localization tags.
package resources

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/simonmarcel/ja2-stracciatella/pkg/errors"
)

// ResourceVersion identifies the localization of the original game data.
type ResourceVersion int

// The known resource versions. RUSSIAN is the BUKA Agonia Vlasty release,
// RUSSIAN_GOLD the Gold release.
const (
	Dutch ResourceVersion = iota
	English
	French
	German
	Italian
	Polish
	Russian
	RussianGold
)

// versionTags holds the wire form of each version, in declaration order.
var versionTags = []string{
	"DUTCH",
	"ENGLISH",
	"FRENCH",
	"GERMAN",
	"ITALIAN",
	"POLISH",
	"RUSSIAN",
	"RUSSIAN_GOLD",
}

// Tags returns all known resource version tags.
func Tags() []string {
	out := make([]string, len(versionTags))
	copy(out, versionTags)
	return out
}

// String returns the wire form of the resource version.
func (v ResourceVersion) String() string {
	if v < 0 || int(v) >= len(versionTags) {
		return fmt.Sprintf("ResourceVersion(%d)", int(v))
	}
	return versionTags[v]
}

// FromString parses a resource version tag. Matching is exact and
// case-sensitive; unknown tags are a hard error, never defaulted.
func FromString(s string) (ResourceVersion, error) {
	for i, tag := range versionTags {
		if s == tag {
			return ResourceVersion(i), nil
		}
	}
	return English, errors.NewUnknownResourceVersionError(
		fmt.Sprintf("Resource version %s is unknown", s))
}

// MarshalJSON implements json.Marshaler.
func (v ResourceVersion) MarshalJSON() ([]byte, error) {
	if v < 0 || int(v) >= len(versionTags) {
		return nil, fmt.Errorf("cannot serialize resource version %d", int(v))
	}
	return json.Marshal(versionTags[v])
}

// UnmarshalJSON implements json.Unmarshaler. The diagnostic lists every
// valid tag so a typo in the settings file is self-explaining.
func (v *ResourceVersion) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := FromString(s)
	if err != nil {
		return fmt.Errorf("unknown variant `%s`, expected one of `%s`",
			s, strings.Join(versionTags, "`, `"))
	}
	*v = parsed
	return nil
}
