package versions

import (
	"fmt"
	"runtime"
	"testing"
)

func TestGetVersionInfo(t *testing.T) { //nolint:paralleltest // mutates package variables
	origVersion := Version
	origCommit := Commit
	origBuildDate := BuildDate
	t.Cleanup(func() {
		Version = origVersion
		Commit = origCommit
		BuildDate = origBuildDate
	})

	tests := []struct {
		name      string
		version   string
		commit    string
		buildDate string
		want      VersionInfo
	}{
		{
			name:      "release version with RFC3339 date",
			version:   "v1.2.3",
			commit:    "abc123def456789",
			buildDate: "2024-01-15T10:30:00Z",
			want: VersionInfo{
				Version:   "v1.2.3",
				Commit:    "abc123def456789",
				BuildDate: "2024-01-15 10:30:00 UTC",
			},
		},
		{
			name:      "dev version derives build id from commit",
			version:   "dev",
			commit:    "abc123def456789",
			buildDate: unknownStr,
			want: VersionInfo{
				Version:   "build-abc123de",
				Commit:    "abc123def456789",
				BuildDate: unknownStr,
			},
		},
		{
			name:      "dev version with short commit",
			version:   "dev",
			commit:    "short",
			buildDate: unknownStr,
			want: VersionInfo{
				Version:   "build-short",
				Commit:    "short",
				BuildDate: unknownStr,
			},
		},
		{
			name:      "dev version without commit",
			version:   "dev",
			commit:    unknownStr,
			buildDate: unknownStr,
			want: VersionInfo{
				Version:   "build-unknown",
				Commit:    unknownStr,
				BuildDate: unknownStr,
			},
		},
		{
			name:      "unparseable date stays unchanged",
			version:   "v2.0.0",
			commit:    "def456",
			buildDate: "not-a-date",
			want: VersionInfo{
				Version:   "v2.0.0",
				Commit:    "def456",
				BuildDate: "not-a-date",
			},
		},
	}

	for _, tt := range tests { //nolint:paralleltest // mutates package variables
		t.Run(tt.name, func(t *testing.T) {
			Version = tt.version
			Commit = tt.commit
			BuildDate = tt.buildDate

			got := GetVersionInfo()

			tt.want.GoVersion = runtime.Version()
			tt.want.Platform = fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
			if got != tt.want {
				t.Errorf("GetVersionInfo() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
