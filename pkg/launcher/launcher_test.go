package launcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecutablePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"/home/test/ja2-launcher", "/home/test/ja2"},
		{`C:\home\test\ja2-launcher.exe`, `C:\home\test\ja2.exe`},
		{"ja2-launcher", "ja2"},
		{"ja2-launcher.exe", "ja2.exe"},
		{"JA2-LAUNCHER.EXE", "JA2.exe"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ExecutablePath(tt.input))
		})
	}
}
