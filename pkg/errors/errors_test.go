package errors

import (
	"errors"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "error with cause",
			err: &Error{
				Type:    ErrConfigRead,
				Message: "Error reading ja2.json config file",
				Cause:   errors.New("permission denied"),
			},
			want: "Error reading ja2.json config file: permission denied",
		},
		{
			name: "error without cause",
			err: &Error{
				Type:    ErrMissingDataDir,
				Message: "Vanilla data directory has to be set",
				Cause:   nil,
			},
			want: "Vanilla data directory has to be set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.want {
				t.Errorf("Error.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := NewIOError("test message", cause)

	if got := err.Unwrap(); got != cause {
		t.Errorf("Error.Unwrap() = %v, want %v", got, cause)
	}

	errNoCause := NewConflictingFlagsError("test message")

	if got := errNoCause.Unwrap(); got != nil {
		t.Errorf("Error.Unwrap() = %v, want nil", got)
	}
}

func TestNewError(t *testing.T) {
	cause := errors.New("underlying error")
	err := NewError(ErrConfigParse, "test message", cause)

	if err.Type != ErrConfigParse {
		t.Errorf("NewError().Type = %v, want %v", err.Type, ErrConfigParse)
	}
	if err.Message != "test message" {
		t.Errorf("NewError().Message = %v, want %v", err.Message, "test message")
	}
	if err.Cause != cause {
		t.Errorf("NewError().Cause = %v, want %v", err.Cause, cause)
	}
}

func TestIsType(t *testing.T) {
	if !IsConflictingFlags(NewConflictingFlagsError("boom")) {
		t.Error("expected conflicting flags error to be recognized")
	}
	if IsConflictingFlags(errors.New("boom")) {
		t.Error("expected plain error not to be recognized")
	}
	if !IsMissingDataDir(NewMissingDataDirError("boom")) {
		t.Error("expected missing data dir error to be recognized")
	}
	if IsHomeNotFound(NewIOError("boom", nil)) {
		t.Error("expected IO error not to match home not found")
	}
}
