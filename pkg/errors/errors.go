// Package errors defines the error taxonomy for the options subsystem.
// Every failure during settings resolution is one of these types; none of
// them is retried; the host displays the message and halts startup.
package errors

import (
	"fmt"
)

// Error types
const (
	// ErrHomeNotFound is returned when the platform cannot report a user home
	ErrHomeNotFound = "home_not_found"

	// ErrIO is returned on directory/file create, open, read or write failures
	ErrIO = "io"

	// ErrConfigRead is returned when the settings file cannot be opened
	ErrConfigRead = "config_read"

	// ErrConfigParse is returned when the settings file content is malformed
	ErrConfigParse = "config_parse"

	// ErrConfigWrite is returned when the settings file cannot be written
	ErrConfigWrite = "config_write"

	// ErrUnknownArguments is returned when positional arguments are present
	ErrUnknownArguments = "unknown_arguments"

	// ErrUnrecognizedOption is returned for a flag outside the option surface
	ErrUnrecognizedOption = "unrecognized_option"

	// ErrConflictingFlags is returned when mutually exclusive flags are combined
	ErrConflictingFlags = "conflicting_flags"

	// ErrInvalidDataDir is returned when a data dir does not canonicalize
	ErrInvalidDataDir = "invalid_data_dir"

	// ErrInvalidResolution is returned for a malformed WIDTHxHEIGHT string
	ErrInvalidResolution = "invalid_resolution"

	// ErrUnknownResourceVersion is returned for a string outside the closed enum
	ErrUnknownResourceVersion = "unknown_resource_version"

	// ErrMissingDataDir is returned when resolution finishes without a data dir
	ErrMissingDataDir = "missing_data_dir"
)

// Error represents an error in the options subsystem
type Error struct {
	// Type is the error type
	Type string

	// Message is the error message
	Message string

	// Cause is the underlying error
	Cause error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error
func NewError(errorType, message string, cause error) *Error {
	return &Error{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// NewHomeNotFoundError creates a new home not found error
func NewHomeNotFoundError(message string, cause error) *Error {
	return NewError(ErrHomeNotFound, message, cause)
}

// NewIOError creates a new I/O error
func NewIOError(message string, cause error) *Error {
	return NewError(ErrIO, message, cause)
}

// NewConfigReadError creates a new config read error
func NewConfigReadError(message string, cause error) *Error {
	return NewError(ErrConfigRead, message, cause)
}

// NewConfigParseError creates a new config parse error
func NewConfigParseError(message string, cause error) *Error {
	return NewError(ErrConfigParse, message, cause)
}

// NewConfigWriteError creates a new config write error
func NewConfigWriteError(message string, cause error) *Error {
	return NewError(ErrConfigWrite, message, cause)
}

// NewUnknownArgumentsError creates a new unknown arguments error
func NewUnknownArgumentsError(message string) *Error {
	return NewError(ErrUnknownArguments, message, nil)
}

// NewUnrecognizedOptionError creates a new unrecognized option error
func NewUnrecognizedOptionError(message string, cause error) *Error {
	return NewError(ErrUnrecognizedOption, message, cause)
}

// NewConflictingFlagsError creates a new conflicting flags error
func NewConflictingFlagsError(message string) *Error {
	return NewError(ErrConflictingFlags, message, nil)
}

// NewInvalidDataDirError creates a new invalid data dir error
func NewInvalidDataDirError(message string, cause error) *Error {
	return NewError(ErrInvalidDataDir, message, cause)
}

// NewInvalidResolutionError creates a new invalid resolution error
func NewInvalidResolutionError(message string) *Error {
	return NewError(ErrInvalidResolution, message, nil)
}

// NewUnknownResourceVersionError creates a new unknown resource version error
func NewUnknownResourceVersionError(message string) *Error {
	return NewError(ErrUnknownResourceVersion, message, nil)
}

// NewMissingDataDirError creates a new missing data dir error
func NewMissingDataDirError(message string) *Error {
	return NewError(ErrMissingDataDir, message, nil)
}

// IsType checks if the error is an Error of the given type
func IsType(err error, errorType string) bool {
	e, ok := err.(*Error)
	return ok && e.Type == errorType
}

// IsHomeNotFound checks if the error is a home not found error
func IsHomeNotFound(err error) bool {
	return IsType(err, ErrHomeNotFound)
}

// IsConfigParse checks if the error is a config parse error
func IsConfigParse(err error) bool {
	return IsType(err, ErrConfigParse)
}

// IsConflictingFlags checks if the error is a conflicting flags error
func IsConflictingFlags(err error) bool {
	return IsType(err, ErrConflictingFlags)
}

// IsMissingDataDir checks if the error is a missing data dir error
func IsMissingDataDir(err error) bool {
	return IsType(err, ErrMissingDataDir)
}
