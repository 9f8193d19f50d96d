// Package config locates the per-user settings directory, guarantees the
// settings file exists, and moves options records between disk and memory.
package config

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/simonmarcel/ja2-stracciatella/pkg/engine"
	"github.com/simonmarcel/ja2-stracciatella/pkg/errors"
	"github.com/simonmarcel/ja2-stracciatella/pkg/logger"
)

// SettingsFileName is the fixed name of the settings file inside the
// settings directory.
const SettingsFileName = "ja2.json"

// lockTimeout is the maximum time to wait for the write lock.
const lockTimeout = 1 * time.Second

// Store reads and writes the settings file of one settings directory.
type Store struct {
	path string
}

// NewStore creates a store targeting <settingsHome>/ja2.json.
func NewStore(settingsHome string) *Store {
	return &Store{path: filepath.Join(settingsHome, SettingsFileName)}
}

// Path returns the full path of the settings file.
func (s *Store) Path() string {
	return s.path
}

// EnsureExistence creates the settings directory tree and, when no settings
// file exists yet, writes the default template. An existing file is never
// overwritten, even a corrupt one.
func (s *Store) EnsureExistence() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.NewIOError(
			fmt.Sprintf("Error creating settings directory %s", dir), err)
	}

	if fileExists(s.path) {
		return nil
	}

	logger.Debugf("initializing settings file at %s", s.path)
	if err := os.WriteFile(s.path, []byte(defaultJSONContent), 0o644); err != nil {
		return errors.NewIOError(
			fmt.Sprintf("Error creating settings file %s", s.path), err)
	}

	return nil
}

// Parse decodes the settings file into a default-seeded options record.
// Keys absent from the file keep their documented defaults, unknown keys
// are ignored, and non-persisted fields cannot be set from the file.
func (s *Store) Parse() (*engine.Options, error) {
	// #nosec G304: the path is fixed relative to the settings home
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.NewConfigReadError("Error reading ja2.json config file", err)
	}

	opts := engine.NewOptions()
	if err := json.Unmarshal(data, opts); err != nil {
		return nil, errors.NewConfigParseError(
			fmt.Sprintf("Error parsing ja2.json config file: %s", decodeDiagnostic(data, err)),
			nil)
	}

	return opts, nil
}

// Write serializes the persisted subset of the record, pretty-printed with
// 2-space indentation and fixed key order, overwriting unconditionally.
// Writes go through a sibling lock file so concurrent hosts cannot
// interleave partial content.
func (s *Store) Write(opts *engine.Options) error {
	data, err := json.MarshalIndent(opts, "", "  ")
	if err != nil {
		return errors.NewConfigWriteError(
			"Error creating contents of ja2.json config file", err)
	}

	fileLock := flock.New(s.path + ".lock")
	lockCtx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	locked, err := fileLock.TryLockContext(lockCtx, 100*time.Millisecond)
	if err != nil {
		return errors.NewConfigWriteError("Error locking ja2.json config file", err)
	}
	if !locked {
		return errors.NewConfigWriteError(
			fmt.Sprintf("Error locking ja2.json config file: timeout after %v", lockTimeout), nil)
	}
	defer fileLock.Unlock()

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return errors.NewConfigWriteError("Error writing ja2.json config file", err)
	}

	return nil
}

// decodeDiagnostic renders a decoder error with line/column position where
// the stdlib decoder only reports a byte offset.
func decodeDiagnostic(data []byte, err error) string {
	var offset int64 = -1

	switch e := err.(type) {
	case *json.SyntaxError:
		offset = e.Offset
	case *json.UnmarshalTypeError:
		offset = e.Offset
	}

	if offset < 0 {
		return err.Error()
	}

	line, column := offsetPosition(data, offset)
	return fmt.Sprintf("%s at line %d column %d", err.Error(), line, column)
}

// offsetPosition converts a byte offset into a 1-based line/column pair.
func offsetPosition(data []byte, offset int64) (line, column int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	prefix := data[:offset]
	line = bytes.Count(prefix, []byte("\n")) + 1
	lastNewline := bytes.LastIndexByte(prefix, '\n')
	column = int(offset) - lastNewline
	return line, column
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
