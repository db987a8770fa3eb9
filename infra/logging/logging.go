// Package logging sets up the optional debug log. The TUI owns the
// terminal, so log output only ever goes to a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Open returns a logger writing to the given file, creating parent
// directories as needed. An empty path yields a disabled logger.
func Open(path string) (zerolog.Logger, error) {
	if path == "" {
		return zerolog.Nop(), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return zerolog.Nop(), fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("opening log file: %w", err)
	}
	return zerolog.New(f).With().Timestamp().Logger(), nil
}
