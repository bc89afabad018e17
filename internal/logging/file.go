package logging

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// FileConfig selects where a file logger writes.
type FileConfig struct {
	// Path is the log file. Empty disables file logging.
	Path string
	// PerSession writes to session_<id>.log in the directory of Path instead.
	PerSession bool
}

// NewWithFile creates a logger appending to the configured file. The interactive
// picker owns the terminal, so it logs here instead of stderr. The returned cleanup
// closes the file. With an empty path the logger is disabled.
func NewWithFile(cfg Config, fc FileConfig) (zerolog.Logger, func() error, error) {
	if fc.Path == "" {
		return zerolog.Nop(), func() error { return nil }, nil
	}

	path := fc.Path
	if fc.PerSession {
		path = filepath.Join(filepath.Dir(fc.Path), SessionFilename(GenerateSessionID()))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return NewWithWriter(cfg, file), file.Close, nil
}

// GenerateSessionID returns YYYYMMDD_HHMMSS_xxxx, e.g. 20251217_205106_a7b3.
func GenerateSessionID() string {
	random := make([]byte, 2)
	_, _ = rand.Read(random)
	return time.Now().Format("20060102_150405") + "_" + hex.EncodeToString(random)
}

// SessionFilename names the log file of a session.
func SessionFilename(sessionID string) string {
	return "session_" + sessionID + ".log"
}
