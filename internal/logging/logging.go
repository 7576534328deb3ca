// Package logging configures the process-wide slog logger. The TUI owns the
// terminal, so logs only ever go to a file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	appDirName  = "drumroll"
	logFileName = "drumroll.log"
)

// Structured log keys
const (
	KeyComponent = "component"
	KeyError     = "error"
	KeyFile      = "file"
	KeyLang      = "lang"
	KeyKey       = "key"
	KeyWheel     = "wheel"
	KeyIndex     = "index"
	KeyValue     = "value"
	KeyOld       = "old"
	KeyNew       = "new"
	KeyGen       = "generation"
	KeyDate      = "date"
	KeyPolicy    = "policy"
)

// Component names
const (
	CompMain   = "main"
	CompI18n   = "i18n"
	CompTUI    = "tui"
	CompDialog = "dialog"
)

// Setup installs the default logger. Without debug, logs are discarded.
// With debug, JSON records at debug level go to path, or to the user cache
// directory when path is empty. The returned closer may be nil.
func Setup(debug bool, path string) (io.Closer, error) {
	if !debug {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return nil, nil
	}

	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	}))
	slog.SetDefault(logger)
	return f, nil
}

// DefaultPath returns the log file location in the user cache directory.
func DefaultPath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate cache directory: %w", err)
	}
	return filepath.Join(cacheDir, appDirName, logFileName), nil
}
