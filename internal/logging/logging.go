package logging

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/thenoetrevino/roster/internal/config"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// DefaultPath returns ~/.roster/logs/roster.log
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".roster", "logs", "roster.log"), nil
}

// Init initializes the logging system, writing logs to cfg.File or
// ~/.roster/logs/roster.log. Uses text format for human readability.
func Init(cfg config.LoggingConfig) error {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return err
	}

	logPath := cfg.File
	if logPath == "" {
		if logPath, err = DefaultPath(); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return err
	}

	// Open log file in append mode
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	Setup(file, level)
	return nil
}

// Setup installs a text handler writing to w as the default logger and
// redirects the standard log package to the same writer
func Setup(w io.Writer, level slog.Level) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	log.SetOutput(w)
	log.SetFlags(log.LstdFlags) // Include timestamp
}

// ParseLevel maps a config level name to a slog level. Empty means info.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	name = strings.TrimSpace(name)
	if name == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}
