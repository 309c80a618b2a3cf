package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/camford/httplatency/internal/config"
)

// New creates a zerolog logger from the given log configuration. Console
// output goes to stderr; when a log file is configured it is written through
// lumberjack for rotation. The returned logger is meant to be injected into
// every component rather than held as process-wide state.
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Logger{}, err
	}

	var writers []io.Writer
	writers = append(writers, consoleWriter(cfg.LogFormat, os.Stderr, false))

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
			return zerolog.Logger{}, fmt.Errorf("failed to create log directory for %s: %w", cfg.LogFile, err)
		}
		fileSink := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.MaxLogSizeMB,
			MaxBackups: cfg.MaxLogBackups,
			LocalTime:  true,
		}
		writers = append(writers, consoleWriter(cfg.LogFormat, fileSink, true))
	}

	multi := zerolog.MultiLevelWriter(writers...)
	logger := zerolog.New(multi).Level(level).With().Timestamp().Logger()

	return logger, nil
}

// consoleWriter wraps w according to the configured format. JSON format
// writes zerolog's native output unchanged.
func consoleWriter(format string, w io.Writer, noColor bool) io.Writer {
	if strings.ToLower(format) == "json" {
		return w
	}
	return zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    noColor,
		TimeFormat: time.RFC3339,
	}
}

// parseLevel converts the configured level string to a zerolog level.
func parseLevel(levelStr string) (zerolog.Level, error) {
	if levelStr == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(levelStr))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", levelStr, err)
	}
	return level, nil
}
