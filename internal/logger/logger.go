package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	mu        sync.RWMutex
	logger    *slog.Logger
	logLevel  slog.Level
	logFormat string
	once      sync.Once
)

func init() {
	Initialize()
}

// Initialize sets up the package logger from LOG_LEVEL / LOG_FORMAT.
// QUICKDATE_DEBUG=1 is a shortcut for LOG_LEVEL=DEBUG.
func Initialize() {
	once.Do(func() {
		levelStr := os.Getenv("LOG_LEVEL")
		if levelStr == "" {
			levelStr = os.Getenv("QUICKDATE_DEBUG")
			if levelStr == "1" || levelStr == "true" {
				levelStr = "DEBUG"
			} else {
				levelStr = "INFO"
			}
		}

		configure(levelStr, os.Getenv("LOG_FORMAT"), os.Stderr)
	})
}

// Configure replaces the package logger, typically with values read from the
// config file. Environment variables still win when they are set.
func Configure(level, format string) {
	Initialize()
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		level = env
	}
	if env := os.Getenv("LOG_FORMAT"); env != "" {
		format = env
	}
	configure(level, format, os.Stderr)
}

// ConfigureWriter is Configure with an explicit destination, used by tests
func ConfigureWriter(level, format string, w io.Writer) {
	Initialize()
	configure(level, format, w)
}

func configure(levelStr, format string, w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	logLevel = ParseLevel(levelStr)

	logFormat = strings.ToLower(format)
	if logFormat == "" {
		logFormat = "text"
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var handler slog.Handler
	if logFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger = slog.New(handler)
}

// ParseLevel maps a level name to slog.Level, defaulting to INFO
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func GetLogger() *slog.Logger {
	Initialize()
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func GetLevel() slog.Level {
	Initialize()
	mu.RLock()
	defer mu.RUnlock()
	return logLevel
}

func GetFormat() string {
	Initialize()
	mu.RLock()
	defer mu.RUnlock()
	return logFormat
}

// OrDefault returns l, or the package logger when l is nil
func OrDefault(l *slog.Logger) *slog.Logger {
	if l == nil {
		return GetLogger()
	}
	return l
}

func Debug(msg string, args ...any) {
	GetLogger().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	GetLogger().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	GetLogger().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	GetLogger().Error(msg, args...)
}
