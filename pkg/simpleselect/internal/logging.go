package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BrandonKowalski/simpleselect/pkg/simpleselect/constants"
)

var (
	logFile *os.File
	logPath string

	setupOnce sync.Once
	logWriter io.Writer

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar
)

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories. Must be called before the
// first GetLogger call to take effect.
func SetLogPath(path string) {
	logPath = path
}

func setup() {
	setupOnce.Do(func() {
		// Terminal front ends own stdout, so the library never writes there.
		logWriter = os.Stderr

		targetPath := logPath
		if targetPath == "" {
			targetPath = os.Getenv(constants.LogPathEnvVar)
		}
		if targetPath == "" {
			return
		}

		if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
			return
		}

		var err error
		logFile, err = os.OpenFile(targetPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			// Can't open log file, stay on stderr
			return
		}

		logWriter = logFile
	})
}

// defaultLevel is error, debug in development mode, or the value of
// SIMPLESELECT_LOG_LEVEL when set.
func defaultLevel() slog.Level {
	if raw := os.Getenv(constants.LogLevelEnvVar); raw != "" {
		return ParseLevel(raw)
	}
	if constants.IsDevMode() {
		return slog.LevelDebug
	}
	return slog.LevelError
}

// GetLogger returns the shared library logger.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}
		levelVar.Set(defaultLevel())

		setup()

		handler := slog.NewJSONHandler(logWriter, &slog.HandlerOptions{
			Level:     levelVar,
			AddSource: false,
		})
		logger = slog.New(handler).With("component", "simpleselect")
	})
	return logger
}

func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(rawLevel string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(rawLevel)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetRawLogLevel(rawLevel string) {
	SetLogLevel(ParseLevel(rawLevel))
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
