package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/habitual/internal/constants"
)

var (
	// Logger is the global logger instance
	Logger *log.Logger

	// SessionID identifies the current process in the log file.
	SessionID string
)

// Config holds logger configuration
type Config struct {
	Debug  bool
	LogDir string
	// Output overrides the rotating file writer. Used by tests.
	Output io.Writer
}

// Init initializes the global logger with the given configuration
func Init(cfg Config) error {
	var writer io.Writer = cfg.Output
	if writer == nil {
		if err := os.MkdirAll(cfg.LogDir, 0755); err != nil {
			return err
		}
		writer = &lumberjack.Logger{
			Filename:   filepath.Join(cfg.LogDir, constants.LogFileName),
			MaxSize:    constants.LogMaxSizeMB,
			MaxBackups: 3,
			MaxAge:     constants.LogMaxAgeDay,
			Compress:   true,
		}
	}

	level := log.WarnLevel
	if cfg.Debug {
		level = log.DebugLevel
		// In debug mode, also mirror to stderr
		writer = io.MultiWriter(os.Stderr, writer)
	}

	SessionID = uuid.NewString()
	Logger = log.NewWithOptions(writer, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          constants.AppName,
	}).With("session", SessionID)

	return nil
}

// Debug logs a debug message
func Debug(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

// Info logs an info message
func Info(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

// Warn logs a warning message
func Warn(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

// Error logs an error message
func Error(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}

// Fatal logs a fatal error and exits
func Fatal(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Fatal(msg, keyvals...)
	}
	os.Exit(1)
}
