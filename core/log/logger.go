// File: logger.go
// Title: Structured Logging Facade
// Description: Implements a thin structured logging facade over uber-go/zap.
//              Components receive a *Logger through their Options, attach
//              contextual fields (component, session) and emit leveled,
//              structured entries without binding the rest of the module
//              to the zap API.
// Version: v0.1.0
// Created: 2026-07-12
// Modified: 2026-07-19
//
// Change History:
// - 2026-07-12 v0.1.0: Initial zap-backed implementation
// - 2026-07-19 v0.1.1: Added Nop logger and ParseLevel

package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Fields carries contextual key/value pairs attached to a log entry.
type Fields map[string]interface{}

// Level controls the minimum severity a logger emits.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the lowercase name of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel converts a level name (case-insensitive) into a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Format selects the output encoding.
type Format int

const (
	// FormatConsole is a human-readable single-line encoding (default).
	FormatConsole Format = iota

	// FormatJSON is a machine-readable JSON encoding.
	FormatJSON
)

// Config represents logger configuration.
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// Logger represents a structured logger with contextual information.
type Logger struct {
	z *zap.Logger
}

// New creates a new logger with default configuration: info level,
// console encoding, stderr output.
func New() *Logger {
	return NewWithConfig(Config{})
}

// NewWithConfig creates a new logger with the specified configuration.
func NewWithConfig(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.LowercaseLevelEncoder

	var enc zapcore.Encoder
	if config.Format == FormatJSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(output), config.Level.zapLevel())
	z := zap.New(core)
	if config.Name != "" {
		z = z.Named(config.Name)
	}

	return &Logger{z: z}
}

// Nop returns a logger that discards all entries. Useful in tests and as
// a safe fallback for optional loggers.
func Nop() *Logger {
	return &Logger{z: zap.NewNop()}
}

var (
	defaultLogger *Logger
	defaultOnce   sync.Once
	defaultMu     sync.RWMutex
)

// GetDefault returns the process-wide default logger, creating it on
// first use.
func GetDefault() *Logger {
	defaultMu.RLock()
	if defaultLogger != nil {
		l := defaultLogger
		defaultMu.RUnlock()
		return l
	}
	defaultMu.RUnlock()

	defaultOnce.Do(func() {
		defaultMu.Lock()
		defaultLogger = New()
		defaultMu.Unlock()
	})

	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the process-wide default logger.
func SetDefault(l *Logger) {
	if l == nil {
		return
	}
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
}

// WithField returns a logger that attaches the given field to all entries.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{z: l.z.With(zap.Any(key, value))}
}

// WithFields returns a logger that attaches the given fields to all entries.
func (l *Logger) WithFields(fields Fields) *Logger {
	return &Logger{z: l.z.With(zapFields(fields)...)}
}

// Debug logs a message at debug level.
func (l *Logger) Debug(msg string, fields ...Fields) {
	l.z.Debug(msg, flatten(fields)...)
}

// Info logs a message at info level.
func (l *Logger) Info(msg string, fields ...Fields) {
	l.z.Info(msg, flatten(fields)...)
}

// Warn logs a message at warn level.
func (l *Logger) Warn(msg string, fields ...Fields) {
	l.z.Warn(msg, flatten(fields)...)
}

// Error logs a message at error level.
func (l *Logger) Error(msg string, fields ...Fields) {
	l.z.Error(msg, flatten(fields)...)
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.z.Sync()
}

func zapFields(fields Fields) []zap.Field {
	zf := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zf = append(zf, zap.Any(k, v))
	}
	return zf
}

func flatten(fields []Fields) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	var zf []zap.Field
	for _, f := range fields {
		zf = append(zf, zapFields(f)...)
	}
	return zf
}
