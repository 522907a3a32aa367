package Utils

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logging provides structured logging functionality.
type Logging struct {

	Base *zap.Logger

}

// NewLogging builds a console logger at the given level (debug, info, warn, error).
func NewLogging(Level string) (*Logging, error) {

	Config := zap.NewProductionConfig()

	Config.Encoding = "console"
	Config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	Config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	Config.Level = zap.NewAtomicLevelAt(ParseLevel(Level))

	Base, ErrorBuilding := Config.Build()

	if ErrorBuilding != nil {

		return nil, ErrorBuilding

	}

	return &Logging{Base: Base}, nil

}

// NopLogging discards everything; used by tests.
func NopLogging() *Logging {

	return &Logging{Base: zap.NewNop()}

}

// ParseLevel maps a config string onto a zap level, defaulting to info.
func ParseLevel(Level string) zapcore.Level {

	switch strings.ToLower(strings.TrimSpace(Level)) {

		case "debug":

			return zapcore.DebugLevel

		case "warn", "warning":

			return zapcore.WarnLevel

		case "error":

			return zapcore.ErrorLevel

		default:

			return zapcore.InfoLevel

	}

}

func (L *Logging) base() *zap.Logger {

	if L == nil || L.Base == nil {

		return zap.NewNop()

	}

	return L.Base

}

// Debug logs a debug message.
func (L *Logging) Debug(Message string, Fields ...zap.Field) {

	L.base().Debug(Message, Fields...)

}

// Info logs an informational message.
func (L *Logging) Info(Message string, Fields ...zap.Field) {

	L.base().Info(Message, Fields...)

}

// Warn logs a warning message.
func (L *Logging) Warn(Message string, Fields ...zap.Field) {

	L.base().Warn(Message, Fields...)

}

// Error logs an error message.
func (L *Logging) Error(Message string, Fields ...zap.Field) {

	L.base().Error(Message, Fields...)

}

// With returns a child logger carrying the given fields.
func (L *Logging) With(Fields ...zap.Field) *Logging {

	return &Logging{Base: L.base().With(Fields...)}

}

// Sync flushes buffered entries.
func (L *Logging) Sync() {

	_ = L.base().Sync()

}

// Logger is the global logging instance; replaced in main once config is loaded.
var Logger = NopLogging()
