package utils

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevelEnvironmentVariable selects the logger level (debug, info, warn, error).
const LogLevelEnvironmentVariable = "PCOPY_LOG_LEVEL"

// NewApplicationLogger constructs a zap logger configured for human-readable console output on stderr.
func NewApplicationLogger() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.DisableCaller = true
	config.DisableStacktrace = true
	config.Level = zap.NewAtomicLevelAt(resolveLogLevel(os.Getenv(LogLevelEnvironmentVariable)))
	config.OutputPaths = []string{"stderr"}
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.TimeKey = ""
	config.EncoderConfig.LevelKey = ""
	config.EncoderConfig.NameKey = ""
	config.EncoderConfig.CallerKey = ""
	config.EncoderConfig.MessageKey = "message"
	config.EncoderConfig.StacktraceKey = ""
	return config.Build()
}

func resolveLogLevel(value string) zapcore.Level {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return zapcore.InfoLevel
	}
	level, parseError := zapcore.ParseLevel(trimmed)
	if parseError != nil {
		return zapcore.InfoLevel
	}
	return level
}
