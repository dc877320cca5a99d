package utils

import (
	"log"

	"haulify/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide zap logger, built on first use.
var Logger *zap.Logger

// InitializeLogger builds the global logger: JSON output in production,
// colored console output everywhere else, at the LOG_LEVEL the config
// names.
func InitializeLogger() {
	var cfg zap.Config
	if config.IsProduction() {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(logLevel())

	var err error
	Logger, err = cfg.Build()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
}

// logLevel maps the LOG_LEVEL knob onto a zap level. Unset means info in
// production and debug elsewhere; an unparseable value means info.
func logLevel() zapcore.Level {
	raw := config.AppConfig.LogLevel
	if raw == "" {
		if config.IsProduction() {
			return zapcore.InfoLevel
		}
		return zapcore.DebugLevel
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return zapcore.InfoLevel
	}
	return level
}

// GetLogger returns the global logger, initializing it if needed.
func GetLogger() *zap.Logger {
	if Logger == nil {
		InitializeLogger()
	}
	return Logger
}
