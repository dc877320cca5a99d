package utils

import (
	"testing"

	"haulify/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestLogLevelFromConfig(t *testing.T) {
	previous := config.AppConfig
	t.Cleanup(func() { config.AppConfig = previous })

	testCases := []struct {
		name  string
		env   string
		level string
		want  zapcore.Level
	}{
		{"explicit warn", "production", "warn", zapcore.WarnLevel},
		{"explicit debug in production", "production", "debug", zapcore.DebugLevel},
		{"unset defaults to info in production", "production", "", zapcore.InfoLevel},
		{"unset defaults to debug in development", "development", "", zapcore.DebugLevel},
		{"garbage falls back to info", "development", "loudest", zapcore.InfoLevel},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			config.AppConfig = config.Config{Env: tc.env, LogLevel: tc.level}
			assert.Equal(t, tc.want, logLevel())
		})
	}
}
