package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitAndLevelControl(t *testing.T) {
	require.NoError(t, Init("info", "json"))

	// Init is idempotent: a second call must not reset the logger.
	require.NoError(t, Init("debug", "console"))
	assert.Equal(t, zapcore.InfoLevel, GetLevel())

	require.NoError(t, SetLevel("warn"))
	assert.Equal(t, zapcore.WarnLevel, GetLevel())

	require.NoError(t, SetLevel("debug"))
	assert.Equal(t, zapcore.DebugLevel, GetLevel())
}

func TestSetLevelRejectsGarbage(t *testing.T) {
	require.NoError(t, Init("info", "json"))
	assert.Error(t, SetLevel("loud"))
}

func TestLoggerAccessors(t *testing.T) {
	require.NoError(t, Init("info", "json"))

	assert.NotNil(t, L())
	assert.NotNil(t, S())
	assert.NotNil(t, With())

	// Logging must not panic once initialized.
	Debug("debug message")
	Info("info message")
	Warn("warn message")
	Error("error message")
	assert.NotPanics(t, func() { _ = Sync() })
}
