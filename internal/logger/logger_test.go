package logger

import (
	"testing"

	"ashi-remedies/internal/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestGet_NoopBeforeInitialize(t *testing.T) {
	assert.NotNil(t, Get())
}

func TestInitialize(t *testing.T) {
	assert.NoError(t, Initialize(config.LoggerConfig{Level: "debug", Env: "production"}))
	assert.True(t, Get().Core().Enabled(zapcore.DebugLevel))

	assert.NoError(t, Initialize(config.LoggerConfig{Level: "bogus", Env: "development"}))
	assert.False(t, Get().Core().Enabled(zapcore.DebugLevel))
	assert.True(t, Get().Core().Enabled(zapcore.InfoLevel))
}
