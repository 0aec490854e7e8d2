package logger

import (
	"testing"

	"github.com/samvad-hq/article-catalog-client/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"bogus":   zapcore.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(&config.Config{LogLevel: in}), in)
	}
	assert.Equal(t, zapcore.InfoLevel, parseLevel(nil))
}

func TestZapLoggerWritesObjectField(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := FromZap(zap.New(core))

	log.DebugObj("debugging", "n", 1)
	log.InfoObj("hello", "who", "world")
	log.WarnObj("careful", "status", 404)
	log.ErrorObj("broken", "error", "boom")

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, "careful", entries[2].Message)
	assert.Equal(t, int64(404), entries[2].ContextMap()["status"])
	assert.Equal(t, "world", entries[1].ContextMap()["who"])
}

func TestNewHonorsLevel(t *testing.T) {
	log, err := New(&config.Config{AppName: "test", LogLevel: "error"})
	require.NoError(t, err)
	assert.False(t, log.l.Core().Enabled(zapcore.WarnLevel))
	assert.True(t, log.l.Core().Enabled(zapcore.ErrorLevel))
}

func TestNopLoggerSatisfiesInterface(t *testing.T) {
	var log Logger = &NopLogger{}
	log.InfoObj("ignored", "k", "v")
}
