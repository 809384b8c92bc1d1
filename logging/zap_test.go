package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapAdapter(t *testing.T) {
	zapCore, logs := observer.New(zapcore.DebugLevel)
	logger := NewZapAdapter(zap.New(zapCore))

	logger.Info("query classified", "type", "schedule")
	logger.Warn("chunk failed", "chunk", 2)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "query classified", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "schedule", entries[0].ContextMap()["type"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
}

func TestNoOpLoggerIsSafe(t *testing.T) {
	var l Logger = NoOpLogger{}
	l.Debug("a")
	l.Info("b", "k", "v")
	l.Warn("c")
	l.Error("d")
}
