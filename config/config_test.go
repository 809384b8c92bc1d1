package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ProviderNone, cfg.Provider)
	assert.Equal(t, 15, cfg.ChunkSize)
	assert.Equal(t, 25*time.Second, cfg.ChunkTimeout)
	assert.Equal(t, 40*time.Second, cfg.SingleTimeout)
	assert.Equal(t, time.Second, cfg.InterChunkDelay)
	assert.Equal(t, 4, cfg.HistoryWindow)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("LOUVOR_PROVIDER", "anthropic")
	t.Setenv("LOUVOR_MODEL", "claude-3-5-sonnet-20241022")
	t.Setenv("LOUVOR_CHUNK_SIZE", "10")
	t.Setenv("LOUVOR_CHUNK_TIMEOUT", "30s")
	t.Setenv("LOUVOR_LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ProviderAnthropic, cfg.Provider)
	assert.Equal(t, "claude-3-5-sonnet-20241022", cfg.Model)
	assert.Equal(t, 10, cfg.ChunkSize)
	assert.Equal(t, 30*time.Second, cfg.ChunkTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Run("unknown provider", func(t *testing.T) {
		t.Setenv("LOUVOR_PROVIDER", "watson")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("zero chunk size", func(t *testing.T) {
		t.Setenv("LOUVOR_CHUNK_SIZE", "0")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("negative delay", func(t *testing.T) {
		t.Setenv("LOUVOR_INTER_CHUNK_DELAY", "-1s")
		_, err := Load()
		assert.Error(t, err)
	})
}
