// Package config loads assistant settings from the environment. A .env
// file in the working directory is honored for local development; real
// deployments set the LOUVOR_* variables directly.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Provider names accepted by Config.Provider.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	// ProviderNone disables inference entirely: theological queries take
	// the deterministic local fallback.
	ProviderNone = "none"
)

// Config carries every tunable the assistant reads from the environment.
type Config struct {
	// Provider selects the inference backend: openai, anthropic or none.
	Provider string

	// Model overrides the provider's default model name when non-empty.
	Model string

	// Batch analysis tuning.
	ChunkSize       int
	ChunkTimeout    time.Duration
	SingleTimeout   time.Duration
	InterChunkDelay time.Duration

	// HistoryWindow bounds the trimmed conversation window.
	HistoryWindow int

	// LogLevel is the zap level name (debug, info, warn, error).
	LogLevel string
}

// Load reads the configuration from the environment, applying defaults for
// anything unset. Environment variables use the LOUVOR_ prefix, e.g.
// LOUVOR_PROVIDER=anthropic or LOUVOR_CHUNK_TIMEOUT=30s. Provider API keys
// are not handled here: the SDKs read OPENAI_API_KEY and ANTHROPIC_API_KEY
// themselves.
func Load() (*Config, error) {
	// Best effort: a missing .env file is not an error.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("LOUVOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("provider", ProviderNone)
	v.SetDefault("model", "")
	v.SetDefault("chunk_size", 15)
	v.SetDefault("chunk_timeout", "25s")
	v.SetDefault("single_timeout", "40s")
	v.SetDefault("inter_chunk_delay", "1s")
	v.SetDefault("history_window", 4)
	v.SetDefault("log_level", "info")

	cfg := &Config{
		Provider:        strings.ToLower(v.GetString("provider")),
		Model:           v.GetString("model"),
		ChunkSize:       v.GetInt("chunk_size"),
		ChunkTimeout:    v.GetDuration("chunk_timeout"),
		SingleTimeout:   v.GetDuration("single_timeout"),
		InterChunkDelay: v.GetDuration("inter_chunk_delay"),
		HistoryWindow:   v.GetInt("history_window"),
		LogLevel:        strings.ToLower(v.GetString("log_level")),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Provider {
	case ProviderOpenAI, ProviderAnthropic, ProviderNone:
	default:
		return fmt.Errorf("config: unknown provider %q", c.Provider)
	}
	if c.ChunkSize < 1 {
		return fmt.Errorf("config: chunk size must be at least 1, got %d", c.ChunkSize)
	}
	if c.ChunkTimeout <= 0 || c.SingleTimeout <= 0 {
		return fmt.Errorf("config: timeouts must be positive")
	}
	if c.InterChunkDelay < 0 {
		return fmt.Errorf("config: inter-chunk delay must not be negative")
	}
	if c.HistoryWindow < 0 {
		return fmt.Errorf("config: history window must not be negative")
	}
	return nil
}
