package config

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("RIOT_API_KEY", "RGAPI-test")
	t.Setenv("RIOT_ROUTING", "")
	t.Setenv("FETCH_CONCURRENCY", "")
	t.Setenv("RETRY_BASE_DELAY", "")

	cfg, err := Load(zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, "RGAPI-test", cfg.RiotAPIKey)
	assert.Equal(t, "asia", cfg.RiotRouting)
	assert.Equal(t, "https://asia.api.riotgames.com", cfg.RiotBaseURL())
	assert.Equal(t, 4, cfg.FetchConcurrency)
	assert.Equal(t, time.Second, cfg.RetryBaseDelay)
	assert.Equal(t, 5, cfg.RetryMaxAttempts)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("RIOT_API_KEY", "RGAPI-test")
	t.Setenv("RIOT_ROUTING", "europe")
	t.Setenv("FETCH_CONCURRENCY", "8")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RETRY_BASE_DELAY", "250ms")
	t.Setenv("QUERY_TIMEOUT", "90s")

	cfg, err := Load(zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, "https://europe.api.riotgames.com", cfg.RiotBaseURL())
	assert.Equal(t, 8, cfg.FetchConcurrency)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, 250*time.Millisecond, cfg.RetryBaseDelay)
	assert.Equal(t, 90*time.Second, cfg.QueryTimeout)
}

func TestLoad_RequiresAPIKey(t *testing.T) {
	t.Setenv("RIOT_API_KEY", "")

	_, err := Load(zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RIOT_API_KEY")
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			RiotAPIKey:       "k",
			RiotRouting:      "asia",
			FetchConcurrency: 1,
			RateLimitRPS:     10,
			RateLimitBurst:   1,
			RetryMaxAttempts: 1,
			RetryBaseDelay:   time.Millisecond,
			RetryMaxDelay:    time.Millisecond,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "zero concurrency", mutate: func(c *Config) { c.FetchConcurrency = 0 }, wantErr: true},
		{name: "zero rps", mutate: func(c *Config) { c.RateLimitRPS = 0 }, wantErr: true},
		{name: "zero attempts", mutate: func(c *Config) { c.RetryMaxAttempts = 0 }, wantErr: true},
		{name: "max below base", mutate: func(c *Config) { c.RetryMaxDelay = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
