package config

import (
	"arena-tracker/internal/constants"
	"arena-tracker/internal/logger"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	RiotAPIKey        string
	RiotRouting       string
	DataDragonVersion string
	ServerPort        string
	LogLevel          string
	CacheDSN          string

	FetchConcurrency int
	RateLimitRPS     float64
	RateLimitBurst   int

	RetryMaxAttempts int
	RetryBaseDelay   time.Duration
	RetryMaxDelay    time.Duration

	QueryTimeout time.Duration
}

// RiotBaseURL is the regional routing host serving account-v1 and match-v5.
func (c *Config) RiotBaseURL() string {
	return fmt.Sprintf("https://%s.api.riotgames.com", c.RiotRouting)
}

func Load(log zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		RiotAPIKey:        getEnv("RIOT_API_KEY", ""),
		RiotRouting:       getEnv("RIOT_ROUTING", "asia"),
		DataDragonVersion: getEnv("DDRAGON_VERSION", ""),
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		CacheDSN:          constants.CacheDSN,
		FetchConcurrency:  getEnvInt("FETCH_CONCURRENCY", 4),
		RateLimitRPS:      getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:    getEnvInt("RATE_LIMIT_BURST", 1),
		RetryMaxAttempts:  getEnvInt("RETRY_MAX_ATTEMPTS", 5),
		RetryBaseDelay:    getEnvDuration("RETRY_BASE_DELAY", time.Second),
		RetryMaxDelay:     getEnvDuration("RETRY_MAX_DELAY", 30*time.Second),
		QueryTimeout:      getEnvDuration("QUERY_TIMEOUT", constants.QueryTimeout),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	zerolog.SetGlobalLevel(logger.ParseLevel(cfg.LogLevel))

	log.Info().
		Str("riot_routing", cfg.RiotRouting).
		Str("ddragon_version", cfg.DataDragonVersion).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Int("fetch_concurrency", cfg.FetchConcurrency).
		Float64("rate_limit_rps", cfg.RateLimitRPS).
		Int("retry_max_attempts", cfg.RetryMaxAttempts).
		Dur("retry_base_delay", cfg.RetryBaseDelay).
		Dur("query_timeout", cfg.QueryTimeout).
		Msg("configuration loaded")

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.RiotAPIKey == "" {
		return fmt.Errorf("RIOT_API_KEY is required")
	}
	if c.RiotRouting == "" {
		return fmt.Errorf("RIOT_ROUTING must not be empty")
	}
	if c.FetchConcurrency < 1 {
		return fmt.Errorf("FETCH_CONCURRENCY must be at least 1, got %d", c.FetchConcurrency)
	}
	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be positive, got %v", c.RateLimitRPS)
	}
	if c.RateLimitBurst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1, got %d", c.RateLimitBurst)
	}
	if c.RetryMaxAttempts < 1 {
		return fmt.Errorf("RETRY_MAX_ATTEMPTS must be at least 1, got %d", c.RetryMaxAttempts)
	}
	if c.RetryBaseDelay <= 0 || c.RetryMaxDelay < c.RetryBaseDelay {
		return fmt.Errorf("retry delays must satisfy 0 < RETRY_BASE_DELAY <= RETRY_MAX_DELAY")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

var Module = fx.Provide(Load)
