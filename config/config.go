// Package config loads runtime settings from defaults, an optional YAML
// file and MORTGAGECALC_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "MORTGAGECALC"

type Config struct {
	Server         ServerConfig         `mapstructure:"server"`
	RateLimit      RateLimitConfig      `mapstructure:"rate_limit"`
	Cache          CacheConfig          `mapstructure:"cache"`
	History        HistoryConfig        `mapstructure:"history"`
	Limits         LimitsConfig         `mapstructure:"limits"`
	Serviceability ServiceabilityConfig `mapstructure:"serviceability"`
	Logging        LoggingConfig        `mapstructure:"logging"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	CORSOrigins     []string      `mapstructure:"cors_origins"`
}

// RateLimitConfig sizes the per-client token bucket: Capacity requests per
// Window. A zero capacity disables limiting.
type RateLimitConfig struct {
	Capacity int           `mapstructure:"capacity"`
	Window   time.Duration `mapstructure:"window"`
}

// CacheConfig selects Redis when RedisAddr is set, memory otherwise.
type CacheConfig struct {
	RedisAddr string        `mapstructure:"redis_addr"`
	TTL       time.Duration `mapstructure:"ttl"`
}

type HistoryConfig struct {
	MaxRecords int `mapstructure:"max_records"`
}

type LimitsConfig struct {
	MaxLoanAmount   float64 `mapstructure:"max_loan_amount"`
	MaxInterestRate float64 `mapstructure:"max_interest_rate"`
	MaxTermYears    int     `mapstructure:"max_term_years"`
}

type ServiceabilityConfig struct {
	BufferRate        float64 `mapstructure:"buffer_rate"`
	MaxRepaymentRatio float64 `mapstructure:"max_repayment_ratio"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format"` // "text" or "json"
}

// Load reads configuration. When path is empty, config.yaml is looked up in
// ./config and the working directory and may be absent.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.cors_origins", []string{"*"})

	v.SetDefault("rate_limit.capacity", 60)
	v.SetDefault("rate_limit.window", time.Minute)

	v.SetDefault("cache.redis_addr", "")
	v.SetDefault("cache.ttl", 10*time.Minute)

	v.SetDefault("history.max_records", 1000)

	v.SetDefault("limits.max_loan_amount", 100_000_000.0)
	v.SetDefault("limits.max_interest_rate", 100.0)
	v.SetDefault("limits.max_term_years", 50)

	v.SetDefault("serviceability.buffer_rate", 3.0)
	v.SetDefault("serviceability.max_repayment_ratio", 0.30)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Validate rejects settings the services cannot run with.
func (c *Config) Validate() error {
	if c.Limits.MaxLoanAmount <= 0 {
		return fmt.Errorf("limits.max_loan_amount must be positive")
	}
	if c.Limits.MaxInterestRate <= 0 {
		return fmt.Errorf("limits.max_interest_rate must be positive")
	}
	if c.Limits.MaxTermYears <= 0 {
		return fmt.Errorf("limits.max_term_years must be positive")
	}
	if c.RateLimit.Capacity > 0 && c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate_limit.window must be positive when rate limiting is enabled")
	}
	if r := c.Serviceability.MaxRepaymentRatio; r <= 0 || r > 1 {
		return fmt.Errorf("serviceability.max_repayment_ratio must be in (0, 1]")
	}
	if c.Serviceability.BufferRate < 0 {
		return fmt.Errorf("serviceability.buffer_rate must not be negative")
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}
	return nil
}
