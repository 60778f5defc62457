package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"news_aggregator/internal/domain"
)

type Config struct {
	Aggregator AggregatorConfig          `yaml:"aggregator"`
	Cache      CacheConfig               `yaml:"cache"`
	Health     HealthConfig              `yaml:"health"`
	Sources    []domain.SourceDescriptor `yaml:"sources"`
	LogLevel   string                    `yaml:"log_level"`
}

type AggregatorConfig struct {
	MaxSources        int           `yaml:"max_sources"`
	FetchTimeout      time.Duration `yaml:"fetch_timeout"`
	BaseTTL           time.Duration `yaml:"base_ttl"`
	MaxTTL            time.Duration `yaml:"max_ttl"`
	FallbackTTL       time.Duration `yaml:"fallback_ttl"`
	AllowMockFallback bool          `yaml:"allow_mock_fallback"`
}

type CacheConfig struct {
	DefaultTTL    time.Duration `yaml:"default_ttl"`
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

type HealthConfig struct {
	SuccessRateFloor float64 `yaml:"success_rate_floor"`
	MinAttempts      int     `yaml:"min_attempts"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Aggregator.MaxSources == 0 {
		c.Aggregator.MaxSources = 3
	}
	if c.Aggregator.FetchTimeout == 0 {
		c.Aggregator.FetchTimeout = 15 * time.Second
	}
	if c.Aggregator.BaseTTL == 0 {
		c.Aggregator.BaseTTL = 5 * time.Minute
	}
	if c.Aggregator.MaxTTL == 0 {
		c.Aggregator.MaxTTL = time.Hour
	}
	if c.Aggregator.FallbackTTL == 0 {
		c.Aggregator.FallbackTTL = time.Hour
	}
	if c.Cache.DefaultTTL == 0 {
		c.Cache.DefaultTTL = 5 * time.Minute
	}
	if c.Cache.SweepInterval == 0 {
		c.Cache.SweepInterval = time.Minute
	}
	if c.Health.SuccessRateFloor == 0 {
		c.Health.SuccessRateFloor = 0.30
	}
	if c.Health.MinAttempts == 0 {
		c.Health.MinAttempts = 5
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	for i := range c.Sources {
		src := &c.Sources[i]
		if src.Reliability == 0 {
			src.Reliability = 3
		}
		if src.Rate.PerMinute == 0 {
			src.Rate.PerMinute = 30
		}
		if src.Rate.PerDay == 0 {
			src.Rate.PerDay = 1000
		}
	}
}

func (c *Config) validate() error {
	seen := make(map[string]bool, len(c.Sources))
	for _, src := range c.Sources {
		if src.ID == "" {
			return fmt.Errorf("source with empty id")
		}
		if seen[src.ID] {
			return fmt.Errorf("duplicate source id %q", src.ID)
		}
		seen[src.ID] = true

		if src.Reliability < 1 || src.Reliability > 5 {
			return fmt.Errorf("source %q: reliability %d out of range 1..5", src.ID, src.Reliability)
		}
		for _, cat := range src.Categories {
			if !cat.Valid() {
				return fmt.Errorf("source %q: unknown category %q", src.ID, cat)
			}
		}
	}
	return nil
}
