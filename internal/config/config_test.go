package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news_aggregator/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
sources:
  - id: wire
    name: Test Wire
    type: rss
    enabled: true
    url: https://example.com/feed.xml
    categories: [market]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Aggregator.MaxSources)
	assert.Equal(t, 15*time.Second, cfg.Aggregator.FetchTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Aggregator.BaseTTL)
	assert.Equal(t, time.Hour, cfg.Aggregator.MaxTTL)
	assert.Equal(t, time.Minute, cfg.Cache.SweepInterval)
	assert.Equal(t, 0.30, cfg.Health.SuccessRateFloor)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Aggregator.AllowMockFallback)

	require.Len(t, cfg.Sources, 1)
	src := cfg.Sources[0]
	assert.Equal(t, 3, src.Reliability, "reliability defaults to the midpoint")
	assert.Equal(t, 30, src.Rate.PerMinute)
	assert.Equal(t, 1000, src.Rate.PerDay)
}

func TestLoadExpandsEnvironment(t *testing.T) {
	t.Setenv("NEWS_API_KEY", "secret-key")

	path := writeConfig(t, `
sources:
  - id: wire
    name: Test Wire
    type: rss
    enabled: true
    api_key: ${NEWS_API_KEY}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "secret-key", cfg.Sources[0].APIKey)
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
aggregator:
  max_sources: 5
  fetch_timeout: 30s
  allow_mock_fallback: true
cache:
  default_ttl: 10m
  sweep_interval: 30s
health:
  success_rate_floor: 0.5
  min_attempts: 10
sources:
  - id: alpha
    name: Alpha Wire
    type: rss
    enabled: true
    reliability: 5
    categories: [market, earnings]
    rate:
      per_minute: 10
      per_day: 200
      min_delay_ms: 500
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5, cfg.Aggregator.MaxSources)
	assert.Equal(t, 30*time.Second, cfg.Aggregator.FetchTimeout)
	assert.True(t, cfg.Aggregator.AllowMockFallback)
	assert.Equal(t, 0.5, cfg.Health.SuccessRateFloor)

	src := cfg.Sources[0]
	assert.Equal(t, 5, src.Reliability)
	assert.Equal(t, []domain.Category{domain.CategoryMarket, domain.CategoryEarnings}, src.Categories)
	assert.Equal(t, 500, src.Rate.MinDelayMs)
}

func TestLoadRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"duplicate id", "sources:\n  - id: a\n  - id: a\n"},
		{"empty id", "sources:\n  - name: nameless\n"},
		{"reliability out of range", "sources:\n  - id: a\n    reliability: 9\n"},
		{"unknown category", "sources:\n  - id: a\n    categories: [sports]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
