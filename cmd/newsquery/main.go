package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"news_aggregator/internal/aggregator"
	"news_aggregator/internal/cache"
	"news_aggregator/internal/config"
	"news_aggregator/internal/domain"
	"news_aggregator/internal/health"
	"news_aggregator/internal/source"
	"news_aggregator/internal/source/rss"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	category := flag.String("category", "", "category filter (market, economy, earnings, general, crypto, forex)")
	search := flag.String("search", "", "free-text search term")
	sources := flag.String("sources", "", "comma-separated source ids")
	tickers := flag.String("tickers", "", "comma-separated ticker symbols")
	sentiment := flag.String("sentiment", "", "sentiment filter (positive, negative, neutral)")
	limit := flag.Int("limit", 0, "page size (clamped to 100)")
	offset := flag.Int("offset", 0, "page offset")
	from := flag.String("from", "", "published-after bound (RFC3339 or YYYY-MM-DD)")
	to := flag.String("to", "", "published-before bound (RFC3339 or YYYY-MM-DD)")
	sortBy := flag.String("sort", "", "sort field (publishedAt, views, relevance)")
	sortOrder := flag.String("order", "", "sort order (asc, desc)")
	maxSources := flag.Int("max-sources", 0, "override source fan-out width")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger = setupLogger(cfg.LogLevel)

	registry := source.NewRegistry()
	for _, desc := range cfg.Sources {
		switch desc.Type {
		case "rss":
			if err := registry.Register(desc, rss.New(desc, logger)); err != nil {
				logger.Error("failed to register source", "source", desc.ID, "error", err)
				os.Exit(1)
			}
		default:
			logger.Warn("skipping source with unknown adapter type",
				"source", desc.ID,
				"type", desc.Type,
			)
		}
	}
	if registry.Len() == 0 {
		logger.Error("no sources registered")
		os.Exit(1)
	}

	tracker := health.New(cfg.Sources, health.Config{
		SuccessRateFloor: cfg.Health.SuccessRateFloor,
		MinAttempts:      cfg.Health.MinAttempts,
	}, logger)

	store := cache.New(cfg.Cache.SweepInterval, logger)
	defer store.Stop()

	service := aggregator.New(registry, tracker, store, cfg.Aggregator, logger)

	query := domain.Query{
		Category:  domain.Category(*category),
		Search:    *search,
		Sources:   splitList(*sources),
		Tickers:   splitList(*tickers),
		Sentiment: domain.Sentiment(*sentiment),
		Limit:     *limit,
		Offset:    *offset,
		SortBy:    domain.SortBy(*sortBy),
		SortOrder: domain.SortOrder(*sortOrder),
	}

	if query.Category != "" && !query.Category.Valid() {
		logger.Error("unknown category", "category", *category)
		os.Exit(1)
	}
	if query.From, err = parseDate(*from); err != nil {
		logger.Error("bad -from value", "value", *from, "error", err)
		os.Exit(1)
	}
	if query.To, err = parseDate(*to); err != nil {
		logger.Error("bad -to value", "value", *to, "error", err)
		os.Exit(1)
	}

	var opts *aggregator.Options
	if *maxSources > 0 {
		opts = &aggregator.Options{MaxSources: *maxSources}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	result, err := service.GetNews(ctx, query, opts)
	if err != nil {
		logger.Error("aggregation failed", "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		logger.Error("failed to encode result", "error", err)
		os.Exit(1)
	}
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stderr, opts)
	return slog.New(handler)
}
