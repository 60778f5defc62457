// Package aggregator fans a query out to the best eligible sources in
// parallel, tolerates independent failures, merges whatever settled
// successfully, and serves the result through an adaptive cache. Callers
// essentially never see a hard failure: total upstream loss is absorbed by
// the fallback cascade.
package aggregator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"news_aggregator/internal/config"
	"news_aggregator/internal/domain"
	"news_aggregator/internal/merge"
)

const (
	sourceKeyPrefix    = "src:"
	aggregateKeyPrefix = "agg:"
)

// Options overrides per-call behavior.
type Options struct {
	MaxSources int
}

type Service struct {
	registry AdapterProvider
	tracker  Tracker
	cache    Cache
	cfg      config.AggregatorConfig
	logger   *slog.Logger
}

func New(
	registry AdapterProvider,
	tracker Tracker,
	cache Cache,
	cfg config.AggregatorConfig,
	logger *slog.Logger,
) *Service {
	return &Service{
		registry: registry,
		tracker:  tracker,
		cache:    cache,
		cfg:      cfg,
		logger:   logger.With("component", "aggregator"),
	}
}

// outcome is one settled fetch attempt. Exactly one of articles/err is
// meaningful; fromCache marks a per-source cache hit that skipped the
// network entirely.
type outcome struct {
	sourceID  string
	articles  []domain.Article
	err       error
	fromCache bool
}

// GetNews runs the full pipeline for one query. The returned error is
// non-nil only for unrecoverable internal faults; every upstream problem
// is degraded into the fallback cascade instead.
func (s *Service) GetNews(ctx context.Context, query domain.Query, opts *Options) (*domain.Result, error) {
	start := time.Now()
	query.Normalize()

	maxSources := s.cfg.MaxSources
	if opts != nil && opts.MaxSources > 0 {
		maxSources = opts.MaxSources
	}

	selected := s.selectSources(query, maxSources)
	if len(selected) == 0 {
		s.logger.Warn("no eligible sources", "category", query.Category)
		return s.fallback(query, start), nil
	}

	outcomes := s.fanOut(ctx, selected, query)

	var articles []domain.Article
	var failures []string
	succeeded := 0
	cacheHits := 0
	for _, o := range outcomes {
		if o.err != nil {
			failures = append(failures, o.err.Error())
			s.logger.Warn("source failed", "source", o.sourceID, "error", o.err)
			continue
		}
		succeeded++
		if o.fromCache {
			cacheHits++
		}
		articles = append(articles, o.articles...)
	}

	if succeeded == 0 {
		s.logger.Warn("all sources failed", "sources", len(selected))
		res := s.fallback(query, start)
		res.Errors = failures
		return res, nil
	}

	merged := merge.Merge(articles)
	page, total := applyQuery(merged, query)

	result := &domain.Result{
		Articles:        page,
		Total:           total,
		Source:          "aggregated",
		ExecutionTimeMs: time.Since(start).Milliseconds(),
		Cached:          cacheHits == len(outcomes),
		Errors:          failures,
	}

	// Seed the fallback cascade with the freshest good aggregate.
	stored := *result
	stored.Errors = nil
	s.cache.Set(aggregateKeyPrefix+query.CacheKey(), stored, s.cfg.FallbackTTL)

	s.logger.Info("aggregation complete",
		"sources", len(selected),
		"succeeded", succeeded,
		"cache_hits", cacheHits,
		"merged", len(merged),
		"total", total,
		"duration_ms", result.ExecutionTimeMs,
	)

	return result, nil
}

// selectSources asks the tracker for admissible sources covering the
// query's category, restricts to explicitly requested ids when given, and
// keeps the top maxSources by priority.
func (s *Service) selectSources(query domain.Query, maxSources int) []domain.SourceDescriptor {
	eligible := s.tracker.Eligible(query.Category)

	if len(query.Sources) > 0 {
		requested := make(map[string]bool, len(query.Sources))
		for _, id := range query.Sources {
			requested[id] = true
		}
		kept := eligible[:0]
		for _, d := range eligible {
			if requested[d.ID] {
				kept = append(kept, d)
			}
		}
		eligible = kept
	}

	// Unconfigured adapters are excluded, not failed.
	kept := eligible[:0]
	for _, d := range eligible {
		adapter, ok := s.registry.Adapter(d.ID)
		if !ok || !adapter.IsConfigured() {
			continue
		}
		kept = append(kept, d)
	}
	eligible = kept

	if len(eligible) > maxSources {
		eligible = eligible[:maxSources]
	}
	return eligible
}

// fanOut issues every fetch concurrently and waits for the full settled
// set: a failure never aborts the batch, and a cache hit skips both the
// network call and the tracker.
func (s *Service) fanOut(ctx context.Context, selected []domain.SourceDescriptor, query domain.Query) []outcome {
	queryKey := query.CacheKey()
	results := make(chan outcome, len(selected))

	for _, desc := range selected {
		go func(desc domain.SourceDescriptor) {
			results <- s.fetchOne(ctx, desc, query, queryKey)
		}(desc)
	}

	outcomes := make([]outcome, 0, len(selected))
	for range selected {
		outcomes = append(outcomes, <-results)
	}
	return outcomes
}

func (s *Service) fetchOne(ctx context.Context, desc domain.SourceDescriptor, query domain.Query, queryKey string) outcome {
	cacheKey := sourceKeyPrefix + desc.ID + ":" + queryKey

	if v, ok := s.cache.Get(cacheKey); ok {
		if articles, ok := v.([]domain.Article); ok {
			s.logger.Debug("per-source cache hit", "source", desc.ID, "articles", len(articles))
			return outcome{sourceID: desc.ID, articles: articles, fromCache: true}
		}
		// Wrong payload shape: drop the entry and fetch fresh.
		s.cache.Delete(cacheKey)
	}

	adapter, ok := s.registry.Adapter(desc.ID)
	if !ok {
		return outcome{sourceID: desc.ID, err: fmt.Errorf("source %s: no adapter registered", desc.ID)}
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.cfg.FetchTimeout)
	defer cancel()

	fetchStart := time.Now()
	articles, err := adapter.Fetch(fetchCtx, query)
	latency := time.Since(fetchStart)

	s.tracker.RecordOutcome(desc.ID, err == nil, latency)

	if err != nil {
		return outcome{sourceID: desc.ID, err: err}
	}

	s.cache.Set(cacheKey, articles, s.sourceTTL(desc, len(articles)))
	return outcome{sourceID: desc.ID, articles: articles}
}

// sourceTTL computes the adaptive per-source TTL: reliable sources with
// richer result sets stay cached longer, capped at the configured maximum.
func (s *Service) sourceTTL(desc domain.SourceDescriptor, articleCount int) time.Duration {
	richness := 1.0
	switch {
	case articleCount > 50:
		richness = 2.0
	case articleCount > 20:
		richness = 1.5
	}

	ttl := time.Duration(float64(s.cfg.BaseTTL) * float64(desc.Reliability) / 3.0 * richness)
	if ttl > s.cfg.MaxTTL {
		ttl = s.cfg.MaxTTL
	}
	return ttl
}
