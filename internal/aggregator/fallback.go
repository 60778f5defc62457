package aggregator

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"news_aggregator/internal/domain"
)

// fallback is the last-resort path when zero sources produced a usable
// result: serve the previously cached aggregate if one survives, otherwise
// an explicitly empty (or, outside production, mock) result. It never
// fails.
func (s *Service) fallback(query domain.Query, start time.Time) *domain.Result {
	if v, ok := s.cache.Get(aggregateKeyPrefix + query.CacheKey()); ok {
		if cached, ok := v.(domain.Result); ok {
			cached.Cached = true
			cached.Source = "cache"
			cached.ExecutionTimeMs = time.Since(start).Milliseconds()
			s.logger.Info("served stale aggregate from fallback cache",
				"articles", len(cached.Articles),
				"total", cached.Total,
			)
			return &cached
		}
	}

	if s.mockAllowed() {
		s.logger.Warn("serving mock fallback data; never enable outside development")
		return s.mockResult(query, start)
	}

	s.logger.Warn("no fallback data available, returning empty result")
	return &domain.Result{
		Articles:        []domain.Article{},
		Total:           0,
		Source:          "fallback",
		ExecutionTimeMs: time.Since(start).Milliseconds(),
		Cached:          false,
	}
}

// mockAllowed gates the development-only generator: the config flag must
// be on AND the process must not declare itself production. Both checks
// are required so a leaked config file cannot fabricate articles in prod.
func (s *Service) mockAllowed() bool {
	return s.cfg.AllowMockFallback && os.Getenv("APP_ENV") != "production"
}

// mockResult synthesizes clearly-labelled placeholder articles so local
// development keeps working with every upstream unreachable.
func (s *Service) mockResult(query domain.Query, start time.Time) *domain.Result {
	category := query.Category
	if category == "" {
		category = domain.CategoryGeneral
	}

	count := query.Limit
	if count > 10 {
		count = 10
	}

	now := time.Now()
	articles := make([]domain.Article, 0, count)
	for i := 0; i < count; i++ {
		articles = append(articles, domain.Article{
			ID:          uuid.NewString(),
			Title:       fmt.Sprintf("[MOCK] Placeholder %s story %d", category, i+1),
			Summary:     "Development placeholder article served because every upstream source failed.",
			PublishedAt: now.Add(-time.Duration(i) * time.Hour),
			Source:      "mock",
			URL:         fmt.Sprintf("https://localhost/mock/%d", i+1),
			Category:    category,
			Sentiment:   domain.SentimentNeutral,
			Tickers:     []string{},
		})
	}

	return &domain.Result{
		Articles:        articles,
		Total:           len(articles),
		Source:          "mock",
		ExecutionTimeMs: time.Since(start).Milliseconds(),
		Cached:          false,
	}
}
