// Package rss is the reference implementation of the source.Adapter
// contract: it pulls an RSS/Atom feed and normalizes every item into the
// canonical article shape. Provider-specific adapters should follow the
// same structure.
package rss

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"
	"golang.org/x/time/rate"

	"news_aggregator/internal/domain"
	"news_aggregator/internal/source"
)

// Source fetches one configured feed. The limiter enforces the source's
// declared minimum delay between calls; it composes with, but does not
// replace, the tracker-level admission check.
type Source struct {
	desc    domain.SourceDescriptor
	parser  *gofeed.Parser
	limiter *rate.Limiter
	logger  *slog.Logger
}

// New creates an adapter for the descriptor. The feed URL comes from the
// descriptor's URL field.
func New(desc domain.SourceDescriptor, logger *slog.Logger) *Source {
	minDelay := time.Duration(desc.Rate.MinDelayMs) * time.Millisecond
	limiter := rate.NewLimiter(rate.Inf, 1)
	if minDelay > 0 {
		limiter = rate.NewLimiter(rate.Every(minDelay), 1)
	}

	return &Source{
		desc:    desc,
		parser:  gofeed.NewParser(),
		limiter: limiter,
		logger:  logger.With("source", desc.ID),
	}
}

// ID returns the source identifier.
func (s *Source) ID() string { return s.desc.ID }

// Name returns the human-readable name.
func (s *Source) Name() string { return s.desc.Name }

// IsConfigured reports whether a feed URL was supplied.
func (s *Source) IsConfigured() bool { return s.desc.URL != "" }

// Fetch downloads and normalizes the feed. The context deadline is the
// hard timeout; waiting out the local throttle counts against it.
func (s *Source) Fetch(ctx context.Context, query domain.Query) ([]domain.Article, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, source.NewError(s.desc.ID, 0, "throttle wait interrupted", err)
	}

	feed, err := s.parser.ParseURLWithContext(s.desc.URL, ctx)
	if err != nil {
		msg := "fetch feed"
		if source.IsTimeout(err) || source.IsTimeout(ctx.Err()) {
			msg = "fetch feed: timed out"
		}
		return nil, source.NewError(s.desc.ID, httpStatus(err), msg, err)
	}

	articles := s.transform(feed)
	s.logger.Debug("fetched feed",
		"items", len(feed.Items),
		"articles", len(articles),
	)
	return articles, nil
}

// HealthCheck probes the feed with a short deadline.
func (s *Source) HealthCheck(ctx context.Context) source.HealthReport {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	start := time.Now()
	_, err := s.parser.ParseURLWithContext(s.desc.URL, ctx)
	latency := time.Since(start)

	if err != nil {
		return source.HealthReport{Status: "unhealthy", LatencyMs: latency, Error: err.Error()}
	}
	return source.HealthReport{Status: "ok", LatencyMs: latency}
}

func (s *Source) transform(feed *gofeed.Feed) []domain.Article {
	articles := make([]domain.Article, 0, len(feed.Items))

	for _, item := range feed.Items {
		if item.Title == "" || item.Link == "" {
			continue
		}

		publishedAt, ok := s.itemTime(item)
		if !ok {
			s.logger.Warn("dropping item with unparseable date",
				"title", item.Title,
				"raw_date", item.Published,
			)
			continue
		}

		summary := stripHTML(item.Description)
		body := stripHTML(item.Content)
		text := item.Title + " " + summary

		article := domain.Article{
			ID:          uuid.NewString(),
			Title:       item.Title,
			Summary:     summary,
			Body:        body,
			PublishedAt: publishedAt,
			Source:      s.desc.Name,
			URL:         item.Link,
			Category:    s.category(item),
			Sentiment:   source.InferSentiment(text),
			Tickers:     source.ExtractTickers(text),
		}

		if item.Image != nil {
			article.ImageURL = source.ValidImageURL(item.Image.URL)
		}
		if article.ImageURL == "" {
			for _, enc := range item.Enclosures {
				if strings.HasPrefix(enc.Type, "image/") {
					article.ImageURL = source.ValidImageURL(enc.URL)
					break
				}
			}
		}

		if len(item.Authors) > 0 && item.Authors[0] != nil {
			article.Author = item.Authors[0].Name
		}

		articles = append(articles, article)
	}

	return articles
}

func (s *Source) itemTime(item *gofeed.Item) (time.Time, bool) {
	if item.PublishedParsed != nil {
		return *item.PublishedParsed, true
	}
	if item.UpdatedParsed != nil {
		return *item.UpdatedParsed, true
	}
	raw := item.Published
	if raw == "" {
		raw = item.Updated
	}
	if raw == "" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// category picks the item's category when it maps onto the enumeration,
// otherwise the first category the source declares coverage for.
func (s *Source) category(item *gofeed.Item) domain.Category {
	for _, raw := range item.Categories {
		if c := domain.Category(strings.ToLower(raw)); c.Valid() {
			return c
		}
	}
	if len(s.desc.Categories) > 0 {
		return s.desc.Categories[0]
	}
	return domain.CategoryGeneral
}

func httpStatus(err error) int {
	if e, ok := err.(gofeed.HTTPError); ok {
		return e.StatusCode
	}
	return 0
}

func stripHTML(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

var _ source.Adapter = (*Source)(nil)
var _ source.HealthChecker = (*Source)(nil)
