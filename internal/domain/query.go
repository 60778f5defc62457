package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// SortBy selects the ordering applied after filtering.
type SortBy string

const (
	SortByPublishedAt SortBy = "publishedAt"
	SortByViews       SortBy = "views"
	SortByRelevance   SortBy = "relevance"
)

// SortOrder is the direction of the sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

const (
	// MaxLimit is the hard cap on page size regardless of caller input.
	MaxLimit     = 100
	DefaultLimit = 20
)

// Query carries every filter, sort and pagination parameter of a news
// request. Call Normalize before use.
type Query struct {
	Category  Category
	Search    string
	Sources   []string
	Tickers   []string
	Sentiment Sentiment
	Limit     int
	Offset    int
	From      time.Time
	To        time.Time
	SortBy    SortBy
	SortOrder SortOrder
}

// Normalize clamps and defaults the query in place: limit is forced into
// (0, MaxLimit], offset is forced non-negative, and sort fields fall back
// to published-date descending.
func (q *Query) Normalize() {
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	if q.SortBy == "" {
		q.SortBy = SortByPublishedAt
	}
	if q.SortOrder == "" {
		q.SortOrder = SortDesc
	}
}

// CacheKey serializes the query into a deterministic string. Slices are
// sorted so two queries differing only in parameter order share an entry.
func (q Query) CacheKey() string {
	sources := append([]string(nil), q.Sources...)
	sort.Strings(sources)

	tickers := make([]string, len(q.Tickers))
	for i, t := range q.Tickers {
		tickers[i] = strings.ToUpper(t)
	}
	sort.Strings(tickers)

	var from, to string
	if !q.From.IsZero() {
		from = q.From.UTC().Format(time.RFC3339)
	}
	if !q.To.IsZero() {
		to = q.To.UTC().Format(time.RFC3339)
	}

	return fmt.Sprintf("c=%s|s=%s|src=%s|t=%s|sent=%s|l=%d|o=%d|f=%s|u=%s|sb=%s|so=%s",
		q.Category,
		strings.ToLower(q.Search),
		strings.Join(sources, ","),
		strings.Join(tickers, ","),
		q.Sentiment,
		q.Limit,
		q.Offset,
		from,
		to,
		q.SortBy,
		q.SortOrder,
	)
}
