package aggregator

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"time"

	"news_aggregator/internal/domain"
	"news_aggregator/internal/source"
)

// Cache is the best-effort store the orchestrator uses for per-source raw
// results and the aggregate fallback entry. A failing or absent cache is
// equivalent to a miss; correctness never depends on it.
type Cache interface {
	Get(key string) (any, bool)
	Set(key string, value any, ttl time.Duration)
	Delete(key string)
	ClearPattern(pattern string) int
}

// Tracker decides which sources may be fetched and absorbs the outcome of
// every attempt.
type Tracker interface {
	Eligible(category domain.Category) []domain.SourceDescriptor
	CanAdmit(id string) bool
	RecordOutcome(id string, success bool, latency time.Duration)
}

// AdapterProvider resolves a source id to its adapter. Satisfied by
// *source.Registry.
type AdapterProvider interface {
	Adapter(id string) (source.Adapter, bool)
}
