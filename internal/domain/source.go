package domain

// Health is the tracker's classification of a source.
type Health string

const (
	HealthHealthy  Health = "healthy"
	HealthDegraded Health = "degraded"
	HealthDown     Health = "down"
)

// RateBudget is a source's declared request allowance.
type RateBudget struct {
	PerMinute  int `yaml:"per_minute"`
	PerDay     int `yaml:"per_day"`
	MinDelayMs int `yaml:"min_delay_ms"` // adapter-local gap between calls
}

// SourceDescriptor is the static half of a source: identity, coverage and
// budgets declared in configuration at process start. Sources are never
// deleted during a process lifetime.
type SourceDescriptor struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Type        string     `yaml:"type"`
	Enabled     bool       `yaml:"enabled"`
	Categories  []Category `yaml:"categories"`
	Reliability int        `yaml:"reliability"` // 1..5, static per source
	Rate        RateBudget `yaml:"rate"`
	URL         string     `yaml:"url"`
	APIKey      string     `yaml:"api_key"`
}

// Covers reports whether the source declares coverage for the category.
// An empty category matches every source.
func (d SourceDescriptor) Covers(c Category) bool {
	if c == "" {
		return true
	}
	for _, declared := range d.Categories {
		if declared == c {
			return true
		}
	}
	return false
}

// HealthStatus is the mutable half of a source, owned by the tracker.
// Counters are mostly-accurate under concurrent requests; admission is
// advisory rate control, not a hard guarantee.
type HealthStatus struct {
	Health               Health
	ErrorCount           int
	ConsecutiveFails     int
	ConsecutiveSuccesses int
	SuccessRate          float64
	AvgResponseMs        float64
	RequestsToday        int
	RequestsThisMinute   int
	LimitReached         bool
}
