// Package health tracks per-source rate budgets and a three-state health
// ladder (healthy -> degraded -> down) used to admit or reject fetch
// attempts before they are made. Admission is advisory rate control:
// counters under concurrent requests are mostly accurate by design, not a
// hard guarantee.
package health

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"news_aggregator/internal/domain"
)

const (
	demotionThreshold  = 3 // consecutive failures before a demotion
	promotionThreshold = 3 // consecutive successes to climb degraded -> healthy
)

type Config struct {
	SuccessRateFloor float64
	MinAttempts      int
}

type state struct {
	desc   domain.SourceDescriptor
	status domain.HealthStatus

	attempts  int
	successes int

	minuteStart time.Time
	dayStart    time.Time
}

type Tracker struct {
	mu      sync.Mutex
	cfg     Config
	sources map[string]*state
	logger  *slog.Logger
	now     func() time.Time // overridable in tests
}

// New builds a tracker over the statically configured sources. Every
// source starts healthy; descriptors are never removed for the lifetime
// of the process.
func New(descriptors []domain.SourceDescriptor, cfg Config, logger *slog.Logger) *Tracker {
	t := &Tracker{
		cfg:     cfg,
		sources: make(map[string]*state, len(descriptors)),
		logger:  logger.With("component", "health"),
		now:     time.Now,
	}
	for _, d := range descriptors {
		t.sources[d.ID] = &state{
			desc:   d,
			status: domain.HealthStatus{Health: domain.HealthHealthy},
		}
	}
	return t
}

// CanAdmit reports whether a fetch against the source may be attempted:
// the source must be known, enabled, not down, and inside both its
// per-minute and per-day budgets.
func (t *Tracker) CanAdmit(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.sources[id]
	if !ok {
		return false
	}
	return t.admitLocked(s)
}

func (t *Tracker) admitLocked(s *state) bool {
	if !s.desc.Enabled {
		return false
	}
	if s.status.Health == domain.HealthDown {
		return false
	}

	t.rollWindowsLocked(s)

	if s.status.RequestsThisMinute+1 > s.desc.Rate.PerMinute ||
		s.status.RequestsToday+1 > s.desc.Rate.PerDay {
		if !s.status.LimitReached {
			t.logger.Warn("rate budget exhausted",
				"source", s.desc.ID,
				"minute", s.status.RequestsThisMinute,
				"today", s.status.RequestsToday,
			)
		}
		s.status.LimitReached = true
		return false
	}

	s.status.LimitReached = false
	return true
}

func (t *Tracker) rollWindowsLocked(s *state) {
	now := t.now()
	if now.Sub(s.minuteStart) >= time.Minute {
		s.minuteStart = now
		s.status.RequestsThisMinute = 0
	}
	if now.Sub(s.dayStart) >= 24*time.Hour {
		s.dayStart = now
		s.status.RequestsToday = 0
	}
}

// RecordOutcome folds one fetch attempt into the source's counters and
// recomputes its health classification.
func (t *Tracker) RecordOutcome(id string, success bool, latency time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.sources[id]
	if !ok {
		return
	}

	t.rollWindowsLocked(s)
	s.status.RequestsThisMinute++
	s.status.RequestsToday++

	latencyMs := float64(latency.Milliseconds())
	if s.status.AvgResponseMs == 0 {
		s.status.AvgResponseMs = latencyMs
	} else {
		s.status.AvgResponseMs = (s.status.AvgResponseMs + latencyMs) / 2
	}

	s.attempts++
	if success {
		s.successes++
	} else {
		s.status.ErrorCount++
	}
	s.status.SuccessRate = float64(s.successes) / float64(s.attempts)

	before := s.status.Health
	if success {
		s.status.ConsecutiveFails = 0
		s.status.ConsecutiveSuccesses++
		t.promoteLocked(s)
	} else {
		s.status.ConsecutiveSuccesses = 0
		s.status.ConsecutiveFails++
		t.demoteLocked(s)
	}

	if s.status.Health != before {
		t.logger.Warn("source health changed",
			"source", id,
			"from", before,
			"to", s.status.Health,
			"success_rate", s.status.SuccessRate,
			"consecutive_fails", s.status.ConsecutiveFails,
		)
	}
}

func (t *Tracker) promoteLocked(s *state) {
	switch s.status.Health {
	case domain.HealthDown:
		// A single success after down earns degraded; healthy takes more.
		s.status.Health = domain.HealthDegraded
		s.status.ConsecutiveSuccesses = 1
	case domain.HealthDegraded:
		if s.status.ConsecutiveSuccesses >= promotionThreshold {
			s.status.Health = domain.HealthHealthy
		}
	}
}

func (t *Tracker) demoteLocked(s *state) {
	belowFloor := s.attempts >= t.cfg.MinAttempts && s.status.SuccessRate < t.cfg.SuccessRateFloor
	if s.status.ConsecutiveFails < demotionThreshold && !belowFloor {
		return
	}

	switch s.status.Health {
	case domain.HealthHealthy:
		s.status.Health = domain.HealthDegraded
	case domain.HealthDegraded:
		s.status.Health = domain.HealthDown
	}
	// Start a fresh run so the next step down needs its own streak.
	s.status.ConsecutiveFails = 0
}

// Priority scores a source for selection: static reliability weighs most,
// then current health, then declared coverage of the queried category.
func (t *Tracker) Priority(id string, category domain.Category) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.sources[id]
	if !ok {
		return 0
	}
	return priorityLocked(s, category)
}

func priorityLocked(s *state, category domain.Category) int {
	score := s.desc.Reliability * 10

	switch s.status.Health {
	case domain.HealthHealthy:
		score += 15
	case domain.HealthDegraded:
		score += 5
	}

	if category != "" && s.desc.Covers(category) {
		score += 10
	}
	return score
}

// Eligible returns the admissible sources covering the category (empty
// category matches all), sorted by descending priority. Ties break on
// source ID so selection is deterministic.
func (t *Tracker) Eligible(category domain.Category) []domain.SourceDescriptor {
	t.mu.Lock()
	defer t.mu.Unlock()

	type scored struct {
		desc     domain.SourceDescriptor
		priority int
	}

	var candidates []scored
	for _, s := range t.sources {
		if !s.desc.Covers(category) {
			continue
		}
		if !t.admitLocked(s) {
			continue
		}
		candidates = append(candidates, scored{desc: s.desc, priority: priorityLocked(s, category)})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].priority != candidates[j].priority {
			return candidates[i].priority > candidates[j].priority
		}
		return candidates[i].desc.ID < candidates[j].desc.ID
	})

	out := make([]domain.SourceDescriptor, len(candidates))
	for i, c := range candidates {
		out[i] = c.desc
	}
	return out
}

// Snapshot returns a copy of the source's current health status.
func (t *Tracker) Snapshot(id string) (domain.HealthStatus, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.sources[id]
	if !ok {
		return domain.HealthStatus{}, false
	}
	return s.status, true
}
