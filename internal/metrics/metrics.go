package metrics

import (
	"sync"
	"time"
)

type leagueStats struct {
	fetches          int
	errors           int
	rateLimitHits    int
	lastRetryAfter   time.Duration
	lastFetchLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about scoreboard fetches
// and mirrors them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu      sync.Mutex
	stats   map[string]*leagueStats
	renders map[string]int
	otel    *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:   make(map[string]*leagueStats),
		renders: make(map[string]int),
		otel:    otel,
	}
}

// RecordFetch counts one scoreboard fetch for a league and stores its latency.
func (r *Recorder) RecordFetch(league string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	stats := r.ensureStats(league)
	stats.fetches++
	stats.lastFetchLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordFetch(league, duration, err)
	}
}

// RecordRateLimit tracks that a league endpoint answered 429 and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(league string, retryAfter time.Duration) {
	if r == nil {
		return
	}
	r.mu.Lock()
	stats := r.ensureStats(league)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordRateLimit(league, retryAfter)
	}
}

// RecordCardRender counts a card pushed to the views in the given state.
func (r *Recorder) RecordCardRender(state string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.renders[state]++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordCardRender(state)
	}
}

// CardRenders returns how many cards were rendered in the given state.
func (r *Recorder) CardRenders(state string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.renders[state]
}

// Snapshot is a copy of the stats for one league.
type Snapshot struct {
	Fetches          int
	Errors           int
	RateLimitHits    int
	LastRetryAfter   time.Duration
	LastFetchLatency time.Duration
}

// Snapshot returns a copy of the current stats for the league.
func (r *Recorder) Snapshot(league string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.stats[league]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Fetches:          stats.fetches,
		Errors:           stats.errors,
		RateLimitHits:    stats.rateLimitHits,
		LastRetryAfter:   stats.lastRetryAfter,
		LastFetchLatency: stats.lastFetchLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordPollerCycle tracks refresh cycles and failed cycles.
func (r *Recorder) RecordPollerCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordPoller(duration, err)
}

// ensureStats must be called with r.mu held.
func (r *Recorder) ensureStats(league string) *leagueStats {
	stats, ok := r.stats[league]
	if !ok {
		stats = &leagueStats{}
		r.stats[league] = stats
	}
	return stats
}
