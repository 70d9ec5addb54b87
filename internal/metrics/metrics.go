package metrics

import (
	"sync"
	"time"
)

type resourceStats struct {
	fetches         int
	errors          int
	lastFetchTiming time.Duration
}

// Recorder captures lightweight, in-memory metrics about stats API
// fetches, keyed by resource (teams, roster, player, schedule,
// game_feed). All methods are nil-safe so callers never need to guard.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*resourceStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*resourceStats),
		otel:  otel,
	}
}

// RecordFetch increments counters for one upstream fetch and stores the
// observed latency.
func (r *Recorder) RecordFetch(resource string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(resource)
	stats.fetches++
	stats.lastFetchTiming = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFetch(resource, duration, err)
	}
}

// FetchCount returns the total fetches recorded for a resource.
func (r *Recorder) FetchCount(resource string) int {
	return r.Snapshot(resource).Fetches
}

// FetchErrors returns the total failed fetches recorded for a resource.
func (r *Recorder) FetchErrors(resource string) int {
	return r.Snapshot(resource).Errors
}

// LastFetchLatency returns the last recorded latency for a resource.
func (r *Recorder) LastFetchLatency(resource string) time.Duration {
	return r.Snapshot(resource).LastFetchLatency
}

// Snapshot is a copy of the current stats for one resource.
type Snapshot struct {
	Fetches          int
	Errors           int
	LastFetchLatency time.Duration
}

func (r *Recorder) Snapshot(resource string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(resource)
	return Snapshot{
		Fetches:          stats.fetches,
		Errors:           stats.errors,
		LastFetchLatency: stats.lastFetchTiming,
	}
}

// ensureStats expects r.mu to be held.
func (r *Recorder) ensureStats(resource string) *resourceStats {
	stats, ok := r.stats[resource]
	if !ok {
		stats = &resourceStats{}
		r.stats[resource] = stats
	}
	return stats
}

func (r *Recorder) snapshot(resource string) resourceStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[resource]; ok && stats != nil {
		return *stats
	}
	return resourceStats{}
}
