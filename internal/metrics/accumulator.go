package metrics

import "sync"

// EndpointStats holds the per-endpoint counters.
type EndpointStats struct {
	Count       int64
	TotalMillis int64
}

// Snapshot is a point-in-time copy of accumulator state. Keys preserves the
// order in which endpoints were first observed, so iteration is deterministic.
type Snapshot struct {
	TotalRequests int64
	TotalMillis   int64
	Keys          []string
	Endpoints     map[string]EndpointStats
}

// Accumulator aggregates request completions keyed by "METHOD path" strings.
// It is shared across the request-handling layer and safe for concurrent use.
type Accumulator struct {
	mu            sync.Mutex
	totalRequests int64
	totalMillis   int64
	keys          []string
	endpoints     map[string]*EndpointStats
}

// NewAccumulator initializes an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{endpoints: make(map[string]*EndpointStats)}
}

// RecordCompletion registers one finished request for the endpoint key.
// Callers invoke this exactly once per request completion.
func (a *Accumulator) RecordCompletion(key string, durationMillis int64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	stats, ok := a.endpoints[key]
	if !ok {
		stats = &EndpointStats{}
		a.endpoints[key] = stats
		a.keys = append(a.keys, key)
	}
	stats.Count++
	stats.TotalMillis += durationMillis

	a.totalRequests++
	a.totalMillis += durationMillis
}

// Reset replaces all state with an empty snapshot.
func (a *Accumulator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.totalRequests = 0
	a.totalMillis = 0
	a.keys = nil
	a.endpoints = make(map[string]*EndpointStats)
}

// Snapshot returns a copy of the current state. Mutating the returned value
// has no effect on the accumulator.
func (a *Accumulator) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	snap := Snapshot{
		TotalRequests: a.totalRequests,
		TotalMillis:   a.totalMillis,
		Keys:          make([]string, len(a.keys)),
		Endpoints:     make(map[string]EndpointStats, len(a.endpoints)),
	}
	copy(snap.Keys, a.keys)
	for key, stats := range a.endpoints {
		snap.Endpoints[key] = *stats
	}
	return snap
}
