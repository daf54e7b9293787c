// Package embedcache owns the job-identifier to embedding mapping shared
// across prediction requests. It enforces two invariants: entries are
// keyed strictly by job ID, and two distinct jobs must never hold
// near-identical embeddings.
package embedcache

import (
	"fmt"
	"sync"

	"github.com/hirepulse/shortlist-engine/internal/embedding"
	"go.uber.org/zap"
)

// ContaminationThreshold is the cosine similarity above which two
// embeddings for different jobs are treated as a caching defect.
const ContaminationThreshold = 0.999

// recentWindow is how many recent other-job embeddings a fresh embedding
// is compared against.
const recentWindow = 5

// ContaminationError signals that two distinct job identifiers produced
// near-identical embeddings. This is a correctness bug, not a coincidence,
// and must never silently yield identical match scores for different jobs.
type ContaminationError struct {
	JobID      string
	OtherJobID string
	Similarity float64
}

func (e *ContaminationError) Error() string {
	return fmt.Sprintf("embedding contamination: job %s and job %s have cosine similarity %.4f (threshold %v)",
		e.JobID, e.OtherJobID, e.Similarity, ContaminationThreshold)
}

// Cache is a process-lifetime, mutex-guarded store of job embeddings.
// Every mutation runs inside a single critical section so a concurrent
// request's clear cannot interleave with another request's read.
type Cache struct {
	mu       sync.Mutex
	entries  map[string][]float64
	order    []string // insertion order, oldest first
	disabled bool
	logger   *zap.Logger
}

// New creates an empty cache.
func New(logger *zap.Logger) *Cache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{
		entries: make(map[string][]float64),
		logger:  logger,
	}
}

// SetDisabled disables the cache entirely, forcing fresh computation on
// every request. Used by tests and the contamination debug flag.
func (c *Cache) SetDisabled(disabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disabled = disabled
}

// Get returns the cached embedding for a job ID, or false on a miss.
// A disabled cache always misses.
func (c *Cache) Get(jobID string) (*embedding.Embedding, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disabled {
		return nil, false
	}
	values, ok := c.entries[jobID]
	if !ok {
		return nil, false
	}
	// Copy so callers cannot mutate cached state.
	out := make([]float64, len(values))
	copy(out, values)
	return &embedding.Embedding{ID: jobID, Values: out}, true
}

// PutChecked stores a freshly computed embedding after comparing it
// against the most recent embeddings cached for other job IDs. Similarity
// above the contamination threshold returns a ContaminationError and the
// entry is not stored. The check and the store run in one critical section.
func (c *Cache) PutChecked(jobID string, values []float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	checked := 0
	for i := len(c.order) - 1; i >= 0 && checked < recentWindow; i-- {
		otherID := c.order[i]
		if otherID == jobID {
			continue
		}
		other, ok := c.entries[otherID]
		if !ok {
			continue
		}
		checked++
		sim := embedding.Cosine(values, other)
		if sim > ContaminationThreshold {
			return &ContaminationError{JobID: jobID, OtherJobID: otherID, Similarity: sim}
		}
	}

	// A disabled cache still records entries so later uniqueness checks
	// have something to compare against; Get simply never serves them.
	c.store(jobID, values)
	return nil
}

// Put stores an embedding without the uniqueness check. Intended for
// seeding tests; production code paths go through PutChecked.
func (c *Cache) Put(jobID string, values []float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store(jobID, values)
}

// store must be called with the mutex held.
func (c *Cache) store(jobID string, values []float64) {
	stored := make([]float64, len(values))
	copy(stored, values)

	if _, exists := c.entries[jobID]; !exists {
		c.order = append(c.order, jobID)
	}
	c.entries[jobID] = stored
}

// ClearStale drops every embedding except the one for the given job ID.
// Called at the start of each prediction so state left by a previous
// request for a different job cannot leak into this one.
func (c *Cache) ClearStale(exceptJobID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	dropped := 0
	for id := range c.entries {
		if id != exceptJobID {
			delete(c.entries, id)
			dropped++
		}
	}
	if dropped > 0 {
		c.logger.Debug("cleared stale job embeddings",
			zap.Int("dropped", dropped),
			zap.String("kept_job_id", exceptJobID))
	}

	order := c.order[:0]
	for _, id := range c.order {
		if id == exceptJobID {
			order = append(order, id)
		}
	}
	c.order = order
}

// Clear empties the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string][]float64)
	c.order = nil
}

// Len returns the number of cached embeddings.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
