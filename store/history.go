package store

import (
	"sync"

	"github.com/vitalsign/health-risk-api/models"
)

// History is the in-memory, per-user, append-only log of past risk
// assessments. A single RWMutex serializes appends and reads so
// concurrent submissions for the same user cannot lose updates or tear
// reads.
//
// With limit <= 0 the store grows without bound for the process
// lifetime, matching the original behavior; a positive limit keeps only
// the most recent assessments per user (enforced on append and by the
// retention sweeper).
type History struct {
	mu     sync.RWMutex
	limit  int
	byUser map[string][]models.RiskAssessment
}

// NewHistory creates a history store. limit is the per-user retention
// cap; zero or negative means unbounded.
func NewHistory(limit int) *History {
	return &History{
		limit:  limit,
		byUser: make(map[string][]models.RiskAssessment),
	}
}

// Record appends an assessment to the user's log, preserving insertion
// order.
func (h *History) Record(userID string, a models.RiskAssessment) {
	h.mu.Lock()
	defer h.mu.Unlock()
	entries := append(h.byUser[userID], a)
	if h.limit > 0 && len(entries) > h.limit {
		entries = entries[len(entries)-h.limit:]
	}
	h.byUser[userID] = entries
}

// ForUser returns the user's assessments in call order. Unknown users
// get an empty slice, never an error. The returned slice is a copy, so
// callers cannot mutate the log.
func (h *History) ForUser(userID string) []models.RiskAssessment {
	h.mu.RLock()
	defer h.mu.RUnlock()
	entries := h.byUser[userID]
	out := make([]models.RiskAssessment, len(entries))
	copy(out, entries)
	return out
}

// Len returns the total number of stored assessments across all users.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, entries := range h.byUser {
		n += len(entries)
	}
	return n
}

// Trim enforces the retention cap on every user bucket and reports how
// many assessments were evicted. A no-op for unbounded stores.
func (h *History) Trim() int {
	if h.limit <= 0 {
		return 0
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	evicted := 0
	for user, entries := range h.byUser {
		if len(entries) > h.limit {
			evicted += len(entries) - h.limit
			h.byUser[user] = entries[len(entries)-h.limit:]
		}
	}
	return evicted
}

// Snapshot returns a copy of the full store, keyed by user, for the
// encrypted backup written by the scheduler.
func (h *History) Snapshot() map[string][]models.RiskAssessment {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make(map[string][]models.RiskAssessment, len(h.byUser))
	for user, entries := range h.byUser {
		cp := make([]models.RiskAssessment, len(entries))
		copy(cp, entries)
		out[user] = cp
	}
	return out
}
