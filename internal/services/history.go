package services

import (
	"sync"

	"sysmond/internal/models"
)

// HistoryRing is a fixed-capacity circular buffer holding one sample per
// sampling cycle. The mutex guards exactly the (slots, head) pair; no
// host read ever happens under it. The sampler is the only writer,
// snapshot readers may run concurrently.
type HistoryRing struct {
	mu    sync.RWMutex
	slots []models.HistorySample
	head  int
}

// NewHistoryRing creates a ring with the given fixed capacity. Size is
// validated at configuration time and is always positive here.
func NewHistoryRing(size int) *HistoryRing {
	return &HistoryRing{
		slots: make([]models.HistorySample, size),
	}
}

// Size returns the fixed capacity of the ring.
func (r *HistoryRing) Size() int {
	return len(r.slots)
}

// Append writes one sample at the head cursor and advances it,
// overwriting the oldest slot once the ring has wrapped. O(1), never
// fails.
func (r *HistoryRing) Append(sample models.HistorySample) {
	r.mu.Lock()
	r.slots[r.head] = sample
	r.head = (r.head + 1) % len(r.slots)
	r.mu.Unlock()
}

// Snapshot copies every slot out newest-first: index 0 is the most recent
// sample (age 0), the last index the oldest retained one. Slots that have
// never been written are zero-valued. The caller owns the returned slice
// and can iterate it without holding any lock.
func (r *HistoryRing) Snapshot() []models.HistorySample {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.slots)
	out := make([]models.HistorySample, n)
	for i := 0; i < n; i++ {
		out[i] = r.slots[(r.head-i-1+n)%n]
	}
	return out
}
