package services

import (
	"log"
	"sync"

	"sysmond/internal/models"

	"github.com/shirou/gopsutil/v3/process"
)

// ProcessEnumerator abstracts the host's process enumeration capability
// so the table can be rebuilt from a fake in tests.
type ProcessEnumerator interface {
	// Enumerate walks live processes in host order and returns at most
	// max entries; anything beyond that is silently dropped.
	Enumerate(max int) []models.ProcessEntry
}

// HostEnumerator enumerates live processes through gopsutil. Per-process
// read failures usually mean the process exited mid-walk; those entries
// are skipped rather than reported.
type HostEnumerator struct{}

func (HostEnumerator) Enumerate(max int) []models.ProcessEntry {
	procs, err := process.Processes()
	if err != nil {
		log.Printf("Warning: process enumeration failed: %v", err)
		return nil
	}

	entries := make([]models.ProcessEntry, 0, max)
	for _, p := range procs {
		if len(entries) >= max {
			break
		}

		name, err := p.Name()
		if err != nil {
			continue
		}

		var cpuTime uint64
		if times, err := p.Times(); err == nil {
			cpuTime = uint64((times.User + times.System) * clockTicks)
		}

		var vmBytes uint64
		if memInfo, err := p.MemoryInfo(); err == nil {
			vmBytes = memInfo.VMS
		}

		entries = append(entries, models.ProcessEntry{
			PID:     p.Pid,
			Name:    name,
			CPUTime: cpuTime,
			VMBytes: vmBytes,
		})
	}

	return entries
}

// ProcessTable is a bounded snapshot of the most recently observed
// processes, rebuilt wholesale each sampling cycle. Rebuild assembles the
// new table outside the lock and swaps the whole slice in, so readers
// always see either the previous table or the new one, never a mix of
// the two.
type ProcessTable struct {
	mu       sync.RWMutex
	entries  []models.ProcessEntry
	capacity int
	enum     ProcessEnumerator
}

func NewProcessTable(capacity int, enum ProcessEnumerator) *ProcessTable {
	return &ProcessTable{
		capacity: capacity,
		enum:     enum,
	}
}

// Capacity returns the fixed entry limit of the table.
func (t *ProcessTable) Capacity() int {
	return t.capacity
}

// Rebuild replaces the table contents with a fresh enumeration, truncated
// at capacity. Never fails: an empty enumeration yields an empty table.
func (t *ProcessTable) Rebuild() {
	entries := t.enum.Enumerate(t.capacity)
	if len(entries) > t.capacity {
		entries = entries[:t.capacity]
	}

	t.mu.Lock()
	t.entries = entries
	t.mu.Unlock()
}

// Entries returns the current table in enumeration order. The returned
// slice is never mutated after the swap, so callers may scan it freely
// while the next rebuild runs.
func (t *ProcessTable) Entries() []models.ProcessEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.entries
}
