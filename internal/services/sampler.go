package services

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"sysmond/internal/models"
)

// CycleSources is the subset of host readers the sampler touches each
// cycle: the CPU activity marker and the memory availability figure.
type CycleSources interface {
	CPU() models.CPUCounters
	Memory() models.MemoryCounters
}

// Sampler drives one periodic collection cycle: rebuild the process
// table, then append one history sample. A single atomic flag gates the
// whole cycle, so a disabled tick costs nothing beyond the flag read.
// The sampler is the only writer of the ring and the table.
type Sampler struct {
	interval time.Duration
	ring     *HistoryRing
	table    *ProcessTable
	sources  CycleSources

	enabled atomic.Bool

	mu      sync.Mutex
	running bool
	done    chan struct{}
}

// NewSampler creates a sampler in the enabled state. It does not start
// sampling until Start is called.
func NewSampler(interval time.Duration, ring *HistoryRing, table *ProcessTable, sources CycleSources) *Sampler {
	s := &Sampler{
		interval: interval,
		ring:     ring,
		table:    table,
		sources:  sources,
	}
	s.enabled.Store(true)
	return s
}

// Start launches the background sampling goroutine. Starting an already
// running sampler is an initialization error.
func (s *Sampler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("sampler already running")
	}
	s.running = true
	s.done = make(chan struct{})

	go func(done chan struct{}) {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				s.runCycle(time.Now())
			}
		}
	}(s.done)

	log.Printf("Sampler started (interval: %v)", s.interval)
	return nil
}

// Stop ends the background goroutine. Idempotent.
func (s *Sampler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false
	close(s.done)
	log.Println("Sampler stopped")
}

// runCycle performs one sampling cycle. The background goroutine calls it
// once per tick; tests call it directly.
func (s *Sampler) runCycle(now time.Time) {
	if !s.enabled.Load() {
		return
	}

	s.table.Rebuild()

	cpu := s.sources.CPU()
	mem := s.sources.Memory()
	s.ring.Append(models.HistorySample{
		Timestamp:    now,
		CPUMarker:    cpu.Busy(),
		MemAvailable: mem.AvailableKB,
	})
}

// SetEnabled flips the monitoring state. Takes effect on the next cycle,
// not instantaneously.
func (s *Sampler) SetEnabled(on bool) {
	s.enabled.Store(on)
}

// Enabled reports the current monitoring state.
func (s *Sampler) Enabled() bool {
	return s.enabled.Load()
}

// Control applies a raw control token: any input beginning with "enable"
// or "disable" flips the monitoring state accordingly. Anything else is
// ignored; the return value reports whether the token was recognized.
func (s *Sampler) Control(cmd string) bool {
	switch {
	case strings.HasPrefix(cmd, "enable"):
		s.SetEnabled(true)
	case strings.HasPrefix(cmd, "disable"):
		s.SetEnabled(false)
	default:
		return false
	}
	return true
}
