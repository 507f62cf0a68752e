package services

import (
	"time"

	"sysmond/internal/config"
	"sysmond/internal/models"
)

// Monitor owns all shared monitoring state for one process: the host
// readers, the bounded process table, the history ring, and the sampler
// that feeds them. One Monitor is created at startup and handed by
// reference to every boundary; there are no package-level singletons.
type Monitor struct {
	sources *HostSources
	ring    *HistoryRing
	table   *ProcessTable
	sampler *Sampler
}

// NewMonitor wires the collector from configuration. The state starts at
// its defaults: monitoring enabled, empty history, empty table.
func NewMonitor(cfg *config.Config) *Monitor {
	sources := NewHostSources()
	ring := NewHistoryRing(cfg.HistorySize)
	table := NewProcessTable(cfg.MaxProcesses, HostEnumerator{})

	return &Monitor{
		sources: sources,
		ring:    ring,
		table:   table,
		sampler: NewSampler(cfg.Interval(), ring, table, sources),
	}
}

// Start launches the background sampler.
func (m *Monitor) Start() error {
	return m.sampler.Start()
}

// Stop halts the background sampler.
func (m *Monitor) Stop() {
	m.sampler.Stop()
}

// Control applies a raw control token (enable/disable, prefix-matched).
// Unrecognized tokens are ignored; the return value reports whether the
// token was applied.
func (m *Monitor) Control(cmd string) bool {
	return m.sampler.Control(cmd)
}

// Enabled reports the monitoring state.
func (m *Monitor) Enabled() bool {
	return m.sampler.Enabled()
}

// Snapshot assembles the composite view the publish boundary serves:
// counter families read fresh, the current process table, and a copy of
// the history ring. The sub-reads happen one after another, so fields may
// reflect instants up to one sampling interval apart; callers must not
// assume tighter cross-field consistency.
func (m *Monitor) Snapshot() models.SystemSnapshot {
	return models.SystemSnapshot{
		Timestamp:    time.Now(),
		CPU:          m.sources.CPU(),
		Memory:       m.sources.Memory(),
		ProcessCount: m.sources.ProcessCount(),
		IO:           m.sources.IO(),
		Network:      m.sources.Network(),
		Processes:    m.table.Entries(),
		History:      m.ring.Snapshot(),
	}
}

// CPU reads the CPU counters fresh.
func (m *Monitor) CPU() models.CPUCounters {
	return m.sources.CPU()
}

// Memory reads the memory counters fresh.
func (m *Monitor) Memory() models.MemoryCounters {
	return m.sources.Memory()
}

// Network reads the network counters fresh.
func (m *Monitor) Network() models.NetworkCounters {
	return m.sources.Network()
}

// IO reads the aggregated per-process I/O counters fresh.
func (m *Monitor) IO() models.IOCounters {
	return m.sources.IO()
}

// ProcessCount reads the live process count fresh.
func (m *Monitor) ProcessCount() int {
	return m.sources.ProcessCount()
}

// Processes returns the latest process table contents.
func (m *Monitor) Processes() []models.ProcessEntry {
	return m.table.Entries()
}

// History returns a copy of the history ring, newest-first.
func (m *Monitor) History() []models.HistorySample {
	return m.ring.Snapshot()
}

// HistorySize returns the fixed ring capacity.
func (m *Monitor) HistorySize() int {
	return m.ring.Size()
}
