package models

// CPUCounters holds cumulative CPU time in ticks, aggregated across all
// CPUs. Each field is non-decreasing between consecutive reads; the
// counters reset only when the host reboots.
type CPUCounters struct {
	User   uint64 `json:"user"`
	Nice   uint64 `json:"nice"`
	System uint64 `json:"system"`
	Idle   uint64 `json:"idle"`
}

// Busy returns the aggregate non-idle tick count. The sampler records it
// as the per-cycle CPU activity marker.
func (c CPUCounters) Busy() uint64 {
	return c.User + c.Nice + c.System
}
