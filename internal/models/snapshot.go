package models

import "time"

// SystemSnapshot is the composite view served at the publish boundary:
// counter families read fresh at request time, the current process table,
// and a copy of the history ring (newest-first).
//
// The sub-reads are taken one after another, not atomically; fields may
// reflect instants up to one sampling interval apart.
type SystemSnapshot struct {
	Timestamp    time.Time       `json:"timestamp"`
	CPU          CPUCounters     `json:"cpu"`
	Memory       MemoryCounters  `json:"memory"`
	ProcessCount int             `json:"process_count"`
	IO           IOCounters      `json:"io"`
	Network      NetworkCounters `json:"network"`
	Processes    []ProcessEntry  `json:"processes"`
	History      []HistorySample `json:"history"`
}
