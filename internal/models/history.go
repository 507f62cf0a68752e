package models

import "time"

// HistorySample is one per-cycle record: the CPU activity marker and the
// memory availability figure at that instant.
type HistorySample struct {
	Timestamp    time.Time `json:"timestamp"`
	CPUMarker    uint64    `json:"cpu_marker"`
	MemAvailable uint64    `json:"mem_available"`
}

// AgedSample tags a history sample with its age index for boundary
// output: age 0 is the most recent sample.
type AgedSample struct {
	Age int `json:"age"`
	HistorySample
}
