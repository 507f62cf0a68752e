package models

// ProcessEntry is one observed process with its resource usage at the
// time the table was rebuilt. CPUTime is cumulative ticks (user+system).
type ProcessEntry struct {
	PID     int32  `json:"pid"`
	Name    string `json:"name"`
	CPUTime uint64 `json:"cpu_time"`
	VMBytes uint64 `json:"vm_bytes"`
}
