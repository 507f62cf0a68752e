package models

// IOCounters holds cumulative storage I/O byte counts aggregated across
// all live processes.
type IOCounters struct {
	ReadBytes  uint64 `json:"read_bytes"`
	WriteBytes uint64 `json:"write_bytes"`
}
