package models

// MemoryCounters holds host memory figures in kilobytes. UsedKB is
// computed as TotalKB - FreeKB, never sampled independently.
type MemoryCounters struct {
	TotalKB     uint64 `json:"total_kb"`
	FreeKB      uint64 `json:"free_kb"`
	UsedKB      uint64 `json:"used_kb"`
	AvailableKB uint64 `json:"available_kb"`
}
