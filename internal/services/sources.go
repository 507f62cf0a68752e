package services

import (
	"log"

	"sysmond/internal/models"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	gnet "github.com/shirou/gopsutil/v3/net"
	"github.com/shirou/gopsutil/v3/process"
)

// clockTicks scales gopsutil's second-denominated CPU times back to the
// classic USER_HZ tick counts the counter model is expressed in.
const clockTicks = 100

// HostSources reads the counter families straight from the host. Every
// reader is a pure function of current host state, safe to call from any
// number of goroutines, and absorbs transient read failures by returning
// zeroed counters: monitoring must never take the process down with it.
type HostSources struct{}

func NewHostSources() *HostSources {
	return &HostSources{}
}

// CPU returns cumulative CPU ticks aggregated across all CPUs.
func (s *HostSources) CPU() models.CPUCounters {
	times, err := cpu.Times(false)
	if err != nil {
		log.Printf("Warning: could not read CPU counters: %v", err)
		return models.CPUCounters{}
	}
	if len(times) == 0 {
		return models.CPUCounters{}
	}

	t := times[0]
	return models.CPUCounters{
		User:   uint64(t.User * clockTicks),
		Nice:   uint64(t.Nice * clockTicks),
		System: uint64(t.System * clockTicks),
		Idle:   uint64(t.Idle * clockTicks),
	}
}

// Memory returns host memory figures in kilobytes.
func (s *HostSources) Memory() models.MemoryCounters {
	vm, err := mem.VirtualMemory()
	if err != nil {
		log.Printf("Warning: could not read memory counters: %v", err)
		return models.MemoryCounters{}
	}

	total := vm.Total / 1024
	free := vm.Free / 1024
	return models.MemoryCounters{
		TotalKB:     total,
		FreeKB:      free,
		UsedKB:      total - free,
		AvailableKB: vm.Available / 1024,
	}
}

// Network returns traffic counters aggregated across all interfaces.
func (s *HostSources) Network() models.NetworkCounters {
	counters, err := gnet.IOCounters(false)
	if err != nil {
		log.Printf("Warning: could not read network counters: %v", err)
		return models.NetworkCounters{}
	}
	if len(counters) == 0 {
		return models.NetworkCounters{}
	}

	c := counters[0]
	return models.NetworkCounters{
		RxBytes:   c.BytesRecv,
		TxBytes:   c.BytesSent,
		RxPackets: c.PacketsRecv,
		TxPackets: c.PacketsSent,
	}
}

// IO sums cumulative read/write bytes across all live processes.
// Processes that exit mid-walk are skipped, not reported.
func (s *HostSources) IO() models.IOCounters {
	procs, err := process.Processes()
	if err != nil {
		log.Printf("Warning: could not enumerate processes for IO counters: %v", err)
		return models.IOCounters{}
	}

	var total models.IOCounters
	for _, p := range procs {
		counters, err := p.IOCounters()
		if err != nil {
			continue
		}
		total.ReadBytes += counters.ReadBytes
		total.WriteBytes += counters.WriteBytes
	}

	return total
}

// ProcessCount returns the number of live processes.
func (s *HostSources) ProcessCount() int {
	pids, err := process.Pids()
	if err != nil {
		log.Printf("Warning: could not count processes: %v", err)
		return 0
	}
	return len(pids)
}
