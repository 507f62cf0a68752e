package controllers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"sysmond/internal/models"

	"github.com/gin-gonic/gin"
)

// WriteReport renders a snapshot in the line-oriented key:value text
// format: one metric family per line, then history as
// age,cpu_marker,mem_available rows (newest first, every slot), then the
// process table as pid,name,cpu_time,vm_bytes rows in enumeration order.
func WriteReport(w io.Writer, snap models.SystemSnapshot) {
	fmt.Fprintf(w, "cpu_stats:%d,%d,%d,%d\n", snap.CPU.User, snap.CPU.Nice, snap.CPU.System, snap.CPU.Idle)
	fmt.Fprintf(w, "memory_stats:%d,%d,%d\n", snap.Memory.TotalKB, snap.Memory.FreeKB, snap.Memory.UsedKB)
	fmt.Fprintf(w, "process_count:%d\n", snap.ProcessCount)
	fmt.Fprintf(w, "io_stats:%d,%d\n", snap.IO.ReadBytes, snap.IO.WriteBytes)
	fmt.Fprintf(w, "network_stats:%d,%d,%d,%d\n", snap.Network.RxBytes, snap.Network.TxBytes, snap.Network.RxPackets, snap.Network.TxPackets)

	fmt.Fprintf(w, "history:\n")
	for age, s := range snap.History {
		fmt.Fprintf(w, "%d,%d,%d\n", age, s.CPUMarker, s.MemAvailable)
	}

	fmt.Fprintf(w, "\ntop_processes:\n")
	for _, p := range snap.Processes {
		fmt.Fprintf(w, "%d,%s,%d,%d\n", p.PID, p.Name, p.CPUTime, p.VMBytes)
	}
}

// GetReport serves the full text report at the publish boundary.
func (a *API) GetReport(c *gin.Context) {
	var buf bytes.Buffer
	WriteReport(&buf, a.monitor.Snapshot())
	c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}
