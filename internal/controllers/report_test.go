package controllers

import (
	"bytes"
	"testing"
	"time"

	"sysmond/internal/models"
)

func TestWriteReportFormat(t *testing.T) {
	base := time.Unix(1700000000, 0)
	snap := models.SystemSnapshot{
		Timestamp:    base,
		CPU:          models.CPUCounters{User: 100, Nice: 5, System: 50, Idle: 1000},
		Memory:       models.MemoryCounters{TotalKB: 16384, FreeKB: 8192, UsedKB: 8192, AvailableKB: 9000},
		ProcessCount: 123,
		IO:           models.IOCounters{ReadBytes: 1111, WriteBytes: 2222},
		Network:      models.NetworkCounters{RxBytes: 10, TxBytes: 20, RxPackets: 30, TxPackets: 40},
		History: []models.HistorySample{
			{Timestamp: base, CPUMarker: 30, MemAvailable: 300},
			{Timestamp: base.Add(-time.Second), CPUMarker: 20, MemAvailable: 200},
			{Timestamp: base.Add(-2 * time.Second), CPUMarker: 10, MemAvailable: 100},
		},
		Processes: []models.ProcessEntry{
			{PID: 1, Name: "systemd", CPUTime: 42, VMBytes: 4096},
			{PID: 2, Name: "kthreadd", CPUTime: 7, VMBytes: 0},
		},
	}

	var buf bytes.Buffer
	WriteReport(&buf, snap)

	want := "cpu_stats:100,5,50,1000\n" +
		"memory_stats:16384,8192,8192\n" +
		"process_count:123\n" +
		"io_stats:1111,2222\n" +
		"network_stats:10,20,30,40\n" +
		"history:\n" +
		"0,30,300\n" +
		"1,20,200\n" +
		"2,10,100\n" +
		"\n" +
		"top_processes:\n" +
		"1,systemd,42,4096\n" +
		"2,kthreadd,7,0\n"

	if got := buf.String(); got != want {
		t.Errorf("report mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteReportEmptyTable(t *testing.T) {
	snap := models.SystemSnapshot{
		History: []models.HistorySample{{}, {}},
	}

	var buf bytes.Buffer
	WriteReport(&buf, snap)

	want := "cpu_stats:0,0,0,0\n" +
		"memory_stats:0,0,0\n" +
		"process_count:0\n" +
		"io_stats:0,0\n" +
		"network_stats:0,0,0,0\n" +
		"history:\n" +
		"0,0,0\n" +
		"1,0,0\n" +
		"\n" +
		"top_processes:\n"

	if got := buf.String(); got != want {
		t.Errorf("report mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}
