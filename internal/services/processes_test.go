package services

import (
	"fmt"
	"testing"

	"sysmond/internal/models"
)

// fakeEnumerator hands back a fixed entry list and deliberately ignores
// the max hint, so the table's own truncation is exercised.
type fakeEnumerator struct {
	entries []models.ProcessEntry
}

func (f *fakeEnumerator) Enumerate(max int) []models.ProcessEntry {
	return f.entries
}

func fakeProcesses(n int) []models.ProcessEntry {
	entries := make([]models.ProcessEntry, n)
	for i := range entries {
		entries[i] = models.ProcessEntry{
			PID:     int32(i + 1),
			Name:    fmt.Sprintf("proc-%d", i+1),
			CPUTime: uint64(i * 100),
			VMBytes: uint64(i) * 4096,
		}
	}
	return entries
}

func TestRebuildTruncatesAtCapacity(t *testing.T) {
	tests := []struct {
		name string
		live int
		want int
	}{
		{"under capacity", 3, 3},
		{"exactly capacity", 5, 5},
		{"over capacity", 12, 5},
		{"no processes", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewProcessTable(5, &fakeEnumerator{entries: fakeProcesses(tt.live)})
			table.Rebuild()

			got := table.Entries()
			if len(got) != tt.want {
				t.Fatalf("len(Entries()) = %d, want %d", len(got), tt.want)
			}
			// Truncation keeps the first entries in enumeration order.
			for i, e := range got {
				if e.PID != int32(i+1) {
					t.Errorf("entry %d: pid = %d, want %d", i, e.PID, i+1)
				}
			}
		})
	}
}

func TestRebuildSwapsWholesale(t *testing.T) {
	enum := &fakeEnumerator{entries: fakeProcesses(3)}
	table := NewProcessTable(10, enum)
	table.Rebuild()

	before := table.Entries()

	// A reader holding the previous table must keep seeing it unchanged
	// across a rebuild that shrinks the live set.
	enum.entries = fakeProcesses(1)
	table.Rebuild()

	if len(before) != 3 {
		t.Fatalf("previous table mutated: len = %d, want 3", len(before))
	}
	for i, e := range before {
		if e.PID != int32(i+1) {
			t.Errorf("previous table entry %d changed: %+v", i, e)
		}
	}

	after := table.Entries()
	if len(after) != 1 {
		t.Fatalf("len(Entries()) after rebuild = %d, want 1", len(after))
	}
}

func TestEmptyTableBeforeFirstRebuild(t *testing.T) {
	table := NewProcessTable(5, &fakeEnumerator{})
	if got := table.Entries(); len(got) != 0 {
		t.Fatalf("fresh table not empty: %v", got)
	}
}
