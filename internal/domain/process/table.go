// Package process simulates the cosmetic process table shown in the taskbar
// tray. The set of processes is fixed; only status and load ever change.
package process

import (
	"sync"

	"github.com/GriffinCanCode/CatOS/backend/internal/shared/chance"
	"github.com/GriffinCanCode/CatOS/backend/internal/shared/types"
)

// PerturbProbability is the per-entry chance of a redraw on each tick
const PerturbProbability = 0.2

// Table holds the five pseudo-processes in display order
type Table struct {
	mu      sync.RWMutex
	entries []types.ProcessEntry
}

// NewTable returns the table in its boot state
func NewTable() *Table {
	entries := []types.ProcessEntry{
		{Key: types.ProcFoodScanner, Name: "🐟 Food Scanner", Status: types.StatusRunning, Load: 45},
		{Key: types.ProcSleepMode, Name: "🛏️ Sleep Mode", Status: types.StatusStandby, Load: 5},
		{Key: types.ProcZoomiesDaemon, Name: "💥 Zoomies Daemon", Status: types.StatusWaiting, Load: 0},
		{Key: types.ProcHumanDetector, Name: "👤 Human Detector", Status: types.StatusRunning, Load: 12},
		{Key: types.ProcChaosEngine, Name: "🔥 Chaos Engine", Status: types.StatusRunning, Load: 78},
	}
	return &Table{entries: entries}
}

// Perturb rolls each entry independently; selected entries get a uniformly
// drawn status and a load in [0,100). Returns the keys that changed.
func (t *Table) Perturb(src chance.Source) []types.ProcessKey {
	statuses := types.ProcessStatuses()

	t.mu.Lock()
	defer t.mu.Unlock()

	var changed []types.ProcessKey
	for i := range t.entries {
		if !chance.Roll(src, PerturbProbability) {
			continue
		}
		t.entries[i].Status = chance.Pick(src, statuses)
		t.entries[i].Load = src.IntN(100)
		changed = append(changed, t.entries[i].Key)
	}
	return changed
}

// Entries returns a copy of the table in display order
func (t *Table) Entries() []types.ProcessEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]types.ProcessEntry, len(t.entries))
	copy(out, t.entries)
	return out
}
