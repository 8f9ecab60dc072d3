package monitoring

import (
	"time"

	"github.com/GriffinCanCode/CatOS/backend/internal/shared/types"
)

// Every log push carries exactly one new entry at the head.
func (m *Metrics) OnLogsChanged(logs []types.LogEntry) {
	if len(logs) == 0 {
		return
	}
	m.LogEntries.WithLabelValues(string(logs[0].Severity)).Inc()
}

func (m *Metrics) OnWindowsChanged(windows []types.WindowHandle) {
	m.WindowsOpen.Set(float64(len(windows)))
}

func (m *Metrics) OnAttentionChanged(attention float64) {
	m.Attention.Set(attention)
}

func (m *Metrics) OnPriorityChanged(priority types.Priority) {
	for _, p := range types.Priorities() {
		value := 0.0
		if p == priority {
			value = 1
		}
		m.Priority.WithLabelValues(string(p)).Set(value)
	}
}

func (m *Metrics) OnProcessesChanged(processes []types.ProcessEntry) {
	for _, p := range processes {
		m.ProcessLoad.WithLabelValues(string(p.Key)).Set(float64(p.Load))
	}
}

func (m *Metrics) OnCrashStateChanged(state types.CrashState) {
	if state.Phase == types.CrashActive && state.Progress == 0 {
		m.Crashes.Inc()
	}
	m.CrashProgress.Set(float64(state.Progress))
}

func (m *Metrics) OnNotify(string, time.Duration) {
	m.Notifications.Inc()
}

func (m *Metrics) OnZoomiesEffect(active bool, _ []int) {
	if active {
		m.Zoomies.Inc()
	}
}
