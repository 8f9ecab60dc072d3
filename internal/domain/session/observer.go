package session

import (
	"time"

	"github.com/GriffinCanCode/CatOS/backend/internal/shared/types"
)

// Observer receives state changes. Methods are called while the session
// lock is held: implementations must return quickly and must not call back
// into the session.
type Observer interface {
	OnLogsChanged(logs []types.LogEntry)
	OnWindowsChanged(windows []types.WindowHandle)
	OnAttentionChanged(attention float64)
	OnPriorityChanged(priority types.Priority)
	OnProcessesChanged(processes []types.ProcessEntry)
	OnCrashStateChanged(state types.CrashState)
	OnNotify(text string, duration time.Duration)
	OnZoomiesEffect(active bool, windowIDs []int)
}

// NopObserver ignores every notification. Embed it to implement only the
// methods you care about.
type NopObserver struct{}

func (NopObserver) OnLogsChanged([]types.LogEntry) {}

func (NopObserver) OnWindowsChanged([]types.WindowHandle) {}

func (NopObserver) OnAttentionChanged(float64) {}

func (NopObserver) OnPriorityChanged(types.Priority) {}

func (NopObserver) OnProcessesChanged([]types.ProcessEntry) {}

func (NopObserver) OnCrashStateChanged(types.CrashState) {}

func (NopObserver) OnNotify(string, time.Duration) {}

func (NopObserver) OnZoomiesEffect(bool, []int) {}

// Observers fans every notification out in order
type Observers []Observer

func (o Observers) OnLogsChanged(logs []types.LogEntry) {
	for _, obs := range o {
		obs.OnLogsChanged(logs)
	}
}

func (o Observers) OnWindowsChanged(windows []types.WindowHandle) {
	for _, obs := range o {
		obs.OnWindowsChanged(windows)
	}
}

func (o Observers) OnAttentionChanged(attention float64) {
	for _, obs := range o {
		obs.OnAttentionChanged(attention)
	}
}

func (o Observers) OnPriorityChanged(priority types.Priority) {
	for _, obs := range o {
		obs.OnPriorityChanged(priority)
	}
}

func (o Observers) OnProcessesChanged(processes []types.ProcessEntry) {
	for _, obs := range o {
		obs.OnProcessesChanged(processes)
	}
}

func (o Observers) OnCrashStateChanged(state types.CrashState) {
	for _, obs := range o {
		obs.OnCrashStateChanged(state)
	}
}

func (o Observers) OnNotify(text string, duration time.Duration) {
	for _, obs := range o {
		obs.OnNotify(text, duration)
	}
}

func (o Observers) OnZoomiesEffect(active bool, windowIDs []int) {
	for _, obs := range o {
		obs.OnZoomiesEffect(active, windowIDs)
	}
}
