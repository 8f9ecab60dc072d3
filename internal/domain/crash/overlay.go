// Package crash implements the "blue screen of cat" overlay.
//
// The overlay is a small state machine:
//
//	idle -> active(reason, 0) -> active(progress rising) -> resolved(100) -> idle
//
// Timing is owned by the caller: it calls Advance on every progress tick,
// stops ticking once Advance reports the terminal state, and calls Settle
// after the settle delay.
package crash

import (
	"sync"

	"github.com/GriffinCanCode/CatOS/backend/internal/shared/chance"
	"github.com/GriffinCanCode/CatOS/backend/internal/shared/types"
)

const (
	// MinStep and MaxStep bound a progress increment, MaxStep exclusive
	MinStep = 5
	MaxStep = 20
	// Complete is the terminal progress value
	Complete = 100
)

// Overlay is the crash state machine. At most one sequence runs at a time.
type Overlay struct {
	mu    sync.RWMutex
	state types.CrashState
}

// NewOverlay returns an idle overlay
func NewOverlay() *Overlay {
	return &Overlay{state: types.CrashState{Phase: types.CrashIdle}}
}

// Trigger starts a sequence with the given reason. It returns false and
// changes nothing unless the overlay is idle.
func (o *Overlay) Trigger(reason string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state.Phase != types.CrashIdle {
		return false
	}
	o.state = types.CrashState{
		Active:     true,
		ReasonCode: reason,
		Progress:   0,
		Phase:      types.CrashActive,
	}
	return true
}

// Step draws a progress increment in [MinStep, MaxStep)
func Step(src chance.Source) int {
	return MinStep + src.IntN(MaxStep-MinStep)
}

// Advance adds step to the progress, clamping at Complete. It returns true
// exactly when this call reached the terminal state. Calls outside the
// active phase are ignored.
func (o *Overlay) Advance(step int) (done bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state.Phase != types.CrashActive {
		return false
	}
	o.state.Progress += step
	if o.state.Progress >= Complete {
		o.state.Progress = Complete
		o.state.Phase = types.CrashResolved
		return true
	}
	return false
}

// Settle returns a resolved overlay to idle. It reports whether a
// transition happened.
func (o *Overlay) Settle() bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state.Phase != types.CrashResolved {
		return false
	}
	o.state = types.CrashState{Phase: types.CrashIdle}
	return true
}

// Reset forces the overlay back to idle, used on session teardown
func (o *Overlay) Reset() {
	o.mu.Lock()
	o.state = types.CrashState{Phase: types.CrashIdle}
	o.mu.Unlock()
}

// State returns a copy of the current state
func (o *Overlay) State() types.CrashState {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.state
}
