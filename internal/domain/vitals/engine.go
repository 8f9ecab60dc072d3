// Package vitals tracks the cat's attention meter and current priority.
package vitals

import (
	"sync"

	"github.com/GriffinCanCode/CatOS/backend/internal/shared/chance"
	"github.com/GriffinCanCode/CatOS/backend/internal/shared/types"
)

const (
	// CriticalThreshold is the attention level below which the meter is critical
	CriticalThreshold = 20.0
	// MaxDecay bounds a single decay draw, exclusive
	MaxDecay = 5.0
	// PlayBoost is added by a play interaction
	PlayBoost = 10.0
	// LostInterestPenalty is removed when the cat loses interest in a window
	LostInterestPenalty = 20.0
)

// priorities is a memoryless distribution: the next priority never depends
// on the current one.
var priorities = chance.MustWeighted(types.Priorities(), []float64{40, 25, 20, 15})

// SelectPriority maps a uniform draw in [0,1) to a priority using the
// cumulative thresholds 0.40/0.65/0.85/1.00.
func SelectPriority(u float64) types.Priority {
	return priorities.At(u)
}

// PriorityThresholds exposes the cumulative selection thresholds
func PriorityThresholds() []float64 {
	return priorities.Thresholds()
}

// Engine holds attention and priority. Attention is clamped to [0,100]
// after every mutation.
type Engine struct {
	mu        sync.RWMutex
	attention float64
	priority  types.Priority
}

// New returns an engine with full attention and a food priority
func New() *Engine {
	return &Engine{
		attention: types.MaxAttention,
		priority:  types.PriorityFood,
	}
}

// Decay subtracts amount and reports whether attention is now critical
func (e *Engine) Decay(amount float64) (attention float64, critical bool) {
	attention = e.Adjust(-amount)
	return attention, attention < CriticalThreshold
}

// Boost adds amount and returns the new attention
func (e *Engine) Boost(amount float64) float64 {
	return e.Adjust(amount)
}

// Adjust applies delta and clamps the result
func (e *Engine) Adjust(delta float64) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.attention = clamp(e.attention + delta)
	return e.attention
}

// Attention returns the current attention level
func (e *Engine) Attention() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.attention
}

// Redraw selects a new priority from draw u and returns it
func (e *Engine) Redraw(u float64) types.Priority {
	p := SelectPriority(u)

	e.mu.Lock()
	e.priority = p
	e.mu.Unlock()

	return p
}

// Priority returns the current priority
func (e *Engine) Priority() types.Priority {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.priority
}

// Stats returns a copy of the vital stats
func (e *Engine) Stats() types.VitalStats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return types.VitalStats{Attention: e.attention, Priority: e.priority}
}

func clamp(v float64) float64 {
	switch {
	case v < types.MinAttention:
		return types.MinAttention
	case v > types.MaxAttention:
		return types.MaxAttention
	default:
		return v
	}
}
