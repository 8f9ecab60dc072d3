package vitals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/CatOS/backend/internal/shared/chance"
	"github.com/GriffinCanCode/CatOS/backend/internal/shared/types"
)

func TestAttentionScenario(t *testing.T) {
	e := New()
	require.Equal(t, 100.0, e.Attention())

	for i := 0; i < 5; i++ {
		e.Decay(4.0)
	}
	assert.InDelta(t, 80.0, e.Attention(), 1e-9)

	assert.InDelta(t, 90.0, e.Boost(PlayBoost), 1e-9)

	attention, critical := e.Decay(95)
	assert.Equal(t, 0.0, attention)
	assert.True(t, critical)
}

func TestBoostClampsAtMax(t *testing.T) {
	e := New()

	assert.Equal(t, 100.0, e.Boost(PlayBoost))
	e.Adjust(-LostInterestPenalty)
	assert.Equal(t, 80.0, e.Attention())
}

func TestCriticalThreshold(t *testing.T) {
	e := New()
	e.Adjust(-80)

	_, critical := e.Decay(0)
	assert.False(t, critical, "exactly 20 is not critical")

	_, critical = e.Decay(0.01)
	assert.True(t, critical)
}

func TestAttentionAlwaysInRange(t *testing.T) {
	e := New()
	src := chance.New(7)

	for i := 0; i < 1000; i++ {
		switch src.IntN(3) {
		case 0:
			e.Decay(chance.Between(src, 0, MaxDecay))
		case 1:
			e.Boost(PlayBoost)
		case 2:
			e.Adjust(-LostInterestPenalty)
		}
		a := e.Attention()
		require.GreaterOrEqual(t, a, types.MinAttention)
		require.LessOrEqual(t, a, types.MaxAttention)
	}
}

func TestRedrawIsMemoryless(t *testing.T) {
	e := New()

	tests := []struct {
		u    float64
		want types.Priority
	}{
		{0.1, types.PriorityFood},
		{0.5, types.PriorityChaos},
		{0.7, types.PrioritySleep},
		{0.95, types.PriorityAffection},
		{0.2, types.PriorityFood},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, e.Redraw(tt.u))
		assert.Equal(t, tt.want, e.Priority())
	}
	assert.Equal(t, types.VitalStats{Attention: 100, Priority: types.PriorityFood}, e.Stats())
}

func TestPriorityThresholds(t *testing.T) {
	th := PriorityThresholds()

	require.Len(t, th, 4)
	assert.InDeltaSlice(t, []float64{0.40, 0.65, 0.85, 1.00}, th, 1e-9)
}
