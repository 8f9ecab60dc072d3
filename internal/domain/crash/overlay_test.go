package crash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/CatOS/backend/internal/shared/chance"
	"github.com/GriffinCanCode/CatOS/backend/internal/shared/types"
)

func TestLifecycle(t *testing.T) {
	o := NewOverlay()
	require.Equal(t, types.CrashIdle, o.State().Phase)
	assert.False(t, o.State().Active)

	require.True(t, o.Trigger("HAIRBALL_OVERFLOW_EXCEPTION"))
	state := o.State()
	assert.True(t, state.Active)
	assert.Equal(t, 0, state.Progress)
	assert.Equal(t, "HAIRBALL_OVERFLOW_EXCEPTION", state.ReasonCode)

	assert.False(t, o.Advance(19))
	assert.False(t, o.Advance(19))
	assert.Equal(t, 38, o.State().Progress)

	assert.False(t, o.Settle(), "settle before resolve is ignored")

	for !o.Advance(19) {
	}
	state = o.State()
	assert.Equal(t, Complete, state.Progress)
	assert.Equal(t, types.CrashResolved, state.Phase)
	assert.True(t, state.Active)

	assert.False(t, o.Advance(5), "no progress after terminal state")
	assert.Equal(t, Complete, o.State().Progress)

	require.True(t, o.Settle())
	assert.Equal(t, types.CrashState{Phase: types.CrashIdle}, o.State())
}

func TestTriggerIsGuarded(t *testing.T) {
	o := NewOverlay()

	require.True(t, o.Trigger("CUCUMBER_DETECTED_PANIC"))
	assert.False(t, o.Trigger("VACUUM_CLEANER_TERROR"))
	assert.Equal(t, "CUCUMBER_DETECTED_PANIC", o.State().ReasonCode)

	for !o.Advance(MaxStep - 1) {
	}
	assert.False(t, o.Trigger("BATH_TIME_SYSTEM_FAILURE"), "resolved but not settled")

	o.Settle()
	assert.True(t, o.Trigger("BATH_TIME_SYSTEM_FAILURE"))
}

func TestAlwaysTerminates(t *testing.T) {
	src := chance.New(3)

	for run := 0; run < 50; run++ {
		o := NewOverlay()
		o.Trigger("HUMAN_PET_WRONG_SPOT")

		ticks := 0
		for !o.Advance(Step(src)) {
			ticks++
			require.LessOrEqual(t, o.State().Progress, Complete)
			require.Less(t, ticks, Complete/MinStep+1)
		}
		require.Equal(t, Complete, o.State().Progress)
		require.True(t, o.Settle())
	}
}

func TestStepRange(t *testing.T) {
	src := chance.NewScript().Ints(0, 14, 15)

	assert.Equal(t, 5, Step(src))
	assert.Equal(t, 19, Step(src))
	assert.Equal(t, 5, Step(src), "15 wraps modulo 15")
}

func TestReset(t *testing.T) {
	o := NewOverlay()
	o.Trigger("FOOD_BOWL_EMPTY_CRITICAL_ERROR")
	o.Advance(50)

	o.Reset()

	assert.Equal(t, types.CrashIdle, o.State().Phase)
	assert.True(t, o.Trigger("FOOD_BOWL_EMPTY_CRITICAL_ERROR"))
}
