package window

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/CatOS/backend/internal/shared/types"
)

func TestOpenAssignsSharedCounter(t *testing.T) {
	r := NewRegistry()

	yarn, err := r.Open(types.AppYarnBall)
	require.NoError(t, err)
	box, err := r.Open(types.AppBoxSimulator)
	require.NoError(t, err)

	assert.Equal(t, 1, yarn.ID)
	assert.Equal(t, 1, yarn.ZOrder)
	assert.Equal(t, 2, box.ID)
	assert.Equal(t, 2, box.ZOrder)
	assert.Equal(t, "🧶 Yarn Ball Simulator", yarn.Title)

	raised, ok := r.Raise(yarn.ID)
	require.True(t, ok)
	assert.Equal(t, 3, raised.ZOrder)

	top, ok := r.Topmost()
	require.True(t, ok)
	assert.Equal(t, yarn.ID, top.ID)

	_, ok = r.Close(box.ID)
	assert.True(t, ok)

	list := r.List()
	require.Len(t, list, 1)
	assert.Equal(t, yarn.ID, list[0].ID)

	next, err := r.Open(types.AppZoomies)
	require.NoError(t, err)
	assert.Equal(t, 4, next.ID, "ids continue after raise consumed the counter")
}

func TestOpenRejectsUnknownApp(t *testing.T) {
	r := NewRegistry()

	_, err := r.Open("solitaire")

	assert.True(t, errors.Is(err, types.ErrUnknownApp))
	assert.Empty(t, r.List())
	assert.Equal(t, 0, r.Stats().Allocated)
}

func TestCloseTwice(t *testing.T) {
	r := NewRegistry()
	h, _ := r.Open(types.AppSleepMode)

	_, first := r.Close(h.ID)
	_, second := r.Close(h.ID)

	assert.True(t, first)
	assert.False(t, second)
	_, ok := r.Get(h.ID)
	assert.False(t, ok, "no stale handle")
	assert.Empty(t, r.IDs())
}

func TestDistinctIDsAndTopmost(t *testing.T) {
	r := NewRegistry()
	const n = 12

	seen := make(map[int]bool)
	for i := 0; i < n; i++ {
		kind := types.AppKinds()[i%len(types.AppKinds())]
		h, err := r.Open(kind)
		require.NoError(t, err)
		seen[h.ID] = true
	}
	assert.Len(t, seen, n)

	top, ok := r.Topmost()
	require.True(t, ok)
	for _, h := range r.List() {
		if h.ID != top.ID {
			assert.Less(t, h.ZOrder, top.ZOrder)
		}
	}
}

func TestRaiseTopmostStillAllocates(t *testing.T) {
	r := NewRegistry()
	r.Open(types.AppFoodScanner)
	top, _ := r.Open(types.AppHumanIgnore)

	raised, ok := r.Raise(top.ID)

	require.True(t, ok)
	assert.Greater(t, raised.ZOrder, top.ZOrder)
	now, _ := r.Topmost()
	assert.Equal(t, top.ID, now.ID)
}

func TestRaiseUnknown(t *testing.T) {
	r := NewRegistry()

	_, ok := r.Raise(99)

	assert.False(t, ok)
	assert.Equal(t, 0, r.Stats().Allocated)
}

func TestListPreservesInsertionOrder(t *testing.T) {
	r := NewRegistry()
	a, _ := r.Open(types.AppFoodScanner)
	b, _ := r.Open(types.AppSleepMode)
	c, _ := r.Open(types.AppZoomies)

	r.Raise(a.ID)

	assert.Equal(t, []int{a.ID, b.ID, c.ID}, r.IDs())
	stats := r.Stats()
	assert.Equal(t, 3, stats.Open)
	assert.Equal(t, a.ID, stats.TopmostID)
}
