package window

import (
	"fmt"
	"sync"

	"github.com/GriffinCanCode/CatOS/backend/internal/shared/types"
)

// Registry tracks open windows. Window ids and z-orders are drawn from one
// monotonically increasing counter, so opening and raising both consume it
// and the highest ZOrder is always the topmost window.
type Registry struct {
	mu      sync.RWMutex
	windows map[int]*types.WindowHandle // Protected by mu
	order   []int                       // insertion order, protected by mu
	counter int                         // Protected by mu
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		windows: make(map[int]*types.WindowHandle),
	}
}

// Open allocates a handle for a new window of the given app
func (r *Registry) Open(kind types.AppKind) (types.WindowHandle, error) {
	if !kind.Valid() {
		return types.WindowHandle{}, fmt.Errorf("open window: %w: %q", types.ErrUnknownApp, kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.counter++
	handle := &types.WindowHandle{
		ID:      r.counter,
		AppKind: kind,
		ZOrder:  r.counter,
		Title:   kind.Title(),
		Icon:    kind.Icon(),
	}
	r.windows[handle.ID] = handle
	r.order = append(r.order, handle.ID)

	return *handle, nil
}

// Get retrieves a window by ID
func (r *Registry) Get(id int) (types.WindowHandle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handle, ok := r.windows[id]
	if !ok {
		return types.WindowHandle{}, false
	}
	return *handle, true
}

// Close removes a window. Closing an unknown or already closed id is a no-op.
func (r *Registry) Close(id int) (types.WindowHandle, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	handle, ok := r.windows[id]
	if !ok {
		return types.WindowHandle{}, false
	}

	delete(r.windows, id)
	for i, wid := range r.order {
		if wid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return *handle, true
}

// Raise gives a window a fresh z-order, making it topmost. The counter
// advances even when the window is already on top.
func (r *Registry) Raise(id int) (types.WindowHandle, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	handle, ok := r.windows[id]
	if !ok {
		return types.WindowHandle{}, false
	}

	r.counter++
	handle.ZOrder = r.counter
	return *handle, true
}

// List returns copies of all windows in insertion order
func (r *Registry) List() []types.WindowHandle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]types.WindowHandle, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.windows[id])
	}
	return out
}

// IDs returns open window ids in insertion order
func (r *Registry) IDs() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]int(nil), r.order...)
}

// Topmost returns the window with the highest z-order
func (r *Registry) Topmost() (types.WindowHandle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var top *types.WindowHandle
	for _, handle := range r.windows {
		if top == nil || handle.ZOrder > top.ZOrder {
			top = handle
		}
	}
	if top == nil {
		return types.WindowHandle{}, false
	}
	return *top, true
}

// Stats contains registry statistics
type Stats struct {
	Open      int `json:"open"`
	Allocated int `json:"allocated"`
	TopmostID int `json:"topmost_id,omitempty"`
}

// Stats returns registry statistics
func (r *Registry) Stats() Stats {
	top, _ := r.Topmost()

	r.mu.RLock()
	defer r.mu.RUnlock()

	return Stats{
		Open:      len(r.windows),
		Allocated: r.counter,
		TopmostID: top.ID,
	}
}
