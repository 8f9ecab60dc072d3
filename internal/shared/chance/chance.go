// Package chance holds the random draws behind every simulated behaviour.
//
// All randomness flows through a Source so tests can script exact draws.
// Probabilities are expressed as Roll(p), which succeeds when a uniform draw
// in [0,1) is strictly below p.
package chance

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	"gonum.org/v1/gonum/floats"
)

var ErrBadWeights = errors.New("invalid weights")

// Source produces uniform draws. *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// Float64 returns a uniform value in [0,1).
	Float64() float64
	// IntN returns a uniform value in [0,n).
	IntN(n int) int
}

// New returns a PCG backed source. A zero seed seeds from the wall clock.
func New(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Roll reports whether an event with probability p happens.
func Roll(src Source, p float64) bool {
	return src.Float64() < p
}

// Between draws uniformly from [lo,hi).
func Between(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// Pick returns a uniformly chosen element. items must not be empty.
func Pick[T any](src Source, items []T) T {
	return items[src.IntN(len(items))]
}

// Weighted is a discrete distribution over a fixed set of items. A draw u
// selects the first item whose cumulative weight share exceeds u.
type Weighted[T any] struct {
	items []T
	cum   []float64
	total float64
}

// NewWeighted builds a distribution. Weights need not sum to one.
func NewWeighted[T any](items []T, weights []float64) (*Weighted[T], error) {
	if len(items) == 0 || len(items) != len(weights) {
		return nil, fmt.Errorf("%w: %d items, %d weights", ErrBadWeights, len(items), len(weights))
	}
	if floats.Min(weights) < 0 {
		return nil, fmt.Errorf("%w: negative weight", ErrBadWeights)
	}
	total := floats.Sum(weights)
	if total <= 0 {
		return nil, fmt.Errorf("%w: weights sum to zero", ErrBadWeights)
	}

	return &Weighted[T]{
		items: append([]T(nil), items...),
		cum:   floats.CumSum(make([]float64, len(weights)), weights),
		total: total,
	}, nil
}

// MustWeighted is NewWeighted for package level tables.
func MustWeighted[T any](items []T, weights []float64) *Weighted[T] {
	w, err := NewWeighted(items, weights)
	if err != nil {
		panic(err)
	}
	return w
}

// At maps a uniform draw u in [0,1) to an item.
func (w *Weighted[T]) At(u float64) T {
	x := u * w.total
	i := sort.Search(len(w.cum), func(i int) bool { return x < w.cum[i] })
	if i == len(w.cum) {
		i--
	}
	return w.items[i]
}

// Thresholds returns the cumulative shares, ending at 1.
func (w *Weighted[T]) Thresholds() []float64 {
	out := make([]float64, len(w.cum))
	floats.ScaleTo(out, 1/w.total, w.cum)
	return out
}
