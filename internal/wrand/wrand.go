package wrand

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptySequence is returned when there is nothing to pick from.
	ErrEmptySequence = errors.New("empty sequence")
	// ErrDegenerateWeights is returned when all weights are zero.
	ErrDegenerateWeights = errors.New("degenerate weights")
	// ErrInvalidWeight is returned for negative or non-finite weights.
	ErrInvalidWeight = errors.New("invalid weight")
)

// Source is a uniform random source over [0,1). *math/rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Wrand is a weighted table of items. Can be serialized and deserialized to/from JSON.
type Wrand[T any] []WrandItem[T]

type WrandItem[T any] struct {
	Weight float64
	Item   T
}

// Pick returns one item of the table with probability Weight/total.
func (w Wrand[T]) Pick(rng Source) (T, error) {
	idx, err := w.PickIndex(rng)
	if err != nil {
		var zero T
		return zero, err
	}
	return w[idx].Item, nil
}

// PickIndex is like Pick, but returns the index of the selected item.
func (w Wrand[T]) PickIndex(rng Source) (int, error) {
	return pickIndex(len(w), func(i int) float64 { return w[i].Weight }, rng)
}

// Items returns the table items without weights.
func (w Wrand[T]) Items() []T {
	items := make([]T, 0, len(w))
	for _, item := range w {
		items = append(items, item.Item)
	}
	return items
}

// Validate reports whether a pick from the table is well-defined.
func (w Wrand[T]) Validate() error {
	_, err := weights(len(w), func(i int) float64 { return w[i].Weight })
	return err
}

// Pick selects one of items with probability proportional to weight(item).
// Items and the weight function are not retained.
func Pick[T any](items []T, weight func(T) float64, rng Source) (T, error) {
	idx, err := PickIndex(items, weight, rng)
	if err != nil {
		var zero T
		return zero, err
	}
	return items[idx], nil
}

// PickIndex is like Pick, but returns the index of the selected item.
func PickIndex[T any](items []T, weight func(T) float64, rng Source) (int, error) {
	return pickIndex(len(items), func(i int) float64 { return weight(items[i]) }, rng)
}

func pickIndex(n int, weight func(int) float64, rng Source) (int, error) {
	ws, err := weights(n, weight)
	if err != nil {
		return -1, err
	}

	var total float64
	for _, w := range ws {
		total += w
	}

	r := rng.Float64() * total

	// zero-weight items never satisfy cum > r
	last := -1
	var cum float64
	for i, w := range ws {
		if w == 0 {
			continue
		}
		cum += w
		if cum > r {
			return i, nil
		}
		last = i
	}

	// r rounded up to total
	return last, nil
}

// weights evaluates every weight once and checks the distribution is well-defined.
func weights(n int, weight func(int) float64) ([]float64, error) {
	if n == 0 {
		return nil, ErrEmptySequence
	}

	ws := make([]float64, n)
	var total float64
	for i := range ws {
		w := weight(i)
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("%w: item %d has weight %v", ErrInvalidWeight, i, w)
		}
		ws[i] = w
		total += w
	}

	if math.IsInf(total, 0) {
		return nil, fmt.Errorf("%w: total weight overflows", ErrInvalidWeight)
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: all %d weights are zero", ErrDegenerateWeights, n)
	}
	return ws, nil
}
