package wheel

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// ErrEmptyWheel is returned when a wheel would have no items.
var ErrEmptyWheel = errors.New("wheel has no items")

// Wheel is an immutable, ascending sequence of selectable values.
type Wheel[T cmp.Ordered] struct {
	items []T
}

// New builds a wheel from items. The items are copied and sorted.
func New[T cmp.Ordered](items ...T) (*Wheel[T], error) {
	if len(items) == 0 {
		return nil, ErrEmptyWheel
	}
	sorted := slices.Clone(items)
	slices.Sort(sorted)
	return &Wheel[T]{items: sorted}, nil
}

// Range builds a wheel holding every integer from lo to hi inclusive.
func Range(lo, hi int) (*Wheel[int], error) {
	if hi < lo {
		return nil, fmt.Errorf("%w: range %d..%d is inverted", ErrEmptyWheel, lo, hi)
	}
	items := make([]int, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		items = append(items, v)
	}
	return &Wheel[int]{items: items}, nil
}

// Len returns the number of items.
func (w *Wheel[T]) Len() int {
	return len(w.items)
}

// At returns the item at index i, clamped into range.
func (w *Wheel[T]) At(i int) T {
	return w.items[Clamp(i, 0, len(w.items)-1)]
}

// Label renders the item at index i for display.
func (w *Wheel[T]) Label(i int) string {
	return fmt.Sprint(w.At(i))
}

// Nearest returns the index of v, or of the closest item when v is absent.
func (w *Wheel[T]) Nearest(v T) int {
	i, found := slices.BinarySearch(w.items, v)
	if found {
		return i
	}
	if i == 0 {
		return 0
	}
	if i == len(w.items) {
		return len(w.items) - 1
	}
	// between two items: take the lower one
	return i - 1
}
