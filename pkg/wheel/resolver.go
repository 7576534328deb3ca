package wheel

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPolicy is returned by PolicyByName for names it does not recognize.
var ErrUnknownPolicy = errors.New("unknown resolve policy")

// Policy names accepted in settings and on the command line
const (
	PolicyCenter    = "center"
	PolicyThreshold = "threshold"
)

// Metrics describes the scroll state of one wheel at the moment it is read.
type Metrics struct {
	FirstVisibleIndex  int // topmost partially or fully visible item, may be negative over leading spacer rows
	FirstVisibleOffset int // units the viewport has scrolled into that item, 0 means aligned
	VisibleCount       int // items shown at once
	ItemSize           int // units per item
	ItemCount          int
}

// Policy maps scroll metrics to a selected index.
type Policy interface {
	Name() string

	// Resolve returns the selected index, always within [0, ItemCount-1].
	Resolve(m Metrics) int

	// Anchor returns the first visible index at which index resolves
	// with a zero offset.
	Anchor(index, visibleCount int) int
}

// CenterPolicy selects the item sitting in the middle row of the viewport,
// ignoring any partial scroll into the top item.
type CenterPolicy struct{}

func (CenterPolicy) Name() string { return PolicyCenter }

func (CenterPolicy) Resolve(m Metrics) int {
	return Clamp(m.FirstVisibleIndex+half(m.VisibleCount), 0, m.ItemCount-1)
}

func (CenterPolicy) Anchor(index, visibleCount int) int {
	return index - half(visibleCount)
}

// ThresholdPolicy selects the item nearest the top edge: once the viewport
// has scrolled past the middle of the top item, the next item wins.
type ThresholdPolicy struct{}

func (ThresholdPolicy) Name() string { return PolicyThreshold }

func (ThresholdPolicy) Resolve(m Metrics) int {
	index := m.FirstVisibleIndex
	if m.FirstVisibleOffset*2 > max(m.ItemSize, 1) {
		index++
	}
	return Clamp(index, 0, m.ItemCount-1)
}

func (ThresholdPolicy) Anchor(index, _ int) int {
	return index
}

// PolicyByName returns the policy registered under name (case-insensitive).
// An empty name selects the center policy.
func PolicyByName(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PolicyCenter:
		return CenterPolicy{}, nil
	case PolicyThreshold:
		return ThresholdPolicy{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (must be %s or %s)", ErrUnknownPolicy, name, PolicyCenter, PolicyThreshold)
	}
}

// Clamp limits v to [lo, hi]. When hi < lo the result is lo.
func Clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

func half(visibleCount int) int {
	if visibleCount < 1 {
		return 0
	}
	return visibleCount / 2
}
