package wheel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMonthPicker(t *testing.T, opts Options) *Picker[int] {
	t.Helper()
	w, err := Range(1, 12)
	require.NoError(t, err)
	return NewPicker(w, opts)
}

// runTap drives a tap animation to completion the way the UI does.
func runTap[T int | string](t *testing.T, p *Picker[T], index int) {
	t.Helper()
	gen := p.Tap(index)
	for i := 0; !p.Step(); i++ {
		require.Less(t, i, 1000, "tap animation did not finish")
	}
	require.True(t, p.Settle(gen))
}

func TestRange(t *testing.T) {
	w, err := Range(1900, 2100)
	require.NoError(t, err)
	assert.Equal(t, 201, w.Len())
	assert.Equal(t, 1902, w.At(2))
	assert.Equal(t, "2100", w.Label(500))

	_, err = Range(5, 4)
	assert.ErrorIs(t, err, ErrEmptyWheel)
}

func TestNew(t *testing.T) {
	w, err := New("c", "a", "b")
	require.NoError(t, err)
	require.Equal(t, 3, w.Len())
	assert.Equal(t, []string{"a", "b", "c"}, []string{w.At(0), w.At(1), w.At(2)})

	_, err = New[int]()
	assert.ErrorIs(t, err, ErrEmptyWheel)
}

func TestWheel_Nearest(t *testing.T) {
	w, err := Range(2016, 2100)
	require.NoError(t, err)

	assert.Equal(t, 0, w.Nearest(1990))
	assert.Equal(t, w.Len()-1, w.Nearest(2200))
	assert.Equal(t, 10, w.Nearest(2026))

	sparse, err := New(10, 20, 30)
	require.NoError(t, err)
	assert.Equal(t, 1, sparse.Nearest(25))
}

func TestPicker_InitialState(t *testing.T) {
	p := newMonthPicker(t, Options{})

	assert.Equal(t, 0, p.SelectedIndex())
	assert.Equal(t, 1, p.Selected())
	assert.Equal(t, DefaultVisibleCount, p.VisibleCount())
	assert.Equal(t, DefaultItemSize, p.ItemSize())
	assert.Equal(t, PolicyCenter, p.Policy().Name())
	assert.False(t, p.Scrolling())

	m := p.Metrics()
	assert.Equal(t, -2, m.FirstVisibleIndex)
	assert.Equal(t, 0, m.FirstVisibleOffset)
	assert.Equal(t, 12, m.ItemCount)
}

func TestPicker_SelectValue(t *testing.T) {
	p := newMonthPicker(t, Options{})
	p.SelectValue(7)
	assert.Equal(t, 7, p.Selected())
	assert.Equal(t, 6, p.Resolve())

	p.SelectValue(40)
	assert.Equal(t, 12, p.Selected())
	assert.Equal(t, 0, p.Resolutions())
}

func TestPicker_NoResolutionWhileScrolling(t *testing.T) {
	var changes [][2]int
	p := newMonthPicker(t, Options{OnChange: func(o, n int) { changes = append(changes, [2]int{o, n}) }})

	p.ScrollItems(1)
	p.ScrollItems(1)
	gen := p.ScrollItems(1)

	assert.True(t, p.Scrolling())
	assert.Equal(t, 0, p.SelectedIndex(), "selection must not move during motion")
	assert.Equal(t, 0, p.Resolutions())

	require.True(t, p.Settle(gen))
	assert.False(t, p.Scrolling())
	assert.Equal(t, 3, p.SelectedIndex())
	assert.Equal(t, 1, p.Resolutions())
	assert.Equal(t, [][2]int{{0, 3}}, changes)
}

func TestPicker_SettleExactlyOncePerIdleTransition(t *testing.T) {
	p := newMonthPicker(t, Options{})

	stale := p.ScrollItems(2)
	current := p.ScrollItems(1)

	assert.False(t, p.Settle(stale), "stale generation must not settle")
	assert.True(t, p.Settle(current))
	assert.False(t, p.Settle(current), "second settle of the same motion")
	assert.Equal(t, 1, p.Resolutions())
	assert.Equal(t, 3, p.SelectedIndex())
}

func TestPicker_OnChangeOnlyWhenIndexMoves(t *testing.T) {
	calls := 0
	p := newMonthPicker(t, Options{OnChange: func(int, int) { calls++ }})

	gen := p.ScrollItems(-3) // already at the top boundary
	require.True(t, p.Settle(gen))

	assert.Equal(t, 1, p.Resolutions())
	assert.Equal(t, 0, calls)
}

func TestPicker_ScrollClampsAtBoundaries(t *testing.T) {
	p := newMonthPicker(t, Options{})

	gen := p.ScrollItems(100)
	require.True(t, p.Settle(gen))
	assert.Equal(t, 11, p.SelectedIndex())

	gen = p.ScrollItems(-100)
	require.True(t, p.Settle(gen))
	assert.Equal(t, 0, p.SelectedIndex())
}

func TestPicker_PartialScrollWithSnap(t *testing.T) {
	p := newMonthPicker(t, Options{Snap: true})

	gen := p.ScrollBy(7) // one item and three units
	require.True(t, p.Settle(gen))

	assert.Equal(t, 1, p.SelectedIndex())
	assert.Equal(t, 0, p.Metrics().FirstVisibleOffset, "snap aligns the viewport")
	assert.Equal(t, -1, p.Metrics().FirstVisibleIndex)
}

func TestPicker_TapSelectsItem(t *testing.T) {
	policies := []Policy{CenterPolicy{}, ThresholdPolicy{}}

	for _, policy := range policies {
		for _, prior := range []int{0, 5, 11} {
			for _, tap := range []int{0, 1, 6, 10, 11} {
				p := newMonthPicker(t, Options{Policy: policy})
				p.Select(prior)

				runTap(t, p, tap)

				assert.Equal(t, tap, p.SelectedIndex(), "policy=%s prior=%d tap=%d", policy.Name(), prior, tap)
			}
		}
	}
}

func TestPicker_TapOutOfRangeClamps(t *testing.T) {
	p := newMonthPicker(t, Options{})
	runTap(t, p, 99)
	assert.Equal(t, 11, p.SelectedIndex())
}

func TestPicker_SettleWaitsForAnimation(t *testing.T) {
	p := newMonthPicker(t, Options{})

	gen := p.Tap(8)
	assert.True(t, p.Animating())
	assert.False(t, p.Settle(gen), "settle before the animation finishes")
	assert.Equal(t, 0, p.SelectedIndex())

	for !p.Step() {
	}
	assert.True(t, p.Settle(gen))
	assert.Equal(t, 8, p.SelectedIndex())
}

func TestPicker_UserScrollCancelsAnimation(t *testing.T) {
	p := newMonthPicker(t, Options{})

	tapGen := p.Tap(8)
	p.Step()
	scrollGen := p.ScrollItems(1)

	assert.False(t, p.Animating())
	assert.False(t, p.Settle(tapGen))
	assert.True(t, p.Settle(scrollGen))
	assert.Equal(t, 1, p.Resolutions())
}

func TestPicker_GenericStrings(t *testing.T) {
	w, err := New("apr", "aug", "dec", "feb")
	require.NoError(t, err)
	p := NewPicker(w, Options{VisibleCount: 3, ItemSize: 2})

	runTap(t, p, 2)
	assert.Equal(t, "dec", p.Selected())
}

func TestActivity_OnIdleUnsubscribe(t *testing.T) {
	var a Activity
	calls := 0
	remove := a.OnIdle(func() { calls++ })

	require.True(t, a.End(a.Begin()))
	remove()
	require.True(t, a.End(a.Begin()))

	assert.Equal(t, 1, calls)
	assert.NotPanics(t, func() { a.OnIdle(nil)() })
}

func TestActivity_Cancel(t *testing.T) {
	var a Activity
	gen := a.Begin()
	a.Cancel()

	assert.False(t, a.Scrolling())
	assert.False(t, a.End(gen))
	assert.Greater(t, a.Generation(), gen)
}

func TestScrollPosition_Step(t *testing.T) {
	var p ScrollPosition
	p.SetExtents(-8, 40)
	p.AnimateTo(37)

	frames := 0
	for !p.Step() {
		frames++
	}
	assert.Equal(t, 37, p.Offset())
	assert.Greater(t, frames, 1)

	p.AnimateTo(100)
	for !p.Step() {
	}
	assert.Equal(t, 40, p.Offset(), "animation target is clamped")

	p.SetExtents(10, 0)
	lo, hi := p.Extents()
	assert.Equal(t, 10, lo)
	assert.Equal(t, 10, hi)
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, -1, floorDiv(-1, 4))
	assert.Equal(t, -2, floorDiv(-8, 4))
	assert.Equal(t, -3, floorDiv(-9, 4))
	assert.Equal(t, 1, floorDiv(7, 4))
}
