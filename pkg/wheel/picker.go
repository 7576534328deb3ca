package wheel

import "cmp"

// Default geometry for a picker.
const (
	DefaultVisibleCount = 5
	DefaultItemSize     = 4
)

// Options configures a Picker.
type Options struct {
	VisibleCount int    // rows shown at once, DefaultVisibleCount when < 1
	ItemSize     int    // units per item, DefaultItemSize when < 1
	Policy       Policy // CenterPolicy when nil

	// Snap aligns the viewport on the resolved item after each settle.
	Snap bool

	// OnChange is called after a settle or tap changes the selection.
	OnChange func(oldIndex, newIndex int)
}

// Selection holds the index a picker currently considers selected.
type Selection struct {
	Index int
}

// Picker is one scroll wheel: its items, its scroll position, its activity
// signal and its selection.
type Picker[T cmp.Ordered] struct {
	wheel     *Wheel[T]
	policy    Policy
	visible   int
	itemSize  int
	snap      bool
	onChange  func(oldIndex, newIndex int)
	position  ScrollPosition
	activity  Activity
	selection Selection
	resolves  int
}

// NewPicker creates a picker over w with item 0 selected.
func NewPicker[T cmp.Ordered](w *Wheel[T], opts Options) *Picker[T] {
	p := &Picker[T]{
		wheel:    w,
		policy:   opts.Policy,
		visible:  opts.VisibleCount,
		itemSize: opts.ItemSize,
		snap:     opts.Snap,
		onChange: opts.OnChange,
	}
	if p.policy == nil {
		p.policy = CenterPolicy{}
	}
	if p.visible < 1 {
		p.visible = DefaultVisibleCount
	}
	if p.itemSize < 1 {
		p.itemSize = DefaultItemSize
	}
	p.position.SetExtents(
		p.policy.Anchor(0, p.visible)*p.itemSize,
		p.policy.Anchor(w.Len()-1, p.visible)*p.itemSize,
	)
	p.activity.OnIdle(p.resolve)
	p.Select(0)
	return p
}

// Wheel returns the items of the picker.
func (p *Picker[T]) Wheel() *Wheel[T] { return p.wheel }

// Policy returns the resolve policy in use.
func (p *Picker[T]) Policy() Policy { return p.policy }

// VisibleCount returns the number of rows in the viewport.
func (p *Picker[T]) VisibleCount() int { return p.visible }

// ItemSize returns the number of units per item.
func (p *Picker[T]) ItemSize() int { return p.itemSize }

// Select positions the wheel on index without going through resolution.
// It is used to initialize a picker and does not call OnChange.
func (p *Picker[T]) Select(index int) {
	index = Clamp(index, 0, p.wheel.Len()-1)
	p.activity.Cancel()
	p.position.JumpTo(p.policy.Anchor(index, p.visible) * p.itemSize)
	p.selection.Index = index
}

// SelectValue positions the wheel on v, or on the nearest item.
func (p *Picker[T]) SelectValue(v T) {
	p.Select(p.wheel.Nearest(v))
}

// Metrics reads the current scroll metrics.
func (p *Picker[T]) Metrics() Metrics {
	offset := p.position.Offset()
	first := floorDiv(offset, p.itemSize)
	return Metrics{
		FirstVisibleIndex:  first,
		FirstVisibleOffset: offset - first*p.itemSize,
		VisibleCount:       p.visible,
		ItemSize:           p.itemSize,
		ItemCount:          p.wheel.Len(),
	}
}

// ScrollBy applies a user scroll of delta units and returns the generation
// the owner must pass to Settle once motion has stopped. A delta that hits
// the scroll boundary still counts as motion.
func (p *Picker[T]) ScrollBy(delta int) uint64 {
	p.position.ApplyUserOffset(delta)
	return p.activity.Begin()
}

// ScrollItems scrolls by n whole items.
func (p *Picker[T]) ScrollItems(n int) uint64 {
	return p.ScrollBy(n * p.itemSize)
}

// Tap starts a smooth scroll that brings index into the selection band and
// returns the generation to settle once Step reports the animation is done.
func (p *Picker[T]) Tap(index int) uint64 {
	index = Clamp(index, 0, p.wheel.Len()-1)
	p.position.AnimateTo(p.policy.Anchor(index, p.visible) * p.itemSize)
	return p.activity.Begin()
}

// Step advances a tap animation by one frame and reports whether it is done.
func (p *Picker[T]) Step() bool {
	return p.position.Step()
}

// Animating reports whether a tap animation is running.
func (p *Picker[T]) Animating() bool {
	return p.position.Animating()
}

// Settle ends the motion started with generation gen. The selection is
// resolved if and only if this call is the idle transition.
func (p *Picker[T]) Settle(gen uint64) bool {
	if p.position.Animating() {
		return false
	}
	return p.activity.End(gen)
}

// Generation returns the generation of the latest motion.
func (p *Picker[T]) Generation() uint64 {
	return p.activity.Generation()
}

// Scrolling reports whether the picker is between a motion and its settle.
func (p *Picker[T]) Scrolling() bool {
	return p.activity.Scrolling()
}

// Resolve runs the policy against the current metrics without touching the
// selection.
func (p *Picker[T]) Resolve() int {
	return p.policy.Resolve(p.Metrics())
}

// SelectedIndex returns the resolved index.
func (p *Picker[T]) SelectedIndex() int {
	return p.selection.Index
}

// Selected returns the resolved value.
func (p *Picker[T]) Selected() T {
	return p.wheel.At(p.selection.Index)
}

// Resolutions returns how many times the selection has been resolved.
func (p *Picker[T]) Resolutions() int {
	return p.resolves
}

func (p *Picker[T]) resolve() {
	p.resolves++
	old := p.selection.Index
	index := p.Resolve()
	p.selection.Index = index
	if p.snap {
		p.position.JumpTo(p.policy.Anchor(index, p.visible) * p.itemSize)
	}
	if index != old && p.onChange != nil {
		p.onChange(old, index)
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
