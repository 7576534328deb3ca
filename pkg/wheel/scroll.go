package wheel

// ScrollPosition stores the viewport offset of a wheel, in units measured
// from the top of item 0, and an optional animation target.
type ScrollPosition struct {
	offset    int
	min       int
	max       int
	target    int
	animating bool
}

// Offset returns the current scroll offset.
func (p *ScrollPosition) Offset() int {
	return p.offset
}

// Extents returns the min/max offsets.
func (p *ScrollPosition) Extents() (int, int) {
	return p.min, p.max
}

// SetExtents updates the min/max offsets and re-clamps the current offset.
func (p *ScrollPosition) SetExtents(min, max int) {
	if max < min {
		max = min
	}
	p.min = min
	p.max = max
	p.offset = Clamp(p.offset, min, max)
	p.target = Clamp(p.target, min, max)
}

// JumpTo moves to offset immediately and stops any animation.
func (p *ScrollPosition) JumpTo(offset int) {
	p.animating = false
	p.offset = Clamp(offset, p.min, p.max)
}

// ApplyUserOffset applies a drag or wheel delta. User motion always wins
// over a running animation. It reports whether the offset moved.
func (p *ScrollPosition) ApplyUserOffset(delta int) bool {
	p.animating = false
	next := Clamp(p.offset+delta, p.min, p.max)
	if next == p.offset {
		return false
	}
	p.offset = next
	return true
}

// AnimateTo starts a smooth scroll toward offset.
func (p *ScrollPosition) AnimateTo(offset int) {
	p.target = Clamp(offset, p.min, p.max)
	p.animating = p.target != p.offset
}

// Animating reports whether an animation is running.
func (p *ScrollPosition) Animating() bool {
	return p.animating
}

// Step advances the animation by one frame and reports whether it is done.
// Each frame covers a third of the remaining distance, at least one unit.
func (p *ScrollPosition) Step() bool {
	if !p.animating {
		return true
	}
	remaining := p.target - p.offset
	step := remaining / 3
	if step == 0 {
		step = remaining
		if remaining > 0 {
			step = 1
		} else if remaining < 0 {
			step = -1
		}
	}
	p.offset += step
	if p.offset == p.target {
		p.animating = false
		return true
	}
	return false
}
