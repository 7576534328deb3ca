package wheel

// Activity is the scrolling/idle signal of one wheel.
//
// Every burst of motion calls Begin, which returns a generation. The owner
// schedules End with that generation after a debounce; only the most recent
// generation can end the activity, so listeners registered with OnIdle run
// exactly once per transition from scrolling to idle.
type Activity struct {
	scrolling      bool
	generation     uint64
	listeners      map[int]func()
	nextListenerID int
}

// Begin marks the wheel as scrolling and returns the new generation.
func (a *Activity) Begin() uint64 {
	a.scrolling = true
	a.generation++
	return a.generation
}

// End transitions to idle if gen is the current generation and the wheel is
// still scrolling. It reports whether the transition happened.
func (a *Activity) End(gen uint64) bool {
	if !a.scrolling || gen != a.generation {
		return false
	}
	a.scrolling = false
	for _, listener := range a.listeners {
		listener()
	}
	return true
}

// Cancel drops any pending motion without notifying listeners.
func (a *Activity) Cancel() {
	a.scrolling = false
	a.generation++
}

// Scrolling reports whether motion is in progress.
func (a *Activity) Scrolling() bool {
	return a.scrolling
}

// Generation returns the current generation.
func (a *Activity) Generation() uint64 {
	return a.generation
}

// OnIdle registers a callback for idle transitions and returns a function
// that removes it.
func (a *Activity) OnIdle(listener func()) func() {
	if listener == nil {
		return func() {}
	}
	if a.listeners == nil {
		a.listeners = make(map[int]func())
	}
	id := a.nextListenerID
	a.nextListenerID++
	a.listeners[id] = listener
	return func() {
		delete(a.listeners, id)
	}
}
