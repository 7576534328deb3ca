// Package datepicker orchestrates the three wheels of a drum-roll date
// picker session: it opens them on an initial date, keeps a snapshot of the
// resolved values and hands that snapshot to the host on confirm.
package datepicker

import (
	"fmt"

	"github.com/pluqqy/drumroll/pkg/wheel"
)

// Fixed wheel ranges. The day wheel does not depend on the month.
const (
	MinMonth = 1
	MaxMonth = 12
	MinDay   = 1
	MaxDay   = 31

	DefaultMinYear = 1900
	DefaultMaxYear = 2100
)

// Field identifies one of the three wheels.
type Field int

const (
	FieldYear Field = iota
	FieldMonth
	FieldDay
)

// Fields lists the wheels in display order.
var Fields = []Field{FieldYear, FieldMonth, FieldDay}

func (f Field) String() string {
	switch f {
	case FieldYear:
		return "year"
	case FieldMonth:
		return "month"
	case FieldDay:
		return "day"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

// Config describes the wheels a dialog builds on Open.
type Config struct {
	MinYear      int
	MaxYear      int
	VisibleCount int
	ItemSize     int
	Policy       wheel.Policy
	Snap         bool
	Clock        Clock
}

// DefaultConfig returns the configuration of the classic picker.
func DefaultConfig() Config {
	return Config{
		MinYear:      DefaultMinYear,
		MaxYear:      DefaultMaxYear,
		VisibleCount: wheel.DefaultVisibleCount,
		ItemSize:     wheel.DefaultItemSize,
		Policy:       wheel.CenterPolicy{},
		Snap:         true,
		Clock:        RealClock{},
	}
}

// Callbacks are the host side of the dialog.
type Callbacks struct {
	OnConfirm func(Date)
	OnCancel  func()
	// OnChange is told about every resolved change while the dialog is open.
	OnChange func(field Field, value int)
}

// Dialog is one date picker session at a time. The zero value is not usable;
// create dialogs with NewDialog.
type Dialog struct {
	config    Config
	callbacks Callbacks
	years     *wheel.Wheel[int]
	months    *wheel.Wheel[int]
	days      *wheel.Wheel[int]
	pickers   map[Field]*wheel.Picker[int]
	snapshot  Date
	open      bool
}

// NewDialog validates cfg and builds the wheels shared by every session.
func NewDialog(cfg Config, callbacks Callbacks) (*Dialog, error) {
	if cfg.Clock == nil {
		cfg.Clock = RealClock{}
	}
	if cfg.Policy == nil {
		cfg.Policy = wheel.CenterPolicy{}
	}
	years, err := wheel.Range(cfg.MinYear, cfg.MaxYear)
	if err != nil {
		return nil, fmt.Errorf("year wheel: %w", err)
	}
	months, err := wheel.Range(MinMonth, MaxMonth)
	if err != nil {
		return nil, fmt.Errorf("month wheel: %w", err)
	}
	days, err := wheel.Range(MinDay, MaxDay)
	if err != nil {
		return nil, fmt.Errorf("day wheel: %w", err)
	}
	return &Dialog{
		config:    cfg,
		callbacks: callbacks,
		years:     years,
		months:    months,
		days:      days,
	}, nil
}

// DefaultDate is the date a fresh session starts on: the current year,
// January 1st.
func (d *Dialog) DefaultDate() Date {
	today := DateOf(d.config.Clock.Now())
	return Date{Year: today.Year, Month: MinMonth, Day: MinDay}
}

// Open starts a session on initial, or on DefaultDate when initial is nil.
// Opening an open dialog restarts the session.
func (d *Dialog) Open(initial *Date) {
	start := d.DefaultDate()
	if initial != nil {
		start = *initial
	}

	d.pickers = map[Field]*wheel.Picker[int]{
		FieldYear:  d.newPicker(FieldYear, d.years),
		FieldMonth: d.newPicker(FieldMonth, d.months),
		FieldDay:   d.newPicker(FieldDay, d.days),
	}
	d.pickers[FieldYear].SelectValue(start.Year)
	d.pickers[FieldMonth].SelectValue(start.Month)
	d.pickers[FieldDay].SelectValue(start.Day)

	d.snapshot = Date{
		Year:  d.pickers[FieldYear].Selected(),
		Month: d.pickers[FieldMonth].Selected(),
		Day:   d.pickers[FieldDay].Selected(),
	}
	d.open = true
}

func (d *Dialog) newPicker(field Field, w *wheel.Wheel[int]) *wheel.Picker[int] {
	return wheel.NewPicker(w, wheel.Options{
		VisibleCount: d.config.VisibleCount,
		ItemSize:     d.config.ItemSize,
		Policy:       d.config.Policy,
		Snap:         d.config.Snap,
		OnChange: func(_, newIndex int) {
			d.refresh(field, w.At(newIndex))
		},
	})
}

func (d *Dialog) refresh(field Field, value int) {
	switch field {
	case FieldYear:
		d.snapshot.Year = value
	case FieldMonth:
		d.snapshot.Month = value
	case FieldDay:
		d.snapshot.Day = value
	}
	if d.callbacks.OnChange != nil {
		d.callbacks.OnChange(field, value)
	}
}

// IsOpen reports whether a session is running.
func (d *Dialog) IsOpen() bool {
	return d.open
}

// Picker returns the wheel for field, or nil when the dialog is closed.
func (d *Dialog) Picker(field Field) *wheel.Picker[int] {
	if !d.open {
		return nil
	}
	return d.pickers[field]
}

// Snapshot returns the values that Confirm would report now.
func (d *Dialog) Snapshot() Date {
	return d.snapshot
}

// Config returns the dialog configuration.
func (d *Dialog) Config() Config {
	return d.config
}

// Confirm closes the session and reports the snapshot to OnConfirm. Values
// are not re-resolved: a wheel still in motion reports its last settled
// value. Confirm on a closed dialog does nothing and returns false.
func (d *Dialog) Confirm() (Date, bool) {
	if !d.open {
		return Date{}, false
	}
	result := d.snapshot
	d.close()
	if d.callbacks.OnConfirm != nil {
		d.callbacks.OnConfirm(result)
	}
	return result, true
}

// Cancel closes the session without reporting a date.
func (d *Dialog) Cancel() bool {
	if !d.open {
		return false
	}
	d.close()
	if d.callbacks.OnCancel != nil {
		d.callbacks.OnCancel()
	}
	return true
}

func (d *Dialog) close() {
	d.open = false
	d.pickers = nil
}
