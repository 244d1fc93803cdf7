// Package filter drops repeated mouse-move notifications.
package filter

import "github.com/frudas24/inputreceiver/internal/event"

// noPosition is the sentinel stored before the first mouse move is seen.
var noPosition = event.Point{X: -1, Y: -1}

// MoveFilter remembers the last forwarded mouse position.
// It must only be used from the goroutine that observes event order.
type MoveFilter struct {
	last         event.Point
	stateChanged bool
}

// New returns a filter with no previous position.
func New() *MoveFilter {
	return &MoveFilter{last: noPosition}
}

// ShouldForward reports whether ev should be translated.
// Non-move events are always forwarded and leave the filter untouched.
func (f *MoveFilter) ShouldForward(ev event.Event) bool {
	if ev.Kind != event.MouseMove {
		return true
	}
	pos := ev.Point()
	if pos == f.last && !f.stateChanged {
		return false
	}
	f.last = pos
	f.stateChanged = false
	return true
}

// MarkStateChanged forces the next mouse move to be forwarded.
func (f *MoveFilter) MarkStateChanged() {
	f.stateChanged = true
}
