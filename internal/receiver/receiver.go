// Package receiver runs native input events through the filter and translator.
package receiver

import (
	"errors"
	"log"
	"sync/atomic"
	"time"

	"github.com/frudas24/inputreceiver/internal/event"
	"github.com/frudas24/inputreceiver/internal/filter"
	"github.com/frudas24/inputreceiver/internal/translate"
)

// Sink accepts display lines in arrival order.
type Sink interface {
	Append(line string)
}

// Sinks fans a line out to several sinks in order.
type Sinks []Sink

// Append forwards the line to every sink.
func (s Sinks) Append(line string) {
	for _, sink := range s {
		if sink != nil {
			sink.Append(line)
		}
	}
}

// MovePredicate reports whether mouse-move lines should be shown.
type MovePredicate func() bool

// AlwaysShowMoves is a MovePredicate that never hides mouse moves.
func AlwaysShowMoves() bool { return true }

// Stats counts events seen by a Receiver.
type Stats struct {
	Received   uint64
	Suppressed uint64
	Hidden     uint64
	Emitted    uint64
}

// Receiver owns the mouse-move filter and delivers translated lines to a sink.
// Handle must be called from a single goroutine in event order.
type Receiver struct {
	filter    *filter.MoveFilter
	showMoves MovePredicate
	sink      Sink
	now       func() time.Time

	prefChanged atomic.Bool

	received   atomic.Uint64
	suppressed atomic.Uint64
	hidden     atomic.Uint64
	emitted    atomic.Uint64
}

// New creates a receiver. A nil predicate shows every mouse move.
func New(f *filter.MoveFilter, showMoves MovePredicate, sink Sink) (*Receiver, error) {
	if f == nil {
		return nil, errors.New("move filter is required")
	}
	if sink == nil {
		return nil, errors.New("sink is required")
	}
	if showMoves == nil {
		showMoves = AlwaysShowMoves
	}
	return &Receiver{
		filter:    f,
		showMoves: showMoves,
		sink:      sink,
		now:       time.Now,
	}, nil
}

// SetNowFunc overrides the clock used for timestamps.
func (r *Receiver) SetNowFunc(fn func() time.Time) {
	if fn != nil {
		r.now = fn
	}
}

// PreferenceChanged records that the mouse-move preference was toggled, so the
// next move is shown even at the last position. It is safe to call from any goroutine.
func (r *Receiver) PreferenceChanged() {
	r.prefChanged.Store(true)
}

// Handle processes one event and reports whether a line was appended.
func (r *Receiver) Handle(ev event.Event) bool {
	r.received.Add(1)
	if r.prefChanged.Swap(false) {
		r.filter.MarkStateChanged()
	}
	if !r.filter.ShouldForward(ev) {
		r.suppressed.Add(1)
		if debugEnabled() {
			log.Printf("debug: suppressed duplicate move at (%d, %d)", ev.X(), ev.Y())
		}
		return false
	}
	if ev.Kind == event.MouseMove && !r.showMoves() {
		r.hidden.Add(1)
		return false
	}
	r.sink.Append(translate.Line(r.now(), ev))
	r.emitted.Add(1)
	return true
}

// Stats returns a snapshot of the event counters. It is safe to call from any goroutine.
func (r *Receiver) Stats() Stats {
	return Stats{
		Received:   r.received.Load(),
		Suppressed: r.suppressed.Load(),
		Hidden:     r.hidden.Load(),
		Emitted:    r.emitted.Load(),
	}
}
