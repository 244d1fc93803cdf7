// Package winhost runs the native window that captures input and shows the log.
package winhost

import (
	"errors"

	"github.com/frudas24/inputreceiver/internal/event"
)

// ErrUnsupported indicates the native host window is not available.
var ErrUnsupported = errors.New("winhost is only supported on Windows")

const (
	defaultTitle    = "Input Message Receiver"
	defaultFontFace = "Consolas"
	defaultFontSize = 11
	showMoveLabel   = "Show mouse move"

	margin     = 6
	checkH     = 22
	checkW     = 200
	minLogSide = 10
)

// Handler receives each recognized input message from the pump in arrival order.
type Handler func(ev event.Event) bool

// Options configures the host window.
type Options struct {
	Title         string
	FontFace      string
	FontSize      int
	ShowMouseMove bool
	// OnShowMouseMove is called on the pump thread when the checkbox is toggled.
	OnShowMouseMove func(show bool)
}

// withDefaults fills empty option fields.
func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = defaultTitle
	}
	if o.FontFace == "" {
		o.FontFace = defaultFontFace
	}
	if o.FontSize <= 0 {
		o.FontSize = defaultFontSize
	}
	return o
}

// bounds is a child window rectangle in client coordinates.
type bounds struct {
	X, Y, W, H int32
}

// layout places the checkbox row above a log view that fills the rest of the client area.
func layout(width, height int32) (check, logView bounds) {
	check = bounds{X: margin, Y: margin, W: checkW, H: checkH}
	top := int32(margin + checkH + margin)
	logView = bounds{
		X: margin,
		Y: top,
		W: max(width-2*margin, minLogSide),
		H: max(height-top-margin, minLogSide),
	}
	return check, logView
}

// fontHeight converts a point size to a LOGFONT height at the given DPI, rounding like MulDiv.
func fontHeight(points, dpi int) int32 {
	return -int32((points*dpi + 36) / 72)
}

// shouldDispatch reports whether a pumped message should reach its window procedure.
// Keys and wheel messages aimed at the log view are dropped so the view never reacts to captured input.
func shouldDispatch(msg uint32, toLogView bool) bool {
	if !toLogView {
		return true
	}
	switch event.Kind(msg) {
	case event.KeyDown, event.KeyUp, event.MouseWheel, event.MouseHWheel:
		return false
	default:
		return true
	}
}
