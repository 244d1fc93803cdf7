// Package translate turns native input events into log lines.
package translate

import (
	"fmt"
	"time"

	"github.com/frudas24/inputreceiver/internal/event"
	"github.com/frudas24/inputreceiver/internal/keyname"
)

// Unknown is the description of any message the translator does not decode.
const Unknown = "Unknown Message"

// timestampLayout renders [hh:mm:ss.zzz] on a 24-hour clock.
const timestampLayout = "[15:04:05.000]"

// Translate describes ev without a timestamp. It never fails.
func Translate(ev event.Event) string {
	switch ev.Kind {
	case event.KeyDown:
		return "Keyboard Down : " + describeKey(ev)
	case event.KeyUp:
		return "Keyboard Up   : " + describeKey(ev)
	case event.MouseLeftDown:
		return button("Mouse-L  Down", ev)
	case event.MouseLeftUp:
		return button("Mouse-L  Up  ", ev)
	case event.MouseRightDown:
		return button("Mouse-R  Down", ev)
	case event.MouseRightUp:
		return button("Mouse-R  Up  ", ev)
	case event.MouseMiddleDown:
		return button("Mouse-M  Down", ev)
	case event.MouseMiddleUp:
		return button("Mouse-M  Up  ", ev)
	case event.MouseXDown:
		if ev.XButton() == event.XButton1 {
			return button("Mouse-X1 Down", ev)
		}
		return button("Mouse-X2 Down", ev)
	case event.MouseXUp:
		if ev.XButton() == event.XButton1 {
			return button("Mouse-X1 Up  ", ev)
		}
		return button("Mouse-X2 Up  ", ev)
	case event.MouseMove:
		return button("Mouse Move   ", ev)
	case event.MouseWheel:
		return fmt.Sprintf("Mouse Wheel   : %d", ev.WheelDelta())
	case event.MouseHWheel:
		return fmt.Sprintf("Mouse H-Wheel : %d", ev.WheelDelta())
	default:
		return Unknown
	}
}

// Stamp prefixes text with the [hh:mm:ss.zzz] wall-clock time of t.
func Stamp(t time.Time, text string) string {
	return t.Format(timestampLayout) + " " + text
}

// Line translates ev and stamps it with t.
func Line(t time.Time, ev event.Event) string {
	return Stamp(t, Translate(ev))
}

// describeKey renders "<name> (0x<CODE>[+E])" for a keyboard event.
func describeKey(ev event.Event) string {
	code := ev.VirtualKey()
	extended := ev.Extended()
	hex := fmt.Sprintf("%02X", code)
	if extended {
		hex += "+E"
	}
	return fmt.Sprintf("%s (0x%s)", keyname.Resolve(code, extended), hex)
}

// button renders "<label> : (<x>, <y>)" for a pointer event.
func button(label string, ev event.Event) string {
	return fmt.Sprintf("%s : (%d, %d)", label, ev.X(), ev.Y())
}
