package translate

import (
	"testing"
	"time"

	"github.com/frudas24/inputreceiver/internal/event"
)

// extended is the lParam bit set by keys from the extended cluster.
const extended = 1 << 24

// TestTranslate_KeyDown verifies a plain key press.
func TestTranslate_KeyDown(t *testing.T) {
	ev := event.Event{Kind: event.KeyDown, Param1: 0x41, Param2: 0x001E0001}
	if got := Translate(ev); got != "Keyboard Down : A (0x41)" {
		t.Fatalf("unexpected line %q", got)
	}
}

// TestTranslate_KeyUpExtended verifies the +E suffix and extended name resolution.
func TestTranslate_KeyUpExtended(t *testing.T) {
	ev := event.Event{Kind: event.KeyUp, Param1: 0x0D, Param2: extended | 0xC01C0001}
	if got := Translate(ev); got != "Keyboard Up   : NumEnter (0x0D+E)" {
		t.Fatalf("unexpected line %q", got)
	}
}

// TestTranslate_KeypadNavigation verifies keypad keys with NumLock off.
func TestTranslate_KeypadNavigation(t *testing.T) {
	ev := event.Event{Kind: event.KeyDown, Param1: 0x2E}
	if got := Translate(ev); got != "Keyboard Down : Num.(NumOFF) (0x2E)" {
		t.Fatalf("unexpected line %q", got)
	}
	ev.Param2 = extended
	if got := Translate(ev); got != "Keyboard Down : Delete (0x2E+E)" {
		t.Fatalf("unexpected line %q", got)
	}
}

// TestTranslate_UnknownKeyCode verifies unresolved codes keep the hex suffix.
func TestTranslate_UnknownKeyCode(t *testing.T) {
	ev := event.Event{Kind: event.KeyDown, Param1: 0xFF}
	if got := Translate(ev); got != "Keyboard Down : 255 (0xFF)" {
		t.Fatalf("unexpected line %q", got)
	}
}

// TestTranslate_Buttons verifies each button label and coordinate decoding.
func TestTranslate_Buttons(t *testing.T) {
	pos := event.Pack(12, -3)
	cases := []struct {
		ev   event.Event
		want string
	}{
		{event.Event{Kind: event.MouseLeftDown, Param2: pos}, "Mouse-L  Down : (12, -3)"},
		{event.Event{Kind: event.MouseLeftUp, Param2: pos}, "Mouse-L  Up   : (12, -3)"},
		{event.Event{Kind: event.MouseRightDown, Param2: pos}, "Mouse-R  Down : (12, -3)"},
		{event.Event{Kind: event.MouseRightUp, Param2: pos}, "Mouse-R  Up   : (12, -3)"},
		{event.Event{Kind: event.MouseMiddleDown, Param2: pos}, "Mouse-M  Down : (12, -3)"},
		{event.Event{Kind: event.MouseMiddleUp, Param2: pos}, "Mouse-M  Up   : (12, -3)"},
		{event.Event{Kind: event.MouseXDown, Param1: event.Pack(0, event.XButton1), Param2: pos}, "Mouse-X1 Down : (12, -3)"},
		{event.Event{Kind: event.MouseXDown, Param1: event.Pack(0, event.XButton2), Param2: pos}, "Mouse-X2 Down : (12, -3)"},
		{event.Event{Kind: event.MouseXUp, Param1: event.Pack(0, event.XButton1), Param2: pos}, "Mouse-X1 Up   : (12, -3)"},
		{event.Event{Kind: event.MouseXUp, Param1: event.Pack(0, event.XButton2), Param2: pos}, "Mouse-X2 Up   : (12, -3)"},
		{event.Event{Kind: event.MouseMove, Param2: pos}, "Mouse Move    : (12, -3)"},
	}
	for _, c := range cases {
		if got := Translate(c.ev); got != c.want {
			t.Fatalf("kind %#x: expected %q, got %q", uint32(c.ev.Kind), c.want, got)
		}
	}
}

// TestTranslate_Wheels verifies vertical and horizontal wheel deltas.
func TestTranslate_Wheels(t *testing.T) {
	ev := event.Event{Kind: event.MouseWheel, Param1: event.Pack(0, -120)}
	if got := Translate(ev); got != "Mouse Wheel   : -120" {
		t.Fatalf("unexpected line %q", got)
	}
	ev = event.Event{Kind: event.MouseHWheel, Param1: event.Pack(0, 240)}
	if got := Translate(ev); got != "Mouse H-Wheel : 240" {
		t.Fatalf("unexpected line %q", got)
	}
}

// TestTranslate_Unknown verifies unrecognized kinds.
func TestTranslate_Unknown(t *testing.T) {
	if got := Translate(event.Event{Kind: 0x0104}); got != "Unknown Message" {
		t.Fatalf("unexpected line %q", got)
	}
}

// TestTranslate_Idempotent verifies translating the same event twice yields the same text.
func TestTranslate_Idempotent(t *testing.T) {
	ev := event.Event{Kind: event.KeyDown, Param1: 0x26, Param2: extended}
	if Translate(ev) != Translate(ev) {
		t.Fatalf("expected identical translations")
	}
}

// TestStamp verifies the [hh:mm:ss.zzz] prefix.
func TestStamp(t *testing.T) {
	ts := time.Date(2024, 3, 1, 21, 5, 9, 42*int(time.Millisecond), time.Local)
	if got := Stamp(ts, "x"); got != "[21:05:09.042] x" {
		t.Fatalf("unexpected stamp %q", got)
	}
	ev := event.Event{Kind: event.MouseWheel, Param1: event.Pack(0, 120)}
	if got := Line(ts, ev); got != "[21:05:09.042] Mouse Wheel   : 120" {
		t.Fatalf("unexpected line %q", got)
	}
}
