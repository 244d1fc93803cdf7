// Package event describes native input messages as plain values.
package event

// Kind identifies a native input message. Values match the Win32 WM_* identifiers.
type Kind uint32

const (
	// KeyDown is WM_KEYDOWN.
	KeyDown Kind = 0x0100
	// KeyUp is WM_KEYUP.
	KeyUp Kind = 0x0101
	// MouseMove is WM_MOUSEMOVE.
	MouseMove Kind = 0x0200
	// MouseLeftDown is WM_LBUTTONDOWN.
	MouseLeftDown Kind = 0x0201
	// MouseLeftUp is WM_LBUTTONUP.
	MouseLeftUp Kind = 0x0202
	// MouseRightDown is WM_RBUTTONDOWN.
	MouseRightDown Kind = 0x0204
	// MouseRightUp is WM_RBUTTONUP.
	MouseRightUp Kind = 0x0205
	// MouseMiddleDown is WM_MBUTTONDOWN.
	MouseMiddleDown Kind = 0x0207
	// MouseMiddleUp is WM_MBUTTONUP.
	MouseMiddleUp Kind = 0x0208
	// MouseWheel is WM_MOUSEWHEEL.
	MouseWheel Kind = 0x020A
	// MouseXDown is WM_XBUTTONDOWN; the button (X1 or X2) travels in Param1.
	MouseXDown Kind = 0x020B
	// MouseXUp is WM_XBUTTONUP; the button (X1 or X2) travels in Param1.
	MouseXUp Kind = 0x020C
	// MouseHWheel is WM_MOUSEHWHEEL.
	MouseHWheel Kind = 0x020E
)

// XButton identifiers carried in the high word of Param1 for X-button messages.
const (
	XButton1 = 0x0001
	XButton2 = 0x0002
)

// extendedKeyBit is bit 24 of a keyboard message's lParam.
const extendedKeyBit = 1 << 24

var recognized = map[Kind]struct{}{
	KeyDown:         {},
	KeyUp:           {},
	MouseMove:       {},
	MouseLeftDown:   {},
	MouseLeftUp:     {},
	MouseRightDown:  {},
	MouseRightUp:    {},
	MouseMiddleDown: {},
	MouseMiddleUp:   {},
	MouseWheel:      {},
	MouseXDown:      {},
	MouseXUp:        {},
	MouseHWheel:     {},
}

// Event is one native input message copied out of the host pump.
type Event struct {
	Kind   Kind
	Param1 uint32
	Param2 uint32
}

// FromNative copies a native message identifier and its wParam/lParam words into an Event.
// Only the low 32 bits of each parameter word are kept.
func FromNative(msg uint32, wParam, lParam uintptr) Event {
	return Event{
		Kind:   Kind(msg),
		Param1: uint32(wParam),
		Param2: uint32(lParam),
	}
}

// Recognized reports whether msg is one of the input messages the receiver logs.
func Recognized(msg uint32) bool {
	_, ok := recognized[Kind(msg)]
	return ok
}

// VirtualKey returns the virtual-key code of a keyboard message.
func (e Event) VirtualKey() int {
	return int(e.Param1)
}

// Extended reports whether the extended-key flag is set.
func (e Event) Extended() bool {
	return e.Param2&extendedKeyBit != 0
}

// X returns the signed x coordinate packed in the low word of Param2.
func (e Event) X() int {
	return int(LowSigned(e.Param2))
}

// Y returns the signed y coordinate packed in the high word of Param2.
func (e Event) Y() int {
	return int(HighSigned(e.Param2))
}

// Point returns the packed (x, y) coordinate pair.
func (e Event) Point() Point {
	return Point{X: e.X(), Y: e.Y()}
}

// WheelDelta returns the signed wheel delta packed in the high word of Param1.
func (e Event) WheelDelta() int {
	return int(HighSigned(e.Param1))
}

// XButton returns the X-button identifier packed in the high word of Param1.
func (e Event) XButton() uint16 {
	return HighWord(e.Param1)
}
