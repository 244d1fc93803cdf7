// Package keyname resolves Windows virtual-key codes to display names.
package keyname

// entry maps one virtual-key code to its display name.
type entry struct {
	Code int
	Name string
}

// entries follows a US 104-key layout, row by row, then the remaining groups.
var entries = [...]entry{
	// Row 1
	{0xC0, "`"},
	{0x31, "1"},
	{0x32, "2"},
	{0x33, "3"},
	{0x34, "4"},
	{0x35, "5"},
	{0x36, "6"},
	{0x37, "7"},
	{0x38, "8"},
	{0x39, "9"},
	{0x30, "0"},
	{0xBD, "-"},
	{0xBB, "="},
	{0x08, "Backspace"},
	// Row 2
	{0x09, "Tab"},
	{0x51, "Q"},
	{0x57, "W"},
	{0x45, "E"},
	{0x52, "R"},
	{0x54, "T"},
	{0x59, "Y"},
	{0x55, "U"},
	{0x49, "I"},
	{0x4F, "O"},
	{0x50, "P"},
	{0xDB, "["},
	{0xDD, "]"},
	{0xDC, "\\"},
	// Row 3
	{0x14, "CapsLock"},
	{0x41, "A"},
	{0x53, "S"},
	{0x44, "D"},
	{0x46, "F"},
	{0x47, "G"},
	{0x48, "H"},
	{0x4A, "J"},
	{0x4B, "K"},
	{0x4C, "L"},
	{0xBA, ";"},
	{0xDE, "'"},
	{0x0D, "Enter"},
	// Row 4
	{0xA0, "L-Shift"},
	{0x5A, "Z"},
	{0x58, "X"},
	{0x43, "C"},
	{0x56, "V"},
	{0x42, "B"},
	{0x4E, "N"},
	{0x4D, "M"},
	{0xBC, ","},
	{0xBE, "."},
	{0xBF, "/"},
	{0xA1, "R-Shift"},
	// Row 5
	{0xA2, "L-Ctrl"},
	{0x5B, "L-Win"},
	{0xA4, "L-Alt"},
	{0x20, "Space"},
	{0xA5, "R-Alt"},
	{0x5D, "Application"},
	{0xA3, "R-Ctrl"},
	{0x5C, "R-Win"},
	// Generic modifiers
	{0x10, "Shift"},
	{0x11, "Ctrl"},
	{0x12, "Alt"},
	// Function keys
	{0x1B, "Esc"},
	{0x70, "F1"},
	{0x71, "F2"},
	{0x72, "F3"},
	{0x73, "F4"},
	{0x74, "F5"},
	{0x75, "F6"},
	{0x76, "F7"},
	{0x77, "F8"},
	{0x78, "F9"},
	{0x79, "F10"},
	{0x7A, "F11"},
	{0x7B, "F12"},
	{0x7C, "F13"},
	{0x7D, "F14"},
	{0x7E, "F15"},
	{0x7F, "F16"},
	{0x80, "F17"},
	{0x81, "F18"},
	{0x82, "F19"},
	{0x83, "F20"},
	{0x84, "F21"},
	{0x85, "F22"},
	{0x86, "F23"},
	{0x87, "F24"},
	{0x2C, "PrintScrn"},
	{0x91, "ScrollLock"},
	{0x13, "Pause"},
	// Navigation cluster; the same codes come from the keypad without the extended flag.
	{0x2D, "Insert"},
	{0x2E, "Delete"},
	{0x24, "Home"},
	{0x23, "End"},
	{0x21, "PageUp"},
	{0x22, "PageDown"},
	{0x26, "Up"},
	{0x28, "Down"},
	{0x25, "Left"},
	{0x27, "Right"},
	// Keypad
	{0x90, "NumLock"},
	{0x6F, "Num/"},
	{0x6A, "Num*"},
	{0x6D, "Num-"},
	{0x6B, "Num+"},
	{0x6E, "Num."},
	{0x60, "Num0"},
	{0x61, "Num1"},
	{0x62, "Num2"},
	{0x63, "Num3"},
	{0x64, "Num4"},
	{0x65, "Num5"},
	{0x66, "Num6"},
	{0x67, "Num7"},
	{0x68, "Num8"},
	{0x69, "Num9"},
	// Multimedia
	{0xAD, "VolumeMute"},
	{0xAE, "VolumeDown"},
	{0xAF, "VolumeUp"},
	{0xB0, "MediaNext"},
	{0xB1, "MediaPrev"},
	{0xB2, "MediaStop"},
	{0xB3, "MediaPlayPause"},
	{0xB4, "LaunchMail"},
	{0xB5, "SelectMedia"},
	{0xB6, "LaunchApp1"},
	{0xB7, "LaunchApp2"},
	// Browser
	{0xA6, "BrowserBack"},
	{0xA7, "BrowserForward"},
	{0xA8, "BrowserRefresh"},
	{0xA9, "BrowserStop"},
	{0xAA, "BrowserSearch"},
	{0xAB, "BrowserFavorites"},
	{0xAC, "BrowserHome"},
	// Misc
	{0x03, "Cancel"},
	{0x0C, "Clear"},
	{0x5F, "Sleep"},
}

// numpadOff names the keypad keys that report navigation codes while NumLock is off.
var numpadOff = [...]entry{
	{0x2D, "Num0(NumOFF)"},
	{0x2E, "Num.(NumOFF)"},
	{0x23, "Num1(NumOFF)"},
	{0x28, "Num2(NumOFF)"},
	{0x22, "Num3(NumOFF)"},
	{0x25, "Num4(NumOFF)"},
	{0x0C, "Num5(NumOFF)"},
	{0x27, "Num6(NumOFF)"},
	{0x24, "Num7(NumOFF)"},
	{0x26, "Num8(NumOFF)"},
	{0x21, "Num9(NumOFF)"},
}

var (
	names       = index(entries[:])
	numpadNames = index(numpadOff[:])
)

// index builds a lookup map from a list of entries.
func index(list []entry) map[int]string {
	out := make(map[int]string, len(list))
	for _, e := range list {
		out[e.Code] = e.Name
	}
	return out
}

// Lookup returns the table name for code without applying any context rules.
func Lookup(code int) (string, bool) {
	name, ok := names[code]
	return name, ok
}
