package keyname

import "strconv"

// codeReturn is VK_RETURN, shared by the main Enter key and the keypad Enter key.
const codeReturn = 0x0D

// Resolve returns the display name of a virtual-key code.
//
// The extended flag is the only way to tell the keypad from the navigation
// cluster and the main Enter key from keypad Enter, so those rules run before
// the table lookup. Unknown codes render as their decimal value.
func Resolve(code int, extended bool) string {
	if !extended && IsNumpadAlias(code) {
		return numpadNames[code]
	}
	if code == codeReturn {
		if extended {
			return "NumEnter"
		}
		return "Enter"
	}
	if name, ok := Lookup(code); ok {
		return name
	}
	return strconv.Itoa(code)
}

// IsNumpadAlias reports whether code is shared by the keypad and the navigation cluster.
func IsNumpadAlias(code int) bool {
	_, ok := numpadNames[code]
	return ok
}
