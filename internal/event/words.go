package event

// Point is a screen or client coordinate pair.
type Point struct {
	X int
	Y int
}

// LowWord returns the low 16 bits of w.
func LowWord(w uint32) uint16 {
	return uint16(w & 0xFFFF)
}

// HighWord returns the high 16 bits of w.
func HighWord(w uint32) uint16 {
	return uint16(w >> 16)
}

// LowSigned returns the low 16 bits of w as a signed value.
func LowSigned(w uint32) int16 {
	return int16(LowWord(w))
}

// HighSigned returns the high 16 bits of w as a signed value.
func HighSigned(w uint32) int16 {
	return int16(HighWord(w))
}

// Pack builds a parameter word from two signed halves.
func Pack(low, high int16) uint32 {
	return uint32(uint16(low)) | uint32(uint16(high))<<16
}
