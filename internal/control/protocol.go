// Package control serves the live log websocket and its preference messages.
package control

// Message is a log websocket payload in either direction.
type Message struct {
	T             string `json:"t"`
	Text          string `json:"text,omitempty"`
	Enabled       *bool  `json:"enabled,omitempty"`
	ShowMouseMove *bool  `json:"showMouseMove,omitempty"`
}

// Message types.
const (
	// TypeLine carries one display line to the viewer.
	TypeLine = "line"
	// TypePref reports the current mouse-move preference to the viewer.
	TypePref = "pref"
	// TypeShowMouseMove asks the receiver to show or hide mouse-move lines.
	TypeShowMouseMove = "showMouseMove"
)

// lineMessage builds a line payload.
func lineMessage(text string) Message {
	return Message{T: TypeLine, Text: text}
}

// prefMessage builds a preference payload.
func prefMessage(show bool) Message {
	return Message{T: TypePref, ShowMouseMove: &show}
}
