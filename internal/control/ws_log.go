// Package control serves the live log websocket and its preference messages.
package control

import (
	"net/http"
	"time"

	"github.com/frudas24/inputreceiver/internal/logstream"
	"github.com/frudas24/inputreceiver/internal/session"
	"github.com/gorilla/websocket"
)

const writeTimeout = 5 * time.Second

// PreferenceListener is told when a viewer changes the mouse-move preference.
type PreferenceListener func(show bool)

// Server streams display lines to websocket viewers.
type Server struct {
	upgrader     websocket.Upgrader
	session      *session.Session
	stream       *logstream.Stream
	onPreference PreferenceListener
}

// NewServer creates a log websocket server.
func NewServer(sess *session.Session, stream *logstream.Stream, onPreference PreferenceListener) *Server {
	return &Server{
		session: sess,
		stream:  stream,
		// A nil CheckOrigin rejects cross-origin upgrades.
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		onPreference: onPreference,
	}
}

// ServeHTTP upgrades the connection, replays the backlog, then streams new lines.
// All writes happen on this goroutine; a reader goroutine forwards viewer messages.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !s.session.IsAuthenticated(session.TokenFromRequest(r)) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	lines, backlog := s.stream.Subscribe()
	defer s.stream.Unsubscribe(lines)

	incoming := make(chan Message)
	done := make(chan struct{})
	quit := make(chan struct{})
	defer close(quit)
	go s.readLoop(conn, incoming, done, quit)

	if err := s.write(conn, prefMessage(s.session.ShowMouseMove())); err != nil {
		return
	}
	for _, line := range backlog {
		if err := s.write(conn, lineMessage(line)); err != nil {
			return
		}
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case <-done:
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			if err := s.write(conn, lineMessage(line)); err != nil {
				return
			}
		case msg := <-incoming:
			reply, ok := s.handleMessage(msg)
			if !ok {
				continue
			}
			if err := s.write(conn, reply); err != nil {
				return
			}
		}
	}
}

// readLoop decodes viewer messages until the connection fails.
func (s *Server) readLoop(conn *websocket.Conn, incoming chan<- Message, done chan<- struct{}, quit <-chan struct{}) {
	defer close(done)
	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		select {
		case incoming <- msg:
		case <-quit:
			return
		}
	}
}

// handleMessage applies a viewer message and returns an optional reply.
func (s *Server) handleMessage(msg Message) (Message, bool) {
	switch msg.T {
	case TypeShowMouseMove:
		if msg.Enabled == nil {
			return Message{}, false
		}
		s.session.SetShowMouseMove(*msg.Enabled)
		if s.onPreference != nil {
			s.onPreference(*msg.Enabled)
		}
		return prefMessage(*msg.Enabled), true
	default:
		return Message{}, false
	}
}

// write sends one JSON message with a deadline.
func (s *Server) write(conn *websocket.Conn, msg Message) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	return conn.WriteJSON(msg)
}
