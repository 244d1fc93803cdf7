// Package app wires the viewer HTTP API, the log websocket, and session state together.
package app

import (
	"errors"

	"github.com/frudas24/inputreceiver/internal/config"
	"github.com/frudas24/inputreceiver/internal/control"
	"github.com/frudas24/inputreceiver/internal/logstream"
	"github.com/frudas24/inputreceiver/internal/session"
)

// StatsProvider reports receiver counters for the state endpoint.
type StatsProvider func() Stats

// Stats summarizes receiver activity.
type Stats struct {
	Received   uint64 `json:"received"`
	Suppressed uint64 `json:"suppressed"`
	Hidden     uint64 `json:"hidden"`
	Emitted    uint64 `json:"emitted"`
}

// App coordinates the viewer HTTP API and the log websocket.
type App struct {
	cfg     config.Config
	session *session.Session
	stream  *logstream.Stream
	control *control.Server
	stats   StatsProvider
}

// New creates a new application with its dependencies wired.
func New(cfg config.Config, sess *session.Session, stream *logstream.Stream, stats StatsProvider, onPreference control.PreferenceListener) (*App, error) {
	if sess == nil {
		return nil, errors.New("session is required")
	}
	if stream == nil {
		return nil, errors.New("log stream is required")
	}

	return &App{
		cfg:     cfg,
		session: sess,
		stream:  stream,
		stats:   stats,
		control: control.NewServer(sess, stream, onPreference),
	}, nil
}

// Control returns the log websocket handler.
func (a *App) Control() *control.Server {
	return a.control
}
