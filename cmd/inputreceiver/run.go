// Package main starts the input message receiver.
package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/frudas24/inputreceiver/internal/app"
	"github.com/frudas24/inputreceiver/internal/config"
	"github.com/frudas24/inputreceiver/internal/filter"
	"github.com/frudas24/inputreceiver/internal/logstream"
	"github.com/frudas24/inputreceiver/internal/receiver"
	"github.com/frudas24/inputreceiver/internal/session"
	"github.com/frudas24/inputreceiver/internal/winhost"
)

// run wires the receiver and blocks until the window closes.
func run(debug bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	receiver.SetDebugLogging(debug)
	if debug {
		log.Printf("debug: enabled")
	}
	logStartup(cfg)

	sess := session.New(cfg.UIPassword, cfg.ShowMouseMove)
	stream := logstream.NewStream(cfg.ViewerBacklog)

	// The checkbox only fires from the pump, which starts after recv is set.
	var recv *receiver.Receiver
	host, err := winhost.New(winhost.Options{
		Title:         cfg.WindowTitle,
		FontFace:      cfg.FontFace,
		FontSize:      cfg.FontSize,
		ShowMouseMove: cfg.ShowMouseMove,
		OnShowMouseMove: func(show bool) {
			sess.SetShowMouseMove(show)
			recv.PreferenceChanged()
		},
	})
	if err != nil {
		return err
	}

	recv, err = receiver.New(filter.New(), sess.ShowMouseMove, receiver.Sinks{host, stream})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var server *http.Server
	errCh := make(chan error, 1)
	if cfg.ViewerEnabled {
		server, err = startViewer(cfg, sess, stream, recv, host, errCh)
		if err != nil {
			return err
		}
	}

	hostDone := make(chan struct{})
	go func() {
		select {
		case <-hostDone:
			return
		case <-ctx.Done():
			log.Printf("shutdown: interrupt")
		case err := <-errCh:
			log.Printf("viewer: %v", err)
			errCh <- err
		}
		if err := host.Close(); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	runErr := host.Run(recv.Handle)
	close(hostDone)
	st := recv.Stats()
	log.Printf("events: received=%d emitted=%d suppressed=%d hidden=%d", st.Received, st.Emitted, st.Suppressed, st.Hidden)

	if server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}
	if runErr != nil {
		return runErr
	}
	select {
	case err := <-errCh:
		return err
	default:
		return nil
	}
}

// startViewer serves the remote log viewer in the background.
func startViewer(cfg config.Config, sess *session.Session, stream *logstream.Stream, recv *receiver.Receiver, host *winhost.Host, errCh chan<- error) (*http.Server, error) {
	stats := func() app.Stats {
		st := recv.Stats()
		return app.Stats{Received: st.Received, Suppressed: st.Suppressed, Hidden: st.Hidden, Emitted: st.Emitted}
	}
	onPreference := func(show bool) {
		host.SyncShowMouseMove(show)
		recv.PreferenceChanged()
	}
	appInstance, err := app.New(cfg, sess, stream, stats, onPreference)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	appInstance.RegisterRoutes(mux, "")
	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	return server, nil
}

// logFatal prints and exits for startup failures.
func logFatal(err error) {
	log.Printf("fatal: %v", err)
	os.Exit(1)
}

// logStartup prints startup checks and connection info.
func logStartup(cfg config.Config) {
	log.Printf("Input Message Receiver starting")
	logEnvStatus(cfg)
	log.Printf("font: %s %dpt", cfg.FontFace, cfg.FontSize)
	log.Printf("show mouse move: %t", cfg.ShowMouseMove)
	if cfg.ViewerEnabled {
		logListenStatus(cfg.ListenAddr)
	} else {
		log.Printf("viewer: disabled")
	}
}

// logEnvStatus reports whether a .env file was found and required values are set.
func logEnvStatus(cfg config.Config) {
	envPath := filepath.Join(cfg.DataDir, ".env")
	if fileExists(envPath) {
		log.Printf("env check: ok (%s)", envPath)
	} else {
		log.Printf("env check: missing (%s)", envPath)
	}
	if !cfg.ViewerEnabled {
		return
	}
	if cfg.PasswordMode {
		if strings.TrimSpace(os.Getenv("UI_PASSWORD")) == "" {
			log.Printf("env UI_PASSWORD: missing")
		} else {
			log.Printf("env UI_PASSWORD: set")
		}
	} else {
		log.Printf("env PASSWORD_MODE: disabled (viewer is open)")
	}
}

// logListenStatus reports the listen address and a local URL helper.
func logListenStatus(addr string) {
	log.Printf("listen addr: %s", addr)
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	log.Printf("viewer url: http://%s", net.JoinHostPort(host, port))
}

// fileExists reports whether a path exists and is a file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
