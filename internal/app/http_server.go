// Package app wires the viewer HTTP API, the log websocket, and session state together.
package app

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/frudas24/inputreceiver/internal/session"
	"github.com/frudas24/inputreceiver/internal/web"
)

// RegisterRoutes wires API and static handlers onto the mux.
func (a *App) RegisterRoutes(mux *http.ServeMux, staticDir string) {
	if staticDir == "" {
		staticDir = filepath.Join("internal", "web", "static")
	}

	mux.HandleFunc("/login", a.handleLogin)
	mux.HandleFunc("/logout", a.handleLogout)
	mux.HandleFunc("/api/state", a.handleState)
	mux.Handle("/ws/log", a.Control())
	mux.HandleFunc("/favicon.ico", handleFavicon)

	mux.Handle("/", staticFileServer(staticDir))
}

type loginRequest struct {
	Password string `json:"password"`
}

type stateResponse struct {
	Authenticated bool   `json:"authenticated"`
	PasswordMode  bool   `json:"passwordMode"`
	ShowMouseMove bool   `json:"showMouseMove"`
	WindowTitle   string `json:"windowTitle"`
	Lines         uint64 `json:"lines"`
	Dropped       uint64 `json:"dropped"`
	Viewers       int    `json:"viewers"`
	Stats         *Stats `json:"stats,omitempty"`
}

// handleLogin authenticates the session.
func (a *App) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	token, ok := a.session.Authenticate(req.Password)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if token != "" {
		session.SetTokenCookie(w, token)
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// handleLogout revokes the caller's token.
func (a *App) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	a.session.Logout(session.TokenFromRequest(r))
	session.ClearTokenCookie(w)
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// handleState returns the session preference and stream counters.
func (a *App) handleState(w http.ResponseWriter, r *http.Request) {
	if !a.requireAuth(w, r) {
		return
	}
	snap := a.session.Snapshot(session.TokenFromRequest(r))
	total, dropped, viewers := a.stream.Stats()
	resp := stateResponse{
		Authenticated: snap.Authenticated,
		PasswordMode:  snap.PasswordMode,
		ShowMouseMove: snap.ShowMouseMove,
		WindowTitle:   a.cfg.WindowTitle,
		Lines:         total,
		Dropped:       dropped,
		Viewers:       viewers,
	}
	if a.stats != nil {
		stats := a.stats()
		resp.Stats = &stats
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// requireAuth returns false and writes an error if the caller is not logged in.
func (a *App) requireAuth(w http.ResponseWriter, r *http.Request) bool {
	if !a.session.IsAuthenticated(session.TokenFromRequest(r)) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return false
	}
	return true
}

// staticFileServer returns a handler for static assets, preferring disk then embed.
func staticFileServer(staticDir string) http.Handler {
	if staticDir != "" {
		if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
			return http.FileServer(http.Dir(staticDir))
		}
	}

	embedded, err := web.StaticFS()
	if err != nil {
		log.Printf("static assets unavailable: %v", err)
		return http.NotFoundHandler()
	}
	return http.FileServer(http.FS(embedded))
}

// handleFavicon avoids noisy 404s for the default browser request.
func handleFavicon(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
