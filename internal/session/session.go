// Package session holds runtime state shared by the host window and viewers.
package session

import (
	"crypto/rand"
	"crypto/subtle"
	"net/http"
	"sync"
)

// CookieName is the cookie carrying a viewer's login token.
const CookieName = "inputreceiver_session"

// Snapshot represents a read-only view of the current session state.
type Snapshot struct {
	Authenticated bool
	ShowMouseMove bool
	PasswordMode  bool
}

// Session holds viewer login tokens and the mouse-move display preference.
type Session struct {
	mu            sync.RWMutex
	password      string
	tokens        map[string]struct{}
	showMouseMove bool
}

// New returns a session. An empty password disables viewer authentication.
func New(password string, showMouseMove bool) *Session {
	return &Session{
		password:      password,
		tokens:        make(map[string]struct{}),
		showMouseMove: showMouseMove,
	}
}

// Authenticate validates the password and returns a new token for that client.
// Without a password every client is accepted and the token is empty.
func (s *Session) Authenticate(pass string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.password == "" {
		return "", true
	}
	if pass == "" || subtle.ConstantTimeCompare([]byte(pass), []byte(s.password)) != 1 {
		return "", false
	}
	token := rand.Text()
	s.tokens[token] = struct{}{}
	return token, true
}

// Logout revokes a token.
func (s *Session) Logout(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
}

// IsAuthenticated reports whether token belongs to a logged-in client.
func (s *Session) IsAuthenticated(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticatedLocked(token)
}

// authenticatedLocked checks a token; the caller holds mu.
func (s *Session) authenticatedLocked(token string) bool {
	if s.password == "" {
		return true
	}
	if token == "" {
		return false
	}
	_, ok := s.tokens[token]
	return ok
}

// SetShowMouseMove toggles whether mouse-move lines are shown.
func (s *Session) SetShowMouseMove(show bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showMouseMove = show
}

// ShowMouseMove reports whether mouse-move lines are shown.
func (s *Session) ShowMouseMove() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.showMouseMove
}

// Snapshot returns a copy of the current session state as seen by token.
func (s *Session) Snapshot(token string) Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Authenticated: s.authenticatedLocked(token),
		ShowMouseMove: s.showMouseMove,
		PasswordMode:  s.password != "",
	}
}

// TokenFromRequest returns the login token cookie of r, or "".
func TokenFromRequest(r *http.Request) string {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

// SetTokenCookie stores token on the client.
func SetTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearTokenCookie removes the token cookie from the client.
func ClearTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
