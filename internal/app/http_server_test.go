package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/frudas24/inputreceiver/internal/config"
	"github.com/frudas24/inputreceiver/internal/logstream"
	"github.com/frudas24/inputreceiver/internal/session"
)

// newTestApp returns an App backed by an in-memory stream.
func newTestApp(t *testing.T, sess *session.Session) (*App, *logstream.Stream) {
	t.Helper()
	stream := logstream.NewStream(10)
	stats := func() Stats { return Stats{Received: 3, Suppressed: 1, Emitted: 2} }
	a, err := New(config.Config{WindowTitle: "Input Message Receiver"}, sess, stream, stats, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return a, stream
}

// TestNew_RequiresDependencies verifies constructor validation.
func TestNew_RequiresDependencies(t *testing.T) {
	if _, err := New(config.Config{}, nil, logstream.NewStream(1), nil, nil); err == nil {
		t.Fatalf("expected error for missing session")
	}
	if _, err := New(config.Config{}, session.New("", true), nil, nil, nil); err == nil {
		t.Fatalf("expected error for missing stream")
	}
}

// TestHandleState_Unauthorized verifies /api/state requires authentication.
func TestHandleState_Unauthorized(t *testing.T) {
	a, _ := newTestApp(t, session.New("pw", true))

	req := httptest.NewRequest(http.MethodGet, "/api/state", nil)
	rec := httptest.NewRecorder()
	a.handleState(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

// TestHandleLogin_ThenState verifies login unlocks the state endpoint.
func TestHandleLogin_ThenState(t *testing.T) {
	sess := session.New("pw", false)
	a, stream := newTestApp(t, sess)
	stream.Publish("line")

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"password":"pw"}`))
	rec := httptest.NewRecorder()
	a.handleLogin(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != session.CookieName || cookies[0].Value == "" {
		t.Fatalf("expected login cookie, got %+v", cookies)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/state", nil)
	rec = httptest.NewRecorder()
	a.handleState(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without the cookie, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/state", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	a.handleState(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp stateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Authenticated || !resp.PasswordMode || resp.ShowMouseMove || resp.Lines != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Stats == nil || resp.Stats.Received != 3 || resp.Stats.Emitted != 2 {
		t.Fatalf("unexpected stats: %+v", resp.Stats)
	}
}

// TestHandleLogin_WrongPassword verifies bad credentials are rejected.
func TestHandleLogin_WrongPassword(t *testing.T) {
	a, _ := newTestApp(t, session.New("pw", true))

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"password":"nope"}`))
	rec := httptest.NewRecorder()
	a.handleLogin(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

// TestHandleLogin_MethodNotAllowed verifies only POST is accepted.
func TestHandleLogin_MethodNotAllowed(t *testing.T) {
	a, _ := newTestApp(t, session.New("pw", true))

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	rec := httptest.NewRecorder()
	a.handleLogin(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

// TestHandleLogout verifies logout locks the state endpoint again.
func TestHandleLogout(t *testing.T) {
	sess := session.New("pw", true)
	token, _ := sess.Authenticate("pw")
	other, _ := sess.Authenticate("pw")
	a, _ := newTestApp(t, sess)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	rec := httptest.NewRecorder()
	a.handleLogout(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if sess.IsAuthenticated(token) {
		t.Fatalf("expected token to be revoked")
	}
	if !sess.IsAuthenticated(other) {
		t.Fatalf("expected other viewer to stay logged in")
	}
}

// TestRegisterRoutes_ServesEmbeddedIndex verifies the viewer page falls back to embedded assets.
func TestRegisterRoutes_ServesEmbeddedIndex(t *testing.T) {
	a, _ := newTestApp(t, session.New("", true))
	mux := http.NewServeMux()
	a.RegisterRoutes(mux, t.TempDir()+"/missing")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "/ws/log") {
		t.Fatalf("expected viewer page, got %q", rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/favicon.ico", nil)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
