package control

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/frudas24/inputreceiver/internal/logstream"
	"github.com/frudas24/inputreceiver/internal/session"
	"github.com/gorilla/websocket"
)

// dialTestServer starts the server over httptest and opens a websocket client.
func dialTestServer(t *testing.T, server *Server) *websocket.Conn {
	t.Helper()
	ts := httptest.NewServer(server)
	t.Cleanup(ts.Close)

	conn, resp, err := dial(ts, http.Header{})
	if err != nil {
		t.Fatalf("dial failed: %v (%v)", err, resp)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// dial opens a websocket to ts with the given request headers.
func dial(ts *httptest.Server, header http.Header) (*websocket.Conn, *http.Response, error) {
	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	return websocket.DefaultDialer.Dial(url, header)
}

// tokenHeader returns request headers carrying a login cookie and an origin.
func tokenHeader(token, origin string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Cookie", (&http.Cookie{Name: session.CookieName, Value: token}).String())
	}
	if origin != "" {
		h.Set("Origin", origin)
	}
	return h
}

// readMessage reads one message with a deadline.
func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	if err := conn.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
		t.Fatalf("set deadline: %v", err)
	}
	var msg Message
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	return msg
}

// TestServeHTTP_Unauthorized verifies the websocket requires a login.
func TestServeHTTP_Unauthorized(t *testing.T) {
	sess := session.New("pw", true)
	server := NewServer(sess, logstream.NewStream(10), nil)

	req := httptest.NewRequest(http.MethodGet, "/ws/log", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

// TestServeHTTP_OtherClientStaysLocked verifies one viewer's login does not open the stream to others.
func TestServeHTTP_OtherClientStaysLocked(t *testing.T) {
	sess := session.New("secret", true)
	stream := logstream.NewStream(10)
	stream.Publish("[00:00:00.000] Keyboard Down : P (0x50)")
	ts := httptest.NewServer(NewServer(sess, stream, nil))
	t.Cleanup(ts.Close)

	token, ok := sess.Authenticate("secret")
	if !ok {
		t.Fatalf("expected login to succeed")
	}

	for name, header := range map[string]http.Header{
		"foreign origin without token": tokenHeader("", "http://evil.example"),
		"same origin without token":    tokenHeader("", ts.URL),
		"unknown token":                tokenHeader("forged", ts.URL),
	} {
		conn, resp, err := dial(ts, header)
		if err == nil {
			_ = conn.Close()
			t.Fatalf("%s: expected dial to be rejected", name)
		}
		if resp == nil || resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %v", name, resp)
		}
	}

	conn, resp, err := dial(ts, tokenHeader(token, ts.URL))
	if err != nil {
		t.Fatalf("expected logged-in client to connect: %v (%v)", err, resp)
	}
	defer conn.Close()
	readMessage(t, conn)
	if line := readMessage(t, conn); line.Text != "[00:00:00.000] Keyboard Down : P (0x50)" {
		t.Fatalf("unexpected backlog %+v", line)
	}
}

// TestServeHTTP_RejectsForeignOrigin verifies a page on another origin cannot reuse a viewer's cookie.
func TestServeHTTP_RejectsForeignOrigin(t *testing.T) {
	sess := session.New("secret", true)
	ts := httptest.NewServer(NewServer(sess, logstream.NewStream(10), nil))
	t.Cleanup(ts.Close)
	token, _ := sess.Authenticate("secret")

	conn, resp, err := dial(ts, tokenHeader(token, "http://evil.example"))
	if err == nil {
		_ = conn.Close()
		t.Fatalf("expected cross-origin upgrade to be rejected")
	}
	if resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", resp)
	}
}

// TestServeHTTP_ReplaysBacklogThenStreams verifies the preference, backlog, and live lines arrive in order.
func TestServeHTTP_ReplaysBacklogThenStreams(t *testing.T) {
	sess := session.New("", false)
	stream := logstream.NewStream(10)
	stream.Publish("[00:00:00.000] Keyboard Down : A (0x41)")
	stream.Publish("[00:00:00.001] Keyboard Up   : A (0x41)")

	conn := dialTestServer(t, NewServer(sess, stream, nil))

	pref := readMessage(t, conn)
	if pref.T != TypePref || pref.ShowMouseMove == nil || *pref.ShowMouseMove {
		t.Fatalf("unexpected pref message %+v", pref)
	}
	first := readMessage(t, conn)
	second := readMessage(t, conn)
	if first.Text != "[00:00:00.000] Keyboard Down : A (0x41)" || second.Text != "[00:00:00.001] Keyboard Up   : A (0x41)" {
		t.Fatalf("unexpected backlog %+v %+v", first, second)
	}

	stream.Publish("[00:00:00.002] Mouse Wheel   : 120")
	live := readMessage(t, conn)
	if live.T != TypeLine || live.Text != "[00:00:00.002] Mouse Wheel   : 120" {
		t.Fatalf("unexpected live message %+v", live)
	}
}

// TestServeHTTP_ShowMouseMove verifies viewers can flip the preference.
func TestServeHTTP_ShowMouseMove(t *testing.T) {
	sess := session.New("", true)
	changed := make(chan bool, 1)
	conn := dialTestServer(t, NewServer(sess, logstream.NewStream(0), func(show bool) { changed <- show }))

	readMessage(t, conn)
	off := false
	if err := conn.WriteJSON(Message{T: TypeShowMouseMove, Enabled: &off}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	reply := readMessage(t, conn)
	if reply.T != TypePref || reply.ShowMouseMove == nil || *reply.ShowMouseMove {
		t.Fatalf("unexpected reply %+v", reply)
	}
	select {
	case show := <-changed:
		if show {
			t.Fatalf("expected listener to receive false")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("expected listener call")
	}
	if sess.ShowMouseMove() {
		t.Fatalf("expected session preference to be off")
	}
}

// TestHandleMessage_IgnoresUnknown verifies unknown and incomplete messages are ignored.
func TestHandleMessage_IgnoresUnknown(t *testing.T) {
	server := NewServer(session.New("", true), logstream.NewStream(0), nil)
	if _, ok := server.handleMessage(Message{T: "clear"}); ok {
		t.Fatalf("expected unknown message to be ignored")
	}
	if _, ok := server.handleMessage(Message{T: TypeShowMouseMove}); ok {
		t.Fatalf("expected message without enabled to be ignored")
	}
}
