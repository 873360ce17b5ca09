package bridge

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/touchport/platform"
)

// collector is a Sink that records pushed events
type collector struct {
	mu     sync.Mutex
	events []platform.RawEvent
}

func (c *collector) Push(ev platform.RawEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, ev)
}

func (c *collector) snapshot() []platform.RawEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]platform.RawEvent(nil), c.events...)
}

func (c *collector) waitFor(t *testing.T, n int) []platform.RawEvent {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if evs := c.snapshot(); len(evs) >= n {
			return evs
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("Timed out waiting for %d events, got %d", n, len(c.snapshot()))
	return nil
}

func TestDecode(t *testing.T) {
	tests := []struct {
		data string
		want platform.RawEvent
	}{
		{`{"kind":"mouse_down","x":10,"y":20}`, platform.MouseDown(10, 20)},
		{`{"kind":"second_dragged","x":-5,"y":150}`, platform.MouseSecondDragged(-5, 150)},
		{`{"kind":"swipe","direction":"up","touches":3}`, platform.Swipe(platform.SwipeUp, 3)},
		{`{"kind":"tap","tap":"double","touches":2}`, platform.Tap(platform.TapDouble, 2)},
		{`{"kind":"key","key":10}`, platform.KeyPressed(10)},
		{`{"kind":"joy_axis","axis":1,"position":-200}`, platform.JoystickAxis(1, -200)},
		{`{"kind":"orientation","orientation":3}`, platform.OrientationChanged(3)},
		{`{"kind":"suspended"}`, platform.Signal(platform.RawApplicationSuspended)},
		{`{"kind":"swipe","direction":"sideways","touches":3}`, platform.Swipe(platform.SwipeNone, 3)},
	}

	for _, tt := range tests {
		got, err := Decode([]byte(tt.data))
		if err != nil {
			t.Errorf("Decode(%s) failed: %v", tt.data, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Decode(%s) = %+v, want %+v", tt.data, got, tt.want)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode([]byte(`{"kind":"warp"}`)); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Expected ErrUnknownKind, got %v", err)
	}
	if _, err := Decode([]byte(`{not json`)); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}

func TestEncodeRoundTripsEveryKind(t *testing.T) {
	for name, kind := range kindByName {
		ev := platform.RawEvent{Kind: kind, X: 1, Y: 2, Touches: 2, Direction: platform.SwipeLeft, Tap: platform.TapSingle}
		data, err := Encode(ev)
		if err != nil {
			t.Fatalf("Encode %s: %v", name, err)
		}
		if !strings.Contains(string(data), `"kind":"`+name+`"`) {
			t.Errorf("Encode %s: unexpected wire form %s", name, data)
		}
		back, err := Decode(data)
		if err != nil || back != ev {
			t.Errorf("Round trip %s: got %+v, %v", name, back, err)
		}
	}

	if _, err := Encode(platform.RawEvent{Kind: platform.RawNone}); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Expected ErrUnknownKind for RawNone, got %v", err)
	}
}

func TestServerForwardsEvents(t *testing.T) {
	sink := &collector{}
	s := NewServer("/input", sink)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/input"
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client, err := Dial(ctx, url)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	defer client.Close()

	if err := client.Send(platform.MouseDown(3, 4)); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	// Malformed and unknown frames are skipped without dropping the connection
	if err := client.SendRaw([]byte(`{broken`)); err != nil {
		t.Fatalf("SendRaw failed: %v", err)
	}
	if err := client.SendRaw([]byte(`{"kind":"warp"}`)); err != nil {
		t.Fatalf("SendRaw failed: %v", err)
	}
	if err := client.Send(platform.KeyPressed(10)); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	evs := sink.waitFor(t, 2)
	if evs[0] != platform.MouseDown(3, 4) || evs[1] != platform.KeyPressed(10) {
		t.Errorf("Unexpected events: %+v", evs)
	}

	stats := s.Stats()
	if stats.Received != 2 || stats.Rejected != 2 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.Connections != 1 {
		t.Errorf("Expected 1 open connection, got %d", stats.Connections)
	}
}

func TestServerFeedsQueue(t *testing.T) {
	q := platform.NewQueue()
	s := NewServer("/touch", q)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	client, err := Dial(context.Background(), "ws"+strings.TrimPrefix(srv.URL, "http")+"/touch")
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	defer client.Close()

	client.Send(platform.Swipe(platform.SwipeDown, 2))

	deadline := time.Now().Add(2 * time.Second)
	for q.Len() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	ev, ok := q.Fetch()
	if !ok || ev != platform.Swipe(platform.SwipeDown, 2) {
		t.Errorf("Expected swipe in queue, got %+v (ok=%v)", ev, ok)
	}
}

func TestHealthz(t *testing.T) {
	s := NewServer("/input", &collector{})
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Errorf("Unexpected healthz response: %d %q", rec.Code, rec.Body.String())
	}
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	s := NewServer("/input", &collector{})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx, "127.0.0.1:0") }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected clean shutdown, got %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("ListenAndServe did not return after cancel")
	}
}

func dialTest(t *testing.T, s *Server) *Client {
	t.Helper()
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)

	client, err := Dial(context.Background(), "ws"+strings.TrimPrefix(srv.URL, "http")+"/input")
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func waitConnections(t *testing.T, s *Server, want int64) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if s.Stats().Connections == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("Expected %d connections, got %d", want, s.Stats().Connections)
}

func waitClosed(t *testing.T, c *Client) {
	t.Helper()
	select {
	case <-c.done:
	case <-time.After(2 * time.Second):
		t.Fatal("Client did not notice the closed connection")
	}
}

// An idle client answers server pings and outlives several pong windows
func TestIdleClientStaysConnected(t *testing.T) {
	sink := &collector{}
	s := NewServer("/input", sink)
	s.pongWait = 200 * time.Millisecond
	s.pingPeriod = 50 * time.Millisecond

	client := dialTest(t, s)
	if err := client.Send(platform.MouseDown(1, 1)); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	sink.waitFor(t, 1)

	time.Sleep(3 * s.pongWait)

	if got := s.Stats().Connections; got != 1 {
		t.Fatalf("Expected idle client to stay connected, got %d connections", got)
	}
	if err := client.Send(platform.MouseUp(1, 1)); err != nil {
		t.Fatalf("Send after idle failed: %v", err)
	}
	evs := sink.waitFor(t, 2)
	if evs[1] != platform.MouseUp(1, 1) {
		t.Errorf("Expected mouse up after idle, got %+v", evs[1])
	}
}

func TestSendFailsAfterServerDrop(t *testing.T) {
	s := NewServer("/input", &collector{})
	client := dialTest(t, s)
	waitConnections(t, s, 1)

	s.closeAll()
	waitClosed(t, client)

	if err := client.Send(platform.KeyPressed('a')); err == nil {
		t.Fatal("Expected Send to report the dropped connection")
	} else if errors.Is(err, ErrClientClosed) {
		t.Errorf("Expected connection-lost error, got %v", err)
	}
}

func TestSendAfterClose(t *testing.T) {
	s := NewServer("/input", &collector{})
	client := dialTest(t, s)

	if err := client.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := client.Send(platform.KeyPressed('a')); !errors.Is(err, ErrClientClosed) {
		t.Errorf("Expected ErrClientClosed, got %v", err)
	}
	waitConnections(t, s, 0)
}

func TestUpgradeRefusedAfterShutdown(t *testing.T) {
	s := NewServer("/input", &collector{})
	s.closeAll()

	client := dialTest(t, s)
	waitClosed(t, client)

	if got := s.Stats().Connections; got != 0 {
		t.Errorf("Expected no tracked connections, got %d", got)
	}

	waited := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(waited)
	}()
	select {
	case <-waited:
	case <-time.After(time.Second):
		t.Fatal("Expected no handler left to wait for")
	}
}
