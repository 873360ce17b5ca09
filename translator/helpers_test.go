package translator

import (
	"testing"
	"time"

	"github.com/lixenwraith/touchport/engine"
	"github.com/lixenwraith/touchport/event"
	"github.com/lixenwraith/touchport/platform"
)

// fakeSurface records side effects and tracks a cursor like a real video context
type fakeSurface struct {
	x, y          int
	overlay       bool
	width, height int
	overlayW      int
	overlayH      int
	warps         int
	rebuilds      int
}

func (s *fakeSurface) Cursor() (int, int)      { return s.x, s.y }
func (s *fakeSurface) WarpMouse(x, y int)      { s.x, s.y = x, y; s.warps++ }
func (s *fakeSurface) OverlayVisible() bool    { return s.overlay }
func (s *fakeSurface) ScreenSize() (int, int)  { return s.width, s.height }
func (s *fakeSurface) OverlaySize() (int, int) { return s.overlayW, s.overlayH }
func (s *fakeSurface) Rebuild()                { s.rebuilds++ }

// fakeHost implements Lifecycle and Notifier
type fakeHost struct {
	suspends, saves, restores, clears int
	messages                          []string
	durations                         []time.Duration
}

func (h *fakeHost) Suspend()      { h.suspends++ }
func (h *fakeHost) SaveState()    { h.saves++ }
func (h *fakeHost) RestoreState() { h.restores++ }
func (h *fakeHost) ClearState()   { h.clears++ }
func (h *fakeHost) Notify(msg string, d time.Duration) {
	h.messages = append(h.messages, msg)
	h.durations = append(h.durations, d)
}

type harness struct {
	tr      *Translator
	surface *fakeSurface
	host    *fakeHost
	queue   *platform.Queue
	clock   *engine.ManualClock
}

func newHarness(t *testing.T, mutate func(*Options)) *harness {
	t.Helper()
	h := &harness{
		surface: &fakeSurface{width: 320, height: 200, overlayW: 640, overlayH: 400},
		host:    &fakeHost{},
		queue:   platform.NewQueue(),
		clock:   engine.NewManualClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
	}
	opts := Options{
		Clock:     h.clock,
		Source:    h.queue,
		Surface:   h.surface,
		Lifecycle: h.host,
		Notifier:  h.host,
	}
	if mutate != nil {
		mutate(&opts)
	}
	h.tr = New(opts)
	return h
}

// feed pushes one raw event and polls once
func (h *harness) feed(raw platform.RawEvent) (event.Event, bool) {
	h.queue.Push(raw)
	return h.tr.Poll()
}

func (h *harness) advance(d time.Duration) {
	h.clock.Advance(d)
}

func expectNone(t *testing.T, ev event.Event, ok bool, context string) {
	t.Helper()
	if ok {
		t.Errorf("%s: expected no event, got %s", context, ev)
	}
}

func expectEvent(t *testing.T, ev event.Event, ok bool, want event.Event, context string) {
	t.Helper()
	if !ok {
		t.Errorf("%s: expected %s, got no event", context, want)
		return
	}
	if ev != want {
		t.Errorf("%s: expected %s, got %s", context, want, ev)
	}
}
