package translator

import (
	"testing"
	"time"

	"github.com/lixenwraith/touchport/event"
	"github.com/lixenwraith/touchport/platform"
)

func TestThreeFingerSwipeArrows(t *testing.T) {
	tests := []struct {
		dir  platform.SwipeDirection
		code event.KeyCode
	}{
		{platform.SwipeUp, event.KeycodeUp},
		{platform.SwipeDown, event.KeycodeDown},
		{platform.SwipeLeft, event.KeycodeLeft},
		{platform.SwipeRight, event.KeycodeRight},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			h := newHarness(t, nil)

			ev, ok := h.feed(platform.Swipe(tt.dir, 3))
			expectEvent(t, ev, ok, event.Key(event.EventKeyDown, tt.code, 0), "swipe")

			h.advance(50 * time.Millisecond)
			ev, ok = h.tr.Poll()
			expectEvent(t, ev, ok, event.Key(event.EventKeyUp, tt.code, 0), "deferred key up")
		})
	}
}

func TestSwipeInvalidCombinations(t *testing.T) {
	tests := []struct {
		name string
		raw  platform.RawEvent
	}{
		{"three fingers no direction", platform.Swipe(platform.SwipeNone, 3)},
		{"one finger", platform.Swipe(platform.SwipeUp, 1)},
		{"four fingers", platform.Swipe(platform.SwipeDown, 4)},
		{"two fingers left", platform.Swipe(platform.SwipeLeft, 2)},
		{"two fingers no direction", platform.Swipe(platform.SwipeNone, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, nil)
			ev, ok := h.feed(tt.raw)
			expectNone(t, ev, ok, tt.name)
			if h.tr.TouchpadMode() || h.tr.ClickAndDragMode() {
				t.Error("Invalid swipe changed modes")
			}
		})
	}
}

func TestTwoFingerDiscreteSwipes(t *testing.T) {
	h := newHarness(t, nil)

	ev, ok := h.feed(platform.Swipe(platform.SwipeRight, 2))
	expectNone(t, ev, ok, "swipe right")
	if !h.tr.TouchpadMode() {
		t.Error("Expected touchpad enabled")
	}

	ev, ok = h.feed(platform.Swipe(platform.SwipeUp, 2))
	expectNone(t, ev, ok, "swipe up")
	if !h.tr.ClickAndDragMode() || h.tr.TouchpadMode() {
		t.Error("Expected click-and-drag on and touchpad off")
	}

	ev, ok = h.feed(platform.Swipe(platform.SwipeDown, 2))
	expectEvent(t, ev, ok, event.Event{Type: event.EventMainMenu}, "swipe down")

	if len(h.host.messages) != 2 {
		t.Errorf("Expected 2 notifications, got %v", h.host.messages)
	}
}

func TestDoubleTaps(t *testing.T) {
	h := newHarness(t, nil)
	h.surface.x, h.surface.y = 3, 4

	ev, ok := h.feed(platform.Tap(platform.TapDouble, 1))
	expectEvent(t, ev, ok, event.Mouse(event.EventRButtonDown, 3, 4), "one finger double tap")
	h.advance(50 * time.Millisecond)
	ev, ok = h.tr.Poll()
	expectEvent(t, ev, ok, event.Mouse(event.EventRButtonUp, 3, 4), "right release")

	ev, ok = h.feed(platform.Tap(platform.TapDouble, 2))
	expectEvent(t, ev, ok, event.Key(event.EventKeyDown, event.KeycodeEscape, event.ASCIIEscape), "two finger double tap")
	h.advance(50 * time.Millisecond)
	ev, ok = h.tr.Poll()
	expectEvent(t, ev, ok, event.Key(event.EventKeyUp, event.KeycodeEscape, event.ASCIIEscape), "escape release")

	for _, raw := range []platform.RawEvent{
		platform.Tap(platform.TapSingle, 1),
		platform.Tap(platform.TapSingle, 2),
		platform.Tap(platform.TapDouble, 3),
		platform.Tap(platform.TapNone, 1),
	} {
		ev, ok = h.feed(raw)
		expectNone(t, ev, ok, raw.Tap.String())
	}
}

func TestKeyPressLineFeedBecomesReturn(t *testing.T) {
	h := newHarness(t, nil)

	ev, ok := h.feed(platform.KeyPressed(10))
	expectEvent(t, ev, ok, event.Key(event.EventKeyDown, event.KeycodeReturn, event.ASCIIReturn), "key down")

	h.advance(50 * time.Millisecond)
	ev, ok = h.tr.Poll()
	expectEvent(t, ev, ok, event.Key(event.EventKeyUp, event.KeycodeReturn, event.ASCIIReturn), "key up")
}

func TestKeyPressPassesThrough(t *testing.T) {
	h := newHarness(t, nil)

	ev, ok := h.feed(platform.KeyPressed('x'))
	expectEvent(t, ev, ok, event.Key(event.EventKeyDown, event.KeyCode('x'), 'x'), "key down")
	if ev.Kbd.Flags != event.FlagNone {
		t.Errorf("Expected no modifier flags, got %v", ev.Kbd.Flags)
	}
}

// Deferred event takes priority over queued raw input
func TestDeferredBeforeRawInput(t *testing.T) {
	h := newHarness(t, nil)

	h.queue.Push(platform.KeyPressed('a'))
	h.queue.Push(platform.KeyPressed('b'))

	ev, ok := h.tr.Poll()
	expectEvent(t, ev, ok, event.Key(event.EventKeyDown, 'a', 'a'), "first poll")

	h.advance(50 * time.Millisecond)
	ev, ok = h.tr.Poll()
	expectEvent(t, ev, ok, event.Key(event.EventKeyUp, 'a', 'a'), "second poll")

	ev, ok = h.tr.Poll()
	expectEvent(t, ev, ok, event.Key(event.EventKeyDown, 'b', 'b'), "third poll")
}

// A new deferred event overwrites the previous one
func TestDeferredLastWriteWins(t *testing.T) {
	h := newHarness(t, nil)

	h.queue.Push(platform.KeyPressed('a'))
	h.queue.Push(platform.KeyPressed('b'))

	h.tr.Poll()
	ev, ok := h.tr.Poll()
	expectEvent(t, ev, ok, event.Key(event.EventKeyDown, 'b', 'b'), "second key")

	h.advance(50 * time.Millisecond)
	ev, ok = h.tr.Poll()
	expectEvent(t, ev, ok, event.Key(event.EventKeyUp, 'b', 'b'), "only surviving release")

	ev, ok = h.tr.Poll()
	expectNone(t, ev, ok, "slot drained")
}

// Slow pollers see deferred events late but never lose them
func TestDeferredDeliveredLate(t *testing.T) {
	h := newHarness(t, nil)

	h.feed(platform.KeyPressed('q'))
	h.advance(5 * time.Second)

	ev, ok := h.tr.Poll()
	expectEvent(t, ev, ok, event.Key(event.EventKeyUp, 'q', 'q'), "late poll")
}

func TestOneEventPerPoll(t *testing.T) {
	h := newHarness(t, nil)

	raws := []platform.RawEvent{
		platform.MouseDown(1, 1),
		platform.MouseDragged(2, 2),
		platform.KeyPressed('z'),
		platform.MouseSecondDown(0, 0),
		platform.MouseSecondDragged(0, 200),
		platform.Tap(platform.TapDouble, 1),
		platform.Swipe(platform.SwipeUp, 3),
		platform.MouseUp(2, 2),
	}
	for _, raw := range raws {
		h.queue.Push(raw)
	}

	// Each poll consumes at most one raw event or one deferred event
	polls := 0
	for h.queue.Len() > 0 {
		before := h.queue.Len()
		_, pendingBefore := h.tr.Pending()
		h.tr.Poll()
		polls++
		consumed := before - h.queue.Len()
		if consumed > 1 {
			t.Fatalf("Poll %d consumed %d raw events", polls, consumed)
		}
		if consumed == 0 && !pendingBefore {
			t.Fatalf("Poll %d made no progress", polls)
		}
		h.advance(10 * time.Millisecond)
	}
}

func TestOrientationChanges(t *testing.T) {
	h := newHarness(t, nil)

	ev, ok := h.feed(platform.OrientationChanged(3))
	expectNone(t, ev, ok, "orientation")
	if h.tr.Orientation() != platform.OrientationLandscape {
		t.Errorf("Expected landscape, got %s", h.tr.Orientation())
	}
	if h.surface.rebuilds != 1 {
		t.Errorf("Expected 1 rebuild, got %d", h.surface.rebuilds)
	}

	h.feed(platform.OrientationChanged(3))
	if h.surface.rebuilds != 1 {
		t.Error("Same orientation must not rebuild")
	}

	h.feed(platform.OrientationChanged(9))
	h.feed(platform.OrientationChanged(0))
	if h.tr.Orientation() != platform.OrientationLandscape || h.surface.rebuilds != 1 {
		t.Error("Unknown orientation codes must be ignored")
	}

	h.feed(platform.OrientationChanged(1))
	if h.tr.Orientation() != platform.OrientationPortrait || h.surface.rebuilds != 2 {
		t.Error("Expected rebuild into portrait")
	}
}

func TestLifecycleDelegation(t *testing.T) {
	h := newHarness(t, nil)

	kinds := []platform.RawKind{
		platform.RawApplicationSuspended,
		platform.RawApplicationResumed,
		platform.RawApplicationSaveState,
		platform.RawApplicationRestoreState,
		platform.RawApplicationClearState,
	}
	for _, k := range kinds {
		ev, ok := h.feed(platform.Signal(k))
		expectNone(t, ev, ok, k.String())
	}

	if h.host.suspends != 1 || h.host.saves != 1 || h.host.restores != 1 || h.host.clears != 1 {
		t.Errorf("Unexpected lifecycle calls: %+v", h.host)
	}
	if h.surface.rebuilds != 1 {
		t.Errorf("Resume must rebuild the surface, got %d rebuilds", h.surface.rebuilds)
	}
}

func TestInputChangedDebounce(t *testing.T) {
	h := newHarness(t, func(o *Options) { o.ClickAndDragMode = true })

	h.feed(platform.KeyPressed('k'))

	ev, ok := h.feed(platform.Signal(platform.RawInputChanged))
	expectEvent(t, ev, ok, event.Event{Type: event.EventInputChanged}, "input changed")
	if _, pending := h.tr.Pending(); pending {
		t.Fatal("Input changed must clear the deferred event")
	}

	// Right press queued for the next poll is held for the debounce window
	ev, ok = h.feed(platform.MouseSecondDown(0, 0))
	expectEvent(t, ev, ok, event.Mouse(event.EventLButtonUp, 0, 0), "secondary down")
	ev, ok = h.tr.Poll()
	expectNone(t, ev, ok, "held by debounce")

	h.advance(50 * time.Millisecond)
	ev, ok = h.tr.Poll()
	expectEvent(t, ev, ok, event.Mouse(event.EventRButtonDown, 0, 0), "after debounce")
}

func TestMainMenuRawEvent(t *testing.T) {
	h := newHarness(t, nil)

	h.feed(platform.KeyPressed('m'))
	ev, ok := h.feed(platform.Signal(platform.RawMainMenu))
	expectEvent(t, ev, ok, event.Event{Type: event.EventMainMenu}, "main menu")
	if _, pending := h.tr.Pending(); pending {
		t.Error("Main menu must clear the deferred event")
	}
}

func TestJoystickEvents(t *testing.T) {
	h := newHarness(t, nil)

	ev, ok := h.feed(platform.JoystickAxis(1, -3000))
	expectEvent(t, ev, ok, event.Event{Type: event.EventJoyAxisMotion, Joystick: event.JoyState{Axis: 1, Position: -3000}}, "axis")

	ev, ok = h.feed(platform.JoystickButtonDown(4))
	expectEvent(t, ev, ok, event.Event{Type: event.EventJoyButtonDown, Joystick: event.JoyState{Button: 4}}, "button down")

	ev, ok = h.feed(platform.JoystickButtonUp(4))
	expectEvent(t, ev, ok, event.Event{Type: event.EventJoyButtonUp, Joystick: event.JoyState{Button: 4}}, "button up")
}

func TestJoystickUpFallthrough(t *testing.T) {
	h := newHarness(t, func(o *Options) { o.JoystickUpFallthrough = true })

	h.feed(platform.KeyPressed('j'))
	ev, ok := h.feed(platform.JoystickButtonUp(4))
	expectEvent(t, ev, ok, event.Event{Type: event.EventInputChanged}, "merged button up")
	if _, pending := h.tr.Pending(); pending {
		t.Error("Merged button up must behave as input changed")
	}
}

func TestUnknownRawKinds(t *testing.T) {
	h := newHarness(t, nil)

	for _, raw := range []platform.RawEvent{{Kind: platform.RawNone}, {Kind: platform.RawKind(250)}} {
		ev, ok := h.feed(raw)
		expectNone(t, ev, ok, raw.Kind.String())
	}
	if h.queue.Len() != 0 {
		t.Error("Unknown raw events must still be consumed")
	}
}

func TestTimerCallback(t *testing.T) {
	h := newHarness(t, nil)
	fired := 0
	h.tr.SetTimer(100*time.Millisecond, func() { fired++ })

	h.advance(99 * time.Millisecond)
	h.tr.Poll()
	if fired != 0 {
		t.Fatal("Timer fired early")
	}

	h.advance(1 * time.Millisecond)
	h.tr.Poll()
	if fired != 1 {
		t.Fatalf("Expected timer to fire once, got %d", fired)
	}

	h.advance(100 * time.Millisecond)
	h.tr.Poll()
	if fired != 2 {
		t.Fatalf("Expected timer to fire twice, got %d", fired)
	}

	h.tr.SetTimer(0, nil)
	h.advance(time.Second)
	h.tr.Poll()
	if fired != 2 {
		t.Error("Cleared timer fired")
	}
}

func TestOptionsDefaults(t *testing.T) {
	tr := New(Options{
		Surface:          &fakeSurface{},
		TouchpadMode:     true,
		ClickAndDragMode: true,
	})

	if tr.TouchpadMode() {
		t.Error("Click-and-drag must win over touchpad at construction")
	}
	if !tr.ClickAndDragMode() {
		t.Error("Expected click-and-drag enabled")
	}

	// No source configured
	if ev, ok := tr.Poll(); ok {
		t.Errorf("Expected no event without a source, got %s", ev)
	}
}

type mapLocalizer map[string]string

func (m mapLocalizer) Message(key string) string { return m[key] }

func TestLocalizedNotification(t *testing.T) {
	h := newHarness(t, func(o *Options) {
		o.Localizer = mapLocalizer{MsgTouchpadEnabled: "Touchpad an"}
		o.NotifyDuration = 2 * time.Second
	})

	h.feed(platform.Swipe(platform.SwipeRight, 2))
	if len(h.host.messages) != 1 || h.host.messages[0] != "Touchpad an" {
		t.Errorf("Expected localized message, got %v", h.host.messages)
	}
	if h.host.durations[0] != 2*time.Second {
		t.Errorf("Expected configured duration, got %v", h.host.durations[0])
	}
}
