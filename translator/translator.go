// Package translator turns raw platform touch, gesture and lifecycle notifications
// into portable engine events, one per Poll
package translator

import (
	"time"

	"github.com/kataras/golog"

	"github.com/lixenwraith/touchport/engine"
	"github.com/lixenwraith/touchport/event"
	"github.com/lixenwraith/touchport/parameter"
	"github.com/lixenwraith/touchport/platform"
)

var logger = golog.Child("[translator]")

// Options wires a Translator to its collaborators
// Surface and Source are required, the rest fall back to no-op or built-in defaults
type Options struct {
	Clock     engine.Clock
	Source    platform.Source
	Surface   Surface
	Lifecycle Lifecycle
	Notifier  Notifier
	Localizer Localizer

	// NotifyDuration defaults to parameter.NotificationDuration
	NotifyDuration time.Duration

	// Initial mode flags; click-and-drag wins over touchpad
	TouchpadMode     bool
	ClickAndDragMode bool

	// JoystickUpFallthrough reports joystick button-up as input-changed,
	// reproducing the merged case of older platform bridges
	JoystickUpFallthrough bool
}

// Translator is the single consumer of the raw event stream
// Poll must be called from one goroutine (the engine main loop)
type Translator struct {
	clock     engine.Clock
	source    platform.Source
	surface   Surface
	lifecycle Lifecycle
	notifier  Notifier
	localizer Localizer

	notifyDuration        time.Duration
	joystickUpFallthrough bool

	timer engine.IntervalTimer
	state State
}

// New creates a translator from opts
func New(opts Options) *Translator {
	t := &Translator{
		clock:                 opts.Clock,
		source:                opts.Source,
		surface:               opts.Surface,
		lifecycle:             opts.Lifecycle,
		notifier:              opts.Notifier,
		localizer:             opts.Localizer,
		notifyDuration:        opts.NotifyDuration,
		joystickUpFallthrough: opts.JoystickUpFallthrough,
	}
	if t.clock == nil {
		t.clock = engine.NewMonotonicClock()
	}
	if t.lifecycle == nil {
		t.lifecycle = nopLifecycle{}
	}
	if t.notifier == nil {
		t.notifier = nopNotifier{}
	}
	if t.localizer == nil {
		t.localizer = builtinLocalizer{}
	}
	if t.notifyDuration <= 0 {
		t.notifyDuration = parameter.NotificationDuration
	}

	t.state.touchpadMode = opts.TouchpadMode && !opts.ClickAndDragMode
	t.state.clickAndDragMode = opts.ClickAndDragMode
	return t
}

// SetTimer registers a callback fired from Poll every interval
// Passing a nil callback clears it
func (t *Translator) SetTimer(interval time.Duration, callback func()) {
	t.timer.Set(t.clock.Now(), interval, callback)
}

// Poll returns at most one portable event and never blocks
func (t *Translator) Poll() (event.Event, bool) {
	now := t.clock.Now()

	t.timer.Tick(now)

	// Deferred events win over new input so a synthesized up is never starved
	if ev, ok := t.state.takeDue(now); ok {
		return ev, true
	}

	if t.source == nil {
		return event.Event{}, false
	}
	raw, ok := t.source.Fetch()
	if !ok {
		return event.Event{}, false
	}

	return t.translate(raw, now)
}

// translate dispatches one raw event; the raw event is consumed even when nothing is produced
func (t *Translator) translate(raw platform.RawEvent, now time.Time) (event.Event, bool) {
	switch raw.Kind {
	case platform.RawMouseDown:
		return t.mouseDown(raw.X, raw.Y, now)
	case platform.RawMouseUp:
		return t.mouseUp(now)
	case platform.RawMouseDragged:
		return t.mouseDragged(raw.X, raw.Y)

	case platform.RawMouseSecondDown:
		t.state.secondaryActive = true
		return t.secondDown(raw.X, raw.Y, now)
	case platform.RawMouseSecondUp:
		t.state.secondaryActive = false
		return t.secondUp(now)
	case platform.RawMouseSecondDragged:
		return t.secondDragged(raw.X, raw.Y, now)

	case platform.RawSwipe:
		return t.swipe(raw.Direction, raw.Touches, now)
	case platform.RawTap:
		return t.tap(raw.Tap, raw.Touches, now)

	case platform.RawKeyPressed:
		return t.keyPressed(raw.Key, now)

	case platform.RawMainMenu:
		return t.mainMenu(now)

	case platform.RawJoystickAxis:
		return event.Event{
			Type:     event.EventJoyAxisMotion,
			Joystick: event.JoyState{Axis: raw.Axis, Position: raw.Position},
		}, true
	case platform.RawJoystickButtonDown:
		return event.Event{
			Type:     event.EventJoyButtonDown,
			Joystick: event.JoyState{Button: raw.Button},
		}, true
	case platform.RawJoystickButtonUp:
		if t.joystickUpFallthrough {
			return t.inputChanged(now)
		}
		return event.Event{
			Type:     event.EventJoyButtonUp,
			Joystick: event.JoyState{Button: raw.Button},
		}, true

	case platform.RawOrientationChanged:
		t.orientationChanged(raw.Orientation)
		return event.Event{}, false

	case platform.RawApplicationSuspended:
		logger.Debug("application suspended")
		t.lifecycle.Suspend()
		return event.Event{}, false
	case platform.RawApplicationResumed:
		logger.Debug("application resumed")
		t.surface.Rebuild()
		return event.Event{}, false
	case platform.RawApplicationSaveState:
		t.lifecycle.SaveState()
		return event.Event{}, false
	case platform.RawApplicationRestoreState:
		t.lifecycle.RestoreState()
		return event.Event{}, false
	case platform.RawApplicationClearState:
		t.lifecycle.ClearState()
		return event.Event{}, false

	case platform.RawInputChanged:
		return t.inputChanged(now)

	case platform.RawNone:
		return event.Event{}, false
	}

	logger.Debugf("unhandled raw event kind %d", raw.Kind)
	return event.Event{}, false
}

// cursorEvent builds a mouse-family event at the current cursor
func (t *Translator) cursorEvent(ty event.Type) event.Event {
	x, y := t.surface.Cursor()
	return event.Mouse(ty, x, y)
}

// keyPair emits key-down now and defers the matching key-up
func (t *Translator) keyPair(code event.KeyCode, ascii int, now time.Time) (event.Event, bool) {
	t.state.enqueue(event.Key(event.EventKeyUp, code, ascii), now.Add(parameter.QueuedEventDelay))
	return event.Key(event.EventKeyDown, code, ascii), true
}

// mouseClick emits button-down at the cursor now and defers the button-up
func (t *Translator) mouseClick(down, up event.Type, now time.Time) (event.Event, bool) {
	t.state.enqueue(t.cursorEvent(up), now.Add(parameter.QueuedEventDelay))
	return t.cursorEvent(down), true
}

func (t *Translator) mainMenu(now time.Time) (event.Event, bool) {
	t.state.armDebounce(now.Add(parameter.QueuedEventDelay))
	return event.Event{Type: event.EventMainMenu}, true
}

func (t *Translator) inputChanged(now time.Time) (event.Event, bool) {
	t.state.armDebounce(now.Add(parameter.QueuedEventDelay))
	return event.Event{Type: event.EventInputChanged}, true
}
