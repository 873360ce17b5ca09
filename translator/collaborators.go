package translator

import "time"

// Surface is the display side the translator reads cursor state from and drives
type Surface interface {
	// Cursor returns the current cursor position
	Cursor() (x, y int)
	// WarpMouse moves the cursor without generating input
	WarpMouse(x, y int)
	// OverlayVisible reports whether the GUI overlay is showing
	OverlayVisible() bool
	ScreenSize() (w, h int)
	OverlaySize() (w, h int)
	// Rebuild recreates the output surface, dirties the full screen (and overlay when visible) and redraws
	Rebuild()
}

// Lifecycle receives application lifecycle notifications
type Lifecycle interface {
	Suspend()
	SaveState()
	RestoreState()
	ClearState()
}

// Notifier shows a transient on-screen message
type Notifier interface {
	Notify(msg string, d time.Duration)
}

// Localizer resolves notification text by message key
type Localizer interface {
	Message(key string) string
}

// Message keys for mode toggle notifications
const (
	MsgClickDragEnabled  = "click_drag_enabled"
	MsgClickDragDisabled = "click_drag_disabled"
	MsgTouchpadEnabled   = "touchpad_enabled"
	MsgTouchpadDisabled  = "touchpad_disabled"
)

var defaultMessages = map[string]string{
	MsgClickDragEnabled:  "Mouse-click-and-drag mode enabled.",
	MsgClickDragDisabled: "Mouse-click-and-drag mode disabled.",
	MsgTouchpadEnabled:   "Touchpad mode enabled.",
	MsgTouchpadDisabled:  "Touchpad mode disabled.",
}

// DefaultMessages returns a copy of the built-in English notification text
func DefaultMessages() map[string]string {
	m := make(map[string]string, len(defaultMessages))
	for k, v := range defaultMessages {
		m[k] = v
	}
	return m
}

type builtinLocalizer struct{}

func (builtinLocalizer) Message(key string) string {
	if msg, ok := defaultMessages[key]; ok {
		return msg
	}
	return key
}

type nopLifecycle struct{}

func (nopLifecycle) Suspend()      {}
func (nopLifecycle) SaveState()    {}
func (nopLifecycle) RestoreState() {}
func (nopLifecycle) ClearState()   {}

type nopNotifier struct{}

func (nopNotifier) Notify(string, time.Duration) {}
