package event

// Type represents the kind of portable engine event
type Type uint8

const (
	// EventInvalid is the zero value and means "no event"
	// Also marks an empty deferred slot
	EventInvalid Type = iota

	// === Mouse Event ===

	// EventMouseMove reports the cursor position after a drag sample
	// Trigger: primary finger drag | Fields: Mouse
	EventMouseMove

	// EventLButtonDown / EventLButtonUp emulate the left button
	// Trigger: primary tap (synthesized pair), click-and-drag mode down/up | Fields: Mouse
	EventLButtonDown
	EventLButtonUp

	// EventRButtonDown / EventRButtonUp emulate the right button
	// Trigger: secondary tap, one-finger double tap, click-and-drag secondary | Fields: Mouse
	EventRButtonDown
	EventRButtonUp

	// === Keyboard Event ===

	// EventKeyDown / EventKeyUp carry a key press; the up half is always deferred
	// Trigger: key press, three-finger swipe, escape gestures | Fields: Kbd
	EventKeyDown
	EventKeyUp

	// === Joystick Event ===

	// EventJoyAxisMotion reports an axis position | Fields: Joystick.Axis, Joystick.Position
	EventJoyAxisMotion

	// EventJoyButtonDown / EventJoyButtonUp | Fields: Joystick.Button
	EventJoyButtonDown
	EventJoyButtonUp

	// === Engine Event ===

	// EventMainMenu requests the engine main menu
	// Trigger: two-finger swipe down, platform menu button | Fields: none
	EventMainMenu

	// EventInputChanged signals an input device was attached or detached
	// Trigger: platform input-device notification | Fields: none
	EventInputChanged
)

var typeNames = [...]string{
	EventInvalid:       "Invalid",
	EventMouseMove:     "MouseMove",
	EventLButtonDown:   "LButtonDown",
	EventLButtonUp:     "LButtonUp",
	EventRButtonDown:   "RButtonDown",
	EventRButtonUp:     "RButtonUp",
	EventKeyDown:       "KeyDown",
	EventKeyUp:         "KeyUp",
	EventJoyAxisMotion: "JoyAxisMotion",
	EventJoyButtonDown: "JoyButtonDown",
	EventJoyButtonUp:   "JoyButtonUp",
	EventMainMenu:      "MainMenu",
	EventInputChanged:  "InputChanged",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Unknown"
}

// ParseType resolves a name produced by String
func ParseType(name string) (Type, bool) {
	for i, n := range typeNames {
		if n == name {
			return Type(i), true
		}
	}
	return EventInvalid, false
}
