package event

import "fmt"

// Point is a cursor position in surface coordinates
type Point struct {
	X, Y int
}

// KeyState is the keyboard payload
type KeyState struct {
	Keycode KeyCode
	ASCII   int
	Flags   KeyFlags
}

// JoyState is the joystick payload
type JoyState struct {
	Axis     int
	Position int
	Button   int
}

// Event is one portable engine event
// Only the payload matching Type is meaningful
type Event struct {
	Type     Type
	Mouse    Point
	Kbd      KeyState
	Joystick JoyState
}

// Valid reports whether the event carries a type
func (e Event) Valid() bool {
	return e.Type != EventInvalid
}

// Mouse builds a mouse-family event at (x, y)
func Mouse(t Type, x, y int) Event {
	return Event{Type: t, Mouse: Point{X: x, Y: y}}
}

// Key builds a keyboard-family event with no modifier flags
func Key(t Type, code KeyCode, ascii int) Event {
	return Event{Type: t, Kbd: KeyState{Keycode: code, ASCII: ascii}}
}

func (e Event) String() string {
	switch e.Type {
	case EventMouseMove, EventLButtonDown, EventLButtonUp, EventRButtonDown, EventRButtonUp:
		return fmt.Sprintf("%s(%d,%d)", e.Type, e.Mouse.X, e.Mouse.Y)
	case EventKeyDown, EventKeyUp:
		return fmt.Sprintf("%s(%s ascii=%d)", e.Type, e.Kbd.Keycode, e.Kbd.ASCII)
	case EventJoyAxisMotion:
		return fmt.Sprintf("%s(axis=%d pos=%d)", e.Type, e.Joystick.Axis, e.Joystick.Position)
	case EventJoyButtonDown, EventJoyButtonUp:
		return fmt.Sprintf("%s(button=%d)", e.Type, e.Joystick.Button)
	default:
		return e.Type.String()
	}
}
