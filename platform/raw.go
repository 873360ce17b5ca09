// Package platform models the raw input stream delivered by the mobile UI layer
// and the thread-safe handoff the translator fetches it from
package platform

// RawKind discriminates raw platform notifications
type RawKind uint8

const (
	RawNone RawKind = iota

	// Primary finger, mouse-equivalent
	RawMouseDown
	RawMouseUp
	RawMouseDragged

	// Secondary finger, right-click emulation and swipe gestures
	RawMouseSecondDown
	RawMouseSecondUp
	RawMouseSecondDragged

	// Platform-recognized gestures
	RawSwipe
	RawTap

	RawKeyPressed
	RawMainMenu

	RawJoystickAxis
	RawJoystickButtonDown
	RawJoystickButtonUp

	RawOrientationChanged

	// Application lifecycle
	RawApplicationSuspended
	RawApplicationResumed
	RawApplicationSaveState
	RawApplicationRestoreState
	RawApplicationClearState

	RawInputChanged
)

var rawKindNames = [...]string{
	RawNone:                    "None",
	RawMouseDown:               "MouseDown",
	RawMouseUp:                 "MouseUp",
	RawMouseDragged:            "MouseDragged",
	RawMouseSecondDown:         "MouseSecondDown",
	RawMouseSecondUp:           "MouseSecondUp",
	RawMouseSecondDragged:      "MouseSecondDragged",
	RawSwipe:                   "Swipe",
	RawTap:                     "Tap",
	RawKeyPressed:              "KeyPressed",
	RawMainMenu:                "MainMenu",
	RawJoystickAxis:            "JoystickAxis",
	RawJoystickButtonDown:      "JoystickButtonDown",
	RawJoystickButtonUp:        "JoystickButtonUp",
	RawOrientationChanged:      "OrientationChanged",
	RawApplicationSuspended:    "ApplicationSuspended",
	RawApplicationResumed:      "ApplicationResumed",
	RawApplicationSaveState:    "ApplicationSaveState",
	RawApplicationRestoreState: "ApplicationRestoreState",
	RawApplicationClearState:   "ApplicationClearState",
	RawInputChanged:            "InputChanged",
}

func (k RawKind) String() string {
	if int(k) < len(rawKindNames) {
		return rawKindNames[k]
	}
	return "Unknown"
}

// SwipeDirection is the direction reported with RawSwipe
type SwipeDirection uint8

const (
	SwipeNone SwipeDirection = iota
	SwipeRight
	SwipeLeft
	SwipeUp
	SwipeDown
)

func (d SwipeDirection) String() string {
	switch d {
	case SwipeRight:
		return "Right"
	case SwipeLeft:
		return "Left"
	case SwipeUp:
		return "Up"
	case SwipeDown:
		return "Down"
	default:
		return "None"
	}
}

// TapKind is the tap description reported with RawTap
type TapKind uint8

const (
	TapNone TapKind = iota
	TapSingle
	TapDouble
)

func (t TapKind) String() string {
	switch t {
	case TapSingle:
		return "Single"
	case TapDouble:
		return "Double"
	default:
		return "None"
	}
}

// RawEvent is one platform notification
// Fields are meaningful only for the kinds noted
type RawEvent struct {
	Kind RawKind

	// Mouse kinds
	X, Y int

	// RawSwipe, RawTap
	Direction SwipeDirection
	Tap       TapKind
	Touches   int

	// RawKeyPressed, platform code (10 = line feed)
	Key int

	// RawJoystickAxis, RawJoystickButtonDown/Up
	Axis     int
	Position int
	Button   int

	// RawOrientationChanged, platform code 1-4
	Orientation int
}

func MouseDown(x, y int) RawEvent          { return RawEvent{Kind: RawMouseDown, X: x, Y: y} }
func MouseUp(x, y int) RawEvent            { return RawEvent{Kind: RawMouseUp, X: x, Y: y} }
func MouseDragged(x, y int) RawEvent       { return RawEvent{Kind: RawMouseDragged, X: x, Y: y} }
func MouseSecondDown(x, y int) RawEvent    { return RawEvent{Kind: RawMouseSecondDown, X: x, Y: y} }
func MouseSecondUp(x, y int) RawEvent      { return RawEvent{Kind: RawMouseSecondUp, X: x, Y: y} }
func MouseSecondDragged(x, y int) RawEvent { return RawEvent{Kind: RawMouseSecondDragged, X: x, Y: y} }

func Swipe(dir SwipeDirection, touches int) RawEvent {
	return RawEvent{Kind: RawSwipe, Direction: dir, Touches: touches}
}

func Tap(tap TapKind, touches int) RawEvent {
	return RawEvent{Kind: RawTap, Tap: tap, Touches: touches}
}

func KeyPressed(key int) RawEvent { return RawEvent{Kind: RawKeyPressed, Key: key} }

func JoystickAxis(axis, position int) RawEvent {
	return RawEvent{Kind: RawJoystickAxis, Axis: axis, Position: position}
}

func JoystickButtonDown(button int) RawEvent {
	return RawEvent{Kind: RawJoystickButtonDown, Button: button}
}

func JoystickButtonUp(button int) RawEvent {
	return RawEvent{Kind: RawJoystickButtonUp, Button: button}
}

func OrientationChanged(code int) RawEvent {
	return RawEvent{Kind: RawOrientationChanged, Orientation: code}
}

// Signal builds a payload-free event (lifecycle, main menu, input changed)
func Signal(kind RawKind) RawEvent { return RawEvent{Kind: kind} }
