package event

import "strconv"

// KeyCode is the engine key code; printable keys use their ASCII value
type KeyCode int

const (
	KeycodeInvalid KeyCode = 0
	KeycodeReturn  KeyCode = 13
	KeycodeEscape  KeyCode = 27
	KeycodeUp      KeyCode = 273
	KeycodeDown    KeyCode = 274
	KeycodeRight   KeyCode = 275
	KeycodeLeft    KeyCode = 276
)

// ASCII values carried alongside key codes
const (
	ASCIIReturn = 13
	ASCIIEscape = 27
)

// Modifier flags, none are produced by touch input yet
type KeyFlags uint8

const (
	FlagNone  KeyFlags = 0
	FlagShift KeyFlags = 1 << 0
	FlagCtrl  KeyFlags = 1 << 1
	FlagAlt   KeyFlags = 1 << 2
)

func (k KeyCode) String() string {
	switch k {
	case KeycodeInvalid:
		return "Invalid"
	case KeycodeReturn:
		return "Return"
	case KeycodeEscape:
		return "Escape"
	case KeycodeUp:
		return "Up"
	case KeycodeDown:
		return "Down"
	case KeycodeRight:
		return "Right"
	case KeycodeLeft:
		return "Left"
	}
	if k > 32 && k < 127 {
		return string(rune(k))
	}
	return "Key(" + strconv.Itoa(int(k)) + ")"
}
