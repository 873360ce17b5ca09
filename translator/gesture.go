package translator

import (
	"time"

	"github.com/lixenwraith/touchport/event"
	"github.com/lixenwraith/touchport/platform"
)

// swipe handles platform-recognized swipes
// Three fingers map to arrow keys, two fingers to mode toggles and the main menu
func (t *Translator) swipe(dir platform.SwipeDirection, touches int, now time.Time) (event.Event, bool) {
	switch touches {
	case 3:
		var code event.KeyCode
		switch dir {
		case platform.SwipeUp:
			code = event.KeycodeUp
		case platform.SwipeDown:
			code = event.KeycodeDown
		case platform.SwipeLeft:
			code = event.KeycodeLeft
		case platform.SwipeRight:
			code = event.KeycodeRight
		default:
			return event.Event{}, false
		}
		return t.keyPair(code, 0, now)

	case 2:
		switch dir {
		case platform.SwipeUp:
			t.toggleClickAndDrag()
		case platform.SwipeDown:
			return t.mainMenu(now)
		case platform.SwipeRight:
			t.toggleTouchpad()
		}
	}
	return event.Event{}, false
}

// tap handles platform-recognized taps; only double taps produce events
func (t *Translator) tap(kind platform.TapKind, touches int, now time.Time) (event.Event, bool) {
	if kind != platform.TapDouble {
		return event.Event{}, false
	}

	switch touches {
	case 1:
		return t.mouseClick(event.EventRButtonDown, event.EventRButtonUp, now)
	case 2:
		return t.keyPair(event.KeycodeEscape, event.ASCIIEscape, now)
	}
	return event.Event{}, false
}

// keyPressed normalizes line feed to Return and emits a down/up pair
func (t *Translator) keyPressed(key int, now time.Time) (event.Event, bool) {
	code := event.KeyCode(key)
	ascii := key
	if key == '\n' {
		code = event.KeycodeReturn
		ascii = event.ASCIIReturn
	}
	return t.keyPair(code, ascii, now)
}
