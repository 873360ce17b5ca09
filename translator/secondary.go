package translator

import (
	"time"

	"github.com/lixenwraith/touchport/event"
	"github.com/lixenwraith/touchport/parameter"
)

// secondDown anchors a two-finger gesture
// In click-and-drag mode it ends the left drag and queues a right press for the next poll
func (t *Translator) secondDown(x, y int, now time.Time) (event.Event, bool) {
	t.state.lastSecondaryDown = now
	t.state.gestureStart = &event.Point{X: x, Y: y}

	if !t.state.clickAndDragMode {
		return event.Event{}, false
	}

	t.state.enqueue(t.cursorEvent(event.EventRButtonDown), now)
	return t.cursorEvent(event.EventLButtonUp), true
}

// secondUp resolves right-click emulation and the double-tap escape gesture
func (t *Translator) secondUp(now time.Time) (event.Event, bool) {
	var ev event.Event
	produced := false

	if now.Sub(t.state.lastSecondaryDown) < parameter.SecondaryTapWindow {
		switch {
		case now.Sub(t.state.lastSecondaryTap) < parameter.SecondaryTapWindow && !t.surface.OverlayVisible():
			ev, produced = t.keyPair(event.KeycodeEscape, event.ASCIIEscape, now)
			// Third rapid tap must not retrigger
			t.state.lastSecondaryTap = time.Time{}
		case !t.state.clickAndDragMode:
			ev, produced = t.mouseClick(event.EventRButtonDown, event.EventRButtonUp, now)
			t.state.lastSecondaryTap = now
		default:
			return event.Event{}, false
		}
	}

	// Ending the right drag takes priority over whatever the tap decided
	if t.state.clickAndDragMode {
		x, y := t.surface.Cursor()
		ev.Type = event.EventRButtonUp
		ev.Mouse = event.Point{X: x, Y: y}
		produced = true
	}

	return ev, produced
}

// secondDragged classifies a two-finger drag once it is long enough
// Exactly one classification per anchor; diagonal gestures are discarded
func (t *Translator) secondDragged(x, y int, now time.Time) (event.Event, bool) {
	start := t.state.gestureStart
	if start == nil {
		return event.Event{}, false
	}

	vecX := x - start.X
	vecY := y - start.Y
	absX := abs(vecX)
	absY := abs(vecY)

	if absX < parameter.SwipeNeededLength && absY < parameter.SwipeNeededLength {
		return event.Event{}, false
	}
	t.state.gestureStart = nil

	switch {
	case absX < parameter.SwipeMaxDeviation && vecY >= parameter.SwipeNeededLength:
		return t.mainMenu(now)
	case absX < parameter.SwipeMaxDeviation && -vecY >= parameter.SwipeNeededLength:
		t.toggleClickAndDrag()
	case absY < parameter.SwipeMaxDeviation && vecX >= parameter.SwipeNeededLength:
		t.toggleTouchpad()
	case absY < parameter.SwipeMaxDeviation && -vecX >= parameter.SwipeNeededLength:
		// Swipe left is reserved
	default:
		logger.Debugf("discarded diagonal gesture (%d,%d)", vecX, vecY)
	}
	return event.Event{}, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
