package translator

import (
	"time"

	"github.com/lixenwraith/touchport/event"
	"github.com/lixenwraith/touchport/parameter"
)

// mouseDown handles the primary finger touching down
// Outside click-and-drag mode nothing is emitted; the click is synthesized on release
func (t *Translator) mouseDown(x, y int, now time.Time) (event.Event, bool) {
	// Secondary release is not reliably delivered by the platform
	t.state.secondaryActive = false

	if t.state.touchpadMode {
		t.state.lastPad = event.Point{X: x, Y: y}
	} else {
		t.surface.WarpMouse(x, y)
	}

	if t.state.clickAndDragMode {
		return t.cursorEvent(event.EventLButtonDown), true
	}

	t.state.lastMouseDown = now
	return event.Event{}, false
}

// mouseUp handles the primary finger lifting
func (t *Translator) mouseUp(now time.Time) (event.Event, bool) {
	if t.state.secondaryActive {
		t.state.secondaryActive = false
		return t.secondUp(now)
	}

	if t.state.clickAndDragMode {
		return t.cursorEvent(event.EventLButtonUp), true
	}

	// Short touch collapses into a full click; longer ones were drags already reported as moves
	if now.Sub(t.state.lastMouseDown) < parameter.TapWindow {
		return t.mouseClick(event.EventLButtonDown, event.EventLButtonUp, now)
	}
	return event.Event{}, false
}

// mouseDragged moves the cursor, absolutely or as a scaled delta in touchpad mode
func (t *Translator) mouseDragged(x, y int) (event.Event, bool) {
	sample := event.Point{X: x, Y: y}
	if t.state.dragValid && t.state.lastDrag == sample {
		return event.Event{}, false
	}
	t.state.lastDrag = sample
	t.state.dragValid = true

	newX, newY := x, y
	if t.state.touchpadMode {
		deltaX := t.state.lastPad.X - x
		deltaY := t.state.lastPad.Y - y
		t.state.lastPad = sample

		cx, cy := t.surface.Cursor()
		newX = int(float64(cx) - float64(deltaX)/parameter.TouchpadScale)
		newY = int(float64(cy) - float64(deltaY)/parameter.TouchpadScale)

		var widthCap, heightCap int
		if t.surface.OverlayVisible() {
			widthCap, heightCap = t.surface.OverlaySize()
		} else {
			widthCap, heightCap = t.surface.ScreenSize()
		}
		newX = clamp(newX, 0, widthCap)
		newY = clamp(newY, 0, heightCap)
	}

	t.surface.WarpMouse(newX, newY)
	return event.Mouse(event.EventMouseMove, newX, newY), true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
