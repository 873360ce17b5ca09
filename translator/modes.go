package translator

import "github.com/lixenwraith/touchport/platform"

// TouchpadMode reports whether drags move the cursor relatively
func (t *Translator) TouchpadMode() bool { return t.state.touchpadMode }

// ClickAndDragMode reports whether finger down/up map straight to button down/up
func (t *Translator) ClickAndDragMode() bool { return t.state.clickAndDragMode }

// Orientation returns the last applied screen orientation
func (t *Translator) Orientation() platform.Orientation { return t.state.orientation }

// SetTouchpadMode sets touchpad mode without a notification
func (t *Translator) SetTouchpadMode(enabled bool) {
	t.state.touchpadMode = enabled
}

// SetClickAndDragMode sets click-and-drag mode without a notification
// Enabling it disables touchpad mode
func (t *Translator) SetClickAndDragMode(enabled bool) {
	t.state.clickAndDragMode = enabled
	if enabled {
		t.state.touchpadMode = false
	}
}

// Pending returns the deferred event slot without consuming it
func (t *Translator) Pending() (Pending, bool) {
	return t.state.peek()
}

func (t *Translator) toggleClickAndDrag() {
	t.SetClickAndDragMode(!t.state.clickAndDragMode)
	if t.state.clickAndDragMode {
		t.notify(MsgClickDragEnabled)
	} else {
		t.notify(MsgClickDragDisabled)
	}
}

func (t *Translator) toggleTouchpad() {
	t.SetTouchpadMode(!t.state.touchpadMode)
	if t.state.touchpadMode {
		t.notify(MsgTouchpadEnabled)
	} else {
		t.notify(MsgTouchpadDisabled)
	}
}

func (t *Translator) notify(key string) {
	logger.Debugf("mode change: %s", key)
	t.notifier.Notify(t.localizer.Message(key), t.notifyDuration)
}

// orientationChanged rebuilds the surface when a known orientation differs from the current one
func (t *Translator) orientationChanged(code int) {
	o, ok := platform.ParseOrientation(code)
	if !ok {
		logger.Debugf("ignored orientation code %d", code)
		return
	}
	if o == t.state.orientation {
		return
	}
	logger.Debugf("orientation %s -> %s", t.state.orientation, o)
	t.state.orientation = o
	t.surface.Rebuild()
}
