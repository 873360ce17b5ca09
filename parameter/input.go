package parameter

import "time"

// Deferred Event Timing
const (
	// QueuedEventDelay is the minimum hold between a synthesized down and its deferred up
	// Also the debounce window armed by main-menu and input-changed events
	QueuedEventDelay = 50 * time.Millisecond
)

// Tap Windows
const (
	// TapWindow is the max primary down-to-up interval collapsed into a click
	TapWindow = 250 * time.Millisecond

	// SecondaryTapWindow is the max secondary down-to-up interval treated as a tap
	// Also the window in which a second secondary tap becomes an escape gesture
	SecondaryTapWindow = 400 * time.Millisecond
)

// Two-Finger Swipe Classification
const (
	// SwipeNeededLength is the displacement on either axis before a gesture is classified
	SwipeNeededLength = 100

	// SwipeMaxDeviation caps perpendicular drift for a straight swipe
	SwipeMaxDeviation = 20
)

// Touchpad Mode
const (
	// TouchpadScale divides finger motion; 0.5 doubles cursor travel
	TouchpadScale = 0.5
)

// Notifications
const (
	// NotificationDuration is how long a mode-toggle message stays on screen
	NotificationDuration = 1500 * time.Millisecond
)
