package translator

import (
	"time"

	"github.com/lixenwraith/touchport/event"
	"github.com/lixenwraith/touchport/platform"
)

// Pending is a deferred event and the earliest time it may be delivered
type Pending struct {
	Event    event.Event
	Deadline time.Time
}

// State is owned by one Translator and mutated only from Poll
type State struct {
	// Single deferred slot, last write wins
	pending    Pending
	hasPending bool

	// Deliveries are held at least until here after main-menu and input-changed
	holdUntil time.Time

	// Zero time means never
	lastMouseDown     time.Time
	lastSecondaryDown time.Time
	lastSecondaryTap  time.Time

	secondaryActive bool

	lastDrag  event.Point
	dragValid bool
	lastPad   event.Point

	// nil when no two-finger gesture is being tracked
	gestureStart *event.Point

	touchpadMode     bool
	clickAndDragMode bool

	orientation platform.Orientation
}

// enqueue overwrites the deferred slot
func (s *State) enqueue(ev event.Event, deadline time.Time) {
	if deadline.Before(s.holdUntil) {
		deadline = s.holdUntil
	}
	s.pending = Pending{Event: ev, Deadline: deadline}
	s.hasPending = true
}

func (s *State) clearPending() {
	s.pending = Pending{}
	s.hasPending = false
}

// armDebounce drops any deferred event and holds later deliveries for the debounce window
func (s *State) armDebounce(until time.Time) {
	s.clearPending()
	s.holdUntil = until
}

// takeDue pops the deferred event once its deadline has been reached
func (s *State) takeDue(now time.Time) (event.Event, bool) {
	if !s.hasPending || now.Before(s.pending.Deadline) {
		return event.Event{}, false
	}
	ev := s.pending.Event
	s.clearPending()
	return ev, true
}

// peek returns the deferred slot without consuming it
func (s *State) peek() (Pending, bool) {
	return s.pending, s.hasPending
}
