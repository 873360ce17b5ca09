package platform

import (
	"sync/atomic"

	"github.com/lixenwraith/touchport/parameter"
)

// Source is the non-blocking fetch primitive the translator polls
type Source interface {
	Fetch() (RawEvent, bool)
}

// SourceFunc adapts a function to the Source interface
type SourceFunc func() (RawEvent, bool)

// Fetch calls the underlying function
func (f SourceFunc) Fetch() (RawEvent, bool) {
	return f()
}

// Queue is a lock-free MPSC ring buffer for raw platform events
// Thread-Safety:
//   - Push: Lock-free CAS, multiple producers OK (host input reader, bridge connections)
//   - Fetch: Single consumer (translator poll)
//   - Published flags prevent reading partial writes
//
// Overflow: Oldest events overwritten when full
type Queue struct {
	events    [parameter.RawQueueSize]RawEvent
	published [parameter.RawQueueSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64                       // Read index
	tail      atomic.Uint64                       // Write index
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push adds a raw event using lock-free CAS with published flags pattern
func (q *Queue) Push(ev RawEvent) {
	for {
		currentTail := q.tail.Load()
		nextTail := currentTail + 1

		if q.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & parameter.RawQueueMask

			q.events[idx] = ev
			q.published[idx].Store(true) // MUST be after write

			// Advance head if overwriting unread events
			currentHead := q.head.Load()
			if nextTail-currentHead > parameter.RawQueueSize {
				q.head.CompareAndSwap(currentHead, nextTail-parameter.RawQueueSize)
			}
			return
		}
	}
}

// Fetch removes and returns the oldest raw event
// Never blocks; returns false when empty or the oldest slot is still being written
func (q *Queue) Fetch() (RawEvent, bool) {
	for {
		currentHead := q.head.Load()
		currentTail := q.tail.Load()

		if currentTail == currentHead {
			return RawEvent{}, false
		}

		start := currentHead
		if currentTail-start > parameter.RawQueueSize {
			start = currentTail - parameter.RawQueueSize
		}

		idx := start & parameter.RawQueueMask
		if !q.published[idx].Load() {
			return RawEvent{}, false // Writer incomplete
		}
		ev := q.events[idx]

		if q.head.CompareAndSwap(currentHead, start+1) {
			q.published[idx].Store(false)
			return ev, true
		}
	}
}

// Len returns approximate pending event count
func (q *Queue) Len() int {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail <= head {
		return 0
	}
	diff := int(tail - head)
	if diff > parameter.RawQueueSize {
		return parameter.RawQueueSize
	}
	return diff
}
