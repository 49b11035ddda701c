package app

import (
	"time"

	"github.com/iburimskiy/cursorglow/internal/highlight"
)

// Event is one of Motion, Press, Release, Tick or Change.
type Event interface {
	isEvent()
}

// Motion moves the cursor, in window coordinates.
type Motion struct {
	X, Y float64
}

type Press struct {
	Button highlight.Button
}

type Release struct {
	Button highlight.Button
}

// Tick advances the press animation to Now.
type Tick struct {
	Now time.Time
}

// Change edits the appearance. Applying it persists the settings.
type Change struct {
	Label string
	Edit  func(h *highlight.Highlight)
}

func (Motion) isEvent()  {}
func (Press) isEvent()   {}
func (Release) isEvent() {}
func (Tick) isEvent()    {}
func (Change) isEvent()  {}

// Queue carries events from other goroutines to the one that owns the controller.
type Queue chan Event

func NewQueue(size int) Queue {
	return make(Queue, size)
}

// Post enqueues ev without blocking and reports whether it fit.
func (q Queue) Post(ev Event) bool {
	select {
	case q <- ev:
		return true
	default:
		return false
	}
}

// Send enqueues ev, waiting for room.
func (q Queue) Send(ev Event) {
	q <- ev
}

// Drain dispatches every queued event to c and returns how many there were.
func (q Queue) Drain(c *Controller) int {
	n := 0
	for {
		select {
		case ev := <-q:
			c.Dispatch(ev)
			n++
		default:
			return n
		}
	}
}
