// Package event provides a small dispatch queue implementing win.Bus.
//
// A Queue decouples event production (Push, called inline from
// win.PollEvents) from consumption (Dispatch, called wherever the
// application drains its frame). Processors registered with Subscribe
// see events in push order.
package event

import (
	"sync"

	"github.com/gogpu/win"
)

// MaxQueued caps the number of undispatched events. Past the cap, Push
// drops the newest event rather than growing without bound.
const MaxQueued = 65535

// Processor consumes one event during Dispatch.
type Processor func(ev win.Event)

// Queue is a FIFO event bus. Push and Dispatch may be called from
// different goroutines; processor registration and dispatch are
// serialized internally.
type Queue struct {
	mu      sync.Mutex
	pending []win.Event
	procs   []Processor
	dropped int
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Subscribe registers a processor notified for every dispatched event.
// Processors accumulate; there is no unsubscribe.
func (q *Queue) Subscribe(p Processor) {
	if p == nil {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.procs = append(q.procs, p)
}

// Push enqueues an event. Implements win.Bus. Events past MaxQueued are
// dropped and counted.
func (q *Queue) Push(ev win.Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) >= MaxQueued {
		q.dropped++
		win.Logger().Warn("event: queue full, dropping event", "key", string(ev.Key))
		return
	}
	q.pending = append(q.pending, ev)
}

// Dispatch drains all pending events through every registered processor,
// in push order, on the calling goroutine. Events pushed by a processor
// during Dispatch are delivered in the same drain.
func (q *Queue) Dispatch() {
	for {
		q.mu.Lock()
		if len(q.pending) == 0 {
			q.mu.Unlock()
			return
		}
		ev := q.pending[0]
		q.pending = q.pending[1:]
		procs := q.procs
		q.mu.Unlock()

		for _, p := range procs {
			p(ev)
		}
	}
}

// Len returns the number of undispatched events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Dropped returns how many events were discarded by a full queue.
func (q *Queue) Dropped() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}

// Ensure Queue implements win.Bus.
var _ win.Bus = (*Queue)(nil)
