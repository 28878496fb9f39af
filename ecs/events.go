package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const EventContactBegin = "contact_begin"

// ContactEvent is the payload of EventContactBegin: two primitives whose
// colliders started touching during the last physics step.
type ContactEvent struct {
	A Entity
	B Entity
}

// EventQueue is a FIFO of events pushed by systems during World.Update. The
// world clears it at the start of the next Update, so readers see one
// frame's worth of events.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Contacts returns the payloads of the queued EventContactBegin events
// without removing them.
func (q *EventQueue) Contacts() []ContactEvent {
	if q == nil {
		return nil
	}
	var out []ContactEvent
	for _, evt := range q.items {
		if evt.Type != EventContactBegin {
			continue
		}
		if c, ok := evt.Data.(ContactEvent); ok {
			out = append(out, c)
		}
	}
	return out
}

// Len reports the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
