package domain

import "time"

// Event is a fact that happened within the domain. Events are named in past
// tense ("order.shipped") and timestamped at the moment they occurred.
type Event interface {
	// EventName returns the dotted, past-tense name of the event.
	EventName() string

	// OccurredAt returns when the event happened.
	OccurredAt() time.Time
}

// EventRecorder collects domain events in the order they are recorded.
// Aggregates embed it by value and record events from their business
// operations; the application layer drains them after a successful commit.
//
// EventRecorder is not safe for concurrent use. An aggregate instance is
// expected to be confined to one request or transaction at a time.
type EventRecorder struct {
	events []Event
}

// Record appends an event to the pending list.
func (r *EventRecorder) Record(e Event) {
	r.events = append(r.events, e)
}

// PendingEvents returns the recorded events in insertion order without
// clearing them.
func (r *EventRecorder) PendingEvents() []Event {
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Drain returns the recorded events in insertion order and clears the list.
func (r *EventRecorder) Drain() []Event {
	out := r.events
	r.events = nil
	return out
}
