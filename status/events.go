package status

import "time"

// Changed is a domain event describing an accepted status transition.
// Nothing in this package raises it automatically; callers that want an
// event record one on their aggregate after a successful Add.
type Changed[C ~string] struct {
	DomainContext string
	EntityID      string
	From          C
	To            C
	At            time.Time
}

// EventName returns "<domainContext>.status.changed".
func (e Changed[C]) EventName() string {
	return e.DomainContext + ".status.changed"
}

// OccurredAt returns when the transition was accepted.
func (e Changed[C]) OccurredAt() time.Time {
	return e.At
}
