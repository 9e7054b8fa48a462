package status

import "github.com/andregutierrez/domainkit/domain"

// Validator decides whether a status transition is legal for one entity
// family. The two methods must stay consistent: ValidateTransition fails
// exactly when CanTransition returns false.
//
// Implementations are stateless with respect to any single history instance
// and may consult the owner's other fields for conditional rules ("a shipped
// order cannot be refunded"). Both methods must be side-effect-free and
// non-blocking; History.Add calls them synchronously.
type Validator[O domain.Entity, C ~string] interface {
	// CanTransition reports whether the from -> to change is permitted.
	// Pure and infallible; safe to call speculatively (e.g. to grey out
	// disallowed actions in a UI).
	CanTransition(from, to C, owner O) bool

	// ValidateTransition returns an *InvalidTransitionError wrapping
	// ErrInvalidTransition when CanTransition would return false, and nil
	// otherwise. It has no other observable effect.
	ValidateTransition(from, to C, owner O) error
}

// Func adapts a predicate into a full Validator. The DomainContext names the
// entity family in resulting errors.
type Func[O domain.Entity, C ~string] struct {
	DomainContext string
	Allowed       func(from, to C, owner O) bool
}

// CanTransition reports the predicate's verdict.
func (f Func[O, C]) CanTransition(from, to C, owner O) bool {
	return f.Allowed(from, to, owner)
}

// ValidateTransition fails with an *InvalidTransitionError when the
// predicate rejects the change.
func (f Func[O, C]) ValidateTransition(from, to C, owner O) error {
	if f.Allowed(from, to, owner) {
		return nil
	}
	return &InvalidTransitionError{
		DomainContext: f.DomainContext,
		From:          string(from),
		To:            string(to),
		EntityID:      owner.EntityID(),
	}
}
