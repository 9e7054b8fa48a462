package status

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checking.
var (
	// ErrInvalidTransition marks a business-rule violation: the requested
	// status change is not permitted for the entity family. Recoverable;
	// surface it to the caller, never retry automatically.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrMissingCurrentStatus marks a broken single-current invariant: a
	// non-empty history has no current record. This is a data-integrity
	// defect, not a business outcome; log it as an internal error.
	ErrMissingCurrentStatus = errors.New("missing current status")

	// ErrRecordNotCurrent is returned by Add when given a record that was
	// already deactivated. Historical reconstruction goes through Restore,
	// never through Add.
	ErrRecordNotCurrent = errors.New("record is not current")
)

// InvalidTransitionError carries the full context of a rejected transition,
// suitable for translation into a client-facing conflict response.
type InvalidTransitionError struct {
	DomainContext string
	From          string
	To            string
	EntityID      string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s: %q -> %q (entity %s)",
		ErrInvalidTransition.Error(), e.DomainContext, e.From, e.To, e.EntityID)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// MissingCurrentStatusError reports a history whose single-current invariant
// does not hold. Records is the history length at the time of the failure;
// callers distinguishing "empty history" from "corrupt history" should check
// Len before calling Current.
type MissingCurrentStatusError struct {
	DomainContext string
	EntityID      string
	Records       int
}

func (e *MissingCurrentStatusError) Error() string {
	return fmt.Sprintf("%s: %s: entity %s has %d records and no current one",
		ErrMissingCurrentStatus.Error(), e.DomainContext, e.EntityID, e.Records)
}

func (e *MissingCurrentStatusError) Unwrap() error {
	return ErrMissingCurrentStatus
}
