package status

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/andregutierrez/domainkit/domain"
)

// Observer receives synchronous notifications about history mutations.
// Implementations must be fast, non-blocking, and side-effect-free with
// respect to the history itself. From is empty for a first entry.
type Observer interface {
	TransitionAccepted(domainContext, from, to string)
	TransitionRejected(domainContext, from, to string)
}

// LifecycleObserver is an optional extension of Observer for observers that
// also track history construction. New performs a checked type assertion;
// plain Observers keep working unchanged.
type LifecycleObserver interface {
	Observer

	// HistoryCreated is called once per New, after options are applied.
	HistoryCreated(domainContext string)
}

// History is an ordered, append-only collection of status records owned by
// one entity instance. It maintains the single-current invariant: at most
// one contained record is current, and zero only before the first Add.
//
// A history is not internally synchronized. Concurrent Adds on the same
// instance are undefined unless externally serialized, typically by the
// owning aggregate's transaction boundary.
type History[O domain.Entity, C ~string] struct {
	owner         O
	domainContext string
	records       []*Record[C]
	validator     Validator[O, C]
	logger        *slog.Logger
	observer      Observer
}

// Option customizes history construction.
type Option[O domain.Entity, C ~string] func(*History[O, C])

// WithValidator binds a transition validator at construction time. This is
// the preferred wiring; BindValidator exists for composition roots that
// assemble validators after the aggregate graph.
func WithValidator[O domain.Entity, C ~string](v Validator[O, C]) Option[O, C] {
	return func(h *History[O, C]) { h.validator = v }
}

// WithLogger sets the logger used to report invariant violations. Without
// it, violations still fail but are not logged.
func WithLogger[O domain.Entity, C ~string](logger *slog.Logger) Option[O, C] {
	return func(h *History[O, C]) { h.logger = logger }
}

// WithObserver sets an observer notified of accepted and rejected
// transitions, e.g. for metric collection.
func WithObserver[O domain.Entity, C ~string](obs Observer) Option[O, C] {
	return func(h *History[O, C]) { h.observer = obs }
}

// WithDomainContext overrides the family name used in errors, events, and
// metrics. Defaults to the owner's type name via FamilyOf.
func WithDomainContext[O domain.Entity, C ~string](name string) Option[O, C] {
	return func(h *History[O, C]) { h.domainContext = name }
}

// New creates an empty history for the given owner entity.
func New[O domain.Entity, C ~string](owner O, opts ...Option[O, C]) *History[O, C] {
	h := &History[O, C]{owner: owner}
	for _, opt := range opts {
		opt(h)
	}
	if h.domainContext == "" {
		h.domainContext = FamilyOf(owner)
	}
	if lo, ok := h.observer.(LifecycleObserver); ok {
		lo.HistoryCreated(h.domainContext)
	}
	return h
}

// Owner returns the entity this history belongs to.
func (h *History[O, C]) Owner() O { return h.owner }

// DomainContext returns the family name used in errors and events.
func (h *History[O, C]) DomainContext() string { return h.domainContext }

// Len returns the number of records, current or not.
func (h *History[O, C]) Len() int { return len(h.records) }

// BindValidator associates a validator with this history. It must be called
// before any Add that should be checked; re-binding silently replaces the
// previous validator.
func (h *History[O, C]) BindValidator(v Validator[O, C]) {
	h.validator = v
}

// Add accepts a new current record. When a validator is bound and a current
// record exists, the transition from the current category to the new one is
// validated first; on rejection the error propagates untouched and the
// history is left unchanged. A first entry is never validated.
//
// On acceptance the previous current record (at most one, by invariant) is
// deactivated and the new record appended. The new record's current flag was
// set by its constructor, not by Add.
func (h *History[O, C]) Add(rec *Record[C]) error {
	if rec == nil {
		return &domain.ValidationError{Fields: map[string]string{"record": domain.MsgRequired}}
	}
	if !rec.IsCurrent() {
		return fmt.Errorf("%w: record %s; use Restore for historical reconstruction",
			ErrRecordNotCurrent, rec.Key())
	}
	// Re-adding a contained record would deactivate it and then append it,
	// leaving the history with no current entry.
	for _, r := range h.records {
		if r == rec {
			return fmt.Errorf("%w: record %s is already in the history",
				domain.ErrConflict, rec.Key())
		}
	}

	cur := h.findCurrent()

	if h.validator != nil && cur != nil {
		if err := h.validator.ValidateTransition(cur.Category(), rec.Category(), h.owner); err != nil {
			if h.observer != nil {
				h.observer.TransitionRejected(h.domainContext, string(cur.Category()), string(rec.Category()))
			}
			return err
		}
	}

	for _, r := range h.records {
		if r.IsCurrent() {
			r.Deactivate()
		}
	}
	h.records = append(h.records, rec)

	if h.observer != nil {
		from := ""
		if cur != nil {
			from = string(cur.Category())
		}
		h.observer.TransitionAccepted(h.domainContext, from, string(rec.Category()))
	}
	return nil
}

// Current returns the single current record. It fails with a
// *MissingCurrentStatusError when none is found; for a non-empty history
// that signals a broken invariant and is logged as an internal error.
// Callers must check Len before treating the error as "empty history".
func (h *History[O, C]) Current() (*Record[C], error) {
	if cur := h.findCurrent(); cur != nil {
		return cur, nil
	}

	err := &MissingCurrentStatusError{
		DomainContext: h.domainContext,
		EntityID:      h.owner.EntityID(),
		Records:       len(h.records),
	}
	if len(h.records) > 0 && h.logger != nil {
		h.logger.Error("status history invariant violated: no current record",
			slog.String("domain_context", h.domainContext),
			slog.String("entity_id", h.owner.EntityID()),
			slog.Int("records", len(h.records)),
		)
	}
	return nil, err
}

// ByCategory returns a lazy, restartable sequence of all records with the
// given category, in insertion order. The sequence is empty, never an error,
// when nothing matches.
func (h *History[O, C]) ByCategory(category C) iter.Seq[*Record[C]] {
	return func(yield func(*Record[C]) bool) {
		for _, r := range h.records {
			if r.Category() == category && !yield(r) {
				return
			}
		}
	}
}

// All returns a lazy, restartable sequence of every record in insertion
// order.
func (h *History[O, C]) All() iter.Seq[*Record[C]] {
	return func(yield func(*Record[C]) bool) {
		for _, r := range h.records {
			if !yield(r) {
				return
			}
		}
	}
}

// Restore replays persisted records into an empty history in their original
// insertion order, without consulting the validator: validation applies only
// to new transitions chosen at runtime, never to historical reconstruction.
// Records keep the current flags they were persisted with.
//
// Restore fails, without modifying the history, when the history already has
// records or when the replayed set would contain more than one current
// record.
func (h *History[O, C]) Restore(records []*Record[C]) error {
	if len(h.records) > 0 {
		return fmt.Errorf("%w: history for entity %s already has %d records",
			domain.ErrConflict, h.owner.EntityID(), len(h.records))
	}

	currents := 0
	for i, r := range records {
		if r == nil {
			return &domain.ValidationError{
				Fields: map[string]string{fmt.Sprintf("records[%d]", i): domain.MsgRequired},
			}
		}
		if r.IsCurrent() {
			currents++
		}
	}
	if currents > 1 {
		return fmt.Errorf("%w: restored set for entity %s has %d current records",
			domain.ErrConflict, h.owner.EntityID(), currents)
	}

	h.records = append(h.records, records...)
	return nil
}

func (h *History[O, C]) findCurrent() *Record[C] {
	// Scan from the tail: the current record, when present, is the most
	// recently accepted one.
	for i := len(h.records) - 1; i >= 0; i-- {
		if h.records[i].IsCurrent() {
			return h.records[i]
		}
	}
	return nil
}
