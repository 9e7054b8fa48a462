package status

import "github.com/andregutierrez/domainkit/domain"

// RuleSet is a declarative transition allow-list: a map from category to the
// set of permitted destination categories. Anything not listed is forbidden.
//
// Build it once at package init or composition-root time and share it; the
// builder is not safe for concurrent mutation, but a finished rule set is
// safe for concurrent reads.
type RuleSet[C ~string] struct {
	allowed map[C]map[C]struct{}
}

// NewRuleSet creates an empty rule set.
func NewRuleSet[C ~string]() *RuleSet[C] {
	return &RuleSet[C]{allowed: make(map[C]map[C]struct{})}
}

// Allow permits transitions from one category to each of the given
// destinations, accumulating with earlier calls. Returns the rule set for
// chaining.
func (s *RuleSet[C]) Allow(from C, to ...C) *RuleSet[C] {
	dests, ok := s.allowed[from]
	if !ok {
		dests = make(map[C]struct{}, len(to))
		s.allowed[from] = dests
	}
	for _, t := range to {
		dests[t] = struct{}{}
	}
	return s
}

// IsTransitionAllowed reports whether from -> to is listed.
func (s *RuleSet[C]) IsTransitionAllowed(from, to C) bool {
	_, ok := s.allowed[from][to]
	return ok
}

// IsTerminal reports whether a category has no outgoing transitions.
func (s *RuleSet[C]) IsTerminal(c C) bool {
	return len(s.allowed[c]) == 0
}

// RuleSetValidator implements Validator purely from a rule set. It never
// consults the owner, so it cannot express conditional rules; those need a
// hand-written Validator implementation.
type RuleSetValidator[O domain.Entity, C ~string] struct {
	domainContext string
	rules         *RuleSet[C]
}

// NewRuleSetValidator binds a rule set to an owner family. The domainContext
// names the family in resulting errors (e.g. "order").
func NewRuleSetValidator[O domain.Entity, C ~string](domainContext string, rules *RuleSet[C]) *RuleSetValidator[O, C] {
	return &RuleSetValidator[O, C]{domainContext: domainContext, rules: rules}
}

// CanTransition reports whether the rule set lists from -> to.
func (v *RuleSetValidator[O, C]) CanTransition(from, to C, _ O) bool {
	return v.rules.IsTransitionAllowed(from, to)
}

// ValidateTransition fails with an *InvalidTransitionError when the rule set
// does not list from -> to.
func (v *RuleSetValidator[O, C]) ValidateTransition(from, to C, owner O) error {
	if v.rules.IsTransitionAllowed(from, to) {
		return nil
	}
	return &InvalidTransitionError{
		DomainContext: v.domainContext,
		From:          string(from),
		To:            string(to),
		EntityID:      owner.EntityID(),
	}
}
