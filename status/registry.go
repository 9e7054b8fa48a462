package status

import (
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/andregutierrez/domainkit/domain"
)

// Registry maps owner-entity family names to their bound validators. It is
// an explicitly-typed composition-root convenience: one registry per
// (owner, category) type pair, so lookups never involve a runtime cast.
//
// Absence of a registered validator is fail-open: a history bound to no
// validator performs no transition checking. Deployments that require
// guaranteed enforcement should verify HasValidator for every protected
// family at startup (see the enforce package) and treat absence as a fatal
// configuration error.
//
// Safe for concurrent use. Register is expected mainly at process startup,
// Validator at arbitrary times.
type Registry[O domain.Entity, C ~string] struct {
	mu         sync.RWMutex
	validators map[string]Validator[O, C]
}

// NewRegistry creates an empty registry.
func NewRegistry[O domain.Entity, C ~string]() *Registry[O, C] {
	return &Registry[O, C]{validators: make(map[string]Validator[O, C])}
}

// Register stores the validator for a family, silently overwriting any
// previous entry (last write wins).
func (r *Registry[O, C]) Register(family string, v Validator[O, C]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.validators[family] = v
}

// Validator returns the validator bound to a family, with ok reporting
// whether one was registered.
func (r *Registry[O, C]) Validator(family string) (Validator[O, C], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.validators[family]
	return v, ok
}

// HasValidator reports whether a family has a registered validator.
func (r *Registry[O, C]) HasValidator(family string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.validators[family]
	return ok
}

// Families returns the registered family names in sorted order.
func (r *Registry[O, C]) Families() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.validators))
	for family := range r.validators {
		out = append(out, family)
	}
	sort.Strings(out)
	return out
}

// FamilyOf derives a canonical family name from an entity value: its type
// name, lowercased, with any pointer indirection stripped. Used as the
// default domain context for histories and as a registry key convention.
func FamilyOf(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return strings.ToLower(t.Name())
}
