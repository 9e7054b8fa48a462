package status

import (
	"time"

	"github.com/andregutierrez/domainkit/domain"
)

// Record is one historical status entry. Records are constructed current and
// are deactivated by the owning History when a newer entry is accepted; they
// are never removed or flipped back to current in place.
type Record[C ~string] struct {
	key       string
	createdAt time.Time
	category  C
	notes     string
	current   bool
}

// RecordOption customizes record construction.
type RecordOption func(*recordConfig)

type recordConfig struct {
	key       string
	createdAt time.Time
	keys      domain.KeyGenerator
}

// WithKey sets an explicit record key instead of generating one.
func WithKey(key string) RecordOption {
	return func(c *recordConfig) { c.key = key }
}

// WithCreatedAt sets an explicit creation timestamp. Useful in tests; the
// default is time.Now in UTC.
func WithCreatedAt(t time.Time) RecordOption {
	return func(c *recordConfig) { c.createdAt = t }
}

// WithKeys sets the key generator used when no explicit key is given.
func WithKeys(keys domain.KeyGenerator) RecordOption {
	return func(c *recordConfig) { c.keys = keys }
}

// NewRecord creates a current record for the given category. The category
// must come from the owning entity's closed status set; no validation of
// category or notes content happens here.
func NewRecord[C ~string](category C, notes string, opts ...RecordOption) *Record[C] {
	cfg := recordConfig{keys: domain.DefaultKeys}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.key == "" {
		cfg.key = cfg.keys.NewKey()
	}
	if cfg.createdAt.IsZero() {
		cfg.createdAt = time.Now().UTC()
	}

	return &Record[C]{
		key:       cfg.key,
		createdAt: cfg.createdAt,
		category:  category,
		notes:     notes,
		current:   true,
	}
}

// Rehydrate rebuilds a persisted record exactly as stored, including its
// current flag. Only persistence adapters should use it; runtime status
// changes go through NewRecord and History.Add.
func Rehydrate[C ~string](key string, createdAt time.Time, category C, notes string, current bool) *Record[C] {
	return &Record[C]{
		key:       key,
		createdAt: createdAt,
		category:  category,
		notes:     notes,
		current:   current,
	}
}

// Key returns the record's globally unique opaque identifier.
func (r *Record[C]) Key() string { return r.key }

// CreatedAt returns the record's creation timestamp.
func (r *Record[C]) CreatedAt() time.Time { return r.createdAt }

// Category returns the record's status category.
func (r *Record[C]) Category() C { return r.category }

// Notes returns the free-text context attached to the record.
func (r *Record[C]) Notes() string { return r.notes }

// IsCurrent reports whether this record is the entity's present status.
func (r *Record[C]) IsCurrent() bool { return r.current }

// Deactivate marks the record as superseded. Idempotent: deactivating an
// already-inactive record has no effect.
func (r *Record[C]) Deactivate() {
	r.current = false
}
