package domain

import "github.com/google/uuid"

// Entity is implemented by domain entities that expose a stable identity.
// Identity assignment and equality semantics belong to the owning aggregate
// (or its persistence layer); consumers of this package only rely on the
// identifier's string form.
type Entity interface {
	// EntityID returns the entity's unique identifier in string form.
	// It must be stable for the lifetime of the entity.
	EntityID() string
}

// KeyGenerator produces globally unique opaque tokens for alternate keys
// and status record keys. Implementations must never return the same token
// twice; tokens carry no ordering guarantees.
type KeyGenerator interface {
	NewKey() string
}

// UUIDKeys is the default KeyGenerator, backed by random (version 4) UUIDs.
type UUIDKeys struct{}

// NewKey returns a fresh UUID string.
func (UUIDKeys) NewKey() string {
	return uuid.NewString()
}

// DefaultKeys is the package-level key generator used when no explicit
// generator is supplied.
var DefaultKeys KeyGenerator = UUIDKeys{}
