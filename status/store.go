package status

import "context"

// Store is the persistence port for status records. Implementations map
// each record to a row keyed by (owner entity id, record key). This package
// ships no implementation; persistence is an external collaborator.
//
// Reloading an entity replays Load's result through History.Restore: all
// persisted records in original insertion order, without re-invoking the
// validator.
type Store[C ~string] interface {
	// Save persists one record for the given owner. Saving an existing
	// (ownerID, key) pair overwrites the row, which is how a record's
	// deactivation reaches storage.
	Save(ctx context.Context, ownerID string, rec *Record[C]) error

	// Load returns every persisted record for the owner in original
	// insertion order. An owner with no records yields an empty slice,
	// not an error.
	Load(ctx context.Context, ownerID string) ([]*Record[C], error)
}
