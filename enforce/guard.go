package enforce

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrUnprotectedFamily marks a family the manifest requires but the registry
// has no validator for. This is a fatal configuration error: without a
// validator the family's histories accept every transition.
var ErrUnprotectedFamily = errors.New("entity family has no registered validator")

// FamilySet is the guard's view of a validator registry. Implemented by
// status.Registry.
type FamilySet interface {
	HasValidator(family string) bool
}

// Guard checks a validator registry against a manifest at process startup.
type Guard struct {
	manifest *Manifest
	logger   *slog.Logger
}

// NewGuard creates a guard for the given manifest. The logger must not be
// nil; every missing family is logged whether or not it is fatal.
func NewGuard(manifest *Manifest, logger *slog.Logger) *Guard {
	return &Guard{manifest: manifest, logger: logger}
}

// Check verifies that every family the manifest lists has a validator in the
// set. In strict mode it returns one joined error wrapping
// ErrUnprotectedFamily per missing family; otherwise it logs the gaps and
// returns nil.
func (g *Guard) Check(set FamilySet) error {
	var errs []error

	for _, family := range g.manifest.Families {
		if set.HasValidator(family) {
			continue
		}

		g.logger.Error("entity family is unprotected",
			slog.String("family", family),
			slog.Bool("strict", g.manifest.Strict),
		)
		if g.manifest.Strict {
			errs = append(errs, fmt.Errorf("%w: %s", ErrUnprotectedFamily, family))
		}
	}

	return errors.Join(errs...)
}
