// Package enforce turns the registry's fail-open posture into an explicit
// startup decision. A validator registry performs no transition checking for
// families without a registered validator; deployments that must guarantee
// enforcement declare the protected families in a manifest and run a Guard
// against the registry before serving traffic.
package enforce

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "ENFORCE_"

// Manifest declares which entity families must have a transition validator
// registered before the process is allowed to start.
type Manifest struct {
	// Strict controls whether a missing validator is fatal. With Strict
	// false the guard only logs; useful while rolling enforcement out.
	Strict bool `koanf:"strict"`

	// Families lists the protected owner-entity family names, matching the
	// keys used when registering validators (see status.FamilyOf).
	Families []string `koanf:"families"`
}

// Load reads a manifest from a YAML file, then applies environment variable
// overrides with the ENFORCE_ prefix (ENFORCE_STRICT -> strict).
func Load(path string) (*Manifest, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("manifest path must not be empty")
	}

	k := koanf.New(".")

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading manifest %s: %w", path, err)
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.TrimPrefix(key, envPrefix)
			return strings.ToLower(key), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("loading manifest env overrides: %w", err)
	}

	var m Manifest
	if err := k.Unmarshal("", &m); err != nil {
		return nil, fmt.Errorf("unmarshalling manifest: %w", err)
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("validating manifest: %w", err)
	}

	return &m, nil
}

// Validate checks the manifest values and returns aggregated errors.
func (m *Manifest) Validate() error {
	var errs []error

	if len(m.Families) == 0 {
		errs = append(errs, errors.New("families must not be empty"))
	}
	seen := make(map[string]bool, len(m.Families))
	for _, family := range m.Families {
		if strings.TrimSpace(family) == "" {
			errs = append(errs, errors.New("families must not contain blank entries"))
			continue
		}
		if seen[family] {
			errs = append(errs, fmt.Errorf("family %q listed more than once", family))
		}
		seen[family] = true
	}

	return errors.Join(errs...)
}
