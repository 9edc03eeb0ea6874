package models

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/guregu/null/v5"
)

// Bundle is a named grouping of module keys, presented to customers as a
// product category (CRM, Finance, Manufacturing...). A module key may appear
// in more than one bundle: shared modules are the normal case, not an error.
type Bundle struct {
	Key         string
	DisplayName string
	Description null.String
	Modules     []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateBundleInput struct {
	Key         string
	DisplayName string
	Description null.String
	Modules     []string
}

type UpdateBundleInput struct {
	Key         string
	DisplayName *string
	Description null.String
	Modules     []string
}

// Catalog holds the full set of bundles, indexed by key, and derives the
// module universe as the union of every bundle's modules, in catalog
// insertion order. A Catalog is immutable after construction and safe to
// share between concurrent callers without coordination.
type Catalog struct {
	bundles      []Bundle
	bundlesByKey map[string]Bundle
	universe     []string
	universeSet  map[string]struct{}
}

// NewCatalog validates and indexes a list of bundle definitions.
// Module keys are deduplicated within each bundle, keeping their first
// position. A bundle whose module list is empty after deduplication is
// rejected: it could never be reported active and would be dead
// configuration.
func NewCatalog(bundles []Bundle) (Catalog, error) {
	c := Catalog{
		bundles:      make([]Bundle, 0, len(bundles)),
		bundlesByKey: make(map[string]Bundle, len(bundles)),
		universeSet:  make(map[string]struct{}),
	}

	for _, bundle := range bundles {
		if bundle.Key == "" {
			return Catalog{}, errors.Wrap(ErrInvalidCatalog, "bundle with empty key")
		}
		if _, ok := c.bundlesByKey[bundle.Key]; ok {
			return Catalog{}, errors.Wrapf(ErrInvalidCatalog,
				"duplicate bundle key %q", bundle.Key)
		}

		deduped := make([]string, 0, len(bundle.Modules))
		seen := make(map[string]struct{}, len(bundle.Modules))
		for _, moduleKey := range bundle.Modules {
			if _, ok := seen[moduleKey]; ok {
				continue
			}
			seen[moduleKey] = struct{}{}
			deduped = append(deduped, moduleKey)

			if _, ok := c.universeSet[moduleKey]; !ok {
				c.universeSet[moduleKey] = struct{}{}
				c.universe = append(c.universe, moduleKey)
			}
		}
		if len(deduped) == 0 {
			return Catalog{}, errors.Wrapf(ErrInvalidCatalog,
				"bundle %q grants no modules", bundle.Key)
		}
		bundle.Modules = deduped

		c.bundles = append(c.bundles, bundle)
		c.bundlesByKey[bundle.Key] = bundle
	}

	return c, nil
}

// Bundles returns every bundle in catalog insertion order.
func (c Catalog) Bundles() []Bundle {
	out := make([]Bundle, len(c.bundles))
	copy(out, c.bundles)
	return out
}

func (c Catalog) Bundle(key string) (Bundle, bool) {
	bundle, ok := c.bundlesByKey[key]
	return bundle, ok
}

func (c Catalog) HasBundle(key string) bool {
	_, ok := c.bundlesByKey[key]
	return ok
}

// ModulesOf returns the modules granted by a bundle. An unknown bundle key
// yields an empty slice, not an error: lookups are deliberately lenient, the
// strictness decision belongs to the Resolver.
func (c Catalog) ModulesOf(key string) []string {
	bundle, ok := c.bundlesByKey[key]
	if !ok {
		return nil
	}
	out := make([]string, len(bundle.Modules))
	copy(out, bundle.Modules)
	return out
}

// AllModules returns the full module universe in catalog insertion order.
func (c Catalog) AllModules() []string {
	out := make([]string, len(c.universe))
	copy(out, c.universe)
	return out
}

func (c Catalog) HasModule(moduleKey string) bool {
	_, ok := c.universeSet[moduleKey]
	return ok
}

// BundlesOfModule returns the keys of every bundle granting the given
// module, in catalog insertion order.
func (c Catalog) BundlesOfModule(moduleKey string) []string {
	var out []string
	for _, bundle := range c.bundles {
		for _, m := range bundle.Modules {
			if m == moduleKey {
				out = append(out, bundle.Key)
				break
			}
		}
	}
	return out
}
