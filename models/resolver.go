package models

import (
	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-set/v2"

	"github.com/helixerp/entitlements-backend/pure_utils"
)

// Resolver translates bundle selections into module entitlements against one
// immutable Catalog. All of its methods are pure: the only state is the
// catalog it was constructed with and the strictness flag.
//
// In lenient mode (the default), bundle keys absent from the catalog are
// ignored. In strict mode the same keys fail with ErrUnknownBundle.
type Resolver struct {
	catalog Catalog
	strict  bool
}

func NewResolver(catalog Catalog, strict bool) Resolver {
	return Resolver{
		catalog: catalog,
		strict:  strict,
	}
}

func (r Resolver) Catalog() Catalog {
	return r.catalog
}

// Expand returns the deduplicated union of the modules granted by the given
// bundles, in catalog module order. Order and multiplicity of the input
// never affect the result.
func (r Resolver) Expand(bundleKeys []string) ([]string, error) {
	selected := set.New[string](len(bundleKeys))
	for _, bundleKey := range bundleKeys {
		bundle, ok := r.catalog.Bundle(bundleKey)
		if !ok {
			if r.strict {
				return nil, errors.Wrapf(ErrUnknownBundle, "%q", bundleKey)
			}
			continue
		}
		selected.InsertSlice(bundle.Modules)
	}

	// Walking the universe rather than the selection keeps the output order
	// deterministic regardless of input order.
	out := make([]string, 0, selected.Size())
	for _, moduleKey := range r.catalog.universe {
		if selected.Contains(moduleKey) {
			out = append(out, moduleKey)
		}
	}
	return out, nil
}

// ActiveBundles infers which bundles an organization holds from its enabled
// modules, under the all-required policy: a bundle is active only if every
// module it grants is enabled. Partial access never reports the bundle, and
// a module shared between two bundles never marks a bundle the organization
// did not fully receive. This is the only policy under which
// ActiveBundles(Expand(B)) round-trips when modules are shared.
func (r Resolver) ActiveBundles(enabledModules []string) []string {
	active := make([]string, 0, len(r.catalog.bundles))
	for _, bundle := range r.catalog.bundles {
		if pure_utils.AllElementsIn(bundle.Modules, enabledModules) {
			active = append(active, bundle.Key)
		}
	}
	return active
}

// Diff computes the minimal ordered list of entitlement mutations moving an
// organization from its current module state to the state granted by the
// target bundles. The full module universe is walked, so modules dropped
// from every selected bundle are diffed to disabled; module keys unknown to
// the catalog are never emitted. Records come out in catalog module order.
func (r Resolver) Diff(currentModules []string, targetBundles []string) ([]ModuleChange, error) {
	targetModules, err := r.Expand(targetBundles)
	if err != nil {
		return nil, err
	}

	current := set.From(currentModules)
	target := set.From(targetModules)

	var changes []ModuleChange
	for _, moduleKey := range r.catalog.universe {
		inCurrent := current.Contains(moduleKey)
		inTarget := target.Contains(moduleKey)

		switch {
		case inTarget && !inCurrent:
			changes = append(changes, ModuleChange{ModuleKey: moduleKey, Status: Enabled})
		case !inTarget && inCurrent:
			changes = append(changes, ModuleChange{ModuleKey: moduleKey, Status: Disabled})
		}
	}
	return changes, nil
}

// ApplyChanges returns the module set obtained by applying a change list to
// a current state, in catalog module order. Mostly useful to callers that
// want to preview the post-mutation state without a second fetch.
func (r Resolver) ApplyChanges(currentModules []string, changes []ModuleChange) []string {
	result := set.From(currentModules)
	for _, change := range changes {
		switch change.Status {
		case Enabled:
			result.Insert(change.ModuleKey)
		case Disabled:
			result.Remove(change.ModuleKey)
		}
	}

	out := make([]string, 0, result.Size())
	for _, moduleKey := range r.catalog.universe {
		if result.Contains(moduleKey) {
			out = append(out, moduleKey)
		}
	}
	return out
}
