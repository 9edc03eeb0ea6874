package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) Catalog {
	t.Helper()
	catalog, err := NewCatalog([]Bundle{
		{Key: "crm", DisplayName: "CRM", Modules: []string{"sales", "marketing"}},
		{Key: "finance", DisplayName: "Finance", Modules: []string{"accounting", "finance"}},
	})
	require.NoError(t, err)
	return catalog
}

func TestResolverExpand(t *testing.T) {
	resolver := NewResolver(testCatalog(t), false)

	tests := []struct {
		name       string
		bundleKeys []string
		expected   []string
	}{
		{
			name:       "empty selection expands to nothing",
			bundleKeys: nil,
			expected:   []string{},
		},
		{
			name:       "single bundle",
			bundleKeys: []string{"crm"},
			expected:   []string{"sales", "marketing"},
		},
		{
			name:       "order and duplicates of the input do not matter",
			bundleKeys: []string{"finance", "crm", "finance", "crm", "crm"},
			expected:   []string{"sales", "marketing", "accounting", "finance"},
		},
		{
			name:       "unknown keys contribute nothing in lenient mode",
			bundleKeys: []string{"crm", "manufacturing"},
			expected:   []string{"sales", "marketing"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			modules, err := resolver.Expand(tt.bundleKeys)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, modules)
		})
	}
}

func TestResolverExpandStrict(t *testing.T) {
	resolver := NewResolver(testCatalog(t), true)

	_, err := resolver.Expand([]string{"crm", "manufacturing"})
	assert.ErrorIs(t, err, ErrUnknownBundle)
	assert.ErrorIs(t, err, BadParameterError)

	modules, err := resolver.Expand([]string{"crm"})
	require.NoError(t, err)
	assert.Equal(t, []string{"sales", "marketing"}, modules)
}

func TestResolverActiveBundles(t *testing.T) {
	resolver := NewResolver(testCatalog(t), false)

	tests := []struct {
		name           string
		enabledModules []string
		expected       []string
	}{
		{
			name:           "no modules enabled means no bundle active",
			enabledModules: nil,
			expected:       []string{},
		},
		{
			name:           "partial access does not activate the bundle",
			enabledModules: []string{"sales"},
			expected:       []string{},
		},
		{
			name:           "all modules of a bundle activate it",
			enabledModules: []string{"sales", "marketing"},
			expected:       []string{"crm"},
		},
		{
			name:           "extra modules are ignored",
			enabledModules: []string{"sales", "marketing", "accounting", "unknown_module"},
			expected:       []string{"crm"},
		},
		{
			name:           "all bundles active",
			enabledModules: []string{"sales", "marketing", "accounting", "finance"},
			expected:       []string{"crm", "finance"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolver.ActiveBundles(tt.enabledModules))
		})
	}
}

func TestResolverActiveBundlesSharedModule(t *testing.T) {
	catalog, err := NewCatalog([]Bundle{
		{Key: "finance", DisplayName: "Finance", Modules: []string{"accounting", "reports_analytics"}},
		{Key: "analytics", DisplayName: "Analytics", Modules: []string{"dashboards", "reports_analytics"}},
	})
	require.NoError(t, err)
	resolver := NewResolver(catalog, false)

	// The shared module alone activates neither bundle.
	assert.Empty(t, resolver.ActiveBundles([]string{"reports_analytics"}))
	assert.Equal(t, []string{"finance"},
		resolver.ActiveBundles([]string{"accounting", "reports_analytics"}))
}

func TestResolverDiff(t *testing.T) {
	resolver := NewResolver(testCatalog(t), false)

	tests := []struct {
		name           string
		currentModules []string
		targetBundles  []string
		expected       []ModuleChange
	}{
		{
			name:           "enabling a bundle from scratch",
			currentModules: nil,
			targetBundles:  []string{"crm"},
			expected: []ModuleChange{
				{ModuleKey: "sales", Status: Enabled},
				{ModuleKey: "marketing", Status: Enabled},
			},
		},
		{
			name:           "deselecting everything disables what was enabled",
			currentModules: []string{"sales", "marketing"},
			targetBundles:  nil,
			expected: []ModuleChange{
				{ModuleKey: "sales", Status: Disabled},
				{ModuleKey: "marketing", Status: Disabled},
			},
		},
		{
			name:           "state already matching the selection yields no change",
			currentModules: []string{"sales", "marketing"},
			targetBundles:  []string{"crm"},
			expected:       nil,
		},
		{
			name:           "modules outside the catalog universe are never diffed",
			currentModules: []string{"sales", "marketing", "manufacturing"},
			targetBundles:  []string{"crm", "finance"},
			expected: []ModuleChange{
				{ModuleKey: "accounting", Status: Enabled},
				{ModuleKey: "finance", Status: Enabled},
			},
		},
		{
			name:           "switching bundles enables and disables in catalog order",
			currentModules: []string{"sales", "marketing"},
			targetBundles:  []string{"finance"},
			expected: []ModuleChange{
				{ModuleKey: "sales", Status: Disabled},
				{ModuleKey: "marketing", Status: Disabled},
				{ModuleKey: "accounting", Status: Enabled},
				{ModuleKey: "finance", Status: Enabled},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changes, err := resolver.Diff(tt.currentModules, tt.targetBundles)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, changes)
		})
	}
}

func TestResolverDiffConvergence(t *testing.T) {
	resolver := NewResolver(testCatalog(t), false)

	currentModules := []string{"sales", "accounting"}
	targetBundles := []string{"crm", "finance"}

	changes, err := resolver.Diff(currentModules, targetBundles)
	require.NoError(t, err)
	require.NotEmpty(t, changes)

	// Applying the diff lands exactly on the expanded target.
	nextModules := resolver.ApplyChanges(currentModules, changes)
	expanded, err := resolver.Expand(targetBundles)
	require.NoError(t, err)
	assert.Equal(t, expanded, nextModules)

	// Re-diffing from the new state against the same selection is a no-op.
	changes, err = resolver.Diff(nextModules, targetBundles)
	require.NoError(t, err)
	assert.Empty(t, changes)
}

func TestResolverDiffAtFixedPoint(t *testing.T) {
	resolver := NewResolver(testCatalog(t), false)

	for _, targetBundles := range [][]string{nil, {"crm"}, {"finance"}, {"crm", "finance"}} {
		expanded, err := resolver.Expand(targetBundles)
		require.NoError(t, err)

		changes, err := resolver.Diff(expanded, targetBundles)
		require.NoError(t, err)
		assert.Empty(t, changes)
	}
}

func TestResolverDiffStrict(t *testing.T) {
	resolver := NewResolver(testCatalog(t), true)

	_, err := resolver.Diff([]string{"sales"}, []string{"crm", "manufacturing"})
	assert.ErrorIs(t, err, ErrUnknownBundle)
}

func TestResolverRoundTrip(t *testing.T) {
	// Expand then infer back: the all-required policy recovers exactly the
	// selected bundles, even with a module shared across bundles.
	catalog, err := NewCatalog([]Bundle{
		{Key: "crm", DisplayName: "CRM", Modules: []string{"sales", "marketing"}},
		{Key: "finance", DisplayName: "Finance", Modules: []string{"accounting", "reports_analytics"}},
		{Key: "analytics", DisplayName: "Analytics", Modules: []string{"dashboards", "reports_analytics"}},
	})
	require.NoError(t, err)
	resolver := NewResolver(catalog, false)

	selections := [][]string{
		{"crm"},
		{"finance"},
		{"crm", "finance"},
		{"crm", "finance", "analytics"},
	}
	for _, selection := range selections {
		expanded, err := resolver.Expand(selection)
		require.NoError(t, err)
		assert.Equal(t, selection, resolver.ActiveBundles(expanded))
	}
}
