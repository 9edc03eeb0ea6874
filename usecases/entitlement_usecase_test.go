package usecases

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixerp/entitlements-backend/models"
	"github.com/helixerp/entitlements-backend/repositories"
)

type fakeTransactionFactory struct{}

func (fakeTransactionFactory) Executor() repositories.Executor {
	return nil
}

func (fakeTransactionFactory) Transaction(ctx context.Context, fn func(tx repositories.Executor) error) error {
	return fn(nil)
}

type fakeEntitlementRepository struct {
	entitlements map[uuid.UUID][]models.OrganizationEntitlement
}

func newFakeEntitlementRepository() *fakeEntitlementRepository {
	return &fakeEntitlementRepository{
		entitlements: make(map[uuid.UUID][]models.OrganizationEntitlement),
	}
}

func (f *fakeEntitlementRepository) ListOrganizationEntitlements(ctx context.Context,
	exec repositories.Executor, organizationId uuid.UUID,
) ([]models.OrganizationEntitlement, error) {
	return f.entitlements[organizationId], nil
}

func (f *fakeEntitlementRepository) ListEnabledModules(ctx context.Context,
	exec repositories.Executor, organizationId uuid.UUID,
) ([]string, error) {
	var enabled []string
	for _, entitlement := range f.entitlements[organizationId] {
		if entitlement.Status == models.Enabled {
			enabled = append(enabled, entitlement.ModuleKey)
		}
	}
	return enabled, nil
}

func (f *fakeEntitlementRepository) ApplyChanges(ctx context.Context,
	exec repositories.Executor, organizationId uuid.UUID, changes []models.ModuleChange,
) error {
	for _, change := range changes {
		updated := false
		for i, entitlement := range f.entitlements[organizationId] {
			if entitlement.ModuleKey == change.ModuleKey {
				f.entitlements[organizationId][i].Status = change.Status
				updated = true
				break
			}
		}
		if !updated {
			f.entitlements[organizationId] = append(f.entitlements[organizationId],
				models.OrganizationEntitlement{
					OrganizationId: organizationId,
					ModuleKey:      change.ModuleKey,
					Status:         change.Status,
				})
		}
	}
	return nil
}

func testUsecase(t *testing.T, repo *fakeEntitlementRepository, strict bool) EntitlementUsecase {
	t.Helper()
	catalogRepository, err := repositories.NewStaticCatalogRepository([]models.Bundle{
		{Key: "crm", DisplayName: "CRM", Modules: []string{"sales", "marketing"}},
		{Key: "finance", DisplayName: "Finance", Modules: []string{"accounting", "reports_analytics"}},
		{Key: "analytics", DisplayName: "Analytics", Modules: []string{"dashboards", "reports_analytics"}},
	})
	require.NoError(t, err)

	return EntitlementUsecase{
		transactionFactory: fakeTransactionFactory{},
		catalogProvider:    catalogRepository,
		entitlements:       repo,
		strict:             strict,
	}
}

func TestGetEntitlementSnapshot(t *testing.T) {
	organizationId := uuid.New()
	repo := newFakeEntitlementRepository()
	repo.entitlements[organizationId] = []models.OrganizationEntitlement{
		{OrganizationId: organizationId, ModuleKey: "sales", Status: models.Enabled},
		{OrganizationId: organizationId, ModuleKey: "marketing", Status: models.Enabled},
		{OrganizationId: organizationId, ModuleKey: "accounting", Status: models.Disabled},
	}
	uc := testUsecase(t, repo, false)

	snapshot, err := uc.GetEntitlementSnapshot(context.Background(), organizationId)
	require.NoError(t, err)

	assert.Equal(t, organizationId, snapshot.OrganizationId)
	assert.Equal(t, []string{"sales", "marketing"}, snapshot.EnabledModules)
	assert.Equal(t, []string{"crm"}, snapshot.ActiveBundles)
}

func TestPreviewBundleSelection(t *testing.T) {
	organizationId := uuid.New()
	repo := newFakeEntitlementRepository()
	repo.entitlements[organizationId] = []models.OrganizationEntitlement{
		{OrganizationId: organizationId, ModuleKey: "sales", Status: models.Enabled},
		{OrganizationId: organizationId, ModuleKey: "marketing", Status: models.Enabled},
	}
	uc := testUsecase(t, repo, false)

	changes, err := uc.PreviewBundleSelection(context.Background(), organizationId,
		[]string{"finance"})
	require.NoError(t, err)

	assert.Equal(t, []models.ModuleChange{
		{ModuleKey: "sales", Status: models.Disabled},
		{ModuleKey: "marketing", Status: models.Disabled},
		{ModuleKey: "accounting", Status: models.Enabled},
		{ModuleKey: "reports_analytics", Status: models.Enabled},
	}, changes)

	// Preview never mutates the stored state.
	enabled, err := repo.ListEnabledModules(context.Background(), nil, organizationId)
	require.NoError(t, err)
	assert.Equal(t, []string{"sales", "marketing"}, enabled)
}

func TestApplyBundleSelection(t *testing.T) {
	organizationId := uuid.New()
	repo := newFakeEntitlementRepository()
	uc := testUsecase(t, repo, false)
	ctx := context.Background()

	changes, err := uc.ApplyBundleSelection(ctx, organizationId, []string{"crm"})
	require.NoError(t, err)
	assert.Equal(t, []models.ModuleChange{
		{ModuleKey: "sales", Status: models.Enabled},
		{ModuleKey: "marketing", Status: models.Enabled},
	}, changes)

	// Applying the same selection again converges to a no-op.
	changes, err = uc.ApplyBundleSelection(ctx, organizationId, []string{"crm"})
	require.NoError(t, err)
	assert.Empty(t, changes)

	// Switching the selection disables the old modules and enables the new.
	changes, err = uc.ApplyBundleSelection(ctx, organizationId, []string{"analytics"})
	require.NoError(t, err)
	assert.Equal(t, []models.ModuleChange{
		{ModuleKey: "sales", Status: models.Disabled},
		{ModuleKey: "marketing", Status: models.Disabled},
		{ModuleKey: "reports_analytics", Status: models.Enabled},
		{ModuleKey: "dashboards", Status: models.Enabled},
	}, changes)

	snapshot, err := uc.GetEntitlementSnapshot(ctx, organizationId)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"reports_analytics", "dashboards"}, snapshot.EnabledModules)
	assert.Equal(t, []string{"analytics"}, snapshot.ActiveBundles)
}

func TestApplyBundleSelectionStrict(t *testing.T) {
	organizationId := uuid.New()
	repo := newFakeEntitlementRepository()
	uc := testUsecase(t, repo, true)

	_, err := uc.ApplyBundleSelection(context.Background(), organizationId,
		[]string{"crm", "manufacturing"})
	assert.ErrorIs(t, err, models.ErrUnknownBundle)

	// Nothing was written.
	enabled, err := repo.ListEnabledModules(context.Background(), nil, organizationId)
	require.NoError(t, err)
	assert.Empty(t, enabled)
}

func TestGetCatalog(t *testing.T) {
	uc := testUsecase(t, newFakeEntitlementRepository(), false)

	bundles, err := uc.GetCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, bundles, 3)
	assert.Equal(t, "crm", bundles[0].Key)
}
