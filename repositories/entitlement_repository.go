package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/helixerp/entitlements-backend/models"
	"github.com/helixerp/entitlements-backend/repositories/dbmodels"
)

type EntitlementDbRepository struct{}

func (repo EntitlementDbRepository) ListOrganizationEntitlements(
	ctx context.Context,
	exec Executor,
	organizationId uuid.UUID,
) ([]models.OrganizationEntitlement, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectOrganizationEntitlementColumn...).
		From(dbmodels.TABLE_ORGANIZATION_ENTITLEMENTS).
		Where(squirrel.Eq{"organization_id": organizationId}).
		OrderBy("module_key ASC")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptOrganizationEntitlement)
}

// ListEnabledModules returns the module keys currently enabled for an
// organization: its entitlement snapshot.
func (repo EntitlementDbRepository) ListEnabledModules(
	ctx context.Context,
	exec Executor,
	organizationId uuid.UUID,
) ([]string, error) {
	entitlements, err := repo.ListOrganizationEntitlements(ctx, exec, organizationId)
	if err != nil {
		return nil, err
	}

	enabled := make([]string, 0, len(entitlements))
	for _, entitlement := range entitlements {
		if entitlement.Status == models.Enabled {
			enabled = append(enabled, entitlement.ModuleKey)
		}
	}
	return enabled, nil
}

// ApplyChanges upserts one row per change record, keyed by
// (organization_id, module_key). The caller is expected to pass a
// transaction executor so the whole change list is applied atomically per
// organization.
func (repo EntitlementDbRepository) ApplyChanges(
	ctx context.Context,
	exec Executor,
	organizationId uuid.UUID,
	changes []models.ModuleChange,
) error {
	for _, change := range changes {
		err := ExecBuilder(
			ctx,
			exec,
			NewQueryBuilder().
				Insert(dbmodels.TABLE_ORGANIZATION_ENTITLEMENTS).
				Columns("id", "organization_id", "module_key", "status").
				Values(uuid.NewString(), organizationId, change.ModuleKey, change.Status.String()).
				Suffix(`ON CONFLICT (organization_id, module_key)
					DO UPDATE SET status = EXCLUDED.status, updated_at = NOW()`),
		)
		if err != nil {
			return err
		}
	}
	return nil
}
