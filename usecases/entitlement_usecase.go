package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/helixerp/entitlements-backend/models"
	"github.com/helixerp/entitlements-backend/repositories"
)

type transactionFactory interface {
	Executor() repositories.Executor
	Transaction(ctx context.Context, fn func(tx repositories.Executor) error) error
}

type catalogProvider interface {
	GetCatalog(ctx context.Context) (models.Catalog, error)
}

type entitlementRepository interface {
	ListOrganizationEntitlements(ctx context.Context, exec repositories.Executor,
		organizationId uuid.UUID) ([]models.OrganizationEntitlement, error)
	ListEnabledModules(ctx context.Context, exec repositories.Executor,
		organizationId uuid.UUID) ([]string, error)
	ApplyChanges(ctx context.Context, exec repositories.Executor,
		organizationId uuid.UUID, changes []models.ModuleChange) error
}

// EntitlementUsecase exposes the module-bundle resolution operations: what an
// organization currently holds, what a bundle selection would change, and
// applying that change.
type EntitlementUsecase struct {
	transactionFactory transactionFactory
	catalogProvider    catalogProvider
	entitlements       entitlementRepository
	strict             bool
}

func (uc EntitlementUsecase) GetCatalog(ctx context.Context) ([]models.Bundle, error) {
	catalog, err := uc.catalogProvider.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Bundles(), nil
}

func (uc EntitlementUsecase) newResolver(ctx context.Context) (models.Resolver, error) {
	catalog, err := uc.catalogProvider.GetCatalog(ctx)
	if err != nil {
		return models.Resolver{}, err
	}
	return models.NewResolver(catalog, uc.strict), nil
}

// GetEntitlementSnapshot returns the modules currently enabled for an
// organization, plus the bundles inferred as active from them.
func (uc EntitlementUsecase) GetEntitlementSnapshot(
	ctx context.Context,
	organizationId uuid.UUID,
) (models.EntitlementSnapshot, error) {
	resolver, err := uc.newResolver(ctx)
	if err != nil {
		return models.EntitlementSnapshot{}, err
	}

	enabledModules, err := uc.entitlements.ListEnabledModules(ctx,
		uc.transactionFactory.Executor(), organizationId)
	if err != nil {
		return models.EntitlementSnapshot{}, err
	}

	return models.EntitlementSnapshot{
		OrganizationId: organizationId,
		EnabledModules: enabledModules,
		ActiveBundles:  resolver.ActiveBundles(enabledModules),
	}, nil
}

// PreviewBundleSelection computes the change list moving the organization to
// the given bundle selection, without applying it.
func (uc EntitlementUsecase) PreviewBundleSelection(
	ctx context.Context,
	organizationId uuid.UUID,
	bundleKeys []string,
) ([]models.ModuleChange, error) {
	resolver, err := uc.newResolver(ctx)
	if err != nil {
		return nil, err
	}

	enabledModules, err := uc.entitlements.ListEnabledModules(ctx,
		uc.transactionFactory.Executor(), organizationId)
	if err != nil {
		return nil, err
	}

	return resolver.Diff(enabledModules, bundleKeys)
}

// ApplyBundleSelection computes the change list and persists it. Snapshot
// read, diff and writes share one transaction, so a concurrent apply for the
// same organization cannot interleave between diff and upsert.
func (uc EntitlementUsecase) ApplyBundleSelection(
	ctx context.Context,
	organizationId uuid.UUID,
	bundleKeys []string,
) ([]models.ModuleChange, error) {
	resolver, err := uc.newResolver(ctx)
	if err != nil {
		return nil, err
	}

	var changes []models.ModuleChange
	err = uc.transactionFactory.Transaction(ctx, func(tx repositories.Executor) error {
		enabledModules, err := uc.entitlements.ListEnabledModules(ctx, tx, organizationId)
		if err != nil {
			return err
		}

		changes, err = resolver.Diff(enabledModules, bundleKeys)
		if err != nil {
			return err
		}

		return uc.entitlements.ApplyChanges(ctx, tx, organizationId, changes)
	})
	if err != nil {
		return nil, err
	}
	return changes, nil
}
