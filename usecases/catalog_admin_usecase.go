package usecases

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/helixerp/entitlements-backend/models"
	"github.com/helixerp/entitlements-backend/repositories"
)

type bundleRepository interface {
	ListBundles(ctx context.Context, exec repositories.Executor) ([]models.Bundle, error)
	GetBundleByKey(ctx context.Context, exec repositories.Executor, key string) (models.Bundle, error)
	CreateBundle(ctx context.Context, exec repositories.Executor,
		input models.CreateBundleInput, newBundleId string) error
	UpdateBundle(ctx context.Context, exec repositories.Executor,
		input models.UpdateBundleInput) error
}

// CatalogAdminUsecase is the authoring side of the catalog, for deployments
// where bundles live in the service's database rather than a compiled-in
// table. Writes go through the same validation as catalog loading, so a
// bundle that could never load can never be stored.
type CatalogAdminUsecase struct {
	transactionFactory transactionFactory
	bundles            bundleRepository
}

func (uc CatalogAdminUsecase) ListBundles(ctx context.Context) ([]models.Bundle, error) {
	return uc.bundles.ListBundles(ctx, uc.transactionFactory.Executor())
}

func (uc CatalogAdminUsecase) CreateBundle(ctx context.Context,
	input models.CreateBundleInput,
) (models.Bundle, error) {
	if input.Key == "" || input.DisplayName == "" {
		return models.Bundle{}, errors.Wrap(models.BadParameterError,
			"bundle key and display name are required")
	}

	var created models.Bundle
	err := uc.transactionFactory.Transaction(ctx, func(tx repositories.Executor) error {
		existing, err := uc.bundles.ListBundles(ctx, tx)
		if err != nil {
			return err
		}

		// Validate the post-insert catalog as a whole: this rejects empty
		// module lists and duplicate keys with the same error taxonomy as
		// catalog loading.
		candidate := append(existing, models.Bundle{
			Key:         input.Key,
			DisplayName: input.DisplayName,
			Description: input.Description,
			Modules:     input.Modules,
		})
		if _, err := models.NewCatalog(candidate); err != nil {
			return err
		}

		if err := uc.bundles.CreateBundle(ctx, tx, input, uuid.NewString()); err != nil {
			return err
		}

		created, err = uc.bundles.GetBundleByKey(ctx, tx, input.Key)
		return err
	})
	if err != nil {
		return models.Bundle{}, err
	}
	return created, nil
}

func (uc CatalogAdminUsecase) UpdateBundle(ctx context.Context,
	input models.UpdateBundleInput,
) (models.Bundle, error) {
	var updated models.Bundle
	err := uc.transactionFactory.Transaction(ctx, func(tx repositories.Executor) error {
		existing, err := uc.bundles.GetBundleByKey(ctx, tx, input.Key)
		if err != nil {
			return err
		}

		if input.Modules != nil {
			existing.Modules = input.Modules
			if _, err := models.NewCatalog([]models.Bundle{existing}); err != nil {
				return err
			}
		}

		if err := uc.bundles.UpdateBundle(ctx, tx, input); err != nil {
			return err
		}

		updated, err = uc.bundles.GetBundleByKey(ctx, tx, input.Key)
		return err
	})
	if err != nil {
		return models.Bundle{}, err
	}
	return updated, nil
}
