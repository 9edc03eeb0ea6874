package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/helixerp/entitlements-backend/models"
	"github.com/helixerp/entitlements-backend/repositories/dbmodels"
)

type BundleDbRepository struct{}

// ListBundles returns bundles in creation order. That order is the catalog
// insertion order, and through it the deterministic diff order.
func (repo BundleDbRepository) ListBundles(ctx context.Context, exec Executor) ([]models.Bundle, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectBundleColumn...).
		From(dbmodels.TABLE_BUNDLES).
		OrderBy("created_at ASC")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptBundle)
}

func (repo BundleDbRepository) GetBundleByKey(ctx context.Context, exec Executor, key string) (models.Bundle, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectBundleColumn...).
			From(dbmodels.TABLE_BUNDLES).
			Where(squirrel.Eq{"key": key}),
		dbmodels.AdaptBundle,
	)
}

func (repo BundleDbRepository) CreateBundle(ctx context.Context, exec Executor,
	input models.CreateBundleInput, newBundleId string,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_BUNDLES).
			Columns("id", "key", "display_name", "description", "modules").
			Values(newBundleId, input.Key, input.DisplayName, input.Description, input.Modules),
	)
}

func (repo BundleDbRepository) UpdateBundle(ctx context.Context, exec Executor,
	input models.UpdateBundleInput,
) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_BUNDLES).
		Where(squirrel.Eq{"key": input.Key}).
		Set("updated_at", squirrel.Expr("NOW()"))

	if input.DisplayName != nil {
		query = query.Set("display_name", *input.DisplayName)
	}
	if input.Description.Valid {
		query = query.Set("description", input.Description)
	}
	if input.Modules != nil {
		query = query.Set("modules", input.Modules)
	}

	return ExecBuilder(ctx, exec, query)
}

// PgCatalogRepository is the CatalogRepository implementation backed by the
// service's own bundles table, for deployments that author the catalog
// through the admin endpoints.
type PgCatalogRepository struct {
	executorGetter ExecutorGetter
	bundles        BundleDbRepository
}

func NewPgCatalogRepository(executorGetter ExecutorGetter) PgCatalogRepository {
	return PgCatalogRepository{
		executorGetter: executorGetter,
	}
}

func (repo PgCatalogRepository) GetCatalog(ctx context.Context) (models.Catalog, error) {
	bundles, err := repo.bundles.ListBundles(ctx, repo.executorGetter.Executor())
	if err != nil {
		return models.Catalog{}, fmt.Errorf("could not list bundles: %w", err)
	}
	return models.NewCatalog(bundles)
}
