package repositories

import (
	"context"

	"github.com/guregu/null/v5"

	"github.com/helixerp/entitlements-backend/models"
)

// CatalogRepository provides the bundle catalog a Resolver works against.
// Implementations must return a catalog that is immutable and safe to share;
// the catalog for a given deployment is expected to change rarely if at all.
type CatalogRepository interface {
	GetCatalog(ctx context.Context) (models.Catalog, error)
}

// StaticCatalogRepository serves a compiled-in catalog. It is the historical
// catalog source, kept for self-hosted deployments that do not run the admin
// API, and for tests.
type StaticCatalogRepository struct {
	catalog models.Catalog
}

func NewStaticCatalogRepository(bundles []models.Bundle) (StaticCatalogRepository, error) {
	catalog, err := models.NewCatalog(bundles)
	if err != nil {
		return StaticCatalogRepository{}, err
	}
	return StaticCatalogRepository{catalog: catalog}, nil
}

func (repo StaticCatalogRepository) GetCatalog(ctx context.Context) (models.Catalog, error) {
	return repo.catalog, nil
}

// DefaultBundles is the built-in bundle table used when no other catalog
// source is configured. Note that reports_analytics is deliberately shared
// between the finance and analytics bundles.
func DefaultBundles() []models.Bundle {
	return []models.Bundle{
		{
			Key:         "crm",
			DisplayName: "CRM",
			Description: null.StringFrom("Customer relationship management"),
			Modules:     []string{"sales", "marketing", "contacts"},
		},
		{
			Key:         "erp",
			DisplayName: "ERP",
			Description: null.StringFrom("Core resource planning"),
			Modules:     []string{"inventory", "purchasing", "projects"},
		},
		{
			Key:         "manufacturing",
			DisplayName: "Manufacturing",
			Modules:     []string{"production", "quality", "maintenance"},
		},
		{
			Key:         "finance",
			DisplayName: "Finance",
			Description: null.StringFrom("Accounting and financial reporting"),
			Modules:     []string{"accounting", "invoicing", "reports_analytics"},
		},
		{
			Key:         "analytics",
			DisplayName: "Analytics",
			Modules:     []string{"dashboards", "reports_analytics"},
		},
	}
}
