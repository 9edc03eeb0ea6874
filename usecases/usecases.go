package usecases

import (
	"github.com/helixerp/entitlements-backend/repositories"
)

type Repositories struct {
	ExecutorGetter          repositories.ExecutorGetter
	CatalogRepository       repositories.CatalogRepository
	BundleDbRepository      repositories.BundleDbRepository
	EntitlementDbRepository repositories.EntitlementDbRepository
}

type Usecases struct {
	Repositories     Repositories
	strictBundleKeys bool
}

type Option func(*Usecases)

// WithStrictBundleKeys makes resolution fail on bundle keys absent from the
// catalog, instead of silently ignoring them.
func WithStrictBundleKeys(strict bool) Option {
	return func(u *Usecases) {
		u.strictBundleKeys = strict
	}
}

func NewUsecases(repos Repositories, opts ...Option) Usecases {
	u := Usecases{
		Repositories: repos,
	}
	for _, opt := range opts {
		opt(&u)
	}
	return u
}

func (u Usecases) NewEntitlementUsecase() EntitlementUsecase {
	return EntitlementUsecase{
		transactionFactory: u.Repositories.ExecutorGetter,
		catalogProvider:    u.Repositories.CatalogRepository,
		entitlements:       u.Repositories.EntitlementDbRepository,
		strict:             u.strictBundleKeys,
	}
}

func (u Usecases) NewCatalogAdminUsecase() CatalogAdminUsecase {
	return CatalogAdminUsecase{
		transactionFactory: u.Repositories.ExecutorGetter,
		bundles:            u.Repositories.BundleDbRepository,
	}
}
