package repositories

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/cockroachdb/errors"
	"github.com/guregu/null/v5"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/helixerp/entitlements-backend/models"
	"github.com/helixerp/entitlements-backend/pure_utils"
)

const catalogCacheKey = "catalog"

type httpBundle struct {
	Key         string      `json:"key"`
	DisplayName string      `json:"display_name"`
	Description null.String `json:"description"`
	Modules     []string    `json:"modules"`
}

// HttpCatalogRepository fetches the bundle catalog from the catalog admin
// API (GET {baseUrl}/categories) and caches the validated result for a TTL,
// so that concurrent resolutions share one immutable catalog value instead
// of refetching per call.
type HttpCatalogRepository struct {
	baseUrl string
	client  *http.Client
	cache   *expirable.LRU[string, models.Catalog]
}

func NewHttpCatalogRepository(baseUrl string, cacheTtl time.Duration) *HttpCatalogRepository {
	return &HttpCatalogRepository{
		baseUrl: baseUrl,
		client:  &http.Client{Timeout: 10 * time.Second},
		cache:   expirable.NewLRU[string, models.Catalog](1, nil, cacheTtl),
	}
}

func (repo *HttpCatalogRepository) GetCatalog(ctx context.Context) (models.Catalog, error) {
	if catalog, ok := repo.cache.Get(catalogCacheKey); ok {
		return catalog, nil
	}

	var catalog models.Catalog
	err := retry.Do(
		func() error {
			var err error
			catalog, err = repo.fetchCatalog(ctx)
			return err
		},
		retry.Attempts(3),
		retry.LastErrorOnly(true),
		retry.Delay(100*time.Millisecond),
		retry.Context(ctx),
	)
	if err != nil {
		return models.Catalog{}, err
	}

	repo.cache.Add(catalogCacheKey, catalog)
	return catalog, nil
}

func (repo *HttpCatalogRepository) fetchCatalog(ctx context.Context) (models.Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, repo.baseUrl+"/categories", nil)
	if err != nil {
		return models.Catalog{}, err
	}

	resp, err := repo.client.Do(req)
	if err != nil {
		return models.Catalog{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return models.Catalog{}, errors.Newf(
			"unexpected status code from catalog server: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Catalog{}, err
	}

	var bundles []httpBundle
	if err := json.Unmarshal(body, &bundles); err != nil {
		return models.Catalog{}, errors.Wrap(err, "could not decode catalog response")
	}

	return models.NewCatalog(pure_utils.Map(bundles, func(b httpBundle) models.Bundle {
		return models.Bundle{
			Key:         b.Key,
			DisplayName: b.DisplayName,
			Description: b.Description,
			Modules:     b.Modules,
		}
	}))
}
