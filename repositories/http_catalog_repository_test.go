package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixerp/entitlements-backend/models"
)

const testCatalogUrl = "https://admin.helixerp.test"

func TestHttpCatalogRepositoryGetCatalog(t *testing.T) {
	defer gock.Off()

	gock.New(testCatalogUrl).
		Get("/categories").
		Reply(200).
		JSON([]map[string]any{
			{
				"key":          "crm",
				"display_name": "CRM",
				"description":  "Customer relationship management",
				"modules":      []string{"sales", "marketing"},
			},
			{
				"key":          "finance",
				"display_name": "Finance",
				"modules":      []string{"accounting", "reports_analytics"},
			},
		})

	repo := NewHttpCatalogRepository(testCatalogUrl, time.Minute)
	catalog, err := repo.GetCatalog(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"sales", "marketing"}, catalog.ModulesOf("crm"))
	assert.Equal(t, []string{"sales", "marketing", "accounting", "reports_analytics"},
		catalog.AllModules())
	assert.True(t, gock.IsDone())
}

func TestHttpCatalogRepositoryCachesCatalog(t *testing.T) {
	defer gock.Off()

	// A single HTTP exchange is mocked: the second call must hit the cache.
	gock.New(testCatalogUrl).
		Get("/categories").
		Times(1).
		Reply(200).
		JSON([]map[string]any{
			{"key": "crm", "display_name": "CRM", "modules": []string{"sales"}},
		})

	repo := NewHttpCatalogRepository(testCatalogUrl, time.Minute)

	first, err := repo.GetCatalog(context.Background())
	require.NoError(t, err)
	second, err := repo.GetCatalog(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.AllModules(), second.AllModules())
	assert.True(t, gock.IsDone())
}

func TestHttpCatalogRepositoryServerError(t *testing.T) {
	defer gock.Off()

	// Three attempts, all failing: retries are exhausted.
	gock.New(testCatalogUrl).
		Get("/categories").
		Times(3).
		Reply(500)

	repo := NewHttpCatalogRepository(testCatalogUrl, time.Minute)
	_, err := repo.GetCatalog(context.Background())
	assert.Error(t, err)
}

func TestHttpCatalogRepositoryInvalidCatalog(t *testing.T) {
	defer gock.Off()

	gock.New(testCatalogUrl).
		Get("/categories").
		Times(3).
		Reply(200).
		JSON([]map[string]any{
			{"key": "empty", "display_name": "Empty", "modules": []string{}},
		})

	repo := NewHttpCatalogRepository(testCatalogUrl, time.Minute)
	_, err := repo.GetCatalog(context.Background())
	assert.ErrorIs(t, err, models.ErrInvalidCatalog)
}
