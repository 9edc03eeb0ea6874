package cmd

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/helixerp/entitlements-backend/api"
	"github.com/helixerp/entitlements-backend/infra"
	"github.com/helixerp/entitlements-backend/repositories"
	"github.com/helixerp/entitlements-backend/usecases"
	"github.com/helixerp/entitlements-backend/utils"
)

func RunServer() error {
	// This is where we read the environment variables and set up the
	// configuration for the application.
	apiConfig := api.Configuration{
		Env:     utils.GetEnv("ENV", "development"),
		AppName: "entitlements-backend",
		Port:    utils.GetRequiredEnv[string]("PORT"),
	}
	pgConfig := infra.PgConfig{
		ConnectionString:   utils.GetEnv("PG_CONNECTION_STRING", ""),
		Database:           utils.GetEnv("PG_DATABASE", "entitlements"),
		Hostname:           utils.GetEnv("PG_HOSTNAME", ""),
		Password:           utils.GetEnv("PG_PASSWORD", ""),
		Port:               utils.GetEnv("PG_PORT", "5432"),
		User:               utils.GetEnv("PG_USER", ""),
		SslMode:            utils.GetEnv("PG_SSL_MODE", "prefer"),
		MaxPoolConnections: utils.GetEnv("PG_MAX_POOL_SIZE", infra.DEFAULT_MAX_CONNECTIONS),
	}
	serverConfig := struct {
		catalogSource    string
		catalogApiUrl    string
		catalogCacheTtl  int
		loggingFormat    string
		strictBundleKeys bool
	}{
		catalogSource:    utils.GetEnv("CATALOG_SOURCE", "static"),
		catalogApiUrl:    utils.GetEnv("CATALOG_API_URL", ""),
		catalogCacheTtl:  utils.GetEnv("CATALOG_CACHE_TTL_SECOND", 60),
		loggingFormat:    utils.GetEnv("LOGGING_FORMAT", "text"),
		strictBundleKeys: utils.GetEnv("STRICT_BUNDLE_KEYS", false),
	}
	// Catalog authoring endpoints only make sense when the catalog lives in
	// this service's database.
	apiConfig.WithCatalogAdmin = serverConfig.catalogSource == "postgres"

	logger := utils.NewLogger(serverConfig.loggingFormat)
	ctx, stop := signal.NotifyContext(
		utils.StoreLoggerInContext(context.Background(), logger),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := infra.NewPostgresConnectionPool(ctx, pgConfig.GetConnectionString(),
		pgConfig.MaxPoolConnections)
	if err != nil {
		return err
	}
	executorGetter := repositories.NewExecutorGetter(pool)

	catalogRepository, err := makeCatalogRepository(
		serverConfig.catalogSource,
		serverConfig.catalogApiUrl,
		time.Duration(serverConfig.catalogCacheTtl)*time.Second,
		executorGetter,
	)
	if err != nil {
		return err
	}

	uc := usecases.NewUsecases(usecases.Repositories{
		ExecutorGetter:    executorGetter,
		CatalogRepository: catalogRepository,
	}, usecases.WithStrictBundleKeys(serverConfig.strictBundleKeys))

	router := api.InitRouter(ctx, apiConfig, uc)
	server := api.NewServer(router, apiConfig)

	go func() {
		logger.InfoContext(ctx, "starting server", "port", apiConfig.Port,
			"catalog_source", serverConfig.catalogSource)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "error serving the app", "error", err.Error())
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.ErrorContext(ctx, "error shutting down the server", "error", err.Error())
	}

	return nil
}

// makeCatalogRepository selects where the bundle catalog comes from: the
// compiled-in table, the catalog admin API, or this service's own database.
func makeCatalogRepository(
	source string,
	catalogApiUrl string,
	cacheTtl time.Duration,
	executorGetter repositories.ExecutorGetter,
) (repositories.CatalogRepository, error) {
	switch source {
	case "static":
		return repositories.NewStaticCatalogRepository(repositories.DefaultBundles())
	case "http":
		if catalogApiUrl == "" {
			return nil, errors.New("CATALOG_API_URL is required when CATALOG_SOURCE is http")
		}
		return repositories.NewHttpCatalogRepository(catalogApiUrl, cacheTtl), nil
	case "postgres":
		return repositories.NewPgCatalogRepository(executorGetter), nil
	default:
		return nil, errors.Newf("unknown catalog source %q", source)
	}
}
