// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"gorm.io/gorm"

	"github.com/spendview/backend/config"
	"github.com/spendview/backend/internal/application/adapter"
	"github.com/spendview/backend/internal/application/usecase/chart"
	"github.com/spendview/backend/internal/application/usecase/entries"
	"github.com/spendview/backend/internal/application/usecase/window"
	"github.com/spendview/backend/internal/infra/server/router"
	"github.com/spendview/backend/internal/integration/adapters"
	"github.com/spendview/backend/internal/integration/entrypoint/controller"
	"github.com/spendview/backend/internal/integration/entrypoint/middleware"
	"github.com/spendview/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// dbConn may be nil; the router then serves only the health endpoint.
// chartCache may be nil; chart building then skips memoization.
func NewInjector(
	cfg *config.Config,
	dbConn *gorm.DB,
	chartCache adapter.ChartCache,
	dbHealthChecker func() bool,
	cacheHealthChecker func() bool,
	now func() time.Time,
) *Injector {
	healthController := controller.NewHealthController(dbHealthChecker, cacheHealthChecker)

	if dbConn == nil {
		return &Injector{
			Config: cfg,
			Router: router.NewRouter(healthController, nil, nil, nil, nil),
		}
	}

	// Create repositories
	entryRepo := persistence.NewEntryRepository(dbConn)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)

	// Create use cases
	listEntriesUseCase := entries.NewListEntriesUseCase(entryRepo, now)
	searchEntriesUseCase := entries.NewSearchEntriesUseCase(entryRepo, now)
	syncEntriesUseCase := entries.NewSyncEntriesUseCase(entryRepo)
	getRangeUseCase := window.NewGetRangeUseCase(entryRepo, now)
	getChartUseCase := chart.NewGetChartUseCase(entryRepo, chartCache, now)

	// Create controllers
	entriesController := controller.NewEntriesController(
		listEntriesUseCase,
		searchEntriesUseCase,
		syncEntriesUseCase,
		getRangeUseCase,
	)
	chartController := controller.NewChartController(getChartUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var syncRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		syncRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		syncRateLimiter = middleware.NewRateLimiterWithConfig(cfg.Sync.MaxAttempts, cfg.Sync.WindowDuration)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(healthController, entriesController, chartController, syncRateLimiter, authMiddleware)

	return &Injector{
		Config: cfg,
		DB:     dbConn,
		Router: r,
	}
}
