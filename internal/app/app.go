package app

import (
	"context"
	"fmt"
	"runtime"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/guttosm/aquapulse/config"
	"github.com/guttosm/aquapulse/internal/api"
	"github.com/guttosm/aquapulse/internal/fleet"
	"github.com/guttosm/aquapulse/internal/history"
	"github.com/guttosm/aquapulse/internal/logger"
	"github.com/guttosm/aquapulse/internal/service"
	"github.com/guttosm/aquapulse/internal/storage"
)

// maxPrimeParallel caps how many station records are built concurrently
// while priming the fleet at startup.
const maxPrimeParallel = 4

// InitializeApp sets up all application dependencies and returns a fully
// configured Gin router, a cleanup function for graceful shutdown, and any
// error encountered during initialization.
//
// Responsibilities:
//   - Loads the fleet manifest and builds the class registry.
//   - Constructs the history builder bounded by the global cutoff date.
//   - Wires the memoizing station repository and the fleet aggregation
//     service (whose cache listens to the repository's dirty signal).
//   - Configures the Gin router with all API routes and health probes.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	manifest, err := fleet.LoadManifest()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load fleet manifest: %w", err)
	}
	registry := fleet.NewRegistry(manifest)

	builder, err := history.NewBuilder(registry, cfg.Telemetry.CutoffDate, cfg.Telemetry.SyntheticStart)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load curated history: %w", err)
	}

	repo := storage.NewStationRepository(registry, builder)
	stations := service.NewStationService(repo)
	fleetSvc := service.NewFleetService(repo, registry.IDs(), cfg.Telemetry.BaseCurrency)

	handler := api.NewHandler(stations, fleetSvc, cfg.Telemetry.BaseCurrency)
	router := api.NewRouter(handler)

	healthHandler := api.NewHealthHandler(func() error {
		if repo == nil {
			return fmt.Errorf("repository not wired")
		}
		return nil
	})
	healthHandler.Register(router)

	// Warm the repository up front; the fleet service would otherwise do
	// it lazily on the first unscoped aggregation.
	if err := PrimeFleet(context.Background(), repo, registry.IDs()); err != nil {
		return nil, nil, err
	}

	cleanup := func() {}
	return router, cleanup, nil
}

// PrimeFleet eagerly builds every registered station's record so the first
// dashboard request is served from warm caches.
//
// Builds fan out over an errgroup with a small concurrency cap; the
// repository serializes its own state, so parallel Gets are safe.
func PrimeFleet(ctx context.Context, repo storage.StationRepository, ids []string) error {
	maxParallel := maxPrimeParallel
	if c := runtime.NumCPU(); c < maxParallel {
		maxParallel = c
	}

	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxParallel)

	for _, id := range ids {
		sid := id
		sem <- struct{}{}

		g.Go(func() error {
			defer func() { <-sem }()
			if err := gctx.Err(); err != nil {
				return err
			}
			rec := repo.Get(sid)
			logger.L().Debug().Str("station", sid).Int("daily", len(rec.Daily)).Msg("station primed")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("fleet priming: %w", err)
	}
	logger.L().Info().Int("stations", len(ids)).Msg("fleet primed")
	return nil
}
