// Package di provides dependency injection for repositories and services.
package di

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/sameer10342432/realestate-tools/internal/config"
	"github.com/sameer10342432/realestate-tools/internal/modules/calculations"
	"github.com/sameer10342432/realestate-tools/internal/modules/comparison"
	"github.com/sameer10342432/realestate-tools/internal/modules/market"
	"github.com/sameer10342432/realestate-tools/internal/modules/projection"
	"github.com/sameer10342432/realestate-tools/internal/modules/reports"
	"github.com/sameer10342432/realestate-tools/internal/reliability"
	"github.com/sameer10342432/realestate-tools/internal/scheduler"
	"github.com/sameer10342432/realestate-tools/internal/workers"
)

// InitializeRepositories creates the repositories backed by the open databases
func InitializeRepositories(container *Container, cfg *config.Config, log zerolog.Logger) error {
	if container == nil || container.ReportsDB == nil || container.CacheDB == nil {
		return fmt.Errorf("databases must be initialized first")
	}

	container.ReportRepo = reports.NewRepository(container.ReportsDB.Conn(), log)
	container.CalculationCache = calculations.NewCache(
		container.CacheDB.Conn(),
		time.Duration(cfg.CacheTTLMinutes)*time.Minute,
		log,
	)

	return nil
}

// InitializeServices creates the calculators, report service, backups and scheduler
func InitializeServices(container *Container, cfg *config.Config, log zerolog.Logger) error {
	if container.ReportRepo == nil || container.CalculationCache == nil {
		return fmt.Errorf("repositories must be initialized first")
	}

	container.WorkerPool = workers.NewWorkerPool(cfg.WorkerCount)
	container.ProjectionEngine = projection.NewEngine(container.WorkerPool)
	container.ProjectionService = projection.NewService(container.ProjectionEngine, container.CalculationCache, log)
	container.Comparer = comparison.NewComparer(container.ProjectionEngine, container.WorkerPool, log)
	container.MarketAnalyzer = market.NewAnalyzer(log)
	container.ReportService = reports.NewService(
		container.ReportRepo,
		container.ProjectionService,
		container.Comparer,
		container.MarketAnalyzer,
		log,
	)

	if cfg.Backup.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		store, err := reliability.NewS3Store(ctx, cfg.Backup, log)
		if err != nil {
			return fmt.Errorf("failed to create backup store: %w", err)
		}
		container.BackupService = reliability.NewBackupService(
			container.Databases(),
			store,
			cfg.DataDir,
			cfg.Backup.RetentionDays,
			log,
		)
	}

	container.Scheduler = scheduler.New(log)

	log.Info().
		Int("workers", container.WorkerPool.Size()).
		Bool("backups", container.BackupService != nil).
		Msg("Services initialized")

	return nil
}
