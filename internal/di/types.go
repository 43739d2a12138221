/**
 * Package di provides dependency injection type definitions.
 *
 * This package defines the Container type which holds all application dependencies.
 * The Container is the single source of truth for all service instances and is
 * passed to the server for access to services.
 */
package di

import (
	"errors"

	"github.com/sameer10342432/realestate-tools/internal/database"
	"github.com/sameer10342432/realestate-tools/internal/modules/calculations"
	"github.com/sameer10342432/realestate-tools/internal/modules/comparison"
	"github.com/sameer10342432/realestate-tools/internal/modules/market"
	"github.com/sameer10342432/realestate-tools/internal/modules/projection"
	"github.com/sameer10342432/realestate-tools/internal/modules/reports"
	"github.com/sameer10342432/realestate-tools/internal/reliability"
	"github.com/sameer10342432/realestate-tools/internal/scheduler"
	"github.com/sameer10342432/realestate-tools/internal/workers"
)

// Container holds all application dependencies
type Container struct {
	// Databases
	ReportsDB *database.DB // reports.db - saved calculator runs
	CacheDB   *database.DB // cache.db - ephemeral projection results

	// Repositories
	ReportRepo       *reports.Repository
	CalculationCache *calculations.Cache

	// Services
	WorkerPool        *workers.WorkerPool
	ProjectionEngine  *projection.Engine
	ProjectionService *projection.Service
	Comparer          *comparison.Comparer
	MarketAnalyzer    *market.Analyzer
	ReportService     *reports.Service
	BackupService     *reliability.BackupService // nil when backups are not configured
	Scheduler         *scheduler.Scheduler
}

// Databases returns the open databases in a stable order
func (c *Container) Databases() []*database.DB {
	dbs := make([]*database.DB, 0, 2)
	for _, db := range []*database.DB{c.ReportsDB, c.CacheDB} {
		if db != nil {
			dbs = append(dbs, db)
		}
	}
	return dbs
}

// Close closes every open database
func (c *Container) Close() error {
	var errs []error
	for _, db := range c.Databases() {
		if err := db.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// JobInstances holds the scheduled jobs for manual triggering via API
type JobInstances struct {
	CacheCleanup  scheduler.Job
	WALCheckpoint scheduler.Job
	Backup        scheduler.Job // nil when backups are not configured
}

// All returns the registered jobs keyed by name
func (j *JobInstances) All() map[string]scheduler.Job {
	jobs := make(map[string]scheduler.Job)
	for _, job := range []scheduler.Job{j.CacheCleanup, j.WALCheckpoint, j.Backup} {
		if job != nil {
			jobs[job.Name()] = job
		}
	}
	return jobs
}
