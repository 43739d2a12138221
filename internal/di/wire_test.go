package di

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sameer10342432/realestate-tools/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		DataDir:         t.TempDir(),
		Port:            8080,
		LogLevel:        "info",
		CacheTTLMinutes: 60,
		WorkerCount:     4,
		Backup:          &config.BackupConfig{Schedule: "0 0 3 * * *"},
	}
}

func TestInitializeDatabases(t *testing.T) {
	cfg := testConfig(t)

	container, err := InitializeDatabases(cfg, zerolog.Nop())
	require.NoError(t, err)
	defer container.Close()

	assert.NotNil(t, container.ReportsDB)
	assert.NotNil(t, container.CacheDB)
	assert.Len(t, container.Databases(), 2)

	assert.FileExists(t, filepath.Join(cfg.DataDir, "reports.db"))
	assert.FileExists(t, filepath.Join(cfg.DataDir, "cache.db"))

	// Schemas are applied
	var count int
	require.NoError(t, container.ReportsDB.Conn().QueryRow("SELECT COUNT(*) FROM reports").Scan(&count))
	require.NoError(t, container.CacheDB.Conn().QueryRow("SELECT COUNT(*) FROM cache").Scan(&count))
}

func TestInitializeRepositories_RequiresDatabases(t *testing.T) {
	err := InitializeRepositories(&Container{}, testConfig(t), zerolog.Nop())
	assert.Error(t, err)
}

func TestInitializeServices_RequiresRepositories(t *testing.T) {
	err := InitializeServices(&Container{}, testConfig(t), zerolog.Nop())
	assert.Error(t, err)
}

func TestRegisterJobs_RequiresScheduler(t *testing.T) {
	_, err := RegisterJobs(&Container{}, testConfig(t), zerolog.Nop())
	assert.Error(t, err)
}

func TestWire(t *testing.T) {
	cfg := testConfig(t)

	container, jobs, err := Wire(cfg, zerolog.Nop())
	require.NoError(t, err)
	defer container.Close()

	assert.NotNil(t, container.ReportRepo)
	assert.NotNil(t, container.CalculationCache)
	assert.NotNil(t, container.ProjectionService)
	assert.NotNil(t, container.Comparer)
	assert.NotNil(t, container.MarketAnalyzer)
	assert.NotNil(t, container.ReportService)
	assert.Nil(t, container.BackupService, "backups are off without a bucket")
	assert.Equal(t, 4, container.WorkerPool.Size())

	require.NotNil(t, jobs)
	assert.Nil(t, jobs.Backup)
	assert.ElementsMatch(t, []string{"cache_cleanup", "wal_checkpoint"}, container.Scheduler.JobNames())

	all := jobs.All()
	assert.Len(t, all, 2)
	require.NoError(t, container.Scheduler.RunNow(all["cache_cleanup"]))
	require.NoError(t, container.Scheduler.RunNow(all["wal_checkpoint"]))
}

func TestWire_WithBackups(t *testing.T) {
	cfg := testConfig(t)
	cfg.Backup = &config.BackupConfig{
		Bucket:          "backups",
		Endpoint:        "http://127.0.0.1:9000",
		Region:          "auto",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		Schedule:        "0 0 3 * * *",
		RetentionDays:   30,
	}

	container, jobs, err := Wire(cfg, zerolog.Nop())
	require.NoError(t, err)
	defer container.Close()

	assert.NotNil(t, container.BackupService)
	require.NotNil(t, jobs.Backup)
	assert.Contains(t, container.Scheduler.JobNames(), "backup")
}

func TestContainer_CloseEmpty(t *testing.T) {
	assert.NoError(t, (&Container{}).Close())
}
