package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	_, v := NormalizeAndValidate(Default())
	assert.True(t, v.OK(), v.Errors)
	assert.Empty(t, v.Warnings)
	assert.Equal(t, 6, Default().Scrape.Workers)
	assert.Equal(t, 30, Default().Sources.EJobs.MaxListings)
}

func TestEnsureUserConfigWritesDefaultsOnce(t *testing.T) {
	dir := t.TempDir()

	path, created, err := EnsureUserConfig(dir)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, filepath.Join(dir, FileName), path)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, created, err = EnsureUserConfig(dir)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(`
app:
  basename: jobs
sources:
  amazon:
    enabled: false
    result_limit: 25
  ejobs:
    max_listings: 50
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "jobs", cfg.App.Basename)
	assert.Equal(t, ".", cfg.App.OutputDir)
	assert.False(t, cfg.Sources.Amazon.Enabled)
	assert.Equal(t, 25, cfg.Sources.Amazon.ResultLimit)
	assert.Equal(t, "ROU", cfg.Sources.Amazon.Country)
	assert.Equal(t, 50, cfg.Sources.EJobs.MaxListings)
	assert.Equal(t, "https://www.ejobs.ro/locuri-munca", cfg.Sources.EJobs.URL)
}

func TestNormalizeAndValidate(t *testing.T) {
	cfg := Default()
	cfg.App.Basename = "out/jobs"
	cfg.App.LogLevel = "LOUD"
	cfg.Scrape.Workers = 0
	cfg.Sources.BestJobs.URL = "/relative"
	cfg.Sources.EJobs.MaxListings = 0
	cfg.Sources.Amazon.TimeoutSeconds = 0

	_, v := NormalizeAndValidate(cfg)
	require.False(t, v.OK())
	assert.Len(t, v.Errors, 6)
	assert.Error(t, v.Err())
	assert.Error(t, SaveAtomic(filepath.Join(t.TempDir(), FileName), cfg))
}

func TestNormalizeTrimsAndWarns(t *testing.T) {
	cfg := Default()
	cfg.App.LogLevel = " DEBUG "
	cfg.App.OutputDir = "  "
	cfg.Scrape.Workers = 64
	cfg.Sources.EJobs.Enabled = false
	cfg.Sources.BestJobs.Enabled = false
	cfg.Sources.Keysight.Enabled = false
	cfg.Sources.Amazon.Enabled = false

	out, v := NormalizeAndValidate(cfg)
	assert.True(t, v.OK(), v.Errors)
	assert.Len(t, v.Warnings, 2)
	assert.Equal(t, "debug", out.App.LogLevel)
	assert.Equal(t, ".", out.App.OutputDir)
}

func TestOverlayEnv(t *testing.T) {
	env := map[string]string{
		EnvOutputDir: "/tmp/out",
		EnvWorkers:   "3",
		EnvLogLevel:  "warn",
	}
	cfg := Default()
	require.NoError(t, OverlayEnv(&cfg, func(k string) string { return env[k] }))

	assert.Equal(t, "/tmp/out", cfg.App.OutputDir)
	assert.Equal(t, 3, cfg.Scrape.Workers)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "romania_jobs", cfg.App.Basename)

	env[EnvWorkers] = "many"
	assert.Error(t, OverlayEnv(&cfg, func(k string) string { return env[k] }))
}

func TestSaveAtomicKeepsBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, SaveAtomic(path, Default()))

	cfg := Default()
	cfg.App.Basename = "second"
	require.NoError(t, SaveAtomic(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "second", got.App.Basename)

	bak, err := Load(path + ".bak")
	require.NoError(t, err)
	assert.Equal(t, "romania_jobs", bak.App.Basename)
}
