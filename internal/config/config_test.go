package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloud-gen/internal/cloud"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cloudgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvPath, "")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	path := writeFile(t, `
cloud:
  size: 256
  density: 8
batch:
  dir: out
  parallel: true
  seed: 99
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	want := cloud.DefaultParams()
	want.Size = 256
	want.Density = 8
	assert.Equal(t, want, cfg.Cloud)
	assert.Equal(t, BatchConfig{Dir: "out", Parallel: true, Seed: 99}, cfg.Batch)
}

func TestLoadFromEnv(t *testing.T) {
	path := writeFile(t, "cloud:\n  spread: 20\n")
	t.Setenv(EnvPath, path)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 20.0, cfg.Cloud.Spread)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "cloud: [not, a, map]\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "cloud:\n  size: -4\n"))
	assert.Error(t, err)
}
