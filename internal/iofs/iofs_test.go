package iofs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/baactools/baacprep/internal/iofs"
	"github.com/baactools/baacprep/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirs(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, iofs.EnsureDirs(home))

	for _, dir := range []string{
		config.ConfigDir(home),
		config.CacheDir(home),
		config.LogDir(home),
	} {
		info, err := os.Stat(dir)
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir(), dir)
	}

	// idempotent
	assert.NoError(t, iofs.EnsureDirs(home))
}

func TestEnsureConfigFile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, iofs.EnsureDirs(home))
	require.NoError(t, iofs.EnsureConfigFile(home))

	data, err := os.ReadFile(config.ConfigFilePath(home))
	require.NoError(t, err)
	assert.Equal(t, iofs.ConfigYAML, string(data))

	// existing file is not overwritten
	custom := []byte("log:\n  level: debug\n")
	require.NoError(t,
		os.WriteFile(config.ConfigFilePath(home), custom, 0644))
	require.NoError(t, iofs.EnsureConfigFile(home))
	data, err = os.ReadFile(config.ConfigFilePath(home))
	require.NoError(t, err)
	assert.Equal(t, custom, data)
}

func TestEnsureDatasetsFile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, iofs.EnsureDirs(home))
	require.NoError(t, iofs.EnsureDatasetsFile(home))

	data, err := os.ReadFile(config.DatasetsFilePath(home))
	require.NoError(t, err)
	assert.Contains(t, string(data), "caracteristiques:")
	assert.Contains(t, string(data), "usagers:")
}

func TestEnsureConfigFileFailure(t *testing.T) {
	home := t.TempDir()
	// config dir missing and unreachable: make a file where the
	// directory should be
	require.NoError(t,
		os.MkdirAll(filepath.Dir(config.ConfigDir(home)), 0755))
	require.NoError(t,
		os.WriteFile(config.ConfigDir(home), []byte("x"), 0644))

	err := iofs.EnsureConfigFile(home)
	assert.Error(t, err)
}
