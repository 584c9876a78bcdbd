package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CATALOG_STORE_SEED", "false")
	t.Setenv("CATALOG_STORE_DELETE_POLICY", "restrict")
	t.Setenv("CATALOG_STORE_PAGE_SIZE", "50")
	t.Setenv("CATALOG_LOG_LEVEL", "debug")
	t.Setenv("CATALOG_LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.Store.Seed)
	assert.Equal(t, DeletePolicyRestrict, cfg.Store.DeletePolicy)
	assert.Equal(t, 50, cfg.Store.PageSize)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadClampsPageSize(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CATALOG_STORE_PAGE_SIZE", "500")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Store.PageSize)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"delete policy", "CATALOG_STORE_DELETE_POLICY", "cascade"},
		{"log level", "CATALOG_LOG_LEVEL", "loud"},
		{"log format", "CATALOG_LOG_FORMAT", "xml"},
		{"page size", "CATALOG_STORE_PAGE_SIZE", "many"},
		{"seed", "CATALOG_STORE_SEED", "perhaps"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdir(t, t.TempDir())
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
