package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "Red Lenic", cfg.Store.Name)
	assert.Equal(t, 10, cfg.Catalog.ProductsPerLeaf)
	assert.Equal(t, 2, cfg.Catalog.FeaturedPerLeaf)
	assert.Equal(t, 50000, cfg.Catalog.MinPrice)
	assert.Equal(t, 500000, cfg.Catalog.PriceSpan)
	assert.Equal(t, "memory", cfg.Cart.Backend)
	assert.Equal(t, "redlenic_cart", cfg.Cart.StorageKey)
	assert.False(t, cfg.NeedsRedis())
}

func TestLoad_FileOverrides(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
catalog:
  seed: 42
cart:
  backend: redis
redis:
  host: cache
  port: 6380
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, int64(42), cfg.Catalog.Seed)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr())
	assert.True(t, cfg.NeedsRedis())
	assert.Equal(t, "localhost", cfg.Server.Host, "unset keys keep defaults")
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("STORE_WHATSAPP_NUMBER", "5491100000000")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "5491100000000", cfg.Store.WhatsAppNumber)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "an explicit path must exist")

	_, err = Load(writeConfig(t, "cart:\n  backend: sqlite\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown cart backend")
}

func TestLoad_RejectsEmptyPageSizes(t *testing.T) {
	for _, content := range []string{
		"catalog:\n  home_featured: 0\n",
		"catalog:\n  category_preview: -1\n",
	} {
		_, err := Load(writeConfig(t, content))
		require.Error(t, err, content)
		assert.Contains(t, err.Error(), "must be positive")
	}
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, Name: "shop", User: "u", Password: "p"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=shop sslmode=disable", d.DSN())
}
