package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mibanco/fintech/pkg/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 100, cfg.RateLimit.MaxRequests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, "savings", cfg.Products.DefaultKind)
	assert.True(t, decimal.NewFromInt(5).Equal(cfg.Products.SavingsRate))
	assert.True(t, decimal.NewFromInt(50).Equal(cfg.Products.OverdraftLimit))
	assert.Equal(t, 12, cfg.Products.CertificateTermMonths)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("PRODUCT_DEFAULT_KIND", "checking")
	t.Setenv("PRODUCT_OVERDRAFT_LIMIT", "75.50")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "checking", cfg.Products.DefaultKind)
	assert.Equal(t, "75.5", cfg.Products.OverdraftLimit.String())
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
}

func TestLoadRejectsUnknownKind(t *testing.T) {
	t.Setenv("PRODUCT_DEFAULT_KIND", "mortgage")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env.test")
	require.NoError(t, os.WriteFile(path, []byte("LOG_PREFIX=[bank]\n"), 0o600))
	t.Setenv("LOG_PREFIX", "")
	require.NoError(t, os.Unsetenv("LOG_PREFIX"))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "[bank]", cfg.Log.Prefix)
}

func TestLoadEnvFile_NamedByEnvFileVar(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bank.env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_PREFIX=[from-var]\n"), 0o600))
	t.Setenv("LOG_PREFIX", "")
	require.NoError(t, os.Unsetenv("LOG_PREFIX"))
	t.Setenv(config.EnvFileVar, path)

	cfg, err := config.LoadEnvFile(".env")
	require.NoError(t, err)
	assert.Equal(t, "[from-var]", cfg.Log.Prefix)
}

func TestLoadEnvFile_MissingExplicitFile(t *testing.T) {
	t.Setenv(config.EnvFileVar, filepath.Join(t.TempDir(), "absent.env"))

	_, err := config.LoadEnvFile(".env")
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.EnvFileVar)
}

func TestLoadEnvFile_MissingFallbackUsesDefaults(t *testing.T) {
	t.Setenv(config.EnvFileVar, "")

	cfg, err := config.LoadEnvFile(".env.does-not-exist")
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.Port)
}

