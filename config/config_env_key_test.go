package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"redis": map[string]any{
			"catalogTtl": "5m",
		},
		"auth": map[string]any{
			"adminEmails": []any{},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "REDIS_CATALOGTTL", want: "redis.catalogTtl"},
		{envKey: "AUTH_ADMINEMAILS", want: "auth.adminEmails"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

const testYAML = `
env:
  serviceName: cakeshop
  log:
    level: info
http:
  port: 8080
database:
  driver: sqlite
  sqlitePath: file:test.db
redis:
  catalogTtl: 5m
auth:
  adminEmails:
    - boss@cakeshop.test
`

func TestLoadWithEnv_FileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unittest.yaml"), []byte(testYAML), 0o600))
	t.Chdir(dir)

	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("REDIS_CATALOGTTL", "90s")

	cfg, err := LoadWithEnv[Config]("unittest")
	require.NoError(t, err)

	assert.Equal(t, "cakeshop", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	require.NotNil(t, cfg.Redis)
	assert.Equal(t, 90*time.Second, cfg.Redis.CatalogTTL)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, []string{"boss@cakeshop.test"}, cfg.Auth.AdminEmails)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 5, cfg.Catalog.FeaturedLimit)
	assert.Equal(t, defaultAccessTokenTTL, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, defaultQRCodeSize, cfg.QRCode.Size)
	assert.Nil(t, cfg.Redis)
}

func TestIsAdminEmail(t *testing.T) {
	cfg := &Config{Auth: &AuthConfig{AdminEmails: []string{" Boss@CakeShop.test "}}}

	assert.True(t, cfg.IsAdminEmail("boss@cakeshop.test"))
	assert.False(t, cfg.IsAdminEmail("guest@cakeshop.test"))
	assert.False(t, (&Config{}).IsAdminEmail("boss@cakeshop.test"))
}
