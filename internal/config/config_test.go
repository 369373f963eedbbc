package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/contractops/contract-gin/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefault 测试默认配置
func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "contracts", cfg.Database.DBName)
	assert.Equal(t, "contract-gin", cfg.JWT.Issuer)
	assert.Equal(t, 24, cfg.JWT.TTLHours)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

// TestLoad_FromFile 测试从配置文件加载
func TestLoad_FromFile(t *testing.T) {
	content := `
env: production
server:
  host: 127.0.0.1
  port: 9090
database:
  host: db.internal
  dbname: contracts_prod
jwt:
  secret: super-secret
  ttl_hours: 12
log:
  level: error
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "contracts_prod", cfg.Database.DBName)
	assert.Equal(t, "super-secret", cfg.JWT.Secret)
	assert.Equal(t, 12, cfg.JWT.TTLHours)
	assert.Equal(t, "error", cfg.Log.Level)

	// 未写进文件的字段回落到默认值
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "contract-gin", cfg.JWT.Issuer)
}

// TestLoad_MissingFile 测试指定的配置文件不存在
func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}

// TestLoad_EnvOverride 测试环境变量覆盖
func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("APP_SERVER_PORT", "7070")
	t.Setenv("APP_JWT_SECRET", "from-env")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
}

// TestIsProduction 测试环境判断
func TestIsProduction(t *testing.T) {
	assert.False(t, config.IsProduction(nil))
	assert.False(t, config.IsProduction(&config.Config{Env: "development"}))
	assert.True(t, config.IsProduction(&config.Config{Env: "production"}))
}
