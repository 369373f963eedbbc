package database_test

import (
	"testing"

	"github.com/contractops/contract-gin/internal/config"
	"github.com/contractops/contract-gin/internal/database"
	"github.com/stretchr/testify/assert"
)

// TestBuildDSN 测试 DSN 构建
func TestBuildDSN(t *testing.T) {
	dsn := database.BuildDSN(config.DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "secret",
		DBName:   "contracts",
		SSLMode:  "disable",
	})
	assert.Equal(t, "host=localhost port=5432 user=postgres password=secret dbname=contracts sslmode=disable", dsn)
}

// TestGetPoolConfig 测试连接池默认配置
func TestGetPoolConfig(t *testing.T) {
	pool := database.GetPoolConfig()
	assert.Equal(t, 10, pool.MaxIdleConns)
	assert.Equal(t, 100, pool.MaxOpenConns)
	assert.Equal(t, 3600, pool.ConnMaxLifetime)
	assert.Equal(t, 600, pool.ConnMaxIdleTime)
}

// TestCheckHealth_NilDB 测试空连接的健康检查
func TestCheckHealth_NilDB(t *testing.T) {
	assert.False(t, database.CheckHealth(nil))
}
