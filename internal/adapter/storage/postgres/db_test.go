package postgres

import (
	"testing"
	"time"

	"dashqard-redemption/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDatabaseConfig() config.DatabaseConfig {
	return config.DatabaseConfig{
		Host:            "localhost",
		Port:            5432,
		User:            "redeemer",
		Password:        "s3cr:t@",
		DBName:          "dashqard_redemption",
		SSLMode:         "disable",
		MaxConns:        20,
		MinConns:        5,
		ConnMaxLifetime: 30 * time.Minute,
		ApplicationName: "dashqard-redemption",
	}
}

func TestPoolConfig(t *testing.T) {
	poolCfg, err := poolConfig(testDatabaseConfig())
	require.NoError(t, err)

	assert.Equal(t, int32(20), poolCfg.MaxConns)
	assert.Equal(t, int32(5), poolCfg.MinConns)
	assert.Equal(t, 30*time.Minute, poolCfg.MaxConnLifetime)

	conn := poolCfg.ConnConfig
	assert.Equal(t, "redeemer", conn.User)
	assert.Equal(t, "s3cr:t@", conn.Password)
	assert.Equal(t, "dashqard_redemption", conn.Database)
	assert.Equal(t, "dashqard-redemption", conn.RuntimeParams["application_name"])
}

func TestPoolConfig_ClampsConnectionCounts(t *testing.T) {
	cfg := testDatabaseConfig()
	cfg.MaxConns = 1
	cfg.MinConns = 8

	poolCfg, err := poolConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, int32(auditPoolFloor), poolCfg.MaxConns)
	assert.Equal(t, int32(auditPoolFloor), poolCfg.MinConns)
}

func TestPoolConfig_KeepsDriverLifetimeWhenUnset(t *testing.T) {
	cfg := testDatabaseConfig()
	cfg.ConnMaxLifetime = 0

	poolCfg, err := poolConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, poolCfg.MaxConnLifetime)
}

func TestPoolConfig_InvalidSSLMode(t *testing.T) {
	cfg := testDatabaseConfig()
	cfg.SSLMode = "sometimes"

	_, err := poolConfig(cfg)
	assert.Error(t, err)
}
