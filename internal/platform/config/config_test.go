package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMap(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := FromMap(map[string]string{})
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Server.Addr)
		assert.Equal(t, DriverMemory, cfg.Storage.Driver)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)
		assert.Equal(t, "speakerreg.audit", cfg.Audit.KafkaTopic)
		assert.Equal(t, int32(3), cfg.Audit.KafkaPartitions)
		assert.Equal(t, int16(1), cfg.Audit.KafkaReplication)
		assert.False(t, cfg.Audit.KafkaEnabled())
	})

	t.Run("nested prefixes", func(t *testing.T) {
		cfg, err := FromMap(map[string]string{
			"SPEAKERREG_ADDR":                    ":9090",
			"SPEAKERREG_ADMIN_TOKEN":             "secret",
			"SPEAKERREG_STORAGE_DRIVER":          "Postgres",
			"SPEAKERREG_POSTGRES_DSN":            "postgres://localhost/speakers",
			"SPEAKERREG_POSTGRES_MAX_OPEN_CONNS": "25",
			"SPEAKERREG_AUDIT_KAFKA_BROKERS":     "k1:9092,k2:9092",
		})
		require.NoError(t, err)
		assert.Equal(t, ":9090", cfg.Server.Addr)
		assert.Equal(t, "secret", cfg.Server.AdminToken)
		assert.Equal(t, DriverPostgres, cfg.Storage.Driver)
		assert.Equal(t, 25, cfg.Postgres.MaxOpenConns)
		assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Audit.KafkaBrokers)
		assert.True(t, cfg.Audit.KafkaEnabled())
	})

	t.Run("postgres driver requires a dsn", func(t *testing.T) {
		_, err := FromMap(map[string]string{"SPEAKERREG_STORAGE_DRIVER": "postgres"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SPEAKERREG_POSTGRES_DSN")
	})

	t.Run("redis driver requires a url", func(t *testing.T) {
		_, err := FromMap(map[string]string{"SPEAKERREG_STORAGE_DRIVER": "redis"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SPEAKERREG_REDIS_URL")
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := FromMap(map[string]string{"SPEAKERREG_STORAGE_DRIVER": "sqlite"})
		require.Error(t, err)
	})

	t.Run("malformed duration", func(t *testing.T) {
		_, err := FromMap(map[string]string{"SPEAKERREG_READ_TIMEOUT": "soon"})
		require.Error(t, err)
	})
}
