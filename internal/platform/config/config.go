// Package config loads process configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Storage drivers accepted by SPEAKERREG_STORAGE_DRIVER.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Config is the root configuration for the speaker registration server.
type Config struct {
	Server   Server         `envPrefix:"SPEAKERREG_"`
	Log      LogConfig      `envPrefix:"SPEAKERREG_LOG_"`
	Storage  StorageConfig  `envPrefix:"SPEAKERREG_STORAGE_"`
	Postgres PostgresConfig `envPrefix:"SPEAKERREG_POSTGRES_"`
	Redis    RedisConfig    `envPrefix:"SPEAKERREG_REDIS_"`
	Audit    AuditConfig    `envPrefix:"SPEAKERREG_AUDIT_"`
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string        `env:"ADDR" envDefault:":8080"`
	AdminToken      string        `env:"ADMIN_TOKEN"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

type LogConfig struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"json"`
}

// StorageConfig selects the speaker store. The breaker guards postgres and
// redis; the memory store cannot fail.
type StorageConfig struct {
	Driver           string        `env:"DRIVER" envDefault:"memory"`
	BreakerThreshold int           `env:"BREAKER_THRESHOLD" envDefault:"5"`
	BreakerCooldown  time.Duration `env:"BREAKER_COOLDOWN" envDefault:"30s"`
}

type PostgresConfig struct {
	DSN             string        `env:"DSN"`
	MaxOpenConns    int           `env:"MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns    int           `env:"MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME" envDefault:"30m"`
	EnsureSchema    bool          `env:"ENSURE_SCHEMA" envDefault:"true"`
}

type RedisConfig struct {
	URL          string        `env:"URL"`
	PoolSize     int           `env:"POOL_SIZE" envDefault:"10"`
	MinIdleConns int           `env:"MIN_IDLE_CONNS" envDefault:"2"`
	DialTimeout  time.Duration `env:"DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"3s"`
	SpeakerTTL   time.Duration `env:"SPEAKER_TTL" envDefault:"0s"`
}

// AuditConfig selects the audit sink. Without brokers, events stay in memory.
type AuditConfig struct {
	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"KAFKA_TOPIC" envDefault:"speakerreg.audit"`
	// Used only when the topic has to be created at startup.
	KafkaPartitions  int32 `env:"KAFKA_PARTITIONS" envDefault:"3"`
	KafkaReplication int16 `env:"KAFKA_REPLICATION" envDefault:"1"`
	QueueSize        int   `env:"QUEUE_SIZE" envDefault:"1024"`
}

// KafkaEnabled reports whether audit events go to Kafka.
func (a AuditConfig) KafkaEnabled() bool {
	return len(a.KafkaBrokers) > 0
}

// FromEnv parses and validates configuration from the process environment.
func FromEnv() (Config, error) {
	return parse(env.Options{})
}

// FromMap parses configuration from the given variables only.
func FromMap(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field requirements env tags cannot express.
func (c Config) Validate() error {
	var errs []error
	switch c.Storage.Driver {
	case DriverMemory:
	case DriverPostgres:
		if c.Postgres.DSN == "" {
			errs = append(errs, errors.New("SPEAKERREG_POSTGRES_DSN is required for the postgres driver"))
		}
	case DriverRedis:
		if c.Redis.URL == "" {
			errs = append(errs, errors.New("SPEAKERREG_REDIS_URL is required for the redis driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown storage driver %q", c.Storage.Driver))
	}
	if c.Audit.QueueSize <= 0 {
		errs = append(errs, errors.New("SPEAKERREG_AUDIT_QUEUE_SIZE must be positive"))
	}
	return errors.Join(errs...)
}
