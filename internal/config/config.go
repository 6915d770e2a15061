// Package config loads nodewatch settings from NODEWATCH_* environment variables.
package config

import (
	"time"

	"github.com/gabapcia/nodewatch/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. NODEWATCH_RPC_ENDPOINT.
const Prefix = "NODEWATCH"

type (
	Log struct {
		Level  string `envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
		Format string `envconfig:"FORMAT" default:"json" validate:"oneof=json console"`
	}

	RPC struct {
		Endpoint string        `envconfig:"ENDPOINT" default:"http://127.0.0.1:8545" validate:"required,http_url"`
		Timeout  time.Duration `envconfig:"TIMEOUT" default:"5s" validate:"gt=0"`
		RetryMax int           `envconfig:"RETRY_MAX" default:"2" validate:"gte=0"`
	}

	Peers struct {
		PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"10s" validate:"gt=0"`
		ListenAddr   string        `envconfig:"LISTEN_ADDR" default:":3009" validate:"required,hostname_port"`
	}

	Scan struct {
		Address       string `envconfig:"ADDRESS" validate:"omitempty,eth_addr"`
		StartBlock    uint64 `envconfig:"START_BLOCK" default:"0"`
		EndBlock      string `envconfig:"END_BLOCK" default:"latest" validate:"required,number|eq=latest"`
		BlockAttempts uint   `envconfig:"BLOCK_ATTEMPTS" default:"1" validate:"gte=1"`
	}

	// Redis is disabled when Addr is empty.
	Redis struct {
		Addr     string `envconfig:"ADDR"`
		Username string `envconfig:"USERNAME"`
		Password string `envconfig:"PASSWORD"`
		DB       int    `envconfig:"DB" default:"0" validate:"gte=0"`
	}

	// Kafka is disabled when Brokers is empty.
	Kafka struct {
		Brokers []string `envconfig:"BROKERS"`
		Topic   string   `envconfig:"TOPIC" default:"nodewatch.transactions"`
	}

	Telemetry struct {
		Enabled     bool   `envconfig:"ENABLED" default:"false"`
		ServiceName string `envconfig:"SERVICE_NAME" default:"nodewatch" validate:"required"`
	}

	Config struct {
		Log       Log       `envconfig:"LOG"`
		RPC       RPC       `envconfig:"RPC"`
		Peers     Peers     `envconfig:"PEERS"`
		Scan      Scan      `envconfig:"SCAN"`
		Redis     Redis     `envconfig:"REDIS"`
		Kafka     Kafka     `envconfig:"KAFKA"`
		Telemetry Telemetry `envconfig:"TELEMETRY"`
	}
)

// RedisEnabled reports whether a Redis address was configured.
func (c Config) RedisEnabled() bool {
	return c.Redis.Addr != ""
}

// KafkaEnabled reports whether at least one broker was configured.
func (c Config) KafkaEnabled() bool {
	return len(c.Kafka.Brokers) > 0
}

// Load reads and validates the configuration.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
