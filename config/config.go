// Package config loads service configuration from the environment, an
// optional .env file and an optional YAML seed table.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"bankstream/domain/ledger"
)

const (
	KafkaClientKafkaGo = "kafka-go"
	KafkaClientSarama  = "sarama"
)

type Config struct {
	GRPCAddr  string `env:"BANK_GRPC_ADDR" envDefault:":6565"`
	AdminAddr string `env:"BANK_ADMIN_ADDR" envDefault:":9090"`

	LogLevel  string `env:"BANK_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"BANK_LOG_FORMAT" envDefault:"json"`

	WithdrawUnit int64         `env:"BANK_WITHDRAW_UNIT" envDefault:"10"`
	WithdrawPace time.Duration `env:"BANK_WITHDRAW_PACE" envDefault:"2s"`
	SeedFile     string        `env:"BANK_SEED_FILE"`

	AuthTokenPrefix string   `env:"BANK_AUTH_TOKEN_PREFIX" envDefault:"valid"`
	AuthJWTSecret   string   `env:"BANK_AUTH_JWT_SECRET"`
	AuthMethods     []string `env:"BANK_AUTH_METHODS" envDefault:"/bank.v1.BankService/Withdraw" envSeparator:","`

	RateLimitRPS   float64 `env:"BANK_RATE_LIMIT_RPS" envDefault:"0"`
	RateLimitBurst int     `env:"BANK_RATE_LIMIT_BURST" envDefault:"0"`

	KeepaliveTime    time.Duration `env:"BANK_KEEPALIVE_TIME" envDefault:"10s"`
	KeepaliveTimeout time.Duration `env:"BANK_KEEPALIVE_TIMEOUT" envDefault:"1s"`
	MaxIdle          time.Duration `env:"BANK_MAX_IDLE" envDefault:"25s"`

	OutboxDir         string        `env:"BANK_OUTBOX_DIR"`
	KafkaBrokers      []string      `env:"BANK_KAFKA_BROKERS" envSeparator:","`
	KafkaTopic        string        `env:"BANK_KAFKA_TOPIC" envDefault:"bank.ledger.events"`
	KafkaClient       string        `env:"BANK_KAFKA_CLIENT" envDefault:"kafka-go"`
	BroadcastInterval time.Duration `env:"BANK_BROADCAST_INTERVAL" envDefault:"250ms"`

	OTelEndpoint    string        `env:"BANK_OTEL_ENDPOINT"`
	ShutdownTimeout time.Duration `env:"BANK_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads .env (if present) and then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.WithdrawUnit <= 0 {
		return fmt.Errorf("BANK_WITHDRAW_UNIT must be positive, got %d", c.WithdrawUnit)
	}
	if c.WithdrawPace < 0 {
		return fmt.Errorf("BANK_WITHDRAW_PACE must not be negative, got %s", c.WithdrawPace)
	}
	switch c.KafkaClient {
	case KafkaClientKafkaGo, KafkaClientSarama:
	default:
		return fmt.Errorf("BANK_KAFKA_CLIENT must be %q or %q, got %q", KafkaClientKafkaGo, KafkaClientSarama, c.KafkaClient)
	}
	return nil
}

// Seed returns the initial balance table: the seed file when one is
// configured, otherwise the built-in accounts 1..5.
func (c Config) Seed() (map[int32]int64, error) {
	if c.SeedFile == "" {
		return ledger.DefaultSeed(), nil
	}
	return LoadSeed(c.SeedFile)
}

type seedFile struct {
	Accounts map[int32]int64 `yaml:"accounts"`
}

// LoadSeed reads a YAML table of the form
//
//	accounts:
//	  1: 100
//	  2: 200
func LoadSeed(path string) (map[int32]int64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	for acct, bal := range f.Accounts {
		if acct <= 0 {
			return nil, fmt.Errorf("seed file: account number %d must be positive", acct)
		}
		if bal < 0 {
			return nil, fmt.Errorf("seed file: account %d has negative balance %d", acct, bal)
		}
	}
	if f.Accounts == nil {
		f.Accounts = map[int32]int64{}
	}
	return f.Accounts, nil
}
