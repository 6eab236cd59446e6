package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	StoreDynamoDB = "dynamodb"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
	StoreFile     = "file"
)

type Config struct {
	Server   Server
	Store    Store
	DynamoDB DynamoDB
	SQL      SQL
	Logger   Logger
	Cache    Cache
	Kafka    Kafka
	Catalog  Catalog
}

type Server struct {
	Port    string `env:"HTTP_PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"release"`
}

func (s Server) Address() string { return ":" + s.Port }

type Store struct {
	Driver   string `env:"STORE_DRIVER" envDefault:"dynamodb"`
	DataFile string `env:"DATA_FILE" envDefault:"data/equipments.json"`
}

type DynamoDB struct {
	Region          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	Endpoint        string `env:"DYNAMODB_ENDPOINT"`
	Table           string `env:"EQUIPMENTS_TABLE" envDefault:"equipments"`
	CreateTable     bool   `env:"DYNAMODB_CREATE_TABLE" envDefault:"false"`
}

type SQL struct {
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"data/equipamentos.db"`
	PostgresDSN string `env:"POSTGRES_DSN"`
}

type Logger struct {
	Level  string `env:"LOGGER_LEVEL" envDefault:"info"`
	AsJSON bool   `env:"LOGGER_AS_JSON" envDefault:"false"`
}

type Cache struct {
	Size int           `env:"VIEW_CACHE_SIZE" envDefault:"256"`
	TTL  time.Duration `env:"VIEW_CACHE_TTL" envDefault:"30s"`
}

type Kafka struct {
	Brokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	Topic   string   `env:"KAFKA_TOPIC" envDefault:"equipment.changed"`
}

func (k Kafka) Enabled() bool { return len(k.Brokers) > 0 }

type Catalog struct {
	StrictSchema bool `env:"SCHEMA_STRICT" envDefault:"false"`
	PageSize     int  `env:"PAGE_SIZE" envDefault:"9"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	const op = "config.Load"

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))
	switch c.Store.Driver {
	case StoreDynamoDB, StoreSQLite, StoreMemory, StoreFile:
	case StorePostgres:
		if c.SQL.PostgresDSN == "" {
			return fmt.Errorf("POSTGRES_DSN is required when STORE_DRIVER=%s", StorePostgres)
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Catalog.PageSize <= 0 {
		return fmt.Errorf("PAGE_SIZE must be positive, got %d", c.Catalog.PageSize)
	}
	if c.Cache.Size < 0 {
		return fmt.Errorf("VIEW_CACHE_SIZE must not be negative, got %d", c.Cache.Size)
	}
	return nil
}
