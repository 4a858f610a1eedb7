package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/Astemirdum/lending-service/pkg/auth"
	"github.com/Astemirdum/lending-service/pkg/kafka"
	"github.com/Astemirdum/lending-service/pkg/logger"
	"github.com/Astemirdum/lending-service/pkg/postgres"
	"github.com/Astemirdum/lending-service/pkg/server"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"LENDING_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"LENDING_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE" default:"10s"`
}

func (s HTTPServer) Config() server.Config {
	return server.Config(s)
}

// Lending holds the loan policy and catalog tuning knobs.
type Lending struct {
	LoanDays       int           `yaml:"loanDays" envconfig:"LENDING_LOAN_DAYS" default:"14"`
	RenewalDays    int           `yaml:"renewalDays" envconfig:"LENDING_RENEWAL_DAYS" default:"7"`
	FinePerDay     float64       `yaml:"finePerDay" envconfig:"LENDING_FINE_PER_DAY" default:"1.0"`
	MaxRenewals    int           `yaml:"maxRenewals" envconfig:"LENDING_MAX_RENEWALS" default:"2"`
	SearchCacheTTL time.Duration `yaml:"searchCacheTTL" envconfig:"LENDING_SEARCH_CACHE_TTL" default:"30s"`
	// Seed defaults to true for memory storage and false otherwise.
	Seed *bool `yaml:"seed" envconfig:"LENDING_SEED"`
}

func (l Lending) SeedEnabled() bool {
	return l.Seed != nil && *l.Seed
}

type Config struct {
	Server   HTTPServer   `yaml:"server"`
	Storage  string       `yaml:"storage" envconfig:"LENDING_STORAGE" default:"memory"`
	Database postgres.DB  `yaml:"database"`
	Lending  Lending      `yaml:"lending"`
	Kafka    kafka.Config `yaml:"kafka"`
	Auth     auth.Config  `yaml:"auth"`
	Log      logger.Log   `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment. When LENDING_CONFIG_FILE names a
// YAML file, its values are applied on top of the environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		c, err := load(os.Getenv("LENDING_CONFIG_FILE"), ops...)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = c
		printConfig(cfg)
	})
	return cfg
}

func load(file string, ops ...Option) (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, errors.Wrap(err, "envconfig.Process")
	}
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, errors.Wrap(err, "read config file")
		}
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, errors.Wrap(err, "yaml.Unmarshal")
		}
	}
	for _, op := range ops {
		op(&c)
	}
	if c.Lending.Seed == nil {
		seed := c.Storage == StorageMemory
		c.Lending.Seed = &seed
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	switch c.Storage {
	case StorageMemory, StoragePostgres:
	default:
		return errors.Errorf("unknown storage %q", c.Storage)
	}
	if c.Lending.LoanDays <= 0 || c.Lending.RenewalDays <= 0 {
		return errors.New("loan and renewal days must be positive")
	}
	if c.Lending.FinePerDay < 0 {
		return errors.New("fine per day must not be negative")
	}
	if c.Auth.Secret == "" {
		return errors.New("JWT_SECRET must not be empty")
	}
	if c.Storage == StoragePostgres && c.Auth.Secret == auth.DevSecret {
		return errors.New("JWT_SECRET must be set when storage is postgres")
	}
	return nil
}

func printConfig(cfg *Config) {
	redacted := *cfg
	redacted.Database.Password = "***"
	redacted.Auth.Secret = "***"
	jscfg, _ := json.MarshalIndent(redacted, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
