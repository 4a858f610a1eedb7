package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/lending-service/pkg/auth"
	"github.com/Astemirdum/lending-service/pkg/kafka"
	"github.com/Astemirdum/lending-service/pkg/logger"
	"github.com/Astemirdum/lending-service/pkg/postgres"
	"github.com/Astemirdum/lending-service/pkg/server"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `envconfig:"STATS_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `envconfig:"STATS_HTTP_PORT" default:"8090"`
	ReadTimeout  time.Duration `envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `envconfig:"HTTP_WRITE" default:"10s"`
}

type Config struct {
	Server        HTTPServer
	Database      postgres.DB
	Kafka         kafka.Config
	ConsumerGroup string `envconfig:"STATS_CONSUMER_GROUP" default:"lending-stats"`
	Auth          auth.Config
	Log           logger.Log
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig() *Config {
	once.Do(func() {
		var config Config
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
		printConfig(cfg)
	})
	return cfg
}

func (c *Config) ServerConfig() server.Config {
	return server.Config(c.Server)
}

func printConfig(cfg *Config) {
	redacted := *cfg
	redacted.Database.Password = "***"
	redacted.Auth.Secret = "***"
	jscfg, _ := json.MarshalIndent(redacted, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
