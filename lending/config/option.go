package config

import (
	"time"

	"github.com/Astemirdum/lending-service/lending/internal/service"
	"go.uber.org/zap/zapcore"
)

type Option func(*Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithWriteTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Server.WriteTimeout = d
	}
}

func WithStorage(storage string) Option {
	return func(c *Config) {
		c.Storage = storage
	}
}

// ServiceConfig converts the loan policy into service settings.
func (c *Config) ServiceConfig() service.Config {
	const day = 24 * time.Hour
	sc := service.DefaultConfig()
	sc.LoanPeriod = time.Duration(c.Lending.LoanDays) * day
	sc.RenewalPeriod = time.Duration(c.Lending.RenewalDays) * day
	sc.FinePerDay = c.Lending.FinePerDay
	sc.MaxRenewals = c.Lending.MaxRenewals
	sc.SearchCacheTTL = c.Lending.SearchCacheTTL
	sc.Auth = c.Auth
	return sc
}
