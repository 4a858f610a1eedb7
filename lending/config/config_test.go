package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := load("")
	require.NoError(t, err)
	require.Equal(t, StorageMemory, c.Storage)
	require.Equal(t, "8080", c.Server.Port)
	require.Equal(t, 14, c.Lending.LoanDays)
	require.Equal(t, 2, c.Lending.MaxRenewals)
	require.True(t, c.Lending.SeedEnabled())

	sc := c.ServiceConfig()
	require.Equal(t, 14*24*time.Hour, sc.LoanPeriod)
	require.Equal(t, 7*24*time.Hour, sc.RenewalPeriod)
	require.Equal(t, 1.0, sc.FinePerDay)
	require.Equal(t, 30*time.Second, sc.SearchCacheTTL)
}

func TestLoad_EnvFileAndOptions(t *testing.T) {
	t.Setenv("LENDING_LOAN_DAYS", "21")
	t.Setenv("LENDING_FINE_PER_DAY", "0.5")
	t.Setenv("KAFKA_ADDRS", "kafka-1:9092,kafka-2:9092")

	file := filepath.Join(t.TempDir(), "lending.yaml")
	require.NoError(t, os.WriteFile(file, []byte("lending:\n  renewalDays: 3\nserver:\n  port: \"9090\"\n"), 0o600))

	c, err := load(file, WithLogLevel(zapcore.DebugLevel), WithWriteTimeout(time.Minute))
	require.NoError(t, err)
	require.Equal(t, 21, c.Lending.LoanDays)
	require.Equal(t, 3, c.Lending.RenewalDays)
	require.Equal(t, 0.5, c.Lending.FinePerDay)
	require.Equal(t, "9090", c.Server.Port)
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, c.Kafka.Addrs)
	require.True(t, c.Kafka.Enabled())
	require.Equal(t, zapcore.DebugLevel, c.Log.LogLevel)
	require.Equal(t, time.Minute, c.Server.WriteTimeout)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("LENDING_STORAGE", "mongo")
	_, err := load("")
	require.Error(t, err)

	_, err = load("", WithStorage(StoragePostgres))
	require.Error(t, err)
}

func TestLoad_PostgresRequiresSecret(t *testing.T) {
	t.Setenv("LENDING_STORAGE", StoragePostgres)
	_, err := load("")
	require.ErrorContains(t, err, "JWT_SECRET")

	t.Setenv("JWT_SECRET", "")
	_, err = load("", WithStorage(StorageMemory))
	require.ErrorContains(t, err, "JWT_SECRET")

	t.Setenv("JWT_SECRET", "0f9c2e7d41b8")
	c, err := load("")
	require.NoError(t, err)
	require.Equal(t, StoragePostgres, c.Storage)
	require.False(t, c.Lending.SeedEnabled())

	t.Setenv("LENDING_SEED", "true")
	c, err = load("")
	require.NoError(t, err)
	require.True(t, c.Lending.SeedEnabled())
}

func TestLoad_SeedFollowsStorage(t *testing.T) {
	c, err := load("")
	require.NoError(t, err)
	require.True(t, c.Lending.SeedEnabled())

	t.Setenv("LENDING_SEED", "false")
	c, err = load("")
	require.NoError(t, err)
	require.False(t, c.Lending.SeedEnabled())
}
