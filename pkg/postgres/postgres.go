package postgres

import (
	"context"
	"embed"
	"fmt"
	"net"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

type DB struct {
	Host     string `yaml:"host" envconfig:"DB_HOST" default:"localhost"`
	Port     string `yaml:"port" envconfig:"DB_PORT" default:"5432"`
	Username string `yaml:"user" envconfig:"DB_USER" default:"postgres"`
	Password string `yaml:"password" envconfig:"DB_PASSWORD"`
	NameDB   string `yaml:"dbname" envconfig:"DB_NAME" default:"lending"`
	SSLMode  string `yaml:"sslmode" envconfig:"DB_SSLMODE" default:"disable"`
}

func (db *DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		db.Username, db.Password, net.JoinHostPort(db.Host, db.Port), db.NameDB, db.SSLMode)
}

type Option func(*options)

type options struct {
	versionTable string
}

// WithVersionTable keeps goose's applied-version bookkeeping in table, so
// services sharing one database track their migrations apart.
func WithVersionTable(table string) Option {
	return func(o *options) { o.versionTable = table }
}

// NewPostgresDB opens a pgx-backed pool and applies the embedded goose
// migrations found at the root of files.
func NewPostgresDB(ctx context.Context, cfg *DB, files embed.FS, opts ...Option) (*sqlx.DB, error) {
	o := options{versionTable: "goose_db_version"}
	for _, opt := range opts {
		opt(&o)
	}
	db, err := sqlx.Open("pgx", cfg.DSN())
	if err != nil {
		return nil, errors.Wrap(err, "sqlx.Open")
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = db.PingContext(pingCtx); err != nil {
		return nil, errors.Wrap(err, "db.Ping")
	}

	if err = migrate(db, files, o.versionTable); err != nil {
		return nil, err
	}
	return db, nil
}

func migrate(db *sqlx.DB, files embed.FS, versionTable string) error {
	goose.SetBaseFS(files)
	goose.SetTableName(versionTable)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "goose.SetDialect")
	}
	if err := goose.Up(db.DB, "."); err != nil {
		return errors.Wrap(err, "goose.Up")
	}
	return nil
}
