package migrations

import "embed"

// VersionTable records which of these migrations have been applied.
const VersionTable = "stats_goose_db_version"

//go:embed *.sql
var MigrationFiles embed.FS
