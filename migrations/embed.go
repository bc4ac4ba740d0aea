// Package migrations embeds the goose migrations of every supported dialect.
package migrations

import "embed"

// Postgres and SQLite hold one directory of goose SQL files per dialect
//
//go:embed postgres/*.sql
var Postgres embed.FS

//go:embed sqlite/*.sql
var SQLite embed.FS
