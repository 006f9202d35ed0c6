// Package migrations embeds the schema migrations applied by goose. Each
// backend has its own set because column types differ.
package migrations

import "embed"

//go:embed postgres/*.sql
var Postgres embed.FS

//go:embed sqlite/*.sql
var SQLite embed.FS
