// Package migrations embeds the SQL migration files applied by goose at startup.
package migrations

import "embed"

// Migrations holds the embedded goose migration files.
//
//go:embed *.sql
var Migrations embed.FS
