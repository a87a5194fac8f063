// Package migrations embeds the goose migrations for the sqlite medium.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
