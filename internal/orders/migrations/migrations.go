// Package migrations embeds the goose migrations for the orders schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
