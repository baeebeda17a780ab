// Package migrations embeds the goose SQL migrations for the assets table,
// one directory per supported dialect.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var Migrations embed.FS
