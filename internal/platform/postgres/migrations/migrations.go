// Package migrations embeds the goose SQL migrations that create the
// blogging platform schema.
package migrations

import "embed"

// FS holds the embedded migration files, applied with goose at startup.
//
//go:embed *.sql
var FS embed.FS
