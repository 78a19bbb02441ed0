// Package migrations embeds the SQL migration files for the quotation
// database schema so they can be applied through the goose programmatic API
// at server bootstrap and in integration tests.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
// Pass this to goose.NewProvider so migrations run from the binary itself
// rather than from a filesystem path that may not exist at runtime.
//
//go:embed *.sql
var FS embed.FS
