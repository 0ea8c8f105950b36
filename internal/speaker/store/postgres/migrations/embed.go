package migrations

import "embed"

// FS contains embedded PostgreSQL migrations for speaker storage.
//
//go:embed *.sql
var FS embed.FS
