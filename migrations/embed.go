package migrations

import "embed"

// FS contains the goose SQL migrations in ascending order by filename.
//
//go:embed *.sql
var FS embed.FS
