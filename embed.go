// Package ground exposes assets that have to be embedded from the module root.
package ground

import "embed"

// Migrations holds the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
