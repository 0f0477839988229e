// Package database ships the SQL migrations of the Oracle content store.
package database

import "embed"

// Migrations holds the *.up.sql and *.down.sql files.
//
//go:embed migrations/*.sql
var Migrations embed.FS
