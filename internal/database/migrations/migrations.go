// Package migrations contains the database schema migrations for the
// moderation service. Migrations are registered at init time and run by
// the db command-line tool.
package migrations

import "github.com/uptrace/bun/migrate"

var Migrations = migrate.NewMigrations() //nolint:gochecknoglobals // -
