package registry

import "embed"

// Migrations holds the goose migrations for the rut_registry table.
// Apply them with pg.Migrate(ctx, pool, registry.Migrations, registry.MigrationsDir, cfg, log).
//
//go:embed migrations/*.sql
var Migrations embed.FS

const MigrationsDir = "migrations"
