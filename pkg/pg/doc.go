// Package pg connects to PostgreSQL through pgx/v5 and applies goose
// migrations shipped as an fs.FS.
//
// It backs the registry.PostgresLookup source: Connect opens the pool with
// retries, Migrate creates the rut_registry table from the migrations embedded
// in package registry, and Healthcheck exposes a ping probe for the CLI.
//
// # Usage
//
//	var cfg pg.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, registry.Migrations, registry.MigrationsDir, cfg, log); err != nil {
//		return err
//	}
//
// # Error Handling
//
// Errors are joined with the package sentinels (ErrFailedToOpenDBConnection,
// ErrFailedToApplyMigrations and friends). IsNotFoundError classifies
// pgx.ErrNoRows.
package pg
