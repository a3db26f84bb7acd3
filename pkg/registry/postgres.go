package registry

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/rutkit/pkg/pg"
	"github.com/dmitrymomot/rutkit/pkg/rut"
)

const sourcePostgres = "postgres"

// Querier is the subset of *pgxpool.Pool used by PostgresLookup.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresLookup reads records from the rut_registry table created by Migrations.
type PostgresLookup struct {
	db Querier
}

func NewPostgresLookup(db Querier) *PostgresLookup {
	return &PostgresLookup{db: db}
}

const selectRecordQuery = `SELECT verifier, active, name, updated_at FROM rut_registry WHERE correlative = $1`

func (l *PostgresLookup) Lookup(ctx context.Context, r rut.RUT) (Record, error) {
	var (
		verifier  string
		active    bool
		name      string
		updatedAt time.Time
	)
	err := l.db.QueryRow(ctx, selectRecordQuery, r.Correlative()).Scan(&verifier, &active, &name, &updatedAt)
	if pg.IsNotFoundError(err) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, errors.Join(ErrRegistryUnavailable, err)
	}
	if len(verifier) != 1 {
		return Record{}, ErrBadResponse
	}

	stored, err := rut.New(r.Correlative(), verifier[0])
	if err != nil {
		return Record{}, errors.Join(ErrBadResponse, err)
	}

	return Record{
		RUT:       stored,
		Active:    active,
		Name:      name,
		CheckedAt: updatedAt,
		Source:    sourcePostgres,
	}, nil
}

const upsertRecordQuery = `
INSERT INTO rut_registry (correlative, verifier, active, name, updated_at)
VALUES ($1, $2, $3, $4, now())
ON CONFLICT (correlative) DO UPDATE
SET verifier = EXCLUDED.verifier, active = EXCLUDED.active, name = EXCLUDED.name, updated_at = now()`

// Upsert stores rec keyed by its correlative. The zero RUT is rejected with rut.ErrMalformedInput.
func (l *PostgresLookup) Upsert(ctx context.Context, rec Record) error {
	if rec.RUT.IsZero() {
		return &rut.ParseError{Input: "", Reason: rut.ReasonZeroCorrelative}
	}
	_, err := l.db.Exec(ctx, upsertRecordQuery,
		rec.RUT.Correlative(), string(rec.RUT.Verifier()), rec.Active, rec.Name)
	if err != nil {
		return errors.Join(ErrRegistryUnavailable, err)
	}
	return nil
}
