package registry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rutkit/pkg/registry"
	"github.com/dmitrymomot/rutkit/pkg/rut"
)

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*string) = r.values[0].(string)
	*dest[1].(*bool) = r.values[1].(bool)
	*dest[2].(*string) = r.values[2].(string)
	*dest[3].(*time.Time) = r.values[3].(time.Time)
	return nil
}

type fakeQuerier struct {
	row      fakeRow
	args     []any
	execArgs []any
	execErr  error
}

func (q *fakeQuerier) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	q.args = args
	return q.row
}

func (q *fakeQuerier) Exec(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
	q.execArgs = args
	return pgconn.NewCommandTag("INSERT 0 1"), q.execErr
}

func TestPostgresLookup_Lookup(t *testing.T) {
	t.Parallel()

	updated := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	r := rut.MustParse("12.345.678-5")

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		q := &fakeQuerier{row: fakeRow{values: []any{"5", true, "Juan", updated}}}

		rec, err := registry.NewPostgresLookup(q).Lookup(context.Background(), r)
		require.NoError(t, err)
		assert.Equal(t, []any{12345678}, q.args)
		assert.True(t, rec.RUT.Equal(r))
		assert.True(t, rec.Active)
		assert.Equal(t, "Juan", rec.Name)
		assert.Equal(t, updated, rec.CheckedAt)
		assert.Equal(t, "postgres", rec.Source)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		q := &fakeQuerier{row: fakeRow{err: pgx.ErrNoRows}}

		_, err := registry.NewPostgresLookup(q).Lookup(context.Background(), r)
		assert.ErrorIs(t, err, registry.ErrNotFound)
	})

	t.Run("query failure", func(t *testing.T) {
		t.Parallel()
		q := &fakeQuerier{row: fakeRow{err: errors.New("conn closed")}}

		_, err := registry.NewPostgresLookup(q).Lookup(context.Background(), r)
		assert.ErrorIs(t, err, registry.ErrRegistryUnavailable)
	})

	t.Run("corrupt verifier", func(t *testing.T) {
		t.Parallel()
		q := &fakeQuerier{row: fakeRow{values: []any{"X", true, "", updated}}}

		_, err := registry.NewPostgresLookup(q).Lookup(context.Background(), r)
		assert.ErrorIs(t, err, registry.ErrBadResponse)
	})
}

func TestPostgresLookup_Upsert(t *testing.T) {
	t.Parallel()

	q := &fakeQuerier{}
	lookup := registry.NewPostgresLookup(q)

	err := lookup.Upsert(context.Background(), registry.Record{RUT: rut.MustParse("7.654.321-6"), Active: true, Name: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, []any{7654321, "6", true, "Ana"}, q.execArgs)

	assert.ErrorIs(t, lookup.Upsert(context.Background(), registry.Record{}), rut.ErrMalformedInput)

	q.execErr = errors.New("duplicate")
	err = lookup.Upsert(context.Background(), registry.Record{RUT: rut.MustParse("7.654.321-6")})
	assert.ErrorIs(t, err, registry.ErrRegistryUnavailable)
}
