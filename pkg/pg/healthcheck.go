package pg

import (
	"context"
	"errors"
)

// pinger is satisfied by *pgxpool.Pool and by test doubles.
type pinger interface {
	Ping(ctx context.Context) error
}

// Healthcheck returns a readiness probe for the registry database, as used by
// "rut registry health" and GET /health. Ping failures are joined with
// ErrHealthcheckFailed.
func Healthcheck(conn pinger) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := conn.Ping(ctx); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
