package registry

import (
	"context"
	"time"

	"github.com/dmitrymomot/rutkit/pkg/rut"
)

// Record is what a registry knows about one correlative.
type Record struct {
	RUT       rut.RUT   `json:"rut"`
	Active    bool      `json:"active"`
	Name      string    `json:"name,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
	Source    string    `json:"source"`
}

// Lookup fetches the registry record for r. Implementations key records by
// correlative and return ErrNotFound when none exists; the verifier is
// compared by the caller.
type Lookup interface {
	Lookup(ctx context.Context, r rut.RUT) (Record, error)
}

// LookupFunc adapts a function to Lookup.
type LookupFunc func(ctx context.Context, r rut.RUT) (Record, error)

func (f LookupFunc) Lookup(ctx context.Context, r rut.RUT) (Record, error) {
	return f(ctx, r)
}
