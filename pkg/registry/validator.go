package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/rutkit/pkg/logger"
	"github.com/dmitrymomot/rutkit/pkg/rut"
)

const (
	outcomeAccepted = "accepted"
	outcomeRejected = "rejected"
	outcomeError    = "error"
)

// Validator is a rut.Validator backed by a registry Lookup. It accepts a RUT
// only when the registry holds an active record with the same verifier.
type Validator struct {
	lookup  Lookup
	name    string
	timeout time.Duration
	log     *slog.Logger
	metrics *Metrics
}

var _ rut.Validator = (*Validator)(nil)

// Option configures a Validator.
type Option func(*Validator)

// WithName sets the validator label used in logs and metrics. Default "registry".
func WithName(name string) Option {
	return func(v *Validator) {
		if name != "" {
			v.name = name
		}
	}
}

// WithTimeout bounds each lookup. Zero leaves the caller's deadline alone.
func WithTimeout(d time.Duration) Option {
	return func(v *Validator) {
		if d >= 0 {
			v.timeout = d
		}
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(v *Validator) {
		if log != nil {
			v.log = log
		}
	}
}

func WithMetrics(m *Metrics) Option {
	return func(v *Validator) { v.metrics = m }
}

// NewValidator creates a Validator over lookup. It panics if lookup is nil.
func NewValidator(lookup Lookup, opts ...Option) *Validator {
	if lookup == nil {
		panic("registry: nil lookup")
	}
	v := &Validator{
		lookup: lookup,
		name:   "registry",
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate looks r up and maps the answer:
//
//   - no record, inactive record or differing verifier: *rut.InvalidError
//   - any other lookup failure: an error matching ErrRegistryUnavailable
func (v *Validator) Validate(ctx context.Context, r rut.RUT) error {
	if r.IsZero() {
		return rut.NewInvalidError(r, "rut is empty")
	}

	if v.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, v.timeout)
		defer cancel()
	}

	start := time.Now()
	rec, err := v.lookup.Lookup(ctx, r)
	err = v.judge(r, rec, err)
	elapsed := time.Since(start)

	outcome := outcomeAccepted
	switch {
	case err == nil:
	case errors.Is(err, rut.ErrInvalidIdentity):
		outcome = outcomeRejected
	default:
		outcome = outcomeError
	}
	v.metrics.ObserveValidation(v.name, outcome, elapsed)

	attrs := []slog.Attr{
		logger.Component(v.name),
		logger.RUT(r),
		logger.Outcome(outcome),
		logger.Source(rec.Source),
		logger.Duration(elapsed),
	}
	level := slog.LevelDebug
	switch outcome {
	case outcomeRejected:
		// InvalidError messages carry the clear RUT; log only the reason.
		if invalid, ok := rut.AsInvalidError(err); ok {
			attrs = append(attrs, slog.String("reason", invalid.Reason))
		}
	case outcomeError:
		level = slog.LevelWarn
		attrs = append(attrs, logger.Error(err))
	}
	v.log.LogAttrs(ctx, level, "registry validation", attrs...)

	return err
}

func (v *Validator) judge(r rut.RUT, rec Record, err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return rut.NewInvalidError(r, "not registered")
	case err != nil:
		if errors.Is(err, ErrRegistryUnavailable) {
			return err
		}
		return errors.Join(ErrRegistryUnavailable, err)
	case !rec.RUT.IsZero() && rec.RUT.Verifier() != r.Verifier():
		return rut.NewInvalidError(r, fmt.Sprintf("verifier %c does not match registry", r.Verifier()))
	case !rec.Active:
		return rut.NewInvalidError(r, "registration is not active")
	}
	return nil
}
