// Package api exposes RUT parsing, formatting, generation and validation over HTTP.
package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/rutkit/pkg/binder"
	"github.com/dmitrymomot/rutkit/pkg/logger"
	"github.com/dmitrymomot/rutkit/pkg/registry"
	"github.com/dmitrymomot/rutkit/pkg/rut"
	"github.com/dmitrymomot/rutkit/pkg/validator"
)

const maxGenerateCount = 100

// Option configures the router.
type Option func(*api)

// WithValidator appends v to the validation chain, after the checksum check.
func WithValidator(v rut.Validator) Option {
	return func(a *api) { a.chain.Append(v) }
}

func WithLogger(log *slog.Logger) Option {
	return func(a *api) {
		if log != nil {
			a.log = log
		}
	}
}

// WithGenerator replaces the generator behind GET /ruts/generate.
func WithGenerator(g *rut.Generator) Option {
	return func(a *api) {
		if g != nil {
			a.gen = g
		}
	}
}

// WithHealthCheck adds a named readiness probe to GET /health.
func WithHealthCheck(name string, probe func(context.Context) error) Option {
	return func(a *api) {
		if probe != nil {
			a.probes[name] = probe
		}
	}
}

// WithMetricsHandler mounts h at GET /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(a *api) { a.metrics = h }
}

type api struct {
	chain   *rut.Chain
	gen     *rut.Generator
	log     *slog.Logger
	probes  map[string]func(context.Context) error
	metrics http.Handler
}

// NewRouter builds the HTTP handler:
//
//	GET  /health            readiness of configured backends
//	GET  /metrics           when WithMetricsHandler is set
//	GET  /ruts/generate     ?count=&mode=
//	POST /ruts/validate     form field "rut"
//	GET  /ruts/{rut}        ?mode=
func NewRouter(opts ...Option) http.Handler {
	a := &api{
		chain:  rut.NewChain(rut.ChecksumValidator{}),
		gen:    rut.NewGenerator(nil),
		log:    logger.Discard(),
		probes: map[string]func(context.Context) error{},
	}
	for _, opt := range opts {
		opt(a)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", a.health)
	if a.metrics != nil {
		r.Method(http.MethodGet, "/metrics", a.metrics)
	}
	r.Route("/ruts", func(r chi.Router) {
		r.Get("/generate", wrap(a.log, a.generate, binder.Query()))
		r.Post("/validate", wrap(a.log, a.validate, binder.Form()))
		r.Get("/{rut}", wrap(a.log, a.describe, bindPath, binder.Query()))
	})
	return r
}

// RequestID returns the id assigned by the router's request id middleware.
func RequestID(ctx context.Context) (slog.Attr, bool) {
	id := middleware.GetReqID(ctx)
	if id == "" {
		return slog.Attr{}, false
	}
	return logger.RequestID(id), true
}

type describeRequest struct {
	Raw  string `query:"-"`
	Mode string `query:"mode"`
}

func bindPath(r *http.Request, v any) error {
	if req, ok := v.(*describeRequest); ok {
		req.Raw = chi.URLParam(r, "rut")
	}
	return nil
}

type describeResponse struct {
	RUT         rut.RUT           `json:"rut"`
	Correlative int               `json:"correlative"`
	Verifier    string            `json:"verifier"`
	Valid       bool              `json:"valid"`
	Formatted   string            `json:"formatted"`
	Formats     map[string]string `json:"formats"`
}

func (a *api) describe(_ context.Context, req describeRequest) (any, error) {
	mode := rut.Readable
	if req.Mode != "" {
		m, err := rut.ParseMode(req.Mode)
		if err != nil {
			return nil, err
		}
		mode = m
	}

	r, err := rut.Parse(req.Raw)
	if err != nil {
		return nil, err
	}

	formats := make(map[string]string, 4)
	for _, m := range []rut.Mode{rut.Clear, rut.Readable, rut.Hyphened, rut.Hidden} {
		formats[m.String()] = r.Format(m)
	}
	return describeResponse{
		RUT:         r,
		Correlative: r.Correlative(),
		Verifier:    string(r.Verifier()),
		Valid:       r.Valid(),
		Formatted:   r.Format(mode),
		Formats:     formats,
	}, nil
}

type validateRequest struct {
	RUT rut.RUT `form:"rut"`
}

type validateResponse struct {
	RUT   rut.RUT `json:"rut"`
	Valid bool    `json:"valid"`
}

func (a *api) validate(ctx context.Context, req validateRequest) (any, error) {
	err := validator.ApplyFirst(
		validator.RequiredRUT("rut", req.RUT),
		validator.RUTWith(ctx, "rut", req.RUT, a.chain),
	)
	if err != nil {
		verrs := validator.ExtractValidationErrors(err)
		for _, e := range verrs {
			if e.TranslationValues["reason"] == "unavailable" {
				return nil, registry.ErrRegistryUnavailable
			}
		}
		return nil, err
	}
	return validateResponse{RUT: req.RUT, Valid: true}, nil
}

type generateRequest struct {
	Count int    `query:"count"`
	Mode  string `query:"mode"`
}

func (a *api) generate(_ context.Context, req generateRequest) (any, error) {
	if req.Count == 0 {
		req.Count = 1
	}
	if req.Count < 0 || req.Count > maxGenerateCount {
		return nil, validator.ValidationErrors{{
			Field:          "count",
			Message:        "must be between 1 and 100",
			TranslationKey: "validation.range",
		}}
	}
	mode := rut.Readable
	if req.Mode != "" {
		m, err := rut.ParseMode(req.Mode)
		if err != nil {
			return nil, err
		}
		mode = m
	}

	out := make([]string, req.Count)
	for i := range out {
		out[i] = a.gen.Generate().Format(mode)
	}
	return out, nil
}

func (a *api) health(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	checks := make(map[string]string, len(a.probes))
	for name, probe := range a.probes {
		if err := probe(r.Context()); err != nil {
			status = http.StatusServiceUnavailable
			checks[name] = "down"
			a.log.WarnContext(r.Context(), "readiness check failed", slog.String("check", name), logger.Error(err))
			continue
		}
		checks[name] = "ok"
	}
	writeJSON(w, status, Envelope{Data: checks})
}
