package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/dmitrymomot/rutkit/pkg/rut"
)

const (
	sourceHTTP      = "http"
	maxResponseSize = 1 << 20
)

// HTTPLookup queries a REST registry at GET {base}/ruts/{rut}, where {rut}
// is the Hyphened form. 404 maps to ErrNotFound; 429 and 5xx map to
// ErrRegistryUnavailable.
type HTTPLookup struct {
	baseURL   string
	apiKey    string
	client    *http.Client
	limiter   *rate.Limiter
	requestID func() string
	now       func() time.Time
}

// HTTPOption configures an HTTPLookup.
type HTTPOption func(*HTTPLookup)

func WithHTTPClient(c *http.Client) HTTPOption {
	return func(l *HTTPLookup) {
		if c != nil {
			l.client = c
		}
	}
}

// WithAPIKey sends key in the X-API-Key header.
func WithAPIKey(key string) HTTPOption {
	return func(l *HTTPLookup) { l.apiKey = key }
}

// WithRateLimit throttles outgoing requests to rps with the given burst.
// A non-positive rps disables throttling.
func WithRateLimit(rps float64, burst int) HTTPOption {
	return func(l *HTTPLookup) {
		if rps <= 0 {
			l.limiter = nil
			return
		}
		l.limiter = rate.NewLimiter(rate.Limit(rps), max(burst, 1))
	}
}

// WithRequestIDGenerator replaces the uuid-based X-Request-ID generator.
func WithRequestIDGenerator(fn func() string) HTTPOption {
	return func(l *HTTPLookup) {
		if fn != nil {
			l.requestID = fn
		}
	}
}

// NewHTTPLookup creates a lookup against baseURL. The default client times out after 5s.
func NewHTTPLookup(baseURL string, opts ...HTTPOption) *HTTPLookup {
	l := &HTTPLookup{
		baseURL:   strings.TrimRight(baseURL, "/"),
		client:    &http.Client{Timeout: 5 * time.Second},
		requestID: uuid.NewString,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type httpRecord struct {
	RUT    string `json:"rut"`
	Active bool   `json:"active"`
	Name   string `json:"name"`
}

func (l *HTTPLookup) Lookup(ctx context.Context, r rut.RUT) (Record, error) {
	if l.limiter != nil {
		if err := l.limiter.Wait(ctx); err != nil {
			return Record{}, errors.Join(ErrRegistryUnavailable, err)
		}
	}

	endpoint := l.baseURL + "/ruts/" + url.PathEscape(r.Format(rut.Hyphened))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Record{}, errors.Join(ErrRegistryUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", l.requestID())
	if l.apiKey != "" {
		req.Header.Set("X-API-Key", l.apiKey)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return Record{}, errors.Join(ErrRegistryUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return Record{}, ErrNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		return Record{}, errors.Join(ErrRegistryUnavailable, ErrRateLimited)
	default:
		return Record{}, fmt.Errorf("%w: unexpected status %d", ErrRegistryUnavailable, resp.StatusCode)
	}

	var body httpRecord
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&body); err != nil {
		return Record{}, errors.Join(ErrBadResponse, err)
	}
	got, err := rut.Parse(body.RUT)
	if err != nil {
		return Record{}, errors.Join(ErrBadResponse, err)
	}
	if got.Correlative() != r.Correlative() {
		return Record{}, fmt.Errorf("%w: asked for %d, got %d", ErrBadResponse, r.Correlative(), got.Correlative())
	}

	return Record{
		RUT:       got,
		Active:    body.Active,
		Name:      body.Name,
		CheckedAt: l.now(),
		Source:    sourceHTTP,
	}, nil
}
