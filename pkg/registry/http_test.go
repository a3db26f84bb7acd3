package registry_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rutkit/pkg/registry"
	"github.com/dmitrymomot/rutkit/pkg/rut"
)

func newRegistryServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPLookup_Found(t *testing.T) {
	t.Parallel()

	srv := newRegistryServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/ruts/12345678-5", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-API-Key"))
		assert.Equal(t, "req-1", r.Header.Get("X-Request-ID"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"rut":"12.345.678-5","active":true,"name":"Juan Pérez"}`))
	})

	lookup := registry.NewHTTPLookup(srv.URL+"/",
		registry.WithAPIKey("secret"),
		registry.WithRequestIDGenerator(func() string { return "req-1" }),
	)
	rec, err := lookup.Lookup(context.Background(), rut.MustParse("12345678-5"))

	require.NoError(t, err)
	assert.Equal(t, "12.345.678-5", rec.RUT.String())
	assert.True(t, rec.Active)
	assert.Equal(t, "Juan Pérez", rec.Name)
	assert.Equal(t, "http", rec.Source)
	assert.False(t, rec.CheckedAt.IsZero())
}

func TestHTTPLookup_GeneratesRequestIDs(t *testing.T) {
	t.Parallel()

	srv := newRegistryServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Len(t, r.Header.Get("X-Request-ID"), 36)
		assert.Empty(t, r.Header.Get("X-API-Key"))
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := registry.NewHTTPLookup(srv.URL).Lookup(context.Background(), rut.MustParse("12345678-5"))
	assert.ErrorIs(t, err, registry.ErrNotFound)
}

func TestHTTPLookup_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr []error
	}{
		{name: "rate limited", status: http.StatusTooManyRequests, wantErr: []error{registry.ErrRegistryUnavailable, registry.ErrRateLimited}},
		{name: "server error", status: http.StatusBadGateway, wantErr: []error{registry.ErrRegistryUnavailable}},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: []error{registry.ErrRegistryUnavailable}},
		{name: "broken json", status: http.StatusOK, body: `{"rut":`, wantErr: []error{registry.ErrBadResponse}},
		{name: "malformed rut", status: http.StatusOK, body: `{"rut":"x","active":true}`, wantErr: []error{registry.ErrBadResponse, rut.ErrMalformedInput}},
		{name: "different correlative", status: http.StatusOK, body: `{"rut":"11.111.111-1","active":true}`, wantErr: []error{registry.ErrBadResponse}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := newRegistryServer(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := registry.NewHTTPLookup(srv.URL).Lookup(context.Background(), rut.MustParse("12345678-5"))
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestHTTPLookup_Unreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := registry.NewHTTPLookup(url).Lookup(context.Background(), rut.MustParse("12345678-5"))
	assert.ErrorIs(t, err, registry.ErrRegistryUnavailable)
}

func TestHTTPLookup_RateLimit(t *testing.T) {
	t.Parallel()

	srv := newRegistryServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	lookup := registry.NewHTTPLookup(srv.URL, registry.WithRateLimit(0.01, 1))
	r := rut.MustParse("12345678-5")

	_, err := lookup.Lookup(context.Background(), r)
	require.ErrorIs(t, err, registry.ErrNotFound, "burst allows the first request")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = lookup.Lookup(ctx, r)
	assert.ErrorIs(t, err, registry.ErrRegistryUnavailable)
}

func TestNewHTTPLookupFromConfig(t *testing.T) {
	t.Parallel()

	srv := newRegistryServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "from-config", r.Header.Get("X-API-Key"))
		_, _ = w.Write([]byte(`{"rut":"12345678-5","active":false}`))
	})

	cfg := registry.Config{URL: srv.URL, APIKey: "from-config", Timeout: time.Second, RateLimit: 100, RateBurst: 1}
	rec, err := registry.NewHTTPLookupFromConfig(cfg).Lookup(context.Background(), rut.MustParse("12345678-5"))

	require.NoError(t, err)
	assert.False(t, rec.Active)
	assert.Len(t, cfg.CacheOptions(), 2)
}
