package binder_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rutkit/pkg/binder"
	"github.com/dmitrymomot/rutkit/pkg/rut"
)

type signupRequest struct {
	Name     string    `form:"name" query:"name"`
	RUT      rut.RUT   `form:"rut" query:"rut"`
	Guardian *rut.RUT  `form:"guardian" query:"guardian"`
	Others   []rut.RUT `form:"others" query:"others"`
	Age      int       `form:"age" query:"age"`
	Accept   bool      `form:"accept" query:"accept"`
	Internal string    `form:"-" query:"-"`
}

func newFormRequest(t *testing.T, values url.Values) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=utf-8")
	return req
}

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("binds rut fields in any layout", func(t *testing.T) {
		t.Parallel()
		req := newFormRequest(t, url.Values{
			"name":     {"Ana"},
			"rut":      {"12.345.678-5"},
			"guardian": {"6k"},
			"others":   {"1-9", "34244223-4,14-0"},
			"age":      {"33"},
			"accept":   {"on"},
			"Internal": {"ignored"},
		})

		var got signupRequest
		require.NoError(t, binder.Form()(req, &got))

		assert.Equal(t, "Ana", got.Name)
		assert.Equal(t, "12.345.678-5", got.RUT.String())
		require.NotNil(t, got.Guardian)
		assert.Equal(t, "6-K", got.Guardian.String())
		require.Len(t, got.Others, 3)
		assert.Equal(t, "1-9", got.Others[0].String())
		assert.Equal(t, "34.244.223-4", got.Others[1].String())
		assert.Equal(t, "14-0", got.Others[2].String())
		assert.Equal(t, 33, got.Age)
		assert.True(t, got.Accept)
		assert.Empty(t, got.Internal)
	})

	t.Run("empty rut leaves zero value", func(t *testing.T) {
		t.Parallel()
		var got signupRequest
		req := newFormRequest(t, url.Values{"rut": {""}, "guardian": {"  "}, "name": {"Ana"}})
		require.NoError(t, binder.Form()(req, &got))
		assert.True(t, got.RUT.IsZero())
		assert.Nil(t, got.Guardian)
		assert.Equal(t, "Ana", got.Name)
	})

	t.Run("missing rut leaves zero value", func(t *testing.T) {
		t.Parallel()
		var got signupRequest
		require.NoError(t, binder.Form()(newFormRequest(t, url.Values{"name": {"Ana"}}), &got))
		assert.True(t, got.RUT.IsZero())
		assert.Nil(t, got.Guardian)
	})

	t.Run("malformed rut", func(t *testing.T) {
		t.Parallel()
		var got signupRequest
		err := binder.Form()(newFormRequest(t, url.Values{"rut": {"123456X7"}}), &got)
		require.Error(t, err)
		assert.ErrorIs(t, err, binder.ErrFailedToParseForm)
		assert.ErrorIs(t, err, rut.ErrMalformedInput)
	})

	t.Run("content type checks", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader("{}"))
		err := binder.Form()(req, &signupRequest{})
		assert.ErrorIs(t, err, binder.ErrMissingContentType)

		req.Header.Set("Content-Type", "application/json")
		err = binder.Form()(req, &signupRequest{})
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})

	t.Run("target must be a struct pointer", func(t *testing.T) {
		t.Parallel()
		var s string
		assert.ErrorIs(t, binder.Form()(newFormRequest(t, url.Values{}), &s), binder.ErrFailedToParseForm)
		assert.ErrorIs(t, binder.Form()(newFormRequest(t, url.Values{}), signupRequest{}), binder.ErrFailedToParseForm)
	})
}

func TestQuery(t *testing.T) {
	t.Parallel()

	t.Run("binds query parameters", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/lookup?rut=123456785&others=6-K,1-9&age=x", nil)

		var got struct {
			RUT    rut.RUT   `query:"rut"`
			Others []rut.RUT `query:"others"`
		}
		require.NoError(t, binder.Query()(req, &got))
		assert.Equal(t, 12345678, got.RUT.Correlative())
		assert.Len(t, got.Others, 2)
	})

	t.Run("reports invalid values", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/lookup?rut=----", nil)
		var got signupRequest
		err := binder.Query()(req, &got)
		assert.ErrorIs(t, err, binder.ErrFailedToParseQuery)
		assert.ErrorIs(t, err, rut.ErrMalformedInput)

		req = httptest.NewRequest(http.MethodGet, "/lookup?age=old", nil)
		assert.ErrorIs(t, binder.Query()(req, &got), binder.ErrFailedToParseQuery)
	})
}
