package rut_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rutkit/pkg/rut"
)

type person struct {
	Name string   `json:"name"`
	RUT  rut.RUT  `json:"rut"`
	Alt  *rut.RUT `json:"alt,omitempty"`
}

func TestRUT_JSON(t *testing.T) {
	t.Parallel()

	t.Run("encodes readable string", func(t *testing.T) {
		t.Parallel()
		data, err := json.Marshal(person{Name: "Ana", RUT: rut.MustParse("123456785")})
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Ana","rut":"12.345.678-5"}`, string(data))
	})

	t.Run("zero rut encodes as null", func(t *testing.T) {
		t.Parallel()
		data, err := json.Marshal(person{Name: "Ana"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Ana","rut":null}`, string(data))
	})

	t.Run("decodes any layout", func(t *testing.T) {
		t.Parallel()
		var p person
		require.NoError(t, json.Unmarshal([]byte(`{"name":"Ana","rut":"12345678-5","alt":"6-k"}`), &p))
		assert.Equal(t, "12.345.678-5", p.RUT.String())
		require.NotNil(t, p.Alt)
		assert.Equal(t, "6-K", p.Alt.String())
	})

	t.Run("decodes null", func(t *testing.T) {
		t.Parallel()
		p := person{RUT: rut.MustParse("6-K")}
		require.NoError(t, json.Unmarshal([]byte(`{"rut":null}`), &p))
		assert.True(t, p.RUT.IsZero())
	})

	t.Run("rejects malformed values", func(t *testing.T) {
		t.Parallel()
		var p person
		err := json.Unmarshal([]byte(`{"rut":"----"}`), &p)
		assert.ErrorIs(t, err, rut.ErrMalformedInput)

		err = json.Unmarshal([]byte(`{"rut":12345678}`), &p)
		assert.ErrorIs(t, err, rut.ErrMalformedInput)
	})
}

func TestRUT_Text(t *testing.T) {
	t.Parallel()

	text, err := rut.MustParse("6k").MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "6-K", string(text))

	var r rut.RUT
	require.NoError(t, r.UnmarshalText([]byte("12.345.678-5")))
	assert.Equal(t, 12345678, r.Correlative())
	assert.ErrorIs(t, r.UnmarshalText([]byte("")), rut.ErrMalformedInput)
}

func TestRUT_SQL(t *testing.T) {
	t.Parallel()

	t.Run("value", func(t *testing.T) {
		t.Parallel()
		v, err := rut.MustParse("12.345.678-5").Value()
		require.NoError(t, err)
		assert.Equal(t, "12345678-5", v)

		v, err = rut.RUT{}.Value()
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("scan", func(t *testing.T) {
		t.Parallel()
		var r rut.RUT
		require.NoError(t, r.Scan("12345678-5"))
		assert.Equal(t, "12.345.678-5", r.String())

		require.NoError(t, r.Scan([]byte("6-K")))
		assert.Equal(t, "6-K", r.String())

		require.NoError(t, r.Scan(nil))
		assert.True(t, r.IsZero())

		assert.ErrorIs(t, r.Scan(int64(12345678)), rut.ErrMalformedInput)
		assert.ErrorIs(t, r.Scan("x"), rut.ErrMalformedInput)
	})
}

func TestRUT_LogValue(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	log.Info("checked", "rut", rut.MustParse("12.345.678-5"))

	assert.Contains(t, buf.String(), "rut=12.***.***-5")
	assert.NotContains(t, buf.String(), "12.345.678")
}
