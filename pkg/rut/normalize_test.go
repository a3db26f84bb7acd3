package rut_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rutkit/pkg/rut"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("accepts common layouts", func(t *testing.T) {
		t.Parallel()
		testCases := []struct {
			input       string
			correlative int
			verifier    byte
		}{
			{"12.345.678-5", 12345678, '5'},
			{"12345678-5", 12345678, '5'},
			{"123456785", 12345678, '5'},
			{"  12 345 678 5  ", 12345678, '5'},
			{"6-k", 6, 'K'},
			{"6-K", 6, 'K'},
			{"10.000.013-k", 10000013, 'K'},
			{"14-0", 14, '0'},
			{"0012345678-5", 12345678, '5'},
			{"12_345_678/5", 12345678, '5'},
		}

		for _, tc := range testCases {
			correlative, verifier, err := rut.Normalize(tc.input)
			require.NoError(t, err, "input %q", tc.input)
			assert.Equal(t, tc.correlative, correlative, "input %q", tc.input)
			assert.Equal(t, tc.verifier, verifier, "input %q", tc.input)
		}
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		t.Parallel()
		testCases := []struct {
			input  string
			reason string
		}{
			{"", rut.ReasonTooShort},
			{"----", rut.ReasonTooShort},
			{"5", rut.ReasonTooShort},
			{" . - ", rut.ReasonTooShort},
			{"123456X7", rut.ReasonNonNumericBody},
			{"12a45-6", rut.ReasonNonNumericBody},
			{"K-K", rut.ReasonNonNumericBody},
			{"١٢٣-4", rut.ReasonNonNumericBody},
			{"1234-X", rut.ReasonInvalidVerifier},
			{"1234-é", rut.ReasonInvalidVerifier},
			{"0-0", rut.ReasonZeroCorrelative},
			{"000-K", rut.ReasonZeroCorrelative},
			{"99999999999999999999999-1", rut.ReasonCorrelativeTooBig},
		}

		for _, tc := range testCases {
			_, _, err := rut.Normalize(tc.input)
			require.Error(t, err, "input %q", tc.input)
			assert.ErrorIs(t, err, rut.ErrMalformedInput, "input %q", tc.input)

			var parseErr *rut.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tc.input, parseErr.Input)
			assert.Equal(t, tc.reason, parseErr.Reason, "input %q", tc.input)
		}
	})
}
