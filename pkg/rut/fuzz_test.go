package rut_test

import (
	"testing"

	"github.com/dmitrymomot/rutkit/pkg/rut"
)

// FuzzParse checks that Parse never panics and that every accepted input
// survives a round trip through each canonical layout.
func FuzzParse(f *testing.F) {
	f.Add("")
	f.Add("----")
	f.Add("12.345.678-5")
	f.Add("6-k")
	f.Add("123456X7")
	f.Add("١٢٣-4")
	f.Add("99999999999999999999999-1")
	f.Add(string([]byte{0x00, 0xff, 0x31, 0x32}))

	f.Fuzz(func(t *testing.T, input string) {
		r, err := rut.Parse(input)
		if err != nil {
			if !r.IsZero() {
				t.Errorf("failed parse returned non-zero rut for %q", input)
			}
			return
		}

		if r.Correlative() < 1 {
			t.Errorf("accepted non-positive correlative for %q", input)
		}

		for _, mode := range []rut.Mode{rut.Clear, rut.Readable, rut.Hyphened} {
			again, err := rut.Parse(rut.Format(r, mode))
			if err != nil {
				t.Errorf("round trip in mode %s failed for %q: %v", mode, input, err)
				continue
			}
			if !again.Equal(r) {
				t.Errorf("round trip in mode %s changed %q", mode, input)
			}
		}
	})
}
