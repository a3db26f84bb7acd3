package rut

import (
	"strconv"
	"strings"
)

// Mode selects an output layout for Format.
type Mode uint8

const (
	// Readable groups the correlative by thousands: 12.345.678-5.
	Readable Mode = iota
	// Clear concatenates digits and verifier: 123456785.
	Clear
	// Hyphened separates the verifier only: 12345678-5.
	Hyphened
	// Hidden masks every group but the leading one: 12.***.***-5.
	Hidden
)

var modeNames = map[Mode]string{
	Readable: "readable",
	Clear:    "clear",
	Hyphened: "hyphened",
	Hidden:   "hidden",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// ParseMode maps a mode name ("readable", "clear", "hyphened", "hidden") to a Mode.
func ParseMode(name string) (Mode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}
	return Readable, ErrUnknownMode
}

// Format renders r in the given mode. It never validates: the verifier is
// printed as stored. Unknown modes render as Readable. The zero RUT renders
// as an empty string.
func Format(r RUT, m Mode) string {
	if r.IsZero() {
		return ""
	}
	digits := strconv.Itoa(r.correlative)
	verifier := string(r.verifier)

	switch m {
	case Clear:
		return digits + verifier
	case Hyphened:
		return digits + "-" + verifier
	case Hidden:
		return group(digits, true) + "-" + verifier
	default:
		return group(digits, false) + "-" + verifier
	}
}

// group inserts a period every three digits from the right. With mask set,
// every group after the leading one is replaced by asterisks.
func group(digits string, mask bool) string {
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}

	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3)
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte('.')
		if mask {
			b.WriteString("***")
			continue
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
