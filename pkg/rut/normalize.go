package rut

import (
	"strconv"
	"unicode"
)

// Normalize strips every non-alphanumeric character from raw, uppercases
// letters and splits the remainder into the correlative (all but the last
// character) and the verifier (the last character).
//
// It returns a *ParseError wrapping ErrMalformedInput when fewer than two
// characters remain, when the correlative is not purely numeric, zero or
// too large, or when the verifier is not a digit or 'K'.
func Normalize(raw string) (int, byte, error) {
	clean := make([]rune, 0, len(raw))
	for _, r := range raw {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			clean = append(clean, unicode.ToUpper(r))
		}
	}

	if len(clean) < 2 {
		return 0, 0, &ParseError{Input: raw, Reason: ReasonTooShort}
	}

	body, last := clean[:len(clean)-1], clean[len(clean)-1]
	for _, r := range body {
		if r < '0' || r > '9' {
			return 0, 0, &ParseError{Input: raw, Reason: ReasonNonNumericBody}
		}
	}
	if !isVerifier(last) {
		return 0, 0, &ParseError{Input: raw, Reason: ReasonInvalidVerifier}
	}

	correlative, err := strconv.Atoi(string(body))
	if err != nil {
		return 0, 0, &ParseError{Input: raw, Reason: ReasonCorrelativeTooBig}
	}
	if correlative < 1 {
		return 0, 0, &ParseError{Input: raw, Reason: ReasonZeroCorrelative}
	}

	return correlative, byte(last), nil
}

func isVerifier(r rune) bool {
	return (r >= '0' && r <= '9') || r == 'K'
}
