package rut

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"log/slog"
)

// MarshalText encodes r in the Readable form. The zero RUT encodes as empty text.
func (r RUT) MarshalText() ([]byte, error) {
	return []byte(Format(r, Readable)), nil
}

// UnmarshalText parses any layout accepted by Parse. The verifier is not checked.
func (r *RUT) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// MarshalJSON encodes r as a Readable string, or null for the zero RUT.
func (r RUT) MarshalJSON() ([]byte, error) {
	if r.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(Format(r, Readable))
}

func (r *RUT) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*r = RUT{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: expected a JSON string: %v", ErrMalformedInput, err)
	}
	return r.UnmarshalText([]byte(raw))
}

// Scan implements sql.Scanner. NULL scans into the zero RUT.
func (r *RUT) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*r = RUT{}
		return nil
	case string:
		return r.UnmarshalText([]byte(v))
	case []byte:
		return r.UnmarshalText(v)
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrMalformedInput, src)
	}
}

// Value implements driver.Valuer, storing the Hyphened form. The zero RUT is NULL.
func (r RUT) Value() (driver.Value, error) {
	if r.IsZero() {
		return nil, nil
	}
	return Format(r, Hyphened), nil
}

// LogValue masks r in structured logs.
func (r RUT) LogValue() slog.Value {
	return slog.StringValue(Format(r, Hidden))
}
