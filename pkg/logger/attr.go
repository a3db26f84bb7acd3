package logger

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/rutkit/pkg/rut"
)

// Error records err under the key "error". A nil err yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RUT records r under the key "rut" in the Hidden layout, so clear
// identifiers never reach log storage. The zero RUT yields an empty Attr.
func RUT(r rut.RUT) slog.Attr {
	if r.IsZero() {
		return slog.Attr{}
	}
	return slog.String("rut", rut.Format(r, rut.Hidden))
}

// Outcome records a validation outcome ("accepted", "rejected", "error").
func Outcome(outcome string) slog.Attr {
	return slog.String("outcome", outcome)
}

// Source records the registry source name under the key "source".
func Source(name string) slog.Attr {
	return slog.String("source", name)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}
