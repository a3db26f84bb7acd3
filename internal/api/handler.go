package api

import (
	"context"
	"log/slog"
	"net/http"
)

// handlerFunc is a typed endpoint: it receives the bound request and returns
// the response data or an error mapped by errorToDetail.
type handlerFunc[R any] func(ctx context.Context, req R) (any, error)

type bindFunc func(r *http.Request, v any) error

// wrap adapts a handlerFunc to net/http. Binders run in order; the first
// failure is rendered as the response.
func wrap[R any](log *slog.Logger, h handlerFunc[R], binders ...bindFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req R
		for _, bind := range binders {
			if err := bind(r, &req); err != nil {
				writeError(w, r, log, err)
				return
			}
		}

		data, err := h(r.Context(), req)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, Envelope{Data: data})
	}
}
