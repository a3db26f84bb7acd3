package binder

import (
	"fmt"
	"net/http"
	"strings"
)

// Form creates a binder for application/x-www-form-urlencoded requests.
//
// Supported struct tags:
//   - `form:"name"` - binds to form field "name"
//   - `form:"-"`    - skips the field
//
// Fields whose pointer implements encoding.TextUnmarshaler (rut.RUT among
// them) are decoded through UnmarshalText, so a RUT field accepts any layout
// rut.Parse understands.
//
// Example:
//
//	type SignupRequest struct {
//		Name string  `form:"name"`
//		RUT  rut.RUT `form:"rut"`
//	}
//
//	var req SignupRequest
//	if err := binder.Form()(r, &req); err != nil {
//		// errors.Is(err, rut.ErrMalformedInput) for a bad RUT
//	}
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected application/x-www-form-urlencoded", ErrMissingContentType)
		}

		mediaType := contentType
		if idx := strings.Index(contentType, ";"); idx != -1 {
			mediaType = strings.TrimSpace(contentType[:idx])
		}
		if mediaType != "application/x-www-form-urlencoded" {
			return fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded", ErrUnsupportedMediaType, mediaType)
		}

		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("%w: %w", ErrFailedToParseForm, err)
		}

		return bindToStruct(v, "form", r.PostForm, ErrFailedToParseForm)
	}
}

// Query creates a binder for URL query parameters using `query:"name"` tags.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrFailedToParseQuery)
	}
}
