// Package logger builds slog loggers with functional options and provides
// attribute helpers that keep key names consistent across rutkit.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "rut"),
//	    logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.InfoContext(ctx, "registry lookup",
//	    logger.RUT(r),            // rut=12.***.***-5
//	    logger.Outcome("accepted"),
//	    logger.Duration(time.Since(start)),
//	)
//
// # Options
//
//   - WithEnvironment – development (text, debug) or staging/production (JSON, info)
//   - WithFormat / WithLevel / WithOutput – override individual settings
//   - WithAttr – static attributes
//   - WithContextExtractors / WithContextValue – attributes pulled from context
//
// RUT values are always logged in the Hidden layout; rut.RUT also implements
// slog.LogValuer with the same masking.
//
// Error returns an empty Attr for nil errors, so it can be passed unconditionally.
package logger
