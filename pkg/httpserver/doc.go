// Package httpserver runs the rut HTTP API with graceful shutdown.
//
//	srv := httpserver.New(cfg, httpserver.WithLogger(log))
//	err := srv.Run(ctx, router) // returns after ctx is cancelled
//
// Run binds the listener itself, so ":0" works and WithReadyHook reports the
// chosen address. Start failures match ErrStart, shutdown failures ErrShutdown.
package httpserver
