// Package server wires the CatOS desktop session to its HTTP and WebSocket
// surfaces.
//
// Lifecycle:
//  1. Build the logger from configuration
//  2. Load the event catalogue (embedded default or CATOS_CATALOGUE)
//  3. Create metrics, tracer and the stream hub
//  4. Create the session with the hub and metrics as observers
//  5. Mount middleware (recovery, tracing, metrics, CORS, rate limit)
//  6. Serve until the context is cancelled, then shut down gracefully
//
// Example Usage:
//
//	cfg, err := config.Load()
//	srv, err := server.New(cfg)
//	err = srv.Run(ctx)
package server
