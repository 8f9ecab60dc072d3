// Package main is the entry point for the CatOS 9.lives backend.
//
// The server runs one simulated cat desktop and exposes it over REST and a
// WebSocket stream for the browser front end.
//
// Configuration:
//   - Environment variables (12-factor), see internal/infrastructure/config
//   - CLI flags override the listen address and log mode
//   - CATOS_CONFIG names an optional TOML file for simulation timings
//
// Usage:
//
//	./server -port 8000
//	./server -dev
//	CATOS_SEED=42 ./server
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
