// Package config provides 12-factor configuration management for the CatOS backend.
//
// Configuration is loaded from environment variables with sensible defaults.
// An optional TOML file named by CATOS_CONFIG overrides the simulation
// settings, which is handy for slowing the desktop down in demos.
//
// Configuration Sections:
//   - Server: HTTP server settings (port, host)
//   - Logging: Log level and output format
//   - RateLimit: Per-IP rate limiting configuration
//   - CORS: Allowed browser origins
//   - Simulation: Timer periods, random seed, event catalogue path
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("Server running on %s\n", cfg.Address())
//
// Environment Variables:
//   - PORT, HOST, LOG_LEVEL, LOG_DEV, CORS_ORIGINS
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED
//   - CATOS_ATTENTION_DECAY, CATOS_PRIORITY_INTERVAL, CATOS_PROCESS_INTERVAL,
//     CATOS_EVENT_INTERVAL, CATOS_CRASH_PROGRESS, CATOS_CRASH_SETTLE,
//     CATOS_LOST_INTEREST_DELAY, CATOS_ZOOMIES_DURATION, CATOS_NOTIFY_DURATION
//   - CATOS_LOG_CAPACITY, CATOS_SEED, CATOS_CATALOGUE, CATOS_CONFIG
//
// Example file:
//
//	[simulation]
//	attention_decay = "2s"
//	zoomies_duration = "10s"
//	seed = 42
package config
