/*
Package monitoring provides metrics collection for the CatOS backend.

# Overview

Metrics are kept in a private Prometheus registry so that tests and
multiple servers in one process never collide on registration. The
collector implements session.Observer, which turns every desktop state
change into a gauge or counter update.

# Features

- HTTP request metrics (latency, throughput, size)
- Desktop metrics (attention, priority, windows, process load)
- Crash, zoomies and notification counters
- Log panel entries by severity
- WebSocket connection metrics
- Go runtime, process and uptime metrics

# Usage

	metrics := monitoring.NewMetrics()

	// Feed it desktop changes
	sess := session.New(session.Options{Observer: session.Observers{hub, metrics}})

	// Add middleware to Gin router
	router.Use(monitoring.Middleware(metrics))

	// Expose the registry
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
*/
package monitoring
