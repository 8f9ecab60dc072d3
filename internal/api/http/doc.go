// Package http provides HTTP handlers for the CatOS REST API.
//
// Handlers are thin: they validate input, call the desktop session and
// render JSON. State changes are also pushed over the WebSocket stream, so
// a front end normally uses these endpoints for commands and the stream for
// updates.
//
// Endpoints:
//   - Health: / and /health
//   - State: /state, /logs
//   - Windows: /windows, /windows/:id, /windows/:id/{raise,minimize,maximize}
//   - Interactions: /interactions/{play,box,key,start-menu}
//   - Triggers: /chaos, /zoomies, /crash
//
// Example Usage:
//
//	handlers := http.NewHandlers(sess, logger)
//	router.GET("/state", handlers.State)
//	router.POST("/windows", handlers.OpenWindow)
package http
