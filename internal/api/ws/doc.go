// Package ws streams desktop state to browsers over WebSocket.
//
// The Hub implements session.Observer: every state change is encoded once
// with sonic and queued on each client's buffered channel. A client whose
// queue is full is disconnected rather than allowed to stall the session.
//
// Message Types (Server → Client):
//   - snapshot: full state, sent once on connect
//   - logs, windows, attention, priority, processes, crash: state pushes
//   - notify: toast text and duration
//   - zoomies: effect start or end with the affected window ids
//   - pong, error: replies to a single client
//
// Message Types (Client → Server):
//   - open_window {app}, close_window {id}, raise_window {id}
//   - play, toggle_box, key {key}, start_menu
//   - ping
//
// Example Usage:
//
//	hub := ws.NewHub(ws.HubOptions{Logger: logger, Recorder: metrics})
//	sess := session.New(session.Options{Observer: hub})
//	router.GET("/stream", ws.NewHandler(hub, sess, nil).HandleConnection)
package ws
