package ws

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/CatOS/backend/internal/domain/session"
	"github.com/GriffinCanCode/CatOS/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/CatOS/backend/internal/shared/id"
	"github.com/GriffinCanCode/CatOS/backend/internal/shared/types"
)

// DefaultSendBuffer is the number of frames queued per client before it is
// considered too slow and dropped
const DefaultSendBuffer = 64

var _ session.Observer = (*Hub)(nil)

// Recorder receives connection and message counts
type Recorder interface {
	IncWSConnections()
	DecWSConnections()
	RecordWSMessage(direction, msgType string)
}

type nopRecorder struct{}

func (nopRecorder) IncWSConnections() {}

func (nopRecorder) DecWSConnections() {}

func (nopRecorder) RecordWSMessage(string, string) {}

// HubOptions configures a hub
type HubOptions struct {
	Clock      clock.Clock
	Logger     *logging.Logger
	Recorder   Recorder
	SendBuffer int
}

// Hub fans session changes out to every connected client. Broadcasting
// never blocks: a client whose queue is full is disconnected.
type Hub struct {
	clock    clock.Clock
	logger   *logging.Logger
	recorder Recorder
	buffer   int

	mu      sync.RWMutex
	clients map[*client]struct{}
	closed  bool
}

// NewHub creates an empty hub
func NewHub(opts HubOptions) *Hub {
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}
	if opts.Recorder == nil {
		opts.Recorder = nopRecorder{}
	}
	if opts.SendBuffer <= 0 {
		opts.SendBuffer = DefaultSendBuffer
	}
	return &Hub{
		clock:    opts.Clock,
		logger:   opts.Logger.Component("ws"),
		recorder: opts.Recorder,
		buffer:   opts.SendBuffer,
		clients:  make(map[*client]struct{}),
	}
}

type client struct {
	id   id.ClientID
	send chan []byte

	mu     sync.Mutex
	closed bool
}

// enqueue queues raw without blocking. It reports false when the queue is
// full or the client is gone.
func (c *client) enqueue(raw []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}
	select {
	case c.send <- raw:
		return true
	default:
		return false
	}
}

func (c *client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// register adds a client whose queue already holds the initial frames
func (h *Hub) register(initial ...Frame) *client {
	c := &client{
		id:   id.NewClientID(),
		send: make(chan []byte, h.buffer),
	}
	for _, f := range initial {
		if raw, ok := h.encode(f); ok {
			c.enqueue(raw)
			h.recorder.RecordWSMessage("out", string(f.Type))
		}
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		// the pumps drain the initial frames and then hang up
		c.close()
		return c
	}
	h.clients[c] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()

	h.recorder.IncWSConnections()
	h.logger.Info("Client connected", zap.String("client_id", c.id.String()), zap.Int("clients", count))
	return c
}

// unregister removes a client. Safe to call more than once.
func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	count := len(h.clients)
	h.mu.Unlock()

	c.close()
	if ok {
		h.recorder.DecWSConnections()
		h.logger.Info("Client disconnected", zap.String("client_id", c.id.String()), zap.Int("clients", count))
	}
}

// Clients returns the number of connected clients
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects every client. Clients registering afterwards are
// hung up right away.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		h.unregister(c)
	}
}

func (h *Hub) frame(t MessageType, data any) Frame {
	return Frame{Type: t, Data: data, Timestamp: h.clock.Now().UnixMilli()}
}

func (h *Hub) encode(f Frame) ([]byte, bool) {
	raw, err := Encode(f)
	if err != nil {
		h.logger.Error("Failed to encode frame", zap.String("type", string(f.Type)), zap.Error(err))
		return nil, false
	}
	return raw, true
}

// sendTo queues a frame for a single client
func (h *Hub) sendTo(c *client, f Frame) {
	raw, ok := h.encode(f)
	if !ok {
		return
	}
	if !c.enqueue(raw) {
		h.logger.Warn("Dropping slow client", zap.String("client_id", c.id.String()))
		h.unregister(c)
		return
	}
	h.recorder.RecordWSMessage("out", string(f.Type))
}

// Broadcast queues a frame for every client
func (h *Hub) Broadcast(t MessageType, data any) {
	f := h.frame(t, data)
	raw, ok := h.encode(f)
	if !ok {
		return
	}

	var slow []*client
	h.mu.RLock()
	for c := range h.clients {
		if c.enqueue(raw) {
			h.recorder.RecordWSMessage("out", string(t))
		} else {
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.logger.Warn("Dropping slow client", zap.String("client_id", c.id.String()))
		h.unregister(c)
	}
}

func (h *Hub) OnLogsChanged(logs []types.LogEntry) {
	h.Broadcast(TypeLogs, logs)
}

func (h *Hub) OnWindowsChanged(windows []types.WindowHandle) {
	h.Broadcast(TypeWindows, windows)
}

func (h *Hub) OnAttentionChanged(attention float64) {
	h.Broadcast(TypeAttention, attention)
}

func (h *Hub) OnPriorityChanged(priority types.Priority) {
	h.Broadcast(TypePriority, map[string]string{
		"priority": string(priority),
		"label":    priority.Label(),
	})
}

func (h *Hub) OnProcessesChanged(processes []types.ProcessEntry) {
	h.Broadcast(TypeProcesses, processes)
}

func (h *Hub) OnCrashStateChanged(state types.CrashState) {
	h.Broadcast(TypeCrash, state)
}

func (h *Hub) OnNotify(text string, duration time.Duration) {
	h.Broadcast(TypeNotify, NotifyData{Text: text, DurationMS: duration.Milliseconds()})
}

func (h *Hub) OnZoomiesEffect(active bool, windowIDs []int) {
	h.Broadcast(TypeZoomies, ZoomiesData{Active: active, WindowIDs: windowIDs})
}
