package ws

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/CatOS/backend/internal/shared/types"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// Desktop is the session surface reachable from the stream
type Desktop interface {
	Snapshot() types.Snapshot
	OpenWindow(kind types.AppKind) (types.WindowHandle, error)
	CloseWindow(windowID int) bool
	RaiseWindow(windowID int) bool
	RecordPlayInteraction() float64
	ToggleOccupancy() bool
	RecordKeyIntercept(key string) bool
	ClickStartMenu()
}

// Handler upgrades HTTP requests and serves one client per connection
type Handler struct {
	hub      *Hub
	desktop  Desktop
	upgrader websocket.Upgrader

	mu     sync.Mutex
	closed bool
	active sync.WaitGroup
}

// NewHandler creates a new WebSocket handler. checkOrigin may be nil to
// accept every origin.
func NewHandler(hub *Hub, desktop Desktop, checkOrigin func(r *http.Request) bool) *Handler {
	if checkOrigin == nil {
		checkOrigin = func(*http.Request) bool { return true }
	}
	return &Handler{
		hub:     hub,
		desktop: desktop,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
	}
}

// HandleConnection handles WebSocket upgrade and messages
func (h *Handler) HandleConnection(c *gin.Context) {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "server shutting down"})
		return
	}
	h.active.Add(1)
	h.mu.Unlock()
	defer h.active.Done()

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.hub.logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}

	snapshot := h.desktop.Snapshot()
	cl := h.hub.register(h.hub.frame(TypeSnapshot, snapshot))

	h.active.Add(1)
	go func() {
		defer h.active.Done()
		h.writePump(conn, cl)
	}()
	h.readPump(conn, cl)
}

// Shutdown refuses new connections and waits for open ones to finish.
// Close the hub first so the pumps exit.
func (h *Handler) Shutdown() {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()

	h.active.Wait()
}

func (h *Handler) readPump(conn *websocket.Conn, cl *client) {
	defer func() {
		h.hub.unregister(cl)
		conn.Close()
	}()

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.hub.logger.Warn("WebSocket read error", zap.String("client_id", cl.id.String()), zap.Error(err))
			}
			return
		}

		cmd, err := DecodeCommand(raw)
		if err != nil {
			h.hub.sendTo(cl, h.hub.frame(TypeError, ErrorData{Message: err.Error()}))
			continue
		}
		h.hub.recorder.RecordWSMessage("in", cmd.Type)
		h.dispatch(cl, cmd)
	}
}

func (h *Handler) writePump(conn *websocket.Conn, cl *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case raw, ok := <-cl.send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, raw); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

var (
	errWindowNotFound = errors.New("window not found")
	errMissingKey     = errors.New("key is required")
	errUnknownCommand = errors.New("unknown message type")
)

func (h *Handler) dispatch(cl *client, cmd Command) {
	var err error

	switch cmd.Type {
	case CmdOpenWindow:
		var kind types.AppKind
		kind, err = types.ParseAppKind(cmd.App)
		if err == nil {
			_, err = h.desktop.OpenWindow(kind)
		}
	case CmdCloseWindow:
		if !h.desktop.CloseWindow(cmd.ID) {
			err = errWindowNotFound
		}
	case CmdRaiseWindow:
		if !h.desktop.RaiseWindow(cmd.ID) {
			err = errWindowNotFound
		}
	case CmdPlay:
		h.desktop.RecordPlayInteraction()
	case CmdToggleBox:
		h.desktop.ToggleOccupancy()
	case CmdKey:
		if cmd.Key == "" {
			err = errMissingKey
		} else {
			h.desktop.RecordKeyIntercept(cmd.Key)
		}
	case CmdStartMenu:
		h.desktop.ClickStartMenu()
	case CmdPing:
		h.hub.sendTo(cl, h.hub.frame(TypePong, nil))
	default:
		err = errUnknownCommand
	}

	if err != nil {
		h.hub.sendTo(cl, h.hub.frame(TypeError, ErrorData{Message: err.Error(), Command: cmd.Type}))
	}
}
