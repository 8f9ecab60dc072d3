package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/CatOS/backend/internal/domain/window"
	"github.com/GriffinCanCode/CatOS/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/CatOS/backend/internal/shared/id"
	"github.com/GriffinCanCode/CatOS/backend/internal/shared/types"
)

// Desktop is the session surface the handlers drive
type Desktop interface {
	ID() id.SessionID
	Snapshot() types.Snapshot
	Logs() []types.LogEntry
	ListWindows() []types.WindowHandle
	WindowStats() window.Stats
	GetWindow(windowID int) (types.WindowHandle, bool)
	OpenWindow(kind types.AppKind) (types.WindowHandle, error)
	CloseWindow(windowID int) bool
	RaiseWindow(windowID int) bool
	MinimizeWindow(windowID int) bool
	MaximizeWindow(windowID int) bool
	RecordPlayInteraction() float64
	ToggleOccupancy() bool
	RecordKeyIntercept(key string) bool
	ClickStartMenu()
	TriggerChaos() string
	TriggerZoomies() bool
	TriggerCrash() bool
}

// Handlers contains all HTTP handlers
type Handlers struct {
	desktop Desktop
	logger  *logging.Logger
}

// NewHandlers creates a new handler set
func NewHandlers(desktop Desktop, logger *logging.Logger) *Handlers {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Handlers{
		desktop: desktop,
		logger:  logger.Component("http"),
	}
}

// OpenWindowRequest is the body of POST /windows
type OpenWindowRequest struct {
	App string `json:"app" binding:"required"`
}

// KeyRequest is the body of POST /interactions/key
type KeyRequest struct {
	Key string `json:"key" binding:"required"`
}

// Root handles the banner
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "CatOS 9.lives",
		"version": "9.0.0",
	})
}

// Health handles the liveness check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "healthy",
		"session_id": h.desktop.ID(),
		"windows":    h.desktop.WindowStats(),
	})
}

// State returns the full desktop snapshot
func (h *Handlers) State(c *gin.Context) {
	c.JSON(http.StatusOK, h.desktop.Snapshot())
}

// Logs returns the log panel, newest first
func (h *Handlers) Logs(c *gin.Context) {
	logs := h.desktop.Logs()
	c.JSON(http.StatusOK, gin.H{
		"logs":  logs,
		"count": len(logs),
	})
}

// ListWindows lists open windows in the order they were opened
func (h *Handlers) ListWindows(c *gin.Context) {
	windows := h.desktop.ListWindows()
	c.JSON(http.StatusOK, gin.H{
		"windows": windows,
		"count":   len(windows),
	})
}

// OpenWindow launches an app
func (h *Handlers) OpenWindow(c *gin.Context) {
	var req OpenWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: app is required"})
		return
	}

	kind, err := types.ParseAppKind(req.App)
	if err == nil {
		var handle types.WindowHandle
		handle, err = h.desktop.OpenWindow(kind)
		if err == nil {
			c.JSON(http.StatusCreated, gin.H{"window": handle})
			return
		}
	}

	if errors.Is(err, types.ErrUnknownApp) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"available": types.AppKinds(),
		})
		return
	}
	h.logger.Error("Failed to open window", zap.String("app", req.App), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// GetWindow returns a single window
func (h *Handlers) GetWindow(c *gin.Context) {
	windowID, ok := windowParam(c)
	if !ok {
		return
	}
	handle, found := h.desktop.GetWindow(windowID)
	if !found {
		notFound(c, windowID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"window": handle})
}

// CloseWindow knocks a window off the desk
func (h *Handlers) CloseWindow(c *gin.Context) {
	h.windowAction(c, h.desktop.CloseWindow)
}

// RaiseWindow brings a window to the top
func (h *Handlers) RaiseWindow(c *gin.Context) {
	h.windowAction(c, h.desktop.RaiseWindow)
}

// MinimizeWindow asks the cat to minimize a window
func (h *Handlers) MinimizeWindow(c *gin.Context) {
	h.windowAction(c, h.desktop.MinimizeWindow)
}

// MaximizeWindow asks the cat to maximize a window
func (h *Handlers) MaximizeWindow(c *gin.Context) {
	h.windowAction(c, h.desktop.MaximizeWindow)
}

func (h *Handlers) windowAction(c *gin.Context, action func(int) bool) {
	windowID, ok := windowParam(c)
	if !ok {
		return
	}
	if !action(windowID) {
		notFound(c, windowID)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"window_id": windowID,
	})
}

// Play records a yarn ball attack
func (h *Handlers) Play(c *gin.Context) {
	attention := h.desktop.RecordPlayInteraction()
	c.JSON(http.StatusOK, gin.H{"attention": attention})
}

// ToggleBox flips the box occupant
func (h *Handlers) ToggleBox(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"occupied": h.desktop.ToggleOccupancy()})
}

// Key reports a keystroke the cat may intercept
func (h *Handlers) Key(c *gin.Context) {
	var req KeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: key is required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"key":         req.Key,
		"intercepted": h.desktop.RecordKeyIntercept(req.Key),
	})
}

// StartMenu clicks the start button
func (h *Handlers) StartMenu(c *gin.Context) {
	h.desktop.ClickStartMenu()
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Chaos knocks something over
func (h *Handlers) Chaos(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"target": h.desktop.TriggerChaos()})
}

// Zoomies starts a zoomies burst unless one is running
func (h *Handlers) Zoomies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"started": h.desktop.TriggerZoomies()})
}

// Crash starts a crash sequence unless one is running
func (h *Handlers) Crash(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"started": h.desktop.TriggerCrash()})
}

func windowParam(c *gin.Context) (int, bool) {
	windowID, err := strconv.Atoi(c.Param("id"))
	if err != nil || windowID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "window id must be a positive integer"})
		return 0, false
	}
	return windowID, true
}

func notFound(c *gin.Context, windowID int) {
	c.JSON(http.StatusNotFound, gin.H{
		"error":     "window not found",
		"window_id": windowID,
	})
}
