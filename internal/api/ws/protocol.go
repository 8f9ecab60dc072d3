package ws

import (
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
)

// MessageType names a frame
type MessageType string

// Server -> client frames
const (
	TypeSnapshot  MessageType = "snapshot"
	TypeLogs      MessageType = "logs"
	TypeWindows   MessageType = "windows"
	TypeAttention MessageType = "attention"
	TypePriority  MessageType = "priority"
	TypeProcesses MessageType = "processes"
	TypeCrash     MessageType = "crash"
	TypeNotify    MessageType = "notify"
	TypeZoomies   MessageType = "zoomies"
	TypePong      MessageType = "pong"
	TypeError     MessageType = "error"
)

// Client -> server commands
const (
	CmdOpenWindow  = "open_window"
	CmdCloseWindow = "close_window"
	CmdRaiseWindow = "raise_window"
	CmdPlay        = "play"
	CmdToggleBox   = "toggle_box"
	CmdKey         = "key"
	CmdStartMenu   = "start_menu"
	CmdPing        = "ping"
)

// ErrMissingType is returned for a command without a type
var ErrMissingType = errors.New("decode command: missing type")

// Frame is the envelope of every server message
type Frame struct {
	Type      MessageType `json:"type"`
	Data      any         `json:"data,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

// Command is a client message. Fields are used depending on Type.
type Command struct {
	Type string `json:"type"`
	App  string `json:"app,omitempty"`
	ID   int    `json:"id,omitempty"`
	Key  string `json:"key,omitempty"`
}

// NotifyData is the payload of a notify frame
type NotifyData struct {
	Text       string `json:"text"`
	DurationMS int64  `json:"duration_ms"`
}

// ZoomiesData is the payload of a zoomies frame
type ZoomiesData struct {
	Active    bool  `json:"active"`
	WindowIDs []int `json:"window_ids"`
}

// ErrorData is the payload of an error frame
type ErrorData struct {
	Message string `json:"message"`
	Command string `json:"command,omitempty"`
}

// Encode serializes a frame
func Encode(f Frame) ([]byte, error) {
	raw, err := sonic.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("encode %s frame: %w", f.Type, err)
	}
	return raw, nil
}

// DecodeCommand parses a client message
func DecodeCommand(raw []byte) (Command, error) {
	var cmd Command
	if err := sonic.Unmarshal(raw, &cmd); err != nil {
		return Command{}, fmt.Errorf("decode command: %w", err)
	}
	if cmd.Type == "" {
		return Command{}, ErrMissingType
	}
	return cmd, nil
}
