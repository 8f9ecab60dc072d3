package types

// Snapshot is the complete read model of a session
type Snapshot struct {
	SessionID   string         `json:"session_id"`
	Vitals      VitalStats     `json:"vitals"`
	Windows     []WindowHandle `json:"windows"`
	Processes   []ProcessEntry `json:"processes"`
	Crash       CrashState     `json:"crash"`
	Zoomies     ZoomiesState   `json:"zoomies"`
	BoxOccupied bool           `json:"box_occupied"`
	YarnTangles int            `json:"yarn_tangles"`
	Logs        []LogEntry     `json:"logs"`
}
