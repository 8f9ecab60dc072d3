package types

// CrashPhase is the state of the crash overlay state machine
type CrashPhase string

const (
	CrashIdle     CrashPhase = "idle"
	CrashActive   CrashPhase = "active"
	CrashResolved CrashPhase = "resolved"
)

// CrashState is what the overlay renders. Active stays true through the
// resolved phase until the settle delay returns the machine to idle.
type CrashState struct {
	Active     bool       `json:"active"`
	ReasonCode string     `json:"reason_code,omitempty"`
	Progress   int        `json:"progress"`
	Phase      CrashPhase `json:"phase"`
}

// ZoomiesState guards the zoomies sequence against overlapping triggers
type ZoomiesState struct {
	Active bool `json:"active"`
}
