package types

// ProcessKey is the fixed identifier of a pseudo-process
type ProcessKey string

const (
	ProcFoodScanner   ProcessKey = "foodScanner"
	ProcSleepMode     ProcessKey = "sleepMode"
	ProcZoomiesDaemon ProcessKey = "zoomiesDaemon"
	ProcHumanDetector ProcessKey = "humanDetector"
	ProcChaosEngine   ProcessKey = "chaosEngine"
)

// ProcessStatus is the displayed status of a pseudo-process
type ProcessStatus string

const (
	StatusRunning  ProcessStatus = "running"
	StatusStandby  ProcessStatus = "standby"
	StatusWaiting  ProcessStatus = "waiting"
	StatusCritical ProcessStatus = "critical"
)

// ProcessStatuses lists every status in draw order
func ProcessStatuses() []ProcessStatus {
	return []ProcessStatus{StatusRunning, StatusStandby, StatusWaiting, StatusCritical}
}

// ProcessEntry is one row of the process table. Load is in [0,100].
type ProcessEntry struct {
	Key    ProcessKey    `json:"key"`
	Name   string        `json:"name"`
	Status ProcessStatus `json:"status"`
	Load   int           `json:"load"`
}
