package types

// Priority is the cat's current top-of-mind drive
type Priority string

const (
	PriorityFood      Priority = "food"
	PriorityChaos     Priority = "chaos"
	PrioritySleep     Priority = "sleep"
	PriorityAffection Priority = "affection"
)

// Priorities lists every priority in selection order
func Priorities() []Priority {
	return []Priority{PriorityFood, PriorityChaos, PrioritySleep, PriorityAffection}
}

// Label returns the taskbar indicator text
func (p Priority) Label() string {
	switch p {
	case PriorityFood:
		return "🐟 FOOD"
	case PriorityChaos:
		return "💥 CHAOS"
	case PrioritySleep:
		return "😴 SLEEP"
	case PriorityAffection:
		return "😻 PETS?"
	default:
		return string(p)
	}
}

const (
	MinAttention = 0.0
	MaxAttention = 100.0
)

// VitalStats holds attention in [0,100] and the current priority
type VitalStats struct {
	Attention float64  `json:"attention"`
	Priority  Priority `json:"priority"`
}
