package session

import (
	"go.uber.org/zap"

	"github.com/GriffinCanCode/CatOS/backend/internal/shared/chance"
)

// ProcessTick perturbs the process table and may set off zoomies or a crash
func (s *Session) ProcessTick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.processTick()
}

func (s *Session) processTick() {
	changed := s.procs.Perturb(s.rnd)
	s.obs.OnProcessesChanged(s.procs.Entries())
	if len(changed) > 0 {
		s.logger.Debug("Processes perturbed", zap.Int("changed", len(changed)))
	}

	if chance.Roll(s.rnd, ZoomiesChance) {
		s.triggerZoomies()
	}
	if chance.Roll(s.rnd, CrashChance) {
		s.triggerCrash()
	}
}

// EventTick emits one random log line from the catalogue
func (s *Session) EventTick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eventTick()
}

func (s *Session) eventTick() {
	msg, sev := s.cat.Emit(s.rnd)
	s.emitLog(msg, sev)
}
