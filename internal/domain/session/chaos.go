package session

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/CatOS/backend/internal/shared/chance"
	"github.com/GriffinCanCode/CatOS/backend/internal/shared/types"
)

// TriggerChaos knocks a random object over and returns its name
func (s *Session) TriggerChaos() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.triggerChaos()
}

func (s *Session) triggerChaos() string {
	target := s.cat.Target(s.rnd)
	s.emitLog(fmt.Sprintf("CHAOS: Destroyed %s", target), types.SeverityError)
	s.notify(fmt.Sprintf("💥 %s has been knocked over!", target))
	return target
}

// TriggerZoomies starts a zoomies burst. It returns false while one is
// already running.
func (s *Session) TriggerZoomies() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.triggerZoomies()
}

func (s *Session) triggerZoomies() bool {
	if s.zoomies.Active {
		s.logger.Debug("Zoomies already active, ignoring trigger")
		return false
	}
	s.zoomies.Active = true
	affected := s.windows.IDs()

	s.emitLog("⚠️ ZOOMIES ACTIVATED ⚠️", types.SeverityError)
	s.notify("🏃💨 ZOOMIES IN PROGRESS!")
	s.obs.OnZoomiesEffect(true, affected)
	s.logger.Info("Zoomies started", zap.Duration("duration", s.timing.ZoomiesDuration))

	s.after(s.timing.ZoomiesDuration, func() {
		// stop exactly the windows that started shaking
		s.obs.OnZoomiesEffect(false, affected)
		s.zoomies.Active = false
		s.emitLog("Zoomies concluded - assessing damage", types.SeverityInfo)
		s.logger.Info("Zoomies ended")
	})
	return true
}

// RecordKeyIntercept handles a keystroke the cat may swat at
func (s *Session) RecordKeyIntercept(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !chance.Roll(s.rnd, KeyInterceptChance) {
		return false
	}
	s.emitLog(fmt.Sprintf("Key \"%s\" intercepted by cat paw", key), types.SeverityWarning)
	if chance.Roll(s.rnd, KeyChaosChance) {
		s.triggerChaos()
	}
	return true
}

// ToggleOccupancy flips the box occupant flag and returns the new value
func (s *Session) ToggleOccupancy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.boxOccupied = !s.boxOccupied
	if s.boxOccupied {
		s.emitLog("Cat has entered the box dimension", types.SeveritySuccess)
	} else {
		s.emitLog("Cat emerged from box (temporarily)", types.SeverityInfo)
	}
	return s.boxOccupied
}

// BoxOccupied reports whether the cat is in the box
func (s *Session) BoxOccupied() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.boxOccupied
}

// ClickStartMenu is politely declined
func (s *Session) ClickStartMenu() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notify("🐱 Meow! (Translation: No.)")
	s.emitLog("Start menu clicked - cat refused", types.SeverityWarning)
}
