package session

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/CatOS/backend/internal/domain/crash"
	"github.com/GriffinCanCode/CatOS/backend/internal/shared/types"
)

// TriggerCrash shows the blue screen of cat. It returns false while a
// crash sequence is already running.
func (s *Session) TriggerCrash() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.triggerCrash()
}

func (s *Session) triggerCrash() bool {
	if s.closed || s.crash.State().Phase != types.CrashIdle {
		return false
	}
	reason := s.cat.CrashReason(s.rnd)
	if !s.crash.Trigger(reason) {
		return false
	}

	s.emitLog(fmt.Sprintf("System crash: %s", reason), types.SeverityError)
	s.obs.OnCrashStateChanged(s.crash.State())
	s.logger.Warn("Crash sequence started", zap.String("reason", reason))

	ctx, cancel := context.WithCancel(s.ctx)
	s.crashCancel = cancel
	s.loop(ctx, s.timing.CrashProgress, s.crashTick)
	return true
}

// CrashTick advances the crash progress bar by one step
func (s *Session) CrashTick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.crashTick()
}

func (s *Session) crashTick() {
	if s.crash.State().Phase != types.CrashActive {
		return
	}
	done := s.crash.Advance(crash.Step(s.rnd))
	s.obs.OnCrashStateChanged(s.crash.State())
	if !done {
		return
	}

	if s.crashCancel != nil {
		s.crashCancel()
		s.crashCancel = nil
	}
	s.after(s.timing.CrashSettle, s.settleCrash)
}

func (s *Session) settleCrash() {
	if !s.crash.Settle() {
		return
	}
	s.obs.OnCrashStateChanged(s.crash.State())
	s.emitLog("System recovered from cat crash", types.SeveritySuccess)
	s.logger.Info("Crash sequence resolved")
}
