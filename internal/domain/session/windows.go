package session

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/CatOS/backend/internal/domain/vitals"
	"github.com/GriffinCanCode/CatOS/backend/internal/domain/window"
	"github.com/GriffinCanCode/CatOS/backend/internal/shared/chance"
	"github.com/GriffinCanCode/CatOS/backend/internal/shared/types"
)

// OpenWindow launches an app window on top of the stack
func (s *Session) OpenWindow(kind types.AppKind) (types.WindowHandle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle, err := s.windows.Open(kind)
	if err != nil {
		return types.WindowHandle{}, err
	}

	s.emitLog(fmt.Sprintf("Launched %s.exe", kind), types.SeverityInfo)
	s.obs.OnWindowsChanged(s.windows.List())

	if chance.Roll(s.rnd, LostInterestChance) {
		s.after(s.timing.LostInterestDelay, func() {
			s.emitLog(fmt.Sprintf("Cat lost interest in %s", kind), types.SeverityWarning)
			s.obs.OnAttentionChanged(s.vitals.Adjust(-vitals.LostInterestPenalty))
		})
	}

	s.logger.Debug("Window opened", zap.Int("window_id", handle.ID), zap.String("app", string(kind)))
	return handle, nil
}

// CloseWindow removes a window. Unknown ids are a no-op.
func (s *Session) CloseWindow(windowID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.windows.Close(windowID); !ok {
		return false
	}
	s.emitLog("Closed window (cat knocked it off desk)", types.SeverityInfo)
	s.obs.OnWindowsChanged(s.windows.List())
	return true
}

// RaiseWindow brings a window to the top
func (s *Session) RaiseWindow(windowID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.windows.Raise(windowID); !ok {
		return false
	}
	s.obs.OnWindowsChanged(s.windows.List())
	return true
}

// ListWindows returns open windows in the order they were opened
func (s *Session) ListWindows() []types.WindowHandle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.windows.List()
}

// GetWindow looks up a single window
func (s *Session) GetWindow(windowID int) (types.WindowHandle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.windows.Get(windowID)
}

// WindowStats reports open and allocated counts and the topmost window
func (s *Session) WindowStats() window.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.windows.Stats()
}

// MinimizeWindow is refused by the cat
func (s *Session) MinimizeWindow(windowID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.windows.Get(windowID); !ok {
		return false
	}
	s.emitLog("Minimize clicked - cat sat on button", types.SeverityWarning)
	return true
}

// MaximizeWindow is refused by the cat
func (s *Session) MaximizeWindow(windowID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.windows.Get(windowID); !ok {
		return false
	}
	s.emitLog("Maximize failed - cat prefers small spaces", types.SeverityError)
	return true
}
