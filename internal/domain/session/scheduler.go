package session

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/CatOS/backend/internal/shared/types"
)

type bootLine struct {
	delay    time.Duration
	message  string
	severity types.Severity
}

var bootBanner = []bootLine{
	{0, "CatOS 9.lives initialized", types.SeveritySuccess},
	{0, "All 9 lives operational", types.SeveritySuccess},
	{0, "Scanning for food sources...", types.SeverityInfo},
	{time.Second, "Mouse detected in sector 7", types.SeverityWarning},
	{2500 * time.Millisecond, "Human approaching - initiating ignore protocol", types.SeverityInfo},
	{4 * time.Second, "Sunbeam located at coordinates (3, 7)", types.SeveritySuccess},
}

// Start logs the boot banner and starts the periodic timers
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.started {
		return ErrAlreadyStarted
	}
	s.started = true

	for _, line := range bootBanner {
		if line.delay == 0 {
			s.emitLog(line.message, line.severity)
			continue
		}
		line := line
		s.after(line.delay, func() {
			s.emitLog(line.message, line.severity)
		})
	}

	s.loop(s.ctx, s.timing.AttentionDecay, s.decayTick)
	s.loop(s.ctx, s.timing.PrioritySelect, func() { s.priorityTick() })
	s.loop(s.ctx, s.timing.ProcessSimulation, s.processTick)
	s.loop(s.ctx, s.timing.RandomEvents, s.eventTick)

	s.logger.Info("Scheduler started",
		zap.Duration("attention_decay", s.timing.AttentionDecay),
		zap.Duration("priority_select", s.timing.PrioritySelect),
		zap.Duration("process_simulation", s.timing.ProcessSimulation),
		zap.Duration("random_events", s.timing.RandomEvents))
	return nil
}

// Close stops every timer and waits for the ticker goroutines. Safe to call
// more than once.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.cancel()
	pending := len(s.timers)
	for t := range s.timers {
		t.Stop()
	}
	s.timers = make(map[*clock.Timer]struct{})
	s.crashCancel = nil
	s.crash.Reset()
	s.mu.Unlock()

	s.wg.Wait()
	s.logger.Info("Scheduler stopped", zap.Int("pending_one_shots", pending))
	return nil
}

// Closed reports whether Close has been called
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// after schedules a one-shot. Must be called with s.mu held.
func (s *Session) after(d time.Duration, fn func()) {
	if s.closed {
		return
	}
	var t *clock.Timer
	t = s.clock.AfterFunc(d, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		delete(s.timers, t)
		if s.closed {
			return
		}
		fn()
	})
	s.timers[t] = struct{}{}
}

// loop runs fn every d until ctx is done. Must be called with s.mu held.
func (s *Session) loop(ctx context.Context, d time.Duration, fn func()) {
	if s.closed {
		return
	}
	ticker := s.clock.Ticker(d)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.mu.Lock()
				if !s.closed && ctx.Err() == nil {
					fn()
				}
				s.mu.Unlock()
			}
		}
	}()
}
