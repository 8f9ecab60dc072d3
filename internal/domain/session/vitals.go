package session

import (
	"github.com/GriffinCanCode/CatOS/backend/internal/domain/vitals"
	"github.com/GriffinCanCode/CatOS/backend/internal/shared/chance"
	"github.com/GriffinCanCode/CatOS/backend/internal/shared/types"
)

// DecayTick runs one attention decay step
func (s *Session) DecayTick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.decayTick()
}

func (s *Session) decayTick() {
	attention, critical := s.vitals.Decay(chance.Between(s.rnd, 0, vitals.MaxDecay))
	if critical {
		s.emitLog("CRITICAL: Attention span depleted", types.SeverityError)
		if chance.Roll(s.rnd, CriticalChaosChance) {
			s.triggerChaos()
		}
	}
	s.obs.OnAttentionChanged(attention)
}

// PriorityTick redraws the current priority
func (s *Session) PriorityTick() types.Priority {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.priorityTick()
}

func (s *Session) priorityTick() types.Priority {
	p := s.vitals.Redraw(s.rnd.Float64())
	s.obs.OnPriorityChanged(p)
	return p
}

// RecordPlayInteraction registers a yarn ball attack
func (s *Session) RecordPlayInteraction() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.yarnTangles++
	s.emitLog("Yarn ball attacked successfully", types.SeveritySuccess)
	attention := s.vitals.Boost(vitals.PlayBoost)
	s.obs.OnAttentionChanged(attention)
	return attention
}

// YarnTangles returns how many tangles the yarn ball has created
func (s *Session) YarnTangles() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.yarnTangles
}
