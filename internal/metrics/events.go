package metrics

import (
	"github.com/aaronzipp/explorers-mission/internal/game"
)

// GameCollector records game milestones
type GameCollector struct{}

// NewGameCollector creates a new game metrics collector
func NewGameCollector() *GameCollector {
	return &GameCollector{}
}

// Observe updates the counters for one milestone
func (GameCollector) Observe(m game.Milestone) {
	switch m.Kind {
	case game.MilestoneSessionStarted:
		SessionsStarted.Inc()
	case game.MilestoneCorrect:
		Answers.WithLabelValues(string(m.Phase), ResultCorrect).Inc()
	case game.MilestoneWrong:
		Answers.WithLabelValues(string(m.Phase), ResultWrong).Inc()
	case game.MilestonePhaseComplete:
		PhasesCompleted.WithLabelValues(string(m.Phase)).Inc()
	case game.MilestoneOfferAnswered:
		OffersAnswered.WithLabelValues(m.Label).Inc()
	case game.MilestoneExchange:
		Exchanges.WithLabelValues(m.Label).Inc()
	}
}
