// internal/system/score.go
package system

import (
	"go-cannon-siege/internal/entity"
	"go-cannon-siege/internal/event"
)

// ScoreSystem сообщает о росте счёта и однократно о победе
type ScoreSystem struct {
	state           *entity.GameState
	eventDispatcher *event.Dispatcher
}

func NewScoreSystem(state *entity.GameState, eventDispatcher *event.Dispatcher) *ScoreSystem {
	return &ScoreSystem{
		state:           state,
		eventDispatcher: eventDispatcher,
	}
}

func (s *ScoreSystem) Update() {
	score := s.state.Score
	if score.Total <= score.Reported {
		return
	}
	score.Reported = score.Total
	s.eventDispatcher.Dispatch(event.Event{Type: event.ScoreUpdated, Data: event.ScoreData{Total: score.Total}})

	if !score.Won && score.Total > s.state.Tuning.VictoryThreshold {
		score.Won = true
		s.eventDispatcher.Dispatch(event.Event{Type: event.Victory, Data: event.ScoreData{Total: score.Total}})
	}
}
