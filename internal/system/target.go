// internal/system/target.go
package system

import (
	"go-cannon-siege/internal/component"
	"go-cannon-siege/internal/entity"
	"go-cannon-siege/internal/event"
	"go-cannon-siege/internal/utils"

	pkgutils "go-cannon-siege/pkg/utils"
)

// TargetSystem проверяет попадания по целям в фиксированном порядке.
// Каждая проверка независима: за один кадр может пасть несколько целей.
type TargetSystem struct {
	state           *entity.GameState
	eventDispatcher *event.Dispatcher
}

func NewTargetSystem(state *entity.GameState, eventDispatcher *event.Dispatcher) *TargetSystem {
	return &TargetSystem{
		state:           state,
		eventDispatcher: eventDispatcher,
	}
}

func (s *TargetSystem) Update() {
	p := s.state.Projectile
	if !p.InFlight {
		return
	}
	for _, target := range s.state.Targets {
		if target.Destroyed {
			continue
		}
		if pkgutils.WithinBox(p.X, p.Y, target.X, target.Y, target.HalfWidth, target.HalfHeight) {
			s.hitTarget(target)
		}
	}
}

func (s *TargetSystem) hitTarget(target *component.Target) {
	p := s.state.Projectile
	tuning := s.state.Tuning

	s.state.Score.Total += target.Score
	target.Destroyed = true
	p.Rebaseline(s.state.GameTime)

	// Отражаем ядро от грани, через которую оно вошло
	damp := tuning.DeflectDamping
	switch {
	case p.X < target.EdgeX:
		p.Launch.X = -p.Velocity.X * damp
		if target.DeflectBoth {
			p.Launch.Y = -p.Velocity.Y * damp
		}
		p.X -= tuning.TargetNudge
	case p.Y > target.EdgeY:
		p.Launch.Y = -p.Velocity.Y * damp
		if target.DeflectBoth {
			p.Launch.X = -p.Velocity.X * damp
		}
		p.Y += tuning.TargetNudge
	}

	s.eventDispatcher.Dispatch(event.Event{Type: event.TargetDestroyed, Data: event.TargetData{
		ShotID:   p.ShotID,
		TargetID: target.ID,
		Score:    target.Score,
	}})
}

// Spin крутит декоративно вращающиеся цели
func (s *TargetSystem) Spin() {
	for _, target := range s.state.Targets {
		if target.Spin != 0 && !target.Destroyed {
			target.Rotation = utils.NormalizeDegrees(target.Rotation + target.Spin)
		}
	}
}
