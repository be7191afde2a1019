// internal/system/projectile.go
package system

import (
	"go-cannon-siege/internal/config"
	"go-cannon-siege/internal/entity"
	"go-cannon-siege/internal/event"
	"go-cannon-siege/internal/utils"
)

// ProjectileSystem интегрирует полёт ядра и обрабатывает отскок от земли.
//
// Время t отсчитывается от LaunchTime и не обнуляется между кадрами, поэтому
// каждый кадр к позиции добавляется смещение x += ux·t + ½·ax·t² за всё время
// с начала отсчёта. Начало переносится только выстрелом и Rebaseline.
type ProjectileSystem struct {
	state           *entity.GameState
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(state *entity.GameState, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		state:           state,
		eventDispatcher: eventDispatcher,
	}
}

func (s *ProjectileSystem) Update() {
	p := s.state.Projectile
	if !p.InFlight {
		return
	}
	tuning := s.state.Tuning

	// Скорость по прошлому t, как и в момент столкновений прошлого кадра
	p.DeriveVelocity()
	if p.Velocity.X < tuning.DragCutoff {
		p.Drag = 0 // сопротивление только тормозит, развернуть ядро оно не может
	}

	t := (s.state.GameTime - p.LaunchTime) / tuning.TimeScale
	p.Elapsed = t
	p.X += p.Launch.X*t + 0.5*p.Drag*t*t
	p.Y += p.Launch.Y*t + 0.5*p.Gravity*t*t

	if p.Y <= tuning.FloorY {
		s.bounce()
	}
}

// bounce перезапускает полёт от пола с погашенной скоростью
func (s *ProjectileSystem) bounce() {
	p := s.state.Projectile
	tuning := s.state.Tuning

	p.Rebaseline(s.state.GameTime)
	p.Y = tuning.FloorRestY
	p.Launch.Y = -p.Velocity.Y * tuning.BounceKeepY
	p.Launch.X = p.Velocity.X * tuning.BounceKeepX

	s.eventDispatcher.Dispatch(event.Event{Type: event.GroundBounce, Data: event.ContactData{
		ShotID:  p.ShotID,
		X:       p.X,
		Y:       p.Y,
		Barrier: -1,
	}})
}

// Spin вращает спрайт ядра
func (s *ProjectileSystem) Spin() {
	s.state.Projectile.Rotation = utils.NormalizeDegrees(s.state.Projectile.Rotation + config.ProjectileSpin)
}
