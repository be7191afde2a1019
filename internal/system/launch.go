// internal/system/launch.go
package system

import (
	"math"

	"go-cannon-siege/internal/entity"
	"go-cannon-siege/internal/event"
	"go-cannon-siege/internal/utils"

	"github.com/google/uuid"
)

// LaunchSystem заряжает и производит выстрел. Одновременно в полёте только одно ядро.
type LaunchSystem struct {
	state           *entity.GameState
	eventDispatcher *event.Dispatcher
	newShotID       func() string
}

func NewLaunchSystem(state *entity.GameState, eventDispatcher *event.Dispatcher) *LaunchSystem {
	return &LaunchSystem{
		state:           state,
		eventDispatcher: eventDispatcher,
		newShotID:       uuid.NewString,
	}
}

// Press начинает зарядку
func (s *LaunchSystem) Press() {
	if s.state.Projectile.InFlight {
		return
	}
	s.state.Cannon.Charging = true
	s.state.Cannon.ChargeStart = s.state.GameTime
}

// Release стреляет с силой, пропорциональной времени зарядки
func (s *LaunchSystem) Release() {
	cannon := s.state.Cannon
	p := s.state.Projectile
	if p.InFlight || !cannon.Charging {
		return
	}
	// Длительность считается, пока зарядка ещё активна
	charge := s.ChargeDuration()
	cannon.Charging = false

	speed := charge * s.state.Tuning.PowerFactor
	rad := utils.DegToRad(cannon.Angle)

	p.X, p.Y = s.state.Muzzle()
	p.Launch.X = speed * math.Cos(rad)
	p.Launch.Y = speed * math.Sin(rad)
	p.Velocity = p.Launch
	p.Drag = s.state.Difficulty.Drag
	p.Gravity = s.state.Difficulty.Gravity
	p.InFlight = true
	p.Elapsed = 0
	p.LaunchTime = s.state.GameTime
	p.ShotID = s.newShotID()

	s.eventDispatcher.Dispatch(event.Event{Type: event.ShotFired, Data: event.ShotData{
		ShotID: p.ShotID,
		Angle:  cannon.Angle,
		Charge: charge,
		UX:     p.Launch.X,
		UY:     p.Launch.Y,
	}})
}

// ChargeDuration — сколько длится текущая зарядка (0, если кнопка не зажата)
func (s *LaunchSystem) ChargeDuration() float64 {
	if !s.state.Cannon.Charging {
		return 0
	}
	return s.state.GameTime - s.state.Cannon.ChargeStart
}

// Reset прерывает выстрел и возвращает ядро в дуло
func (s *LaunchSystem) Reset() {
	shotID := s.state.Projectile.ShotID
	s.state.Cannon.Charging = false
	s.state.HomeProjectile()
	s.eventDispatcher.Dispatch(event.Event{Type: event.ShotReset, Data: event.ShotData{ShotID: shotID, Angle: s.state.Cannon.Angle}})
}
