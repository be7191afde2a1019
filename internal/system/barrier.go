// internal/system/barrier.go
package system

import (
	"go-cannon-siege/internal/component"
	"go-cannon-siege/internal/entity"
	"go-cannon-siege/internal/event"
	"go-cannon-siege/internal/utils"

	pkgutils "go-cannon-siege/pkg/utils"
)

// BarrierSystem вращает барьеры и отражает от них ядро.
// Барьер считается бесконечной прямой через ось, но только в радиусе
// BarrierPivotDist от оси.
type BarrierSystem struct {
	state           *entity.GameState
	eventDispatcher *event.Dispatcher
}

func NewBarrierSystem(state *entity.GameState, eventDispatcher *event.Dispatcher) *BarrierSystem {
	return &BarrierSystem{
		state:           state,
		eventDispatcher: eventDispatcher,
	}
}

func (s *BarrierSystem) Update() {
	for _, b := range s.state.Barriers {
		b.Angle = utils.NormalizeDegrees(b.Angle + b.Spin)
	}

	if !s.state.Projectile.InFlight {
		return
	}
	if idx, hit := s.FindContact(); hit {
		s.reflect(idx)
	}
}

// FindContact возвращает индекс первого барьера, которого касается ядро.
func (s *BarrierSystem) FindContact() (int, bool) {
	p := s.state.Projectile
	for i, b := range s.state.Barriers {
		if s.touches(b, p.X, p.Y) {
			return i, true
		}
	}
	return -1, false
}

func (s *BarrierSystem) touches(b *component.Barrier, x, y float64) bool {
	tuning := s.state.Tuning
	lineDist := pkgutils.LineDistance(x, y, b.Pivot.X, b.Pivot.Y, utils.DegToRad(b.Angle))
	pivotDist := pkgutils.Distance(x, y, b.Pivot.X, b.Pivot.Y)
	return lineDist <= tuning.BarrierLineDist && pivotDist <= tuning.BarrierPivotDist
}

// reflect — грубое отражение: сдвиг назад, подкрутка по вертикали в
// зависимости от половины барьера, разворот горизонтальной скорости.
func (s *BarrierSystem) reflect(idx int) {
	p := s.state.Projectile
	b := s.state.Barriers[idx]
	tuning := s.state.Tuning

	p.X -= tuning.BarrierNudge
	rel := p.Y - b.Pivot.Y
	switch {
	case rel >= 0 && rel <= tuning.BarrierBand:
		p.Launch.Y += tuning.BarrierSpinImpulse
	case rel < 0 && rel >= -tuning.BarrierBand:
		p.Launch.Y -= tuning.BarrierSpinImpulse
	}
	p.Rebaseline(s.state.GameTime)
	p.Launch.X = -p.Velocity.X

	s.eventDispatcher.Dispatch(event.Event{Type: event.BarrierHit, Data: event.ContactData{
		ShotID:  p.ShotID,
		X:       p.X,
		Y:       p.Y,
		Barrier: idx,
	}})
}
