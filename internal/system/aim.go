// internal/system/aim.go
package system

import (
	"go-cannon-siege/internal/entity"
	"go-cannon-siege/internal/utils"
)

// AimSystem поворачивает ствол, пока зажата клавиша прицела
type AimSystem struct {
	state *entity.GameState
}

func NewAimSystem(state *entity.GameState) *AimSystem {
	return &AimSystem{state: state}
}

// SetRate задаёт направление поворота. Во время полёта нажатия игнорируются,
// отпускание (rate == 0) принимается всегда.
func (s *AimSystem) SetRate(rate int) {
	if rate != 0 && s.state.Projectile.InFlight {
		return
	}
	switch {
	case rate > 0:
		rate = 1
	case rate < 0:
		rate = -1
	}
	s.state.Cannon.Rate = rate
}

func (s *AimSystem) Update() {
	cannon := s.state.Cannon
	if cannon.Rate != 0 {
		cannon.Angle = utils.Clamp(cannon.Angle+float64(cannon.Rate), s.state.Tuning.AimMin, s.state.Tuning.AimMax)
	}
	// Пока ядро в стволе, оно следует за дулом
	if !s.state.Projectile.InFlight {
		s.state.Projectile.X, s.state.Projectile.Y = s.state.Muzzle()
	}
}
