// internal/entity/game_state.go
package entity

import (
	"go-cannon-siege/internal/component"
	"go-cannon-siege/internal/config"
	"go-cannon-siege/internal/defs"
	"go-cannon-siege/internal/utils"
)

// GameState — всё изменяемое состояние игры. Создаётся один раз и
// обновляется системами раз в кадр.
type GameState struct {
	GameTime   float64
	Frame      uint64
	Tuning     config.Tuning
	Difficulty config.Difficulty

	Cannon     *component.Cannon
	Projectile *component.Projectile
	Barriers   []*component.Barrier
	Targets    []*component.Target // порядок = порядок проверки попаданий
	Score      *component.Score
	Camera     *component.Camera
}

// NewGameState builds the initial state with the projectile resting at the muzzle.
func NewGameState(tuning config.Tuning, difficulty config.Difficulty, targetDefs []defs.TargetDefinition) *GameState {
	cannon := &component.Cannon{
		Pivot:  component.Position{X: tuning.PivotX, Y: tuning.PivotY},
		Radius: tuning.CannonRadius,
	}

	barriers := make([]*component.Barrier, 0, len(tuning.Barriers))
	for _, b := range tuning.Barriers {
		barriers = append(barriers, &component.Barrier{
			Pivot: component.Position{X: b.PivotX, Y: b.PivotY},
			Spin:  b.Spin,
		})
	}

	targets := make([]*component.Target, 0, len(targetDefs))
	for _, def := range targetDefs {
		targets = append(targets, &component.Target{TargetDefinition: def})
	}

	gs := &GameState{
		Tuning:     tuning,
		Difficulty: difficulty,
		Cannon:     cannon,
		Projectile: &component.Projectile{
			Drag:    difficulty.Drag,
			Gravity: difficulty.Gravity,
		},
		Barriers: barriers,
		Targets:  targets,
		Score:    &component.Score{},
		Camera:   &component.Camera{Zoom: config.ZoomMax},
	}
	gs.HomeProjectile()
	return gs
}

// Muzzle возвращает точку вылета ядра для текущего угла.
func (gs *GameState) Muzzle() (float64, float64) {
	return utils.PointOnCircle(gs.Cannon.Pivot.X, gs.Cannon.Pivot.Y, gs.Cannon.Radius, gs.Cannon.Angle)
}

// HomeProjectile ставит ядро в дуло и сбрасывает полёт.
func (gs *GameState) HomeProjectile() {
	p := gs.Projectile
	p.InFlight = false
	p.X, p.Y = gs.Muzzle()
	p.Launch = component.Velocity{}
	p.Velocity = component.Velocity{}
	p.Elapsed = 0
	p.LaunchTime = gs.GameTime
	p.ShotID = ""
}

// LiveTargets returns the targets that are still standing, in order.
func (gs *GameState) LiveTargets() []*component.Target {
	live := make([]*component.Target, 0, len(gs.Targets))
	for _, t := range gs.Targets {
		if !t.Destroyed {
			live = append(live, t)
		}
	}
	return live
}
