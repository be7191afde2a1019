// internal/app/game.go
package app

import (
	"go-cannon-siege/internal/config"
	"go-cannon-siege/internal/defs"
	"go-cannon-siege/internal/entity"
	"go-cannon-siege/internal/event"
	"go-cannon-siege/internal/system"
)

// Canvas — внешний рендерер: принимает масштаб кадра и рисует фигуры по имени
type Canvas interface {
	BeginFrame(zoom float64)
	DrawShape(name string, x, y, rotation float64)
}

// Status — данные для HUD
type Status struct {
	Score    int
	Angle    float64
	Charge   float64
	Zoom     float64
	InFlight bool
	Won      bool
	Live     int
}

// Game holds the game state and runs the systems once per frame.
type Game struct {
	State            *entity.GameState
	AimSystem        *system.AimSystem
	LaunchSystem     *system.LaunchSystem
	ProjectileSystem *system.ProjectileSystem
	BarrierSystem    *system.BarrierSystem
	TargetSystem     *system.TargetSystem
	ScoreSystem      *system.ScoreSystem
	EventDispatcher  *event.Dispatcher
}

// NewGame initializes a new game instance.
func NewGame(tuning config.Tuning, difficulty config.Difficulty, targets []defs.TargetDefinition) *Game {
	if len(targets) == 0 {
		panic("targets cannot be empty")
	}

	state := entity.NewGameState(tuning, difficulty, targets)
	eventDispatcher := event.NewDispatcher()
	return &Game{
		State:            state,
		AimSystem:        system.NewAimSystem(state),
		LaunchSystem:     system.NewLaunchSystem(state, eventDispatcher),
		ProjectileSystem: system.NewProjectileSystem(state, eventDispatcher),
		BarrierSystem:    system.NewBarrierSystem(state, eventDispatcher),
		TargetSystem:     system.NewTargetSystem(state, eventDispatcher),
		ScoreSystem:      system.NewScoreSystem(state, eventDispatcher),
		EventDispatcher:  eventDispatcher,
	}
}

// Update progresses the game state by one frame.
func (g *Game) Update(deltaTime float64) {
	g.State.GameTime += deltaTime
	g.State.Frame++

	g.AimSystem.Update()
	g.ProjectileSystem.Update()
	g.BarrierSystem.Update()
	g.TargetSystem.Update()
	g.ScoreSystem.Update()

	g.TargetSystem.Spin()
	g.ProjectileSystem.Spin()
}

// Draw отправляет сцену в canvas: декорации, живые цели, барьеры, пушка, ядро
func (g *Game) Draw(c Canvas) {
	s := g.State
	c.BeginFrame(s.Camera.Zoom)

	for _, sc := range defs.Scenery() {
		c.DrawShape(sc.Shape, sc.X, sc.Y, 0)
	}

	for _, t := range s.Targets {
		if t.Destroyed {
			continue
		}
		c.DrawShape(t.ID, t.X, t.Y, t.Rotation)
	}
	for _, b := range s.Barriers {
		c.DrawShape(defs.ShapeBarrier, b.Pivot.X, b.Pivot.Y, b.Angle)
	}
	c.DrawShape(defs.ShapeCannon, s.Cannon.Pivot.X, s.Cannon.Pivot.Y, s.Cannon.Angle)
	c.DrawShape(defs.ShapeProjectile, s.Projectile.X, s.Projectile.Y, s.Projectile.Rotation)
}

// Status собирает состояние для HUD
func (g *Game) Status() Status {
	s := g.State
	return Status{
		Score:    s.Score.Total,
		Angle:    s.Cannon.Angle,
		Charge:   g.LaunchSystem.ChargeDuration(),
		Zoom:     s.Camera.Zoom,
		InFlight: s.Projectile.InFlight,
		Won:      s.Score.Won,
		Live:     len(s.LiveTargets()),
	}
}

// --- Намерения игрока, которые выставляют фронтенды ---

// StartAim начинает поворот ствола: dir > 0 вверх, dir < 0 вниз
func (g *Game) StartAim(dir int) {
	g.AimSystem.SetRate(dir)
}

// StopAim останавливает поворот ствола
func (g *Game) StopAim() {
	g.AimSystem.SetRate(0)
}

// PressFire начинает зарядку выстрела
func (g *Game) PressFire() {
	g.LaunchSystem.Press()
}

// ReleaseFire стреляет
func (g *Game) ReleaseFire() {
	g.LaunchSystem.Release()
}

// ResetShot возвращает ядро в дуло
func (g *Game) ResetShot() {
	g.LaunchSystem.Reset()
}

// ZoomKey меняет масштаб клавишами: dir > 0 расширяет вид, dir < 0 сужает
func (g *Game) ZoomKey(dir int) {
	cam := g.State.Camera
	switch {
	case dir > 0 && cam.Zoom <= config.ZoomKeyLimit:
		cam.Zoom += config.ZoomKeyStep
	case dir < 0 && cam.Zoom > config.ZoomMin:
		cam.Zoom -= config.ZoomKeyStep
	}
	g.clampZoom()
}

// ZoomWheel меняет масштаб колесом мыши
func (g *Game) ZoomWheel(dy float64) {
	cam := g.State.Camera
	switch {
	case dy > 0 && cam.Zoom <= config.ZoomWheelLimit:
		cam.Zoom += config.ZoomWheelStep
	case dy < 0:
		cam.Zoom -= config.ZoomWheelStep
	}
	g.clampZoom()
}

func (g *Game) clampZoom() {
	cam := g.State.Camera
	if cam.Zoom < config.ZoomMin {
		cam.Zoom = config.ZoomMin
	}
	if cam.Zoom > config.ZoomMax {
		cam.Zoom = config.ZoomMax
	}
}
