// internal/state/play_state.go
package state

import (
	"fmt"

	"go-cannon-siege/internal/app"
	"go-cannon-siege/internal/config"
	"go-cannon-siege/internal/event"
	"go-cannon-siege/internal/ui"
	"go-cannon-siege/internal/utils"
	"go-cannon-siege/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что PlayState соответствует интерфейсу State
var _ State = (*PlayState)(nil)

// PlayState — основное состояние: переводит ввод ebiten в намерения игры
type PlayState struct {
	sm        *StateMachine
	game      *app.Game
	renderer  *ui.SceneRenderer
	indicator *ui.ChargeIndicator
	score     *ui.ScoreIndicator
	hud       *ui.HUD
	debug     bool
	zoomOut   utils.HoldLatch // P снимает паузу и сужает вид
}

func NewPlayState(sm *StateMachine, game *app.Game) *PlayState {
	view := render.View{
		Left:   config.WorldLeft,
		Right:  config.WorldRight,
		Bottom: config.WorldBottom,
		Top:    config.WorldTop,
		Width:  config.ScreenWidth,
		Height: config.ScreenHeight,
		Zoom:   game.State.Camera.Zoom,
	}

	indicator := ui.NewChargeIndicator(
		float32(config.ScreenWidth-config.IndicatorOffsetX),
		float32(config.IndicatorOffsetX),
		float32(config.IndicatorRadius),
	)

	ps := &PlayState{
		sm:        sm,
		game:      game,
		renderer:  ui.NewSceneRenderer(render.DefaultShapes(), view),
		indicator: indicator,
		score:     ui.NewScoreIndicator(float32(config.ScreenWidth-config.IndicatorOffsetX-160), 12),
		hud:       ui.NewHUD(10, 20),
	}

	// Вспышка индикатора на каждый выстрел
	game.EventDispatcher.Subscribe(event.ShotFired, event.ListenerFunc(func(event.Event) {
		ps.indicator.Pulse()
	}))
	return ps
}

func (p *PlayState) Enter() {
	p.zoomOut.Arm(ebiten.IsKeyPressed(ebiten.KeyP))
}

func (p *PlayState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		p.sm.RequestQuit()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.game.StopAim()
		p.sm.SetState(NewPauseState(p.sm, p))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		p.debug = !p.debug
	}

	p.handleInput()
	p.game.Update(deltaTime)
}

// handleInput переводит нажатия в намерения
func (p *PlayState) handleInput() {
	g := p.game

	// Прицеливание: держим стрелку
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		g.StartAim(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		g.StartAim(-1)
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyUp) || inpututil.IsKeyJustReleased(ebiten.KeyDown) {
		g.StopAim()
	}

	// Зарядка и выстрел
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.PressFire()
	}
	if inpututil.IsKeyJustReleased(ebiten.KeySpace) || inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.ReleaseFire()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.ResetShot()
	}

	// Масштаб: клавиши держатся, колесо по событию
	if ebiten.IsKeyPressed(ebiten.KeyO) {
		g.ZoomKey(1)
	}
	if p.zoomOut.Pass(ebiten.IsKeyPressed(ebiten.KeyP)) {
		g.ZoomKey(-1)
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		g.ZoomWheel(dy)
	}
}

func (p *PlayState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	p.renderer.SetScreen(screen)
	p.game.Draw(p.renderer)

	st := p.game.Status()
	p.hud.Draw(screen, ui.HUDData{
		Score:    st.Score,
		Angle:    st.Angle,
		Charge:   st.Charge,
		Zoom:     st.Zoom,
		InFlight: st.InFlight,
		Won:      st.Won,
	})
	total := len(p.game.State.Targets)
	p.score.Draw(screen, st.Score, p.game.State.Tuning.VictoryThreshold, total-st.Live, total)
	p.indicator.Draw(screen, st.Charge, st.InFlight)

	if p.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f  frame: %d", ebiten.ActualTPS(), p.game.State.Frame), 10, config.ScreenHeight-20)
	}
}

// SetDimmed затемняет сцену, пока поверх неё нарисована пауза
func (p *PlayState) SetDimmed(dimmed bool) {
	p.renderer.SetDimmed(dimmed)
}

func (p *PlayState) Exit() {}
