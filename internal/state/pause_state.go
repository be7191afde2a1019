// internal/state/pause_state.go
package state

import (
	"go-cannon-siege/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает игру: время не идёт, предыдущее состояние только рисуется
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	font          font.Face
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		font:          basicfont.Face7x13,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		s.stateMachine.RequestQuit()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		dimmer, ok := s.previousState.(interface{ SetDimmed(bool) })
		if ok {
			dimmer.SetDimmed(true)
		}
		s.previousState.Draw(screen)
		if ok {
			dimmer.SetDimmed(false)
		}
	}

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PauseOverlay, false)

	pauseText := "PAUSED"
	textWidth := font.MeasureString(s.font, pauseText).Ceil()
	text.Draw(screen, pauseText, s.font, (config.ScreenWidth-textWidth)/2, config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
