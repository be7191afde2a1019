// internal/ui/score_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ScoreIndicator — полоса счёта до победы и по квадрату на каждую цель
type ScoreIndicator struct {
	X, Y float32
}

const (
	scoreBarWidth    = 118
	scoreBarHeight   = 12
	targetRectWidth  = 10
	targetRectHeight = 10
	targetRectGap    = 4
	borderWidth      = 1
)

var (
	scoreBarColorFill = color.RGBA{70, 100, 120, 220}
	scoreBarColorWon  = color.RGBA{50, 205, 50, 255}
	borderColor       = color.RGBA{40, 40, 40, 255}
)

// NewScoreIndicator создает новый индикатор счёта.
func NewScoreIndicator(x, y float32) *ScoreIndicator {
	return &ScoreIndicator{X: x, Y: y}
}

// Draw отрисовывает индикатор. destroyed из total целей закрашиваются.
func (i *ScoreIndicator) Draw(screen *ebiten.Image, score, threshold, destroyed, total int) {
	vector.StrokeRect(screen, i.X, i.Y, scoreBarWidth, scoreBarHeight, borderWidth, borderColor, true)

	fillRatio := 0.0
	if threshold > 0 {
		fillRatio = float64(score) / float64(threshold)
	}
	fillColor := scoreBarColorFill
	if fillRatio > 1.0 {
		fillRatio = 1.0
		fillColor = scoreBarColorWon
	}
	fillWidth := float32(float64(scoreBarWidth-borderWidth*2) * fillRatio)
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, scoreBarHeight-borderWidth*2, fillColor, true)
	}

	rectY := i.Y + scoreBarHeight + 6
	for j := 0; j < total; j++ {
		rectX := i.X + float32(j)*(targetRectWidth+targetRectGap)
		vector.StrokeRect(screen, rectX, rectY, targetRectWidth, targetRectHeight, borderWidth, borderColor, true)
		if j < destroyed {
			vector.DrawFilledRect(screen, rectX+borderWidth, rectY+borderWidth, targetRectWidth-borderWidth*2, targetRectHeight-borderWidth*2, fillColor, true)
		}
	}
}
