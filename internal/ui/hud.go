// internal/ui/hud.go
package ui

import (
	"fmt"

	"go-cannon-siege/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// HUDData — то, что показывает HUD
type HUDData struct {
	Score    int
	Angle    float64
	Charge   float64
	Zoom     float64
	InFlight bool
	Won      bool
}

// HUD выводит текстовые строки состояния в левом верхнем углу
type HUD struct {
	X, Y     int
	fontFace font.Face
}

func NewHUD(x, y int) *HUD {
	return &HUD{X: x, Y: y, fontFace: basicfont.Face7x13}
}

// Lines форматирует строки HUD
func (h *HUD) Lines(d HUDData) []string {
	lines := []string{
		fmt.Sprintf("Score: %d", d.Score),
		fmt.Sprintf("Angle: %.0f", d.Angle),
		fmt.Sprintf("Zoom: %.3f", d.Zoom),
	}
	switch {
	case d.InFlight:
		lines = append(lines, "In flight (R to reset)")
	case d.Charge > 0:
		lines = append(lines, fmt.Sprintf("Charge: %.2fs", d.Charge))
	}
	if d.Won {
		lines = append(lines, config.WinBanner)
	}
	return lines
}

func (h *HUD) Draw(screen *ebiten.Image, d HUDData) {
	for i, line := range h.Lines(d) {
		text.Draw(screen, line, h.fontFace, h.X, h.Y+i*config.HUDLineHeight, config.TextDarkColor)
	}
}
