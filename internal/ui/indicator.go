// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-cannon-siege/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ChargeIndicator — круг, растущий при зарядке и вспыхивающий при выстреле
type ChargeIndicator struct {
	X, Y         float32
	Radius       float32
	LastShotTime time.Time
}

func NewChargeIndicator(x, y, radius float32) *ChargeIndicator {
	return &ChargeIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// Pulse запускает вспышку
func (i *ChargeIndicator) Pulse() {
	i.LastShotTime = time.Now()
}

// Draw отрисовывает индикатор. charge в секундах.
func (i *ChargeIndicator) Draw(screen *ebiten.Image, charge float64, inFlight bool) {
	elapsed := time.Since(i.LastShotTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8) + math.Min(charge, 3)/3
	currentRadius := i.Radius * float32(scale)

	var fill color.Color = config.ChargeIdleColor
	switch {
	case inFlight:
		fill = config.FlightColor
	case charge > 0:
		fill = config.ChargeHotColor
	}

	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, fill, true)
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, float32(config.StrokeWidth), config.IndicatorStroke, true)
}
