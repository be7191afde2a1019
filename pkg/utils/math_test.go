package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestLineDistance(t *testing.T) {
	// Горизонтальная прямая через (0, 3)
	assert.InDelta(t, 2.0, LineDistance(5, 5, 0, 3, 0), 1e-12)
	// Вертикальная прямая через (-1, 0)
	assert.InDelta(t, 1.5, LineDistance(0.5, 10, -1, 0, math.Pi/2), 1e-12)
	// Диагональ
	assert.InDelta(t, math.Sqrt2, LineDistance(2, 0, 0, 0, math.Pi/4), 1e-12)
}

func TestLineDistance_MatchesSlopeForm(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		x := rapid.Float64Range(-10, 10).Draw(rt, "x")
		y := rapid.Float64Range(-10, 10).Draw(rt, "y")
		angle := rapid.Float64Range(-1.5, 1.5).Draw(rt, "angle")

		slope := math.Tan(angle)
		want := math.Abs(y-slope*x) / math.Sqrt(1+slope*slope)
		got := LineDistance(x, y, 0, 0, angle)
		if math.Abs(got-want) > 1e-6 {
			rt.Fatalf("LineDistance = %v, slope form = %v", got, want)
		}
	})
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(0, 0, 3, 4))
	assert.Equal(t, 2.0, Abs(-2))
}

func TestWithinBox(t *testing.T) {
	assert.True(t, WithinBox(6, 0.25, 6, 0.25, 0.35, 0.35))
	assert.True(t, WithinBox(6.35, 0.25, 6, 0.25, 0.5, 0.35))
	assert.False(t, WithinBox(6.5, 0.25, 6, 0.25, 0.35, 0.35))
	assert.False(t, WithinBox(6, -1, 6, 0.25, 0.35, 0.35))
}
