package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestNormalizeDegrees(t *testing.T) {
	assert.Equal(t, 0.0, NormalizeDegrees(360))
	assert.Equal(t, 358.0, NormalizeDegrees(-2))
	assert.Equal(t, 40.0, NormalizeDegrees(400))

	rapid.Check(t, func(rt *rapid.T) {
		a := rapid.Float64Range(-1e6, 1e6).Draw(rt, "angle")
		n := NormalizeDegrees(a)
		if n < 0 || n >= 360 {
			rt.Fatalf("NormalizeDegrees(%v) = %v", a, n)
		}
	})
}

func TestClamp(t *testing.T) {
	assert.Equal(t, -45.0, Clamp(-60, -45, 75))
	assert.Equal(t, 75.0, Clamp(80, -45, 75))
	assert.Equal(t, 10.0, Clamp(10, -45, 75))
}

func TestPointOnCircle(t *testing.T) {
	x, y := PointOnCircle(-9, -4, 2, 0)
	assert.Equal(t, -7.0, x)
	assert.Equal(t, -4.0, y)

	x, y = PointOnCircle(-9, -4, 2, 90)
	assert.InDelta(t, -9.0, x, 1e-12)
	assert.InDelta(t, -2.0, y, 1e-12)

	assert.InDelta(t, math.Pi, DegToRad(180), 1e-15)
}

func TestHoldLatch(t *testing.T) {
	var l HoldLatch

	// Клавиша зажата с прошлого состояния: не срабатывает до отпускания
	l.Arm(true)
	assert.False(t, l.Pass(true))
	assert.False(t, l.Pass(true))
	assert.False(t, l.Pass(false))
	assert.True(t, l.Pass(true))

	// Вход без зажатой клавиши
	l.Arm(false)
	assert.True(t, l.Pass(true))
	assert.False(t, l.Pass(false))
}
