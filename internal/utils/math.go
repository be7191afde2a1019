// internal/utils/math.go
package utils

import "math"

// DegToRad переводит градусы в радианы
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Clamp ограничивает value диапазоном [lo, hi]
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// NormalizeDegrees нормализует угол в диапазон [0, 360)
func NormalizeDegrees(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	if angle >= 360 {
		// -1e-20 + 360 округляется до 360
		return 0
	}
	return angle
}

// PointOnCircle возвращает точку окружности радиуса r с центром (cx, cy) под углом deg
func PointOnCircle(cx, cy, r, deg float64) (float64, float64) {
	rad := DegToRad(deg)
	return cx + r*math.Cos(rad), cy + r*math.Sin(rad)
}
