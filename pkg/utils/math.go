// pkg/utils/math.go
package utils

import "math"

// Abs returns the absolute value of x.
func Abs(x float64) float64 {
	return math.Abs(x)
}

// Distance returns the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// LineDistance returns the distance from (x, y) to the infinite line through
// (px, py) inclined at angle radians. It is the slope form
// |(y-py) - tan(a)(x-px)| / sqrt(1+tan²(a)) rewritten with sin/cos, so it stays
// finite when the line is vertical.
func LineDistance(x, y, px, py, angle float64) float64 {
	return Abs((y-py)*math.Cos(angle) - (x-px)*math.Sin(angle))
}

// WithinBox reports whether (x, y) lies inside the axis-aligned box centred at
// (cx, cy) with the given half extents. Edges count as inside.
func WithinBox(x, y, cx, cy, halfW, halfH float64) bool {
	return Abs(x-cx) <= halfW && Abs(y-cy) <= halfH
}
