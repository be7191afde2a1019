package render

import "math"

// View переводит мировые координаты в экранные. Видимая область: прямоугольник
// [Left, Right]×[Bottom, Top], умноженный на Zoom.
type View struct {
	Left, Right, Bottom, Top float64
	Width, Height            float64
	Zoom                     float64
}

// WorldToScreen maps a world point to pixels, y pointing down.
func (v View) WorldToScreen(x, y float64) (float64, float64) {
	left, right := v.Left*v.Zoom, v.Right*v.Zoom
	bottom, top := v.Bottom*v.Zoom, v.Top*v.Zoom
	sx := (x - left) / (right - left) * v.Width
	sy := (top - y) / (top - bottom) * v.Height
	return sx, sy
}

// Transform возвращает экранные вершины фигуры, повёрнутой на rotation
// градусов и перенесённой в (x, y).
func (v View) Transform(shape Shape, x, y, rotation float64) []Point {
	rad := rotation * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	out := make([]Point, len(shape.Polygon))
	for i, p := range shape.Polygon {
		wx := x + p.X*cos - p.Y*sin
		wy := y + p.X*sin + p.Y*cos
		out[i].X, out[i].Y = v.WorldToScreen(wx, wy)
	}
	return out
}
