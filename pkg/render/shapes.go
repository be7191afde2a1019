package render

import (
	"image/color"

	"go-cannon-siege/internal/defs"
)

// Point — вершина в локальных координатах фигуры
type Point struct {
	X, Y float64
}

// Shape — статичная выпуклая фигура с цветом
type Shape struct {
	Name    string
	Polygon []Point
	Color   color.RGBA
}

// FillColor возвращает цвет заливки; dimmed затемняет его для паузы
func (s Shape) FillColor(dimmed bool) color.RGBA {
	if dimmed {
		return DarkenColor(s.Color)
	}
	return s.Color
}

func box(minX, minY, maxX, maxY float64) []Point {
	return []Point{{minX, minY}, {minX, maxY}, {maxX, maxY}, {maxX, minY}}
}

// DefaultShapes returns the scene geometry keyed by name. Target shapes are
// keyed by the target ID they draw.
func DefaultShapes() map[string]Shape {
	shapes := []Shape{
		{Name: "triangle", Polygon: []Point{{0, 1}, {-1, -1}, {1, -1}}, Color: FloatColor(1, 0.5, 0)},
		{Name: defs.ShapeGround, Polygon: box(-12, -1, 12, 1), Color: FloatColor(0.97, 0.3, 0.3)},
		{Name: defs.ShapeCannon, Polygon: box(-0.5, -0.45, 2.25, 0.45), Color: FloatColor(0.6, 0.4, 0)},
		{Name: "square1", Polygon: box(-1, -1, 1, 1), Color: FloatColor(1, 1, 0)},
		{Name: "square2", Polygon: box(-1, -1, 1, 1), Color: FloatColor(1, 1, 0)},
		{Name: "square3", Polygon: box(-2, -1, 2, 0.7), Color: FloatColor(0.98, 0.98, 0)},
		{Name: "square4", Polygon: box(-1, -0.5, 1, 0.5), Color: FloatColor(0.96, 0.96, 0)},
		{Name: "square5", Polygon: box(-0.25, -0.25, 0.25, 0.25), Color: FloatColor(0.94, 0.94, 0)},
		{Name: "rectangle1", Polygon: box(-0.5, -1.5, 0.5, 1.5), Color: FloatColor(0.8, 0.8, 0)},
		{Name: "rectangle2", Polygon: box(-0.5, -1.5, 0.5, 1.5), Color: FloatColor(0.8, 0.8, 0)},
		{Name: "rectangle3", Polygon: box(-2.5, -0.5, 2.5, 0.5), Color: FloatColor(0.85, 0.85, 0)},
		// Барьер рисуется вдоль той же прямой, что участвует в столкновении
		{Name: defs.ShapeBarrier, Polygon: box(-1.5, -0.15, 1.5, 0.15), Color: FloatColor(0.4, 0.8, 0)},
		{Name: defs.ShapeProjectile, Polygon: box(-0.25, -0.25, 0.25, 0.25), Color: FloatColor(0, 0, 0)},
		{Name: defs.ShapeCeiling, Polygon: box(-12, -0.3, 12, 0.5), Color: FloatColor(0.97, 0.3, 0.3)},
		{Name: defs.ShapeWallLeft, Polygon: box(-0.4, -8, 0.4, 8), Color: FloatColor(0.97, 0.3, 0.3)},
		{Name: defs.ShapeWallRight, Polygon: box(-0.4, -8, 0.4, 8), Color: FloatColor(0.97, 0.3, 0.3)},
	}

	library := make(map[string]Shape, len(shapes))
	for _, s := range shapes {
		library[s.Name] = s
	}
	return library
}
