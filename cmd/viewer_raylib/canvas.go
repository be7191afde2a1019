package main

import (
	"go-cannon-siege/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// raylibCanvas реализует app.Canvas поверх raylib
type raylibCanvas struct {
	shapes map[string]render.Shape
	view   render.View
	dimmed bool
}

func newRaylibCanvas(shapes map[string]render.Shape, view render.View) *raylibCanvas {
	return &raylibCanvas{shapes: shapes, view: view}
}

func (c *raylibCanvas) BeginFrame(zoom float64) {
	c.view.Zoom = zoom
}

// DrawShape заливает выпуклую фигуру веером треугольников
func (c *raylibCanvas) DrawShape(name string, x, y, rotation float64) {
	shape, ok := c.shapes[name]
	if !ok {
		return
	}
	pts := c.view.Transform(shape, x, y, rotation)
	if len(pts) < 3 {
		return
	}
	fill := shape.FillColor(c.dimmed)
	col := rl.NewColor(fill.R, fill.G, fill.B, fill.A)
	v0 := toVector2(pts[0])
	for i := 1; i+1 < len(pts); i++ {
		v1, v2 := toVector2(pts[i]), toVector2(pts[i+1])
		// rl.DrawTriangle ждёт вершины против часовой стрелки на экране
		if cross(v0, v1, v2) > 0 {
			v1, v2 = v2, v1
		}
		rl.DrawTriangle(v0, v1, v2, col)
	}
}

func toVector2(p render.Point) rl.Vector2 {
	return rl.NewVector2(float32(p.X), float32(p.Y))
}

func cross(a, b, c rl.Vector2) float32 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
