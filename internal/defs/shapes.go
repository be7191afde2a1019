// internal/defs/shapes.go
package defs

// Имена фигур сцены. Фигуры целей называются по ID цели.
const (
	ShapeGround     = "ground"
	ShapeCeiling    = "ceiling"
	ShapeWallLeft   = "wall_left"
	ShapeWallRight  = "wall_right"
	ShapeCannon     = "cannon"
	ShapeBarrier    = "barrier"
	ShapeProjectile = "bullet"
)

// SceneryPlacement — позиция статичной декорации
type SceneryPlacement struct {
	Shape string
	X, Y  float64
}

// Scenery returns the fixed frame of the level: ground, ceiling and walls.
func Scenery() []SceneryPlacement {
	return []SceneryPlacement{
		{Shape: ShapeGround, X: 0, Y: -7},
		{Shape: ShapeCeiling, X: 0, Y: 7.5},
		{Shape: ShapeWallLeft, X: -11.6, Y: 0},
		{Shape: ShapeWallRight, X: 11.6, Y: 0},
	}
}
