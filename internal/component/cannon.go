// internal/component/cannon.go
package component

// Cannon — ствол на оси Pivot. Angle в градусах.
type Cannon struct {
	Pivot  Position
	Radius float64
	Angle  float64
	Rate   int // -1, 0, +1

	Charging    bool
	ChargeStart float64
}

// Barrier — вращающаяся перегородка
type Barrier struct {
	Pivot Position
	Angle float64 // градусы
	Spin  float64 // градусы за кадр
}
