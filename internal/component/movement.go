// component/movement.go
package component

// Position — компонент позиции в мировых координатах
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости
type Velocity struct {
	X, Y float64
}
