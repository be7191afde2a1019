// internal/component/target.go
package component

import "go-cannon-siege/internal/defs"

// Target — блок здания. Destroyed переходит в true ровно один раз.
type Target struct {
	defs.TargetDefinition
	Destroyed bool
	Rotation  float64
}

// Score — текущий счёт
type Score struct {
	Total    int
	Reported int
	Won      bool
}

// Camera хранит масштаб вида
type Camera struct {
	Zoom float64
}
