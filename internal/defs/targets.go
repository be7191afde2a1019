// internal/defs/targets.go
package defs

// DefaultTargets returns the stock building in hit-test order.
func DefaultTargets() []TargetDefinition {
	return []TargetDefinition{
		{ID: "triangle", X: 6, Y: -5, HalfWidth: 0.7, HalfHeight: 0.9, Score: 25, EdgeX: 5.3, EdgeY: -4.1},
		{ID: "square1", X: 4, Y: -5, HalfWidth: 1.1, HalfHeight: 1.1, Score: 10, EdgeX: 3, EdgeY: -4.1},
		{ID: "square2", X: 8, Y: -5, HalfWidth: 1.1, HalfHeight: 1.1, Score: 10, EdgeX: 7, EdgeY: -4},
		{ID: "square3", X: 6, Y: -2, HalfWidth: 2.1, HalfHeight: 0.8, Score: 5, EdgeX: 4.1, EdgeY: -1.4},
		{ID: "square4", X: 6, Y: -0.8, HalfWidth: 1.1, HalfHeight: 0.6, Score: 5, EdgeX: 5.01, EdgeY: -0.35},
		{ID: "square5", X: 6, Y: 0.25, HalfWidth: 0.35, HalfHeight: 0.35, Score: 20, EdgeX: 5.75, EdgeY: 0.5, DeflectBoth: true, Spin: 3},
		{ID: "rectangle1", X: 2.5, Y: -4.5, HalfWidth: 0.6, HalfHeight: 1.6, Score: 3, EdgeX: 2, EdgeY: -3.1},
		{ID: "rectangle2", X: 9.5, Y: -4.5, HalfWidth: 0.6, HalfHeight: 1.6, Score: 7, EdgeX: 9.01, EdgeY: -3.01},
		{ID: "rectangle3", X: 6, Y: -3.5, HalfWidth: 2.6, HalfHeight: 0.6, Score: 7, EdgeX: 3.52, EdgeY: -3.01},
	}
}

// TotalScore sums the score of every definition.
func TotalScore(targets []TargetDefinition) int {
	total := 0
	for _, t := range targets {
		total += t.Score
	}
	return total
}
