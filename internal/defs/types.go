// internal/defs/types.go
package defs

// TargetDefinition describes one scorable block of the building. The hit box
// is centred on (X, Y); EdgeX and EdgeY pick which face the projectile came
// through when it gets deflected.
type TargetDefinition struct {
	ID          string  `json:"id" yaml:"id"`
	X           float64 `json:"x" yaml:"x"`
	Y           float64 `json:"y" yaml:"y"`
	HalfWidth   float64 `json:"half_width" yaml:"half_width"`
	HalfHeight  float64 `json:"half_height" yaml:"half_height"`
	Score       int     `json:"score" yaml:"score"`
	EdgeX       float64 `json:"edge_x" yaml:"edge_x"`
	EdgeY       float64 `json:"edge_y" yaml:"edge_y"`
	DeflectBoth bool    `json:"deflect_both,omitempty" yaml:"deflect_both,omitempty"`
	Spin        float64 `json:"spin,omitempty" yaml:"spin,omitempty"` // градусы за кадр, только для отрисовки
}
