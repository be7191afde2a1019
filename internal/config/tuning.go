package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfiguration is returned for unusable tuning, layout or startup input.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Tuning holds every numeric constant of the simulation. The zero value is not
// usable, start from DefaultTuning.
type Tuning struct {
	// Пушка
	PivotX       float64 `yaml:"pivot_x"`
	PivotY       float64 `yaml:"pivot_y"`
	CannonRadius float64 `yaml:"cannon_radius"`
	AimMin       float64 `yaml:"aim_min"`
	AimMax       float64 `yaml:"aim_max"`
	PowerFactor  float64 `yaml:"power_factor"`

	// Кинематика
	TimeScale   float64 `yaml:"time_scale"`
	DragCutoff  float64 `yaml:"drag_cutoff"`
	FloorY      float64 `yaml:"floor_y"`
	FloorRestY  float64 `yaml:"floor_rest_y"`
	BounceKeepX float64 `yaml:"bounce_keep_x"`
	BounceKeepY float64 `yaml:"bounce_keep_y"`

	// Барьеры
	Barriers           []BarrierTuning `yaml:"barriers"`
	BarrierLineDist    float64         `yaml:"barrier_line_dist"`
	BarrierPivotDist   float64         `yaml:"barrier_pivot_dist"`
	BarrierNudge       float64         `yaml:"barrier_nudge"`
	BarrierSpinImpulse float64         `yaml:"barrier_spin_impulse"`
	BarrierBand        float64         `yaml:"barrier_band"`

	// Цели
	TargetNudge    float64 `yaml:"target_nudge"`
	DeflectDamping float64 `yaml:"deflect_damping"`

	VictoryThreshold int `yaml:"victory_threshold"`
}

// BarrierTuning describes one rotating barrier.
type BarrierTuning struct {
	PivotX float64 `yaml:"pivot_x"`
	PivotY float64 `yaml:"pivot_y"`
	Spin   float64 `yaml:"spin"` // градусы за кадр
}

// DefaultTuning returns the stock values of the game.
func DefaultTuning() Tuning {
	return Tuning{
		PivotX:       -9,
		PivotY:       -4,
		CannonRadius: 2,
		AimMin:       -45,
		AimMax:       75,
		PowerFactor:  2,

		TimeScale:   5,
		DragCutoff:  0.01,
		FloorY:      -5.9,
		FloorRestY:  -6 + 0.12,
		BounceKeepX: 3.0 / 5.0,
		BounceKeepY: 1.0 / 4.0,

		Barriers: []BarrierTuning{
			{PivotX: -1, PivotY: 3, Spin: -2},
			{PivotX: -1, PivotY: -3, Spin: 2},
		},
		BarrierLineDist:    0.3,
		BarrierPivotDist:   1.5,
		BarrierNudge:       0.3,
		BarrierSpinImpulse: 0.5,
		BarrierBand:        1.5,

		TargetNudge:    0.3,
		DeflectDamping: 3.0 / 4.0,

		VictoryThreshold: 90,
	}
}

// Validate checks the invariants the systems rely on.
func (t Tuning) Validate() error {
	switch {
	case t.TimeScale <= 0:
		return fmt.Errorf("%w: time_scale must be positive, got %v", ErrInvalidConfiguration, t.TimeScale)
	case t.AimMin > t.AimMax:
		return fmt.Errorf("%w: aim_min %v is above aim_max %v", ErrInvalidConfiguration, t.AimMin, t.AimMax)
	case t.PowerFactor < 0:
		return fmt.Errorf("%w: power_factor must not be negative, got %v", ErrInvalidConfiguration, t.PowerFactor)
	case t.FloorRestY <= t.FloorY:
		return fmt.Errorf("%w: floor_rest_y %v must be above floor_y %v", ErrInvalidConfiguration, t.FloorRestY, t.FloorY)
	case len(t.Barriers) == 0:
		return fmt.Errorf("%w: at least one barrier is required", ErrInvalidConfiguration)
	}
	return nil
}

// LoadTuning reads a YAML tuning file on top of DefaultTuning, so a file may
// override only the keys it names.
func LoadTuning(path string) (Tuning, error) {
	tuning := DefaultTuning()
	data, err := os.ReadFile(path)
	if err != nil {
		return tuning, fmt.Errorf("failed to read tuning file: %w", err)
	}
	if err := yaml.Unmarshal(data, &tuning); err != nil {
		return tuning, fmt.Errorf("%w: failed to unmarshal tuning: %v", ErrInvalidConfiguration, err)
	}
	if err := tuning.Validate(); err != nil {
		return tuning, err
	}
	return tuning, nil
}
