// internal/app/bootstrap.go
package app

import (
	"fmt"
	"io"

	"go-cannon-siege/internal/config"
	"go-cannon-siege/internal/defs"

	"go.uber.org/zap"
)

// Options — всё, что нужно для NewGame
type Options struct {
	Tuning     config.Tuning
	Difficulty config.Difficulty
	Targets    []defs.TargetDefinition
}

// LoadOptions reads tuning and layout files named by the environment, then
// the difficulty: from CANNON_GRAVITY/CANNON_AIR when both are set, otherwise
// from the startup prompt on in/out.
func LoadOptions(in io.Reader, out io.Writer, logger *zap.Logger) (Options, error) {
	var opts Options

	opts.Tuning = config.DefaultTuning()
	if path := config.GetEnv(config.EnvTuning, ""); path != "" {
		tuning, err := config.LoadTuning(path)
		if err != nil {
			return opts, fmt.Errorf("failed to load tuning %s: %w", path, err)
		}
		opts.Tuning = tuning
		logger.Info("tuning loaded", zap.String("path", path))
	}

	opts.Targets = defs.DefaultTargets()
	if path := config.GetEnv(config.EnvLayout, ""); path != "" {
		targets, err := defs.LoadTargetDefinitions(path)
		if err != nil {
			return opts, fmt.Errorf("failed to load layout %s: %w", path, err)
		}
		opts.Targets = targets
		logger.Info("layout loaded", zap.String("path", path), zap.Int("targets", len(targets)))
	}

	gravity := config.GetEnv(config.EnvGravity, "")
	air := config.GetEnv(config.EnvAir, "")
	var err error
	if gravity != "" && air != "" {
		opts.Difficulty, err = config.ParseDifficulty(gravity, air)
	} else {
		opts.Difficulty, err = config.ReadDifficulty(in, out)
	}
	if err != nil {
		return opts, err
	}
	if !opts.Difficulty.InRange() {
		logger.Warn("selector out of range, using fallback",
			zap.Float64("gravity_selector", opts.Difficulty.GravitySelector),
			zap.Float64("air_selector", opts.Difficulty.AirSelector),
		)
	}
	logger.Info("difficulty",
		zap.Float64("gravity", opts.Difficulty.Gravity),
		zap.Float64("drag", opts.Difficulty.Drag),
	)
	return opts, nil
}
