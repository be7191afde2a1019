// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go-cannon-siege/internal/config"

	"gopkg.in/yaml.v3"
)

// LoadTargetDefinitions reads a layout file. The format follows the
// extension: .yaml/.yml or .json. Order in the file is hit-test order.
func LoadTargetDefinitions(path string) ([]TargetDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read target definitions file: %w", err)
	}

	var targetDefs []TargetDefinition
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(file, &targetDefs)
	case ".json":
		err = json.Unmarshal(file, &targetDefs)
	default:
		return nil, fmt.Errorf("%w: unsupported layout format %q", config.ErrInvalidConfiguration, filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal target definitions: %v", config.ErrInvalidConfiguration, err)
	}

	if err := ValidateTargets(targetDefs); err != nil {
		return nil, err
	}
	return targetDefs, nil
}

// ValidateTargets rejects empty layouts, duplicate IDs and degenerate boxes.
func ValidateTargets(targetDefs []TargetDefinition) error {
	if len(targetDefs) == 0 {
		return fmt.Errorf("%w: layout has no targets", config.ErrInvalidConfiguration)
	}
	seen := make(map[string]struct{}, len(targetDefs))
	for i, def := range targetDefs {
		if def.ID == "" {
			return fmt.Errorf("%w: target #%d has no id", config.ErrInvalidConfiguration, i)
		}
		if _, dup := seen[def.ID]; dup {
			return fmt.Errorf("%w: duplicate target id %q", config.ErrInvalidConfiguration, def.ID)
		}
		seen[def.ID] = struct{}{}
		if def.HalfWidth <= 0 || def.HalfHeight <= 0 {
			return fmt.Errorf("%w: target %q has a non-positive hit box", config.ErrInvalidConfiguration, def.ID)
		}
		if def.Score < 0 {
			return fmt.Errorf("%w: target %q has a negative score", config.ErrInvalidConfiguration, def.ID)
		}
	}
	return nil
}
