package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"maps"
	"slices"

	yaml "gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var presetsData []byte

// PresetNames returns names of all built-in format presets.
func PresetNames() ([]string, error) {
	presets, err := loadPresets()
	if err != nil {
		return nil, err
	}
	return slices.Sorted(maps.Keys(presets)), nil
}

// LoadPreset returns a copy of the named built-in format preset.
func LoadPreset(name string) (*FormatConfig, error) {
	presets, err := loadPresets()
	if err != nil {
		return nil, err
	}
	preset, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown format preset %q", name)
	}
	return &preset, nil
}

func loadPresets() (map[string]FormatConfig, error) {
	presets := make(map[string]FormatConfig)
	dec := yaml.NewDecoder(bytes.NewReader(presetsData))
	dec.KnownFields(true)
	if err := dec.Decode(&presets); err != nil {
		return nil, fmt.Errorf("failed to decode built-in presets: %w", err)
	}
	return presets, nil
}
