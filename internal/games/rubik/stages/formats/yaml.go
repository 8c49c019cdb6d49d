package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLStage represents the YAML structure for a stage file.
type YAMLStage struct {
	ID        string            `yaml:"id"`
	Name      string            `yaml:"name"`
	Width     int               `yaml:"width"`
	Height    int               `yaml:"height"`
	MaxShifts *int              `yaml:"max_shifts"`
	Layers    YAMLLayers        `yaml:"layers"`
	Solution  string            `yaml:"solution,omitempty"`
	Metadata  map[string]string `yaml:"metadata,omitempty"`
}

// YAMLLayers holds the three tile layers as rows of tile ids.
type YAMLLayers struct {
	Tile   [][]int `yaml:"tile"`
	Ground [][]int `yaml:"ground"`
	Sky    [][]int `yaml:"sky,omitempty"`
}

// ParseYAML parses a YAML stage file.
func ParseYAML(data []byte) (Stage, error) {
	var ys YAMLStage
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return Stage{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return Stage{
		ID:        ys.ID,
		Name:      ys.Name,
		Width:     ys.Width,
		Height:    ys.Height,
		MaxShifts: maxShifts(ys.MaxShifts),
		Tile:      ys.Layers.Tile,
		Ground:    ys.Layers.Ground,
		Sky:       ys.Layers.Sky,
		Solution:  ys.Solution,
		Metadata:  ys.Metadata,
	}, nil
}
