package formats

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// TOMLStage represents the TOML structure for a stage file.
// Keys match the YAML format.
type TOMLStage struct {
	ID        string            `toml:"id"`
	Name      string            `toml:"name"`
	Width     int               `toml:"width"`
	Height    int               `toml:"height"`
	MaxShifts *int              `toml:"max_shifts"`
	Solution  string            `toml:"solution"`
	Layers    TOMLLayers        `toml:"layers"`
	Metadata  map[string]string `toml:"metadata"`
}

// TOMLLayers holds the three tile layers as rows of tile ids.
type TOMLLayers struct {
	Tile   [][]int `toml:"tile"`
	Ground [][]int `toml:"ground"`
	Sky    [][]int `toml:"sky"`
}

// ParseTOML parses a TOML stage file.
func ParseTOML(data []byte) (Stage, error) {
	var ts TOMLStage
	md, err := toml.Decode(string(data), &ts)
	if err != nil {
		return Stage{}, fmt.Errorf("toml decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Stage{}, fmt.Errorf("toml decode: unknown key %q", undecoded[0].String())
	}
	return Stage{
		ID:        ts.ID,
		Name:      ts.Name,
		Width:     ts.Width,
		Height:    ts.Height,
		MaxShifts: maxShifts(ts.MaxShifts),
		Tile:      ts.Layers.Tile,
		Ground:    ts.Layers.Ground,
		Sky:       ts.Layers.Sky,
		Solution:  ts.Solution,
		Metadata:  ts.Metadata,
	}, nil
}
