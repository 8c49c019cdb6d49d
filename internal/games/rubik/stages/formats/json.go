package formats

import (
	"encoding/json"
	"fmt"
)

// JSONStage is the stage export schema: a properties block plus the three
// layers. id and solution are optional extensions.
type JSONStage struct {
	ID         string         `json:"id,omitempty"`
	Solution   string         `json:"solution,omitempty"`
	Properties JSONProperties `json:"properties"`
	Layers     JSONLayers     `json:"layers"`
}

// JSONProperties holds stage metadata.
type JSONProperties struct {
	StageName string `json:"stageName"`
	MaxShifts *int   `json:"maxShifts"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

// JSONLayers holds the three tile layers as rows of tile ids.
type JSONLayers struct {
	Tile   [][]int `json:"tile"`
	Ground [][]int `json:"ground"`
	Sky    [][]int `json:"sky"`
}

// ParseJSON parses a JSON stage file.
func ParseJSON(data []byte) (Stage, error) {
	var js JSONStage
	if err := json.Unmarshal(data, &js); err != nil {
		return Stage{}, fmt.Errorf("json decode: %w", err)
	}
	return Stage{
		ID:        js.ID,
		Name:      js.Properties.StageName,
		Width:     js.Properties.Width,
		Height:    js.Properties.Height,
		MaxShifts: maxShifts(js.Properties.MaxShifts),
		Tile:      js.Layers.Tile,
		Ground:    js.Layers.Ground,
		Sky:       js.Layers.Sky,
		Solution:  js.Solution,
	}, nil
}
