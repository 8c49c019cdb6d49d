// Package stages loads stage definitions and turns them into rule-engine grids.
// This package depends on core but core does not depend on stages.
package stages

import (
	"fmt"

	"github.com/full-fish/RubicksDungeon/internal/games/rubik/core"
)

// CodeBadTile reports a tile id that does not fit the 16-bit id space.
const CodeBadTile = "BAD_TILE"

// Stage represents a complete stage definition.
type Stage struct {
	ID        string
	Name      string
	Width     int
	Height    int
	MaxShifts int // Negative when the stage leaves it to configuration
	Tile      [][]int
	Ground    [][]int
	Sky       [][]int
	Solution  string
	Metadata  map[string]string
	FilePath  string
}

// Title returns the display name, falling back to the id.
func (s Stage) Title() string {
	if s.Name != "" {
		return s.Name
	}
	return s.ID
}

// Spec converts the stage into a grid spec. The single ground 0 becomes the
// player start and is stored as empty.
func (s Stage) Spec() (core.GridSpec, error) {
	if s.Width <= 0 || s.Height <= 0 {
		return core.GridSpec{}, &core.LoadError{
			Code:    core.CodeBadDimensions,
			Message: fmt.Sprintf("stage %s: size %dx%d", s.ID, s.Width, s.Height),
		}
	}

	spec := core.GridSpec{W: s.Width, H: s.Height}
	sources := [core.LayerCount][][]int{
		core.LayerFloor:  s.Tile,
		core.LayerObject: s.Ground,
		core.LayerSky:    s.Sky,
	}

	starts := 0
	for l := core.Layer(0); l < core.LayerCount; l++ {
		ids, err := s.flatten(l, sources[l])
		if err != nil {
			return core.GridSpec{}, err
		}
		spec.Layers[l] = ids
		if l != core.LayerObject {
			continue
		}
		for y, row := range sources[l] {
			for x, v := range row {
				if v == 0 {
					spec.Start = core.C(x, y)
					starts++
				}
			}
		}
	}

	switch {
	case starts == 0:
		return core.GridSpec{}, &core.LoadError{
			Code:    core.CodeNoStart,
			Message: fmt.Sprintf("stage %s: ground layer has no start marker (0)", s.ID),
		}
	case starts > 1:
		return core.GridSpec{}, &core.LoadError{
			Code:    core.CodeMultipleStart,
			Message: fmt.Sprintf("stage %s: ground layer has %d start markers", s.ID, starts),
		}
	}
	return spec, nil
}

// flatten validates one layer and converts it to row-major ids.
// A missing layer is all empty.
func (s Stage) flatten(l core.Layer, rows [][]int) ([]uint16, error) {
	ids := make([]uint16, s.Width*s.Height)
	if rows == nil {
		return ids, nil
	}
	if len(rows) != s.Height {
		return nil, &core.LoadError{
			Code:    core.CodeLayerSize,
			Message: fmt.Sprintf("stage %s: %s layer has %d rows, want %d", s.ID, l, len(rows), s.Height),
		}
	}
	for y, row := range rows {
		if len(row) != s.Width {
			return nil, &core.LoadError{
				Code:    core.CodeLayerSize,
				Message: fmt.Sprintf("stage %s: %s row %d has %d cells, want %d", s.ID, l, y, len(row), s.Width),
			}
		}
		for x, v := range row {
			if v > 0xFFFF || v < -1 {
				return nil, &core.LoadError{
					Code:    CodeBadTile,
					Message: fmt.Sprintf("stage %s: %s (%d,%d) has tile id %d", s.ID, l, x, y, v),
				}
			}
			if v > 0 {
				ids[y*s.Width+x] = uint16(v)
			}
		}
	}
	return ids, nil
}

// NewSession builds a playable session for the stage.
func (s Stage) NewSession(catalog *core.Catalog, cfg core.SessionConfig) (*core.Session, error) {
	spec, err := s.Spec()
	if err != nil {
		return nil, err
	}
	return core.NewSession(spec, catalog, cfg)
}

// UnknownTiles returns ids used by the stage that the catalog does not define.
func (s Stage) UnknownTiles(catalog *core.Catalog) []uint16 {
	seen := make(map[uint16]bool)
	var unknown []uint16
	for _, layer := range [][][]int{s.Tile, s.Ground, s.Sky} {
		for _, row := range layer {
			for _, v := range row {
				if v <= 0 || v > 0xFFFF || seen[uint16(v)] {
					continue
				}
				seen[uint16(v)] = true
				if _, ok := catalog.Lookup(uint16(v)); !ok {
					unknown = append(unknown, uint16(v))
				}
			}
		}
	}
	return unknown
}
