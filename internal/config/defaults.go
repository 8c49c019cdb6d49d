package config

import (
	_ "embed"
)

//go:embed defaults/rubik.yaml
var defaultRubikYAML []byte

// DefaultRubikConfig returns the hardcoded configuration used when no YAML can be read.
func DefaultRubikConfig() RubikConfig {
	return RubikConfig{
		Rules: RulesConfig{
			VariantRange:     100,
			UndoLimit:        0,
			DefaultMaxShifts: 3,
		},
		Sounds: SoundDefaults{
			Walk:    "step",
			Push:    "scrape",
			Destroy: "crunch",
			Shift:   "rumble",
		},
		Tiles: []TileConfig{
			{ID: 1, Name: "floor", Glyph: ".", Color: "gray", Shift: true},
			{ID: 2, Name: "wall", Glyph: "#", Color: "white", Stop: true, Shift: true},
			{ID: 3, Name: "pillar", Glyph: "I", Color: "magenta", Stop: true},
			{ID: 4, Name: "crate", Glyph: "B", Color: "yellow", Push: true, Shift: true,
				Sound: TileSounds{Push: "creak", Destroy: "splinter"}},
			{ID: 5, Name: "spikes", Glyph: "^", Color: "red", Dead: true, Shift: true},
			{ID: 6, Name: "chest", Glyph: "$", Color: "bright_green", Goal: true, Shift: true},
			{ID: 7, Name: "lava", Glyph: "~", Color: "orange", Dead: true, Fire: true, Shift: true,
				Sound: TileSounds{Destroy: "hiss"}},
			{ID: 8, Name: "ice", Glyph: ":", Color: "cyan", Ice: true, Shift: true,
				Sound: TileSounds{Walk: "crack"}},
			{ID: 9, Name: "vines", Glyph: "\"", Color: "green", Shift: true},
			{ID: 10, Name: "bedrock", Glyph: "=", Color: "blue"},
			{ID: 11, Name: "torch", Glyph: "*", Color: "bright_yellow", Fire: true, Shift: true},
		},
	}
}
