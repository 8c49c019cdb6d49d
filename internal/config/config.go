// Package config provides YAML-based configuration loading and
// difficulty presets for Rubik's Dungeon.
package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/full-fish/RubicksDungeon/internal/games/rubik/core"
)

// RubikConfig contains all configuration for the game.
type RubikConfig struct {
	Tiles  []TileConfig  `yaml:"tiles"`
	Rules  RulesConfig   `yaml:"rules"`
	Stages StagesConfig  `yaml:"stages"`
	Sounds SoundDefaults `yaml:"sounds"`
}

// TileConfig defines one entry of the tile palette.
type TileConfig struct {
	ID    uint16     `yaml:"id"`
	Name  string     `yaml:"name"`
	Glyph string     `yaml:"glyph"` // Single character
	Color string     `yaml:"color"` // Screen color name
	Stop  bool       `yaml:"stop"`
	Push  bool       `yaml:"push"`
	Shift bool       `yaml:"shift"`
	Dead  bool       `yaml:"dead"`
	Goal  bool       `yaml:"goal"`
	Fire  bool       `yaml:"fire,omitempty"`
	Ice   bool       `yaml:"ice,omitempty"`
	Sound TileSounds `yaml:"sound,omitempty"`
}

// TileSounds names the cues played for a tile. Empty entries fall back to SoundDefaults.
type TileSounds struct {
	Walk    string `yaml:"walk,omitempty"`
	Push    string `yaml:"push,omitempty"`
	Destroy string `yaml:"destroy,omitempty"`
}

// SoundDefaults are the cues used when a tile does not name its own.
type SoundDefaults struct {
	Walk    string `yaml:"walk"`
	Push    string `yaml:"push"`
	Destroy string `yaml:"destroy"`
	Shift   string `yaml:"shift"`
}

// RulesConfig tunes the rule engine.
type RulesConfig struct {
	VariantRange     int `yaml:"variant_range"`      // Cosmetic variants per tile, [0, n)
	UndoLimit        int `yaml:"undo_limit"`         // 0 = unlimited
	DefaultMaxShifts int `yaml:"default_max_shifts"` // Used when a stage omits max_shifts
}

// StagesConfig selects where stages are read from.
type StagesConfig struct {
	Dir string `yaml:"dir"` // Empty uses the built-in stage set
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Definition converts the entry into a core tile definition.
func (t TileConfig) Definition() (core.TileDefinition, error) {
	glyph := '?'
	if t.Glyph != "" {
		r, size := utf8.DecodeRuneInString(t.Glyph)
		if r == utf8.RuneError || size != len(t.Glyph) {
			return core.TileDefinition{}, fmt.Errorf("tile %d (%s): glyph %q must be a single character", t.ID, t.Name, t.Glyph)
		}
		glyph = r
	}
	return core.TileDefinition{
		ID:    t.ID,
		Name:  t.Name,
		Glyph: glyph,
		Color: t.Color,
		Stop:  t.Stop,
		Push:  t.Push,
		Shift: t.Shift,
		Dead:  t.Dead,
		Goal:  t.Goal,
		Fire:  t.Fire,
		Ice:   t.Ice,
	}, nil
}

// Catalog builds the immutable tile catalog from the palette.
func (c RubikConfig) Catalog() (*core.Catalog, error) {
	defs := make([]core.TileDefinition, 0, len(c.Tiles))
	for _, t := range c.Tiles {
		d, err := t.Definition()
		if err != nil {
			return nil, err
		}
		defs = append(defs, d)
	}
	return core.NewCatalog(defs...)
}

// SoundKind selects which cue to look up.
type SoundKind int

const (
	SoundWalk SoundKind = iota
	SoundPush
	SoundDestroy
	SoundShift
)

// Cue returns the sound cue for a tile, falling back to the defaults.
func (c RubikConfig) Cue(id uint16, kind SoundKind) string {
	if kind == SoundShift {
		return c.Sounds.Shift
	}
	for _, t := range c.Tiles {
		if t.ID != id {
			continue
		}
		switch kind {
		case SoundWalk:
			if t.Sound.Walk != "" {
				return t.Sound.Walk
			}
		case SoundPush:
			if t.Sound.Push != "" {
				return t.Sound.Push
			}
		case SoundDestroy:
			if t.Sound.Destroy != "" {
				return t.Sound.Destroy
			}
		}
		break
	}
	switch kind {
	case SoundWalk:
		return c.Sounds.Walk
	case SoundPush:
		return c.Sounds.Push
	default:
		return c.Sounds.Destroy
	}
}

// Validate reports configuration errors that would break a session.
func (c RubikConfig) Validate() error {
	if len(c.Tiles) == 0 {
		return fmt.Errorf("config: tile palette is empty")
	}
	if c.Rules.VariantRange < 0 {
		return fmt.Errorf("config: variant_range must not be negative")
	}
	if c.Rules.UndoLimit < 0 {
		return fmt.Errorf("config: undo_limit must not be negative")
	}
	if _, err := c.Catalog(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
