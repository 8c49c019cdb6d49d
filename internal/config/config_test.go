package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigsAgree(t *testing.T) {
	embedded, err := LoadRubik("")
	if err != nil {
		t.Fatalf("LoadRubik() error = %v", err)
	}
	hardcoded := DefaultRubikConfig()

	if len(embedded.Tiles) != len(hardcoded.Tiles) {
		t.Fatalf("embedded has %d tiles, hardcoded has %d", len(embedded.Tiles), len(hardcoded.Tiles))
	}
	for i := range hardcoded.Tiles {
		if embedded.Tiles[i] != hardcoded.Tiles[i] {
			t.Errorf("tile %d: embedded %+v, hardcoded %+v", i, embedded.Tiles[i], hardcoded.Tiles[i])
		}
	}
	if embedded.Rules != hardcoded.Rules {
		t.Errorf("rules: embedded %+v, hardcoded %+v", embedded.Rules, hardcoded.Rules)
	}
	if embedded.Sounds != hardcoded.Sounds {
		t.Errorf("sounds: embedded %+v, hardcoded %+v", embedded.Sounds, hardcoded.Sounds)
	}
}

func TestCatalog(t *testing.T) {
	cat, err := DefaultRubikConfig().Catalog()
	if err != nil {
		t.Fatalf("Catalog() error = %v", err)
	}
	crate, ok := cat.Lookup(4)
	if !ok {
		t.Fatal("crate missing from catalog")
	}
	if !crate.Push || !crate.Shift || crate.Stop {
		t.Errorf("crate flags = %+v", crate)
	}
	if crate.Glyph != 'B' {
		t.Errorf("crate glyph = %q, expected 'B'", crate.Glyph)
	}
	pillar, _ := cat.Lookup(3)
	if pillar.Shift {
		t.Error("pillar should anchor its lines")
	}
}

func TestTileGlyphValidation(t *testing.T) {
	tests := []struct {
		glyph   string
		wantErr bool
	}{
		{"#", false},
		{"", false},
		{"█", false},
		{"ab", true},
	}
	for _, tt := range tests {
		_, err := TileConfig{ID: 1, Glyph: tt.glyph}.Definition()
		if (err != nil) != tt.wantErr {
			t.Errorf("Definition() glyph %q error = %v, wantErr %v", tt.glyph, err, tt.wantErr)
		}
	}
}

func TestLoadRubikCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rubik.yaml")
	data := []byte(`
rules:
  undo_limit: 5
tiles:
  - {id: 1, name: floor, glyph: ".", shift: true}
  - {id: 2, name: wall, glyph: "#", stop: true}
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRubik(path)
	if err != nil {
		t.Fatalf("LoadRubik() error = %v", err)
	}
	if cfg.Rules.UndoLimit != 5 {
		t.Errorf("UndoLimit = %d, expected 5", cfg.Rules.UndoLimit)
	}
	if len(cfg.Tiles) != 2 {
		t.Errorf("len(Tiles) = %d, expected 2", len(cfg.Tiles))
	}
}

func TestLoadRubikCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadRubik(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	dup := filepath.Join(dir, "dup.yaml")
	data := []byte("tiles:\n  - {id: 2, name: a}\n  - {id: 2, name: b}\n")
	if err := os.WriteFile(dup, data, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRubik(dup); err == nil {
		t.Error("expected error for duplicate tile ids")
	}
}

func TestCue(t *testing.T) {
	cfg := DefaultRubikConfig()
	tests := []struct {
		id   uint16
		kind SoundKind
		want string
	}{
		{1, SoundWalk, "step"},
		{8, SoundWalk, "crack"},
		{4, SoundPush, "creak"},
		{4, SoundDestroy, "splinter"},
		{7, SoundDestroy, "hiss"},
		{2, SoundPush, "scrape"},
		{99, SoundDestroy, "crunch"},
		{0, SoundShift, "rumble"},
	}
	for _, tt := range tests {
		if got := cfg.Cue(tt.id, tt.kind); got != tt.want {
			t.Errorf("Cue(%d, %d) = %q, expected %q", tt.id, tt.kind, got, tt.want)
		}
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		max    int
		want   int
	}{
		{DifficultyEasy, 4, 6},
		{DifficultyEasy, 1, 2},
		{DifficultyNormal, 4, 4},
		{DifficultyHard, 4, 3},
		{DifficultyHard, 1, 1},
		{DifficultyFixed, 4, 4},
		{DifficultyEasy, 0, 0},
	}
	for _, tt := range tests {
		if got := tt.preset.ShiftBudget(tt.max); got != tt.want {
			t.Errorf("%s.ShiftBudget(%d) = %d, expected %d", tt.preset, tt.max, got, tt.want)
		}
	}

	if p, err := ParsePreset("HARD"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(HARD) = %q, %v", p, err)
	}
	if p, _ := ParsePreset(""); p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, expected normal", p)
	}
	if _, err := ParsePreset("brutal"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestMaxShifts(t *testing.T) {
	cfg := DefaultRubikConfig()
	if got := cfg.MaxShifts(-1); got != 3 {
		t.Errorf("MaxShifts(-1) = %d, expected 3", got)
	}
	if got := cfg.MaxShifts(0); got != 0 {
		t.Errorf("MaxShifts(0) = %d, expected 0", got)
	}
	if got := cfg.MaxShifts(7); got != 7 {
		t.Errorf("MaxShifts(7) = %d, expected 7", got)
	}
}
