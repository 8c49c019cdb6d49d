// Package formats provides pluggable stage file format parsers.
package formats

import "fmt"

// Stage is a parsed stage file before validation.
// Layers are row-major with row 0 at the top. In Ground, -1 is empty and
// 0 marks the player start; in Tile and Sky both -1 and 0 are empty.
type Stage struct {
	ID        string
	Name      string
	Width     int
	Height    int
	MaxShifts int // Negative when the file does not set it
	Tile      [][]int
	Ground    [][]int
	Sky       [][]int
	Solution  string
	Metadata  map[string]string
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".json", ".toml"}
}

// Parse routes data to the parser for ext.
func Parse(data []byte, ext string) (Stage, error) {
	switch ext {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".json":
		return ParseJSON(data)
	case ".toml":
		return ParseTOML(data)
	default:
		return Stage{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}

func maxShifts(v *int) int {
	if v == nil {
		return -1
	}
	return *v
}
