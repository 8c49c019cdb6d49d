package stages

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/full-fish/RubicksDungeon/internal/games/rubik/stages/formats"
)

//go:embed data
var builtin embed.FS

// Loader handles loading stages from a file system.
type Loader struct {
	FS     fs.FS
	Logger *log.Logger // Optional; receives skipped-file warnings
}

// NewLoader creates a loader over fsys.
func NewLoader(fsys fs.FS, logger *log.Logger) *Loader {
	return &Loader{FS: fsys, Logger: logger}
}

// Builtin returns a loader over the stages compiled into the binary.
func Builtin(logger *log.Logger) *Loader {
	sub, err := fs.Sub(builtin, "data")
	if err != nil {
		panic(err) // data is embedded at build time
	}
	return NewLoader(sub, logger)
}

// FromDir returns a loader over a directory on disk.
func FromDir(dir string, logger *log.Logger) *Loader {
	return NewLoader(os.DirFS(dir), logger)
}

// Open picks the stage source: dir when set, the built-in set otherwise.
func Open(dir string, logger *log.Logger) *Loader {
	if dir == "" {
		return Builtin(logger)
	}
	return FromDir(dir, logger)
}

// LoadAll recursively scans and loads all stage files.
// Invalid files are skipped and reported to the logger.
// Returns stages sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Stage, error) {
	var stages []Stage
	seen := make(map[string]string)

	err := fs.WalkDir(l.FS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !isSupportedExtension(ext) {
			return nil
		}

		stage, err := l.LoadFile(p)
		if err != nil {
			l.warn("skipping stage file", "path", p, "err", err)
			return nil
		}
		if first, dup := seen[stage.ID]; dup {
			l.warn("skipping duplicate stage id", "id", stage.ID, "path", p, "first", first)
			return nil
		}
		seen[stage.ID] = p

		stages = append(stages, stage)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking stages: %w", err)
	}

	sort.Slice(stages, func(i, j int) bool {
		return stages[i].ID < stages[j].ID
	})
	return stages, nil
}

// LoadFile loads and validates a single stage file.
func (l *Loader) LoadFile(p string) (Stage, error) {
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return Stage{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	ext := strings.ToLower(path.Ext(p))
	parsed, err := formats.Parse(data, ext)
	if err != nil {
		return Stage{}, fmt.Errorf("parsing file %s: %w", p, err)
	}

	id := parsed.ID
	if id == "" {
		id = strings.TrimSuffix(path.Base(p), path.Ext(p))
	}
	stage := Stage{
		ID:        id,
		Name:      parsed.Name,
		Width:     parsed.Width,
		Height:    parsed.Height,
		MaxShifts: parsed.MaxShifts,
		Tile:      parsed.Tile,
		Ground:    parsed.Ground,
		Sky:       parsed.Sky,
		Solution:  parsed.Solution,
		Metadata:  parsed.Metadata,
		FilePath:  p,
	}
	if _, err := stage.Spec(); err != nil {
		return Stage{}, fmt.Errorf("validating file %s: %w", p, err)
	}
	return stage, nil
}

func (l *Loader) warn(msg string, keyvals ...interface{}) {
	if l.Logger != nil {
		l.Logger.Warn(msg, keyvals...)
	}
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
