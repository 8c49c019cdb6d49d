package core_test

import (
	"strings"
	"testing"

	"github.com/full-fish/RubicksDungeon/internal/games/rubik/core"
)

// Test tile ids.
const (
	idFloor   uint16 = 1
	idWall    uint16 = 2
	idPillar  uint16 = 3
	idBox     uint16 = 4
	idSpikes  uint16 = 5
	idChest   uint16 = 6
	idLava    uint16 = 7
	idVine    uint16 = 9
	idBedrock uint16 = 10
	idBanner  uint16 = 12
)

func testCatalog(t *testing.T) *core.Catalog {
	t.Helper()
	cat, err := core.NewCatalog(
		core.TileDefinition{ID: idFloor, Name: "floor", Glyph: '.', Shift: true},
		core.TileDefinition{ID: idWall, Name: "wall", Glyph: '#', Stop: true, Shift: true},
		core.TileDefinition{ID: idPillar, Name: "pillar", Glyph: 'P', Stop: true},
		core.TileDefinition{ID: idBox, Name: "box", Glyph: 'B', Push: true, Shift: true},
		core.TileDefinition{ID: idSpikes, Name: "spikes", Glyph: 'X', Dead: true, Shift: true},
		core.TileDefinition{ID: idChest, Name: "chest", Glyph: 'G', Goal: true, Shift: true},
		core.TileDefinition{ID: idLava, Name: "lava", Glyph: '~', Dead: true, Fire: true, Shift: true},
		core.TileDefinition{ID: idVine, Name: "vine", Glyph: '"', Shift: true},
		core.TileDefinition{ID: idBedrock, Name: "bedrock", Glyph: '=', Shift: false},
		core.TileDefinition{ID: idBanner, Name: "banner", Glyph: '^', Shift: false},
	)
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}
	return cat
}

var objectGlyphs = map[rune]uint16{
	'.': 0,
	'@': 0,
	'#': idWall,
	'P': idPillar,
	'B': idBox,
	'%': idBox, // box with the player standing on it
	'X': idSpikes,
	'G': idChest,
}

var floorGlyphs = map[rune]uint16{
	' ': 0,
	'.': idFloor,
	'~': idLava,
	'=': idBedrock,
}

// layout describes a test grid as ASCII. Floor defaults to plain floor,
// sky defaults to empty.
type layout struct {
	objects []string
	floor   []string
	sky     map[core.Coord]uint16
}

func (l layout) spec(t *testing.T) core.GridSpec {
	t.Helper()
	h := len(l.objects)
	if h == 0 {
		t.Fatal("layout has no rows")
	}
	w := len(l.objects[0])
	spec := core.GridSpec{W: w, H: h}
	for i := range spec.Layers {
		spec.Layers[i] = make([]uint16, w*h)
	}
	starts := 0
	for y, row := range l.objects {
		if len(row) != w {
			t.Fatalf("row %d has width %d, want %d", y, len(row), w)
		}
		for x, r := range row {
			id, ok := objectGlyphs[r]
			if !ok {
				t.Fatalf("unknown object glyph %q", r)
			}
			spec.Layers[core.LayerObject][y*w+x] = id
			spec.Layers[core.LayerFloor][y*w+x] = idFloor
			if r == '@' || r == '%' {
				spec.Start = core.C(x, y)
				starts++
			}
		}
	}
	if starts != 1 {
		t.Fatalf("layout needs exactly one player, got %d", starts)
	}
	for y, row := range l.floor {
		for x, r := range row {
			id, ok := floorGlyphs[r]
			if !ok {
				t.Fatalf("unknown floor glyph %q", r)
			}
			spec.Layers[core.LayerFloor][y*w+x] = id
		}
	}
	for c, id := range l.sky {
		spec.Layers[core.LayerSky][c.Y*w+c.X] = id
	}
	return spec
}

func newSession(t *testing.T, l layout, maxShifts int) *core.Session {
	t.Helper()
	s, err := core.NewSession(l.spec(t), testCatalog(t), core.SessionConfig{MaxShifts: maxShifts, Seed: 1})
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	return s
}

func rows(r ...string) layout {
	return layout{objects: r}
}

// render draws the object layer with the player as '@'.
func render(g *core.Grid) string {
	glyphs := make(map[uint16]rune, len(objectGlyphs))
	for r, id := range objectGlyphs {
		if r != '@' && r != '%' {
			glyphs[id] = r
		}
	}
	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		if y > 0 {
			b.WriteByte('/')
		}
		for x := 0; x < g.Width(); x++ {
			if g.Player() == core.C(x, y) {
				b.WriteRune('@')
				continue
			}
			b.WriteRune(glyphs[g.LayerID(x, y, core.LayerObject)])
		}
	}
	return b.String()
}

func kinds(events []core.Event) []core.EventKind {
	out := make([]core.EventKind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}

func sameKinds(a, b []core.EventKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// assertNoStopUnderPlayer checks the invariant that holds after every committed call.
func assertNoStopUnderPlayer(t *testing.T, s *core.Session) {
	t.Helper()
	g := s.Grid()
	p := g.Player()
	if !g.InBounds(p) {
		t.Fatalf("player %v out of bounds", p)
	}
	def, _ := s.Catalog().Lookup(g.LayerID(p.X, p.Y, core.LayerObject))
	if def.Stop {
		t.Fatalf("player %v is inside stop tile %q", p, def.Name)
	}
}
