package core

// ShiftResult is the committed end state of a rotation.
type ShiftResult uint8

const (
	ShiftUnaffected     ShiftResult = iota // Nothing blocking landed on the player
	ShiftPlayerShoved                      // A wall (or jammed chain) moved the player one cell
	ShiftChainVacant                       // Boxes were pushed back into a free cell
	ShiftChainDestroyed                    // The leading box fell into a dead tile
)

// String returns the result name.
func (s ShiftResult) String() string {
	switch s {
	case ShiftUnaffected:
		return "Unaffected"
	case ShiftPlayerShoved:
		return "PlayerShoved"
	case ShiftChainVacant:
		return "ChainVacant"
	case ShiftChainDestroyed:
		return "ChainDestroyed"
	default:
		return "Unknown"
	}
}

// ShiftOutcome describes a committed rotation.
type ShiftOutcome struct {
	Axis       Axis
	Line       int
	Dir        int
	Result     ShiftResult
	PlayerFrom Coord
	PlayerTo   Coord
	Footing    Footing
	Events     []Event
}

// ShiftBudget counts the rotations left in the current stage.
type ShiftBudget struct {
	remaining int
	max       int
}

// NewShiftBudget creates a full budget of max shifts.
func NewShiftBudget(max int) *ShiftBudget {
	if max < 0 {
		max = 0
	}
	return &ShiftBudget{remaining: max, max: max}
}

// Remaining returns the shifts still available.
func (b *ShiftBudget) Remaining() int { return b.remaining }

// Max returns the stage allowance.
func (b *ShiftBudget) Max() int { return b.max }

// Used returns how many shifts were spent.
func (b *ShiftBudget) Used() int { return b.max - b.remaining }

// set restores a remaining count captured earlier.
func (b *ShiftBudget) set(n int) {
	b.remaining = n
}

// ShiftResolver rotates rows and columns and resolves what lands on the player.
type ShiftResolver struct {
	grid    *Grid
	catalog *Catalog
	budget  *ShiftBudget
	bus     *Bus
}

// NewShiftResolver wires a resolver to its grid, catalog, budget and optional bus.
func NewShiftResolver(grid *Grid, catalog *Catalog, budget *ShiftBudget, bus *Bus) *ShiftResolver {
	return &ShiftResolver{grid: grid, catalog: catalog, budget: budget, bus: bus}
}

// CanShiftRow reports whether every tile on row y, across all layers, is shiftable.
func (r *ShiftResolver) CanShiftRow(y int) bool {
	return r.canShift(AxisRow, y)
}

// CanShiftCol reports whether every tile on column x, across all layers, is shiftable.
func (r *ShiftResolver) CanShiftCol(x int) bool {
	return r.canShift(AxisCol, x)
}

func (r *ShiftResolver) lineCount(axis Axis) int {
	if axis == AxisRow {
		return r.grid.h
	}
	return r.grid.w
}

func (r *ShiftResolver) canShift(axis Axis, line int) bool {
	if line < 0 || line >= r.lineCount(axis) {
		return false
	}
	g := r.grid
	for i := 0; i < g.lineLen(axis); i++ {
		c := g.linePos(axis, line, i)
		for l := Layer(0); l < LayerCount; l++ {
			if !r.catalog.shiftable(g.at(c, l)) {
				return false
			}
		}
	}
	return true
}

// TryShift rotates one row or column by dir (+1 or -1) and resolves collisions
// at the player's cell. On any rejection the grid is left exactly as it was.
func (r *ShiftResolver) TryShift(axis Axis, line, dir int) (ShiftOutcome, error) {
	const op = "shift"
	if r.budget.Remaining() <= 0 {
		return ShiftOutcome{}, reject(op, ErrNoShiftsLeft)
	}
	if dir != 1 && dir != -1 {
		return ShiftOutcome{}, reject(op, ErrInvalidDirection)
	}
	if line < 0 || line >= r.lineCount(axis) {
		return ShiftOutcome{}, reject(op, ErrOutOfBounds)
	}
	if !r.canShift(axis, line) {
		return ShiftOutcome{}, reject(op, ErrLocked)
	}

	g := r.grid
	saved := r.saveLine(axis, line)
	from := g.player

	r.rotate(axis, line, dir)
	res, err := r.resolve(axis, line, dir)
	if err != nil {
		r.restoreLine(axis, line, saved)
		g.player = from
		return ShiftOutcome{}, reject(op, err)
	}

	r.budget.remaining--

	var rec recorder
	rec.emit(EventSoundShift, from)
	switch res.result {
	case ShiftChainVacant:
		rec.emitTile(EventSoundPush, res.box, res.at)
	case ShiftChainDestroyed:
		rec.emitTile(EventSoundDestroy, res.box, res.at)
	}
	rec.emit(EventMapChanged, from)
	if g.player != from {
		rec.emit(EventPlayerMoved, g.player)
	}
	footing := footCheck(g, r.catalog, &rec)

	out := ShiftOutcome{
		Axis:       axis,
		Line:       line,
		Dir:        dir,
		Result:     res.result,
		PlayerFrom: from,
		PlayerTo:   g.player,
		Footing:    footing,
		Events:     rec.events,
	}
	r.bus.Publish(rec.events)
	return out, nil
}

type lineCells [LayerCount][]Cell

func (r *ShiftResolver) saveLine(axis Axis, line int) lineCells {
	g := r.grid
	n := g.lineLen(axis)
	var saved lineCells
	for l := Layer(0); l < LayerCount; l++ {
		saved[l] = make([]Cell, n)
		for i := 0; i < n; i++ {
			saved[l][i] = g.at(g.linePos(axis, line, i), l)
		}
	}
	return saved
}

func (r *ShiftResolver) restoreLine(axis Axis, line int, saved lineCells) {
	g := r.grid
	for l := Layer(0); l < LayerCount; l++ {
		for i, cell := range saved[l] {
			g.set(g.linePos(axis, line, i), l, cell)
		}
	}
}

// rotate moves every cell of the line to index i+dir, wrapping at the ends.
func (r *ShiftResolver) rotate(axis Axis, line, dir int) {
	g := r.grid
	n := g.lineLen(axis)
	before := r.saveLine(axis, line)
	for l := Layer(0); l < LayerCount; l++ {
		for i, cell := range before[l] {
			g.set(g.linePos(axis, line, wrap(i+dir, n)), l, cell)
		}
	}
}

type resolution struct {
	result ShiftResult
	box    TileDefinition
	at     Coord
}

// resolve handles whatever the rotation carried onto the player's fixed cell.
func (r *ShiftResolver) resolve(axis Axis, line, dir int) (resolution, error) {
	g, cat := r.grid, r.catalog
	p := g.player

	pi := p.X
	if axis == AxisCol {
		pi = p.Y
	}
	onLine := (axis == AxisRow && p.Y == line) || (axis == AxisCol && p.X == line)
	if !onLine {
		return resolution{result: ShiftUnaffected}, nil
	}

	incoming := cat.tile(g.at(p, LayerObject))
	switch {
	case incoming.Stop:
		return r.shove(axis, line, pi, dir)
	case incoming.Push:
		return r.chainPush(axis, line, pi, dir)
	default:
		return resolution{result: ShiftUnaffected}, nil
	}
}

// shove moves the player one cell along the rotation, away from the incoming wall.
func (r *ShiftResolver) shove(axis Axis, line, pi, dir int) (resolution, error) {
	g, cat := r.grid, r.catalog
	ti := pi + dir
	if ti < 0 || ti >= g.lineLen(axis) {
		return resolution{}, ErrEdgeOverflow
	}
	target := g.linePos(axis, line, ti)
	if blocks(g, cat, target) || cat.tile(g.at(target, LayerObject)).Push {
		return resolution{}, ErrEdgeOverflow
	}
	g.player = target
	return resolution{result: ShiftPlayerShoved, at: target}, nil
}

// chainPush walks backward from the player through consecutive boxes and
// pushes the whole chain one cell against the rotation.
func (r *ShiftResolver) chainPush(axis Axis, line, pi, dir int) (resolution, error) {
	g, cat := r.grid, r.catalog
	n := g.lineLen(axis)
	p := g.player
	chain := []Coord{p}

	for i := 1; i < n; i++ {
		q := g.linePos(axis, line, wrap(pi-i*dir, n))
		occupant := g.at(q, LayerObject)
		t := cat.tile(occupant)

		switch {
		case blocks(g, cat, q):
			return r.shove(axis, line, pi, dir)
		case t.Push:
			chain = append(chain, q)
			continue
		case deadly(g, cat, q):
			lead := chain[len(chain)-1]
			box := cat.tile(g.at(lead, LayerObject))
			for j := len(chain) - 1; j > 0; j-- {
				g.set(chain[j], LayerObject, g.at(chain[j-1], LayerObject))
			}
			g.set(p, LayerObject, Cell{})
			return resolution{result: ShiftChainDestroyed, box: box, at: q}, nil
		case !occupant.Empty():
			// A goal or other occupant is never overwritten by the chain.
			return r.shove(axis, line, pi, dir)
		default:
			box := cat.tile(g.at(chain[len(chain)-1], LayerObject))
			g.set(q, LayerObject, g.at(chain[len(chain)-1], LayerObject))
			for j := len(chain) - 1; j > 0; j-- {
				g.set(chain[j], LayerObject, g.at(chain[j-1], LayerObject))
			}
			g.set(p, LayerObject, Cell{})
			return resolution{result: ShiftChainVacant, box: box, at: q}, nil
		}
	}
	return resolution{}, ErrBoardFull
}
