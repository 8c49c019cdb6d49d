package core

// Footing is what the player ended up standing on after a committed action.
type Footing uint8

const (
	FootSafe Footing = iota
	FootTrap
	FootGoal
)

// MoveOutcome describes a committed step.
type MoveOutcome struct {
	From, To  Coord
	Pushed    bool // A box moved one cell ahead of the player
	Destroyed bool // A pushed box fell into a dead tile
	Footing   Footing
	Events    []Event
}

// MovementResolver applies direct player steps and single-box pushes.
type MovementResolver struct {
	grid    *Grid
	catalog *Catalog
	bus     *Bus
}

// NewMovementResolver wires a resolver to its grid, catalog and optional bus.
func NewMovementResolver(grid *Grid, catalog *Catalog, bus *Bus) *MovementResolver {
	return &MovementResolver{grid: grid, catalog: catalog, bus: bus}
}

// blocks reports whether the floor or object tile at c has Stop.
// The sky layer never blocks.
func blocks(g *Grid, cat *Catalog, c Coord) bool {
	return cat.tile(g.at(c, LayerFloor)).Stop || cat.tile(g.at(c, LayerObject)).Stop
}

// deadly reports whether the floor or object tile at c has Dead.
func deadly(g *Grid, cat *Catalog, c Coord) bool {
	return cat.tile(g.at(c, LayerFloor)).Dead || cat.tile(g.at(c, LayerObject)).Dead
}

// TryMove steps the player by (dx, dy), pushing at most one box.
// A box only lands on an empty object cell or is destroyed by a Dead tile;
// any other occupant (a goal, say) rejects the push so it is never overwritten.
// Every check runs before the first write, so a rejection leaves the grid untouched.
func (r *MovementResolver) TryMove(dx, dy int) (MoveOutcome, error) {
	const op = "move"
	if !isUnitStep(dx, dy) {
		return MoveOutcome{}, reject(op, ErrInvalidDirection)
	}

	g, cat := r.grid, r.catalog
	from := g.player
	target := from.Add(dx, dy)
	if !g.InBounds(target) {
		return MoveOutcome{}, reject(op, ErrOutOfBounds)
	}
	if blocks(g, cat, target) {
		return MoveOutcome{}, reject(op, ErrBlocked)
	}

	out := MoveOutcome{From: from, To: target}
	var rec recorder

	box := g.at(target, LayerObject)
	if cat.tile(box).Push {
		dest := target.Add(dx, dy)
		if !g.InBounds(dest) || blocks(g, cat, dest) {
			return MoveOutcome{}, reject(op, ErrPushBlocked)
		}
		occupant := g.at(dest, LayerObject)
		if cat.tile(occupant).Push {
			return MoveOutcome{}, reject(op, ErrPushBlocked)
		}

		switch {
		case deadly(g, cat, dest):
			g.set(target, LayerObject, Cell{})
			out.Destroyed = true
			rec.emitTile(EventSoundDestroy, cat.tile(box), dest)
		case !occupant.Empty():
			return MoveOutcome{}, reject(op, ErrPushBlocked)
		default:
			g.set(dest, LayerObject, box)
			g.set(target, LayerObject, Cell{})
			out.Pushed = true
			rec.emitTile(EventSoundPush, cat.tile(box), dest)
		}
		rec.emit(EventMapChanged, target)
	}

	g.player = target
	rec.emit(EventPlayerMoved, target)
	if floor := g.at(target, LayerFloor); !floor.Empty() {
		rec.emitTile(EventSoundWalk, cat.tile(floor), target)
	}
	out.Footing = footCheck(g, cat, &rec)

	out.Events = rec.events
	r.bus.Publish(rec.events)
	return out, nil
}

// footCheck inspects the object tile under the player and emits the terminal signal.
func footCheck(g *Grid, cat *Catalog, rec *recorder) Footing {
	t := cat.tile(g.at(g.player, LayerObject))
	switch {
	case t.Dead:
		rec.emit(EventTrapTriggered, g.player)
		return FootTrap
	case t.Goal:
		rec.emit(EventGoalTriggered, g.player)
		return FootGoal
	default:
		return FootSafe
	}
}
