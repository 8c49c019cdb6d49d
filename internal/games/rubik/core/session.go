package core

import "math/rand"

// Status is the lifecycle state of a stage attempt.
type Status uint8

const (
	StatusPlaying Status = iota
	StatusFailed         // Player stepped on, or was carried onto, a dead tile
	StatusCleared        // Player reached a goal
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusFailed:
		return "failed"
	case StatusCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// SessionConfig holds per-attempt rule parameters.
type SessionConfig struct {
	MaxShifts    int
	UndoLimit    int   // 0 = unlimited
	VariantRange int   // <= 0 means DefaultVariantRange
	Seed         int64 // Seeds variant assignment
}

// Session is the command facade over one stage: it saves undo state, runs the
// resolvers, gates input once the stage is over and dispatches events.
type Session struct {
	catalog *Catalog
	grid    *Grid
	budget  *ShiftBudget
	bus     *Bus
	mover   *MovementResolver
	shifter *ShiftResolver
	undo    *UndoLog

	initial       Snapshot
	initialPlayer Coord

	status  Status
	moves   int
	undos   int
	history []Command
}

// NewSession builds the grid for spec and wires every component around it.
func NewSession(spec GridSpec, catalog *Catalog, cfg SessionConfig) (*Session, error) {
	if cfg.VariantRange > 0 {
		spec.VariantRange = cfg.VariantRange
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	grid, err := NewGrid(spec, catalog, rng)
	if err != nil {
		return nil, err
	}

	budget := NewShiftBudget(cfg.MaxShifts)
	s := &Session{
		catalog:       catalog,
		grid:          grid,
		budget:        budget,
		bus:           NewBus(),
		mover:         NewMovementResolver(grid, catalog, nil),
		shifter:       NewShiftResolver(grid, catalog, budget, nil),
		undo:          NewUndoLog(grid, budget, cfg.UndoLimit),
		initial:       grid.Snapshot(),
		initialPlayer: grid.Player(),
	}
	s.status = s.footStatus()
	return s, nil
}

// Subscribe registers a listener for committed events.
func (s *Session) Subscribe(l Listener) {
	s.bus.Subscribe(l)
}

// Grid returns the live grid for read-only queries.
func (s *Session) Grid() *Grid { return s.grid }

// Catalog returns the tile catalog.
func (s *Session) Catalog() *Catalog { return s.catalog }

// Status returns the current lifecycle state.
func (s *Session) Status() Status { return s.status }

// ShiftsLeft returns the remaining shift budget.
func (s *Session) ShiftsLeft() int { return s.budget.Remaining() }

// MaxShifts returns the stage allowance.
func (s *Session) MaxShifts() int { return s.budget.Max() }

// ShiftsUsed returns how much of the budget is spent.
func (s *Session) ShiftsUsed() int { return s.budget.Used() }

// Moves counts committed steps and shifts since the last reset.
func (s *Session) Moves() int { return s.moves }

// Undos counts successful undo calls since the last reset.
func (s *Session) Undos() int { return s.undos }

// UndoDepth returns how many states can be undone.
func (s *Session) UndoDepth() int { return s.undo.Len() }

// CanShiftRow reports whether row y can rotate.
func (s *Session) CanShiftRow(y int) bool { return s.shifter.CanShiftRow(y) }

// CanShiftCol reports whether column x can rotate.
func (s *Session) CanShiftCol(x int) bool { return s.shifter.CanShiftCol(x) }

// History returns the committed commands in order.
func (s *Session) History() []Command {
	out := make([]Command, len(s.history))
	copy(out, s.history)
	return out
}

// MovePlayer steps the player by one orthogonal cell.
func (s *Session) MovePlayer(dx, dy int) (MoveOutcome, error) {
	if s.status != StatusPlaying {
		return MoveOutcome{}, reject("move", ErrStageOver)
	}
	s.undo.SaveBefore()
	out, err := s.mover.TryMove(dx, dy)
	if err != nil {
		s.undo.Discard()
		return MoveOutcome{}, err
	}
	s.commit(moveCommand(dx, dy), out.Footing, out.Events)
	return out, nil
}

// ShiftRow rotates the player's row. dir +1 moves tiles right.
func (s *Session) ShiftRow(dir int) (ShiftOutcome, error) {
	return s.shift(AxisRow, s.grid.player.Y, dir)
}

// ShiftCol rotates the player's column. dir +1 moves tiles down.
func (s *Session) ShiftCol(dir int) (ShiftOutcome, error) {
	return s.shift(AxisCol, s.grid.player.X, dir)
}

func (s *Session) shift(axis Axis, line, dir int) (ShiftOutcome, error) {
	if s.status != StatusPlaying {
		return ShiftOutcome{}, reject("shift", ErrStageOver)
	}
	s.undo.SaveBefore()
	out, err := s.shifter.TryShift(axis, line, dir)
	if err != nil {
		s.undo.Discard()
		return ShiftOutcome{}, err
	}
	s.commit(shiftCommand(axis, dir), out.Footing, out.Events)
	return out, nil
}

func (s *Session) commit(cmd Command, footing Footing, events []Event) {
	s.undo.Commit()
	s.moves++
	s.history = append(s.history, cmd)
	switch footing {
	case FootTrap:
		s.status = StatusFailed
	case FootGoal:
		s.status = StatusCleared
	}
	s.bus.Publish(events)
}

// Undo restores the state before the last committed command and reopens
// a finished stage.
func (s *Session) Undo() error {
	if err := s.undo.Undo(); err != nil {
		return err
	}
	s.undos++
	s.history = append(s.history, CmdUndo)
	s.status = s.footStatus()
	s.bus.Publish([]Event{{Kind: EventMapChanged, Pos: s.grid.player}})
	return nil
}

// Reset returns the stage to its loaded state, refills the budget and
// clears undo history and counters.
func (s *Session) Reset() {
	s.grid.restore(s.initial, s.initialPlayer)
	s.budget.set(s.budget.Max())
	s.undo.Clear()
	s.moves = 0
	s.undos = 0
	s.history = nil
	s.status = s.footStatus()
	s.bus.Publish([]Event{{Kind: EventMapChanged, Pos: s.grid.player}})
}

// footStatus derives the status from what the player stands on.
// Undo restores states that were captured while playing, so this is
// normally StatusPlaying.
func (s *Session) footStatus() Status {
	t := s.catalog.tile(s.grid.at(s.grid.player, LayerObject))
	switch {
	case t.Dead:
		return StatusFailed
	case t.Goal:
		return StatusCleared
	default:
		return StatusPlaying
	}
}
