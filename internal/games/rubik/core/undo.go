package core

// UndoEntry is the state captured before one command.
type UndoEntry struct {
	Snapshot Snapshot
	Player   Coord
	Shifts   int
}

// UndoLog is a stack of full-state snapshots.
type UndoLog struct {
	grid    *Grid
	budget  *ShiftBudget
	limit   int // 0 = unlimited
	entries []UndoEntry
}

// NewUndoLog creates a log over grid and budget. When limit > 0 the oldest
// entries are evicted once a committed command grows the stack past it.
func NewUndoLog(grid *Grid, budget *ShiftBudget, limit int) *UndoLog {
	if limit < 0 {
		limit = 0
	}
	return &UndoLog{grid: grid, budget: budget, limit: limit}
}

// SaveBefore pushes the current state. Call it before attempting a command,
// then Commit or Discard once the outcome is known.
func (u *UndoLog) SaveBefore() {
	u.entries = append(u.entries, UndoEntry{
		Snapshot: u.grid.Snapshot(),
		Player:   u.grid.player,
		Shifts:   u.budget.Remaining(),
	})
}

// Commit keeps the newest entry and trims the stack down to the limit.
func (u *UndoLog) Commit() {
	if u.limit > 0 && len(u.entries) > u.limit {
		drop := len(u.entries) - u.limit
		u.entries = append(u.entries[:0], u.entries[drop:]...)
	}
}

// Discard pops the newest entry without restoring it.
// Used when the command it guarded was rejected. Older entries are untouched.
func (u *UndoLog) Discard() {
	if len(u.entries) > 0 {
		u.entries = u.entries[:len(u.entries)-1]
	}
}

// Undo restores the newest entry and pops it.
func (u *UndoLog) Undo() error {
	if len(u.entries) == 0 {
		return reject("undo", ErrNothingToUndo)
	}
	top := u.entries[len(u.entries)-1]
	u.grid.restore(top.Snapshot, top.Player)
	u.budget.set(top.Shifts)
	u.entries = u.entries[:len(u.entries)-1]
	return nil
}

// Len returns the number of stored entries.
func (u *UndoLog) Len() int {
	return len(u.entries)
}

// Clear drops every entry.
func (u *UndoLog) Clear() {
	u.entries = nil
}
