package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/full-fish/RubicksDungeon/internal/core"
	"github.com/full-fish/RubicksDungeon/internal/games/rubik"
	"github.com/full-fish/RubicksDungeon/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 3
	m := NewModel(rubik.New(rubik.Options{}), store, cfg, nil)
	m.Init()
	return m
}

// send delivers msg and then one tick, the way the program loop would.
func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	next, _ = next.(Model).Update(TickMsg(time.Now()))
	return next.(Model)
}

func TestModelRecordsClear(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	for _, k := range []tea.KeyType{tea.KeyRight, tea.KeyRight, tea.KeyDown, tea.KeyDown} {
		m = send(m, tea.KeyMsg{Type: k})
	}

	best, err := store.BestClear("01-first-steps")
	if err != nil {
		t.Fatalf("BestClear() failed: %v", err)
	}
	if best == nil {
		t.Fatal("clear of the first stage was not recorded")
	}
	if best.Moves != 4 || best.RunID != m.runID {
		t.Errorf("recorded clear = %+v, want 4 moves in run %s", best, m.runID)
	}
}

func TestModelBackAndQuit(t *testing.T) {
	m := newTestModel(t, nil)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(Model).BackToMenu() || cmd == nil {
		t.Error("Esc should leave for the menu")
	}

	next, cmd = m.Update(runeKey('q'))
	if !next.(Model).quitting || cmd == nil {
		t.Error("q should quit")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, nil)
	if view := m.View(); !strings.Contains(view, "First Steps") {
		t.Errorf("view does not show the stage title:\n%s", view)
	}
}
