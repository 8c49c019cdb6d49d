package core_test

import (
	"errors"
	"testing"

	"github.com/full-fish/RubicksDungeon/internal/games/rubik/core"
)

func TestMovePlayer(t *testing.T) {
	tests := []struct {
		name      string
		row       string
		dx, dy    int
		wantErr   error
		want      string
		pushed    bool
		destroyed bool
		footing   core.Footing
	}{
		{name: "step into empty", row: "@..", dx: 1, want: ".@."},
		{name: "step left", row: ".@.", dx: -1, want: "@.."},
		{name: "wall blocks", row: "@#", dx: 1, wantErr: core.ErrBlocked},
		{name: "edge", row: "@.", dx: -1, wantErr: core.ErrOutOfBounds},
		{name: "diagonal", row: "@.", dx: 1, dy: 1, wantErr: core.ErrInvalidDirection},
		{name: "zero offset", row: "@.", wantErr: core.ErrInvalidDirection},
		{name: "long jump", row: "@..", dx: 2, wantErr: core.ErrInvalidDirection},
		{name: "push box", row: "@B.", dx: 1, want: ".@B", pushed: true},
		{name: "push box into wall", row: "@B#", dx: 1, wantErr: core.ErrPushBlocked},
		{name: "push box into box", row: "@BB.", dx: 1, wantErr: core.ErrPushBlocked},
		{name: "push box off map", row: "@B", dx: 1, wantErr: core.ErrPushBlocked},
		{name: "push box onto goal", row: "@BG", dx: 1, wantErr: core.ErrPushBlocked},
		{name: "push box into spikes", row: "@BX", dx: 1, want: ".@X", destroyed: true},
		{name: "step onto spikes", row: "@X", dx: 1, want: ".@", footing: core.FootTrap},
		{name: "step onto goal", row: "@G", dx: 1, want: ".@", footing: core.FootGoal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession(t, rows(tt.row), 0)
			before := s.Grid().Snapshot()
			player := s.Grid().Player()

			out, err := s.MovePlayer(tt.dx, tt.dy)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("MovePlayer() error = %v, expected %v", err, tt.wantErr)
				}
				if !core.IsRejection(err) {
					t.Errorf("IsRejection(%v) = false, expected true", err)
				}
				if !s.Grid().Snapshot().Equal(before) || s.Grid().Player() != player {
					t.Error("rejected move mutated the grid")
				}
				if s.UndoDepth() != 0 {
					t.Errorf("UndoDepth() = %d after rejection, expected 0", s.UndoDepth())
				}
				return
			}
			if err != nil {
				t.Fatalf("MovePlayer() error = %v", err)
			}
			if got := render(s.Grid()); got != tt.want {
				t.Errorf("grid = %q, expected %q", got, tt.want)
			}
			if out.Pushed != tt.pushed {
				t.Errorf("Pushed = %v, expected %v", out.Pushed, tt.pushed)
			}
			if out.Destroyed != tt.destroyed {
				t.Errorf("Destroyed = %v, expected %v", out.Destroyed, tt.destroyed)
			}
			if out.Footing != tt.footing {
				t.Errorf("Footing = %v, expected %v", out.Footing, tt.footing)
			}
			assertNoStopUnderPlayer(t, s)
		})
	}
}

func TestMovePlayerLavaFloorDestroysBox(t *testing.T) {
	l := layout{
		objects: []string{"@B."},
		floor:   []string{"..~"},
	}
	s := newSession(t, l, 0)

	out, err := s.MovePlayer(1, 0)
	if err != nil {
		t.Fatalf("MovePlayer() error = %v", err)
	}
	if !out.Destroyed {
		t.Error("expected box to fall into lava")
	}
	if n := s.Grid().Count(core.LayerObject, idBox); n != 0 {
		t.Errorf("box count = %d, expected 0", n)
	}
}

func TestMovePlayerSkyIsInert(t *testing.T) {
	l := layout{
		objects: []string{"@."},
		sky:     map[core.Coord]uint16{core.C(1, 0): idBanner},
	}
	s := newSession(t, l, 0)

	if _, err := s.MovePlayer(1, 0); err != nil {
		t.Fatalf("MovePlayer() under sky tile error = %v", err)
	}
}

func TestMovePlayerWalledRoom(t *testing.T) {
	s := newSession(t, rows(
		"#####",
		"#@..#",
		"#.B.#",
		"#...#",
		"#####",
	), 0)

	steps := []struct {
		dx, dy  int
		wantErr error
		want    core.Coord
	}{
		{dx: -1, wantErr: core.ErrBlocked, want: core.C(1, 1)},
		{dy: -1, wantErr: core.ErrBlocked, want: core.C(1, 1)},
		{dx: 1, want: core.C(2, 1)},
		{dy: 1, want: core.C(2, 2)}, // pushes the box to (2,3)
		{dy: 1, wantErr: core.ErrPushBlocked, want: core.C(2, 2)},
		{dx: 1, want: core.C(3, 2)},
		{dx: 1, wantErr: core.ErrBlocked, want: core.C(3, 2)},
	}

	for i, step := range steps {
		_, err := s.MovePlayer(step.dx, step.dy)
		if !errors.Is(err, step.wantErr) {
			t.Fatalf("step %d: MovePlayer() error = %v, expected %v", i, err, step.wantErr)
		}
		if got := s.Grid().Player(); got != step.want {
			t.Fatalf("step %d: player = %v, expected %v", i, got, step.want)
		}
		assertNoStopUnderPlayer(t, s)
	}

	if id := s.Grid().LayerID(2, 3, core.LayerObject); id != idBox {
		t.Errorf("box at (2,3) = %d, expected %d", id, idBox)
	}
	if s.Moves() != 3 {
		t.Errorf("Moves() = %d, expected 3", s.Moves())
	}
}

func TestMoveEvents(t *testing.T) {
	s := newSession(t, rows("@B."), 0)

	var got []core.EventKind
	s.Subscribe(core.ListenerFunc(func(e core.Event) {
		got = append(got, e.Kind)
	}))

	out, err := s.MovePlayer(1, 0)
	if err != nil {
		t.Fatalf("MovePlayer() error = %v", err)
	}
	want := []core.EventKind{core.EventSoundPush, core.EventMapChanged, core.EventPlayerMoved, core.EventSoundWalk}
	if !sameKinds(kinds(out.Events), want) {
		t.Errorf("outcome events = %v, expected %v", kinds(out.Events), want)
	}
	if !sameKinds(got, want) {
		t.Errorf("listener events = %v, expected %v", got, want)
	}
	if !core.Has(out.Events, core.EventSoundPush) || core.Has(out.Events, core.EventSoundDestroy) {
		t.Errorf("Has() disagrees with outcome events %v", kinds(out.Events))
	}
	if out.Events[0].Tile.ID != idBox {
		t.Errorf("SoundPush tile = %d, expected %d", out.Events[0].Tile.ID, idBox)
	}

	got = nil
	if _, err := s.MovePlayer(0, -1); err == nil {
		t.Fatal("expected move off the map to fail")
	}
	if len(got) != 0 {
		t.Errorf("rejected move dispatched %v", got)
	}
}
