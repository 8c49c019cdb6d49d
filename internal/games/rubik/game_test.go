package rubik

import (
	"strings"
	"testing"

	"github.com/full-fish/RubicksDungeon/internal/config"
	platformcore "github.com/full-fish/RubicksDungeon/internal/core"
	"github.com/full-fish/RubicksDungeon/internal/games/rubik/core"
)

var commandActions = map[core.Command]platformcore.Action{
	core.CmdUp:         platformcore.ActionUp,
	core.CmdDown:       platformcore.ActionDown,
	core.CmdLeft:       platformcore.ActionLeft,
	core.CmdRight:      platformcore.ActionRight,
	core.CmdShiftUp:    platformcore.ActionShiftUp,
	core.CmdShiftDown:  platformcore.ActionShiftDown,
	core.CmdShiftLeft:  platformcore.ActionShiftLeft,
	core.CmdShiftRight: platformcore.ActionShiftRight,
	core.CmdUndo:       platformcore.ActionUndo,
}

func newGame(t *testing.T, opts Options) *Game {
	t.Helper()
	g := New(opts)
	cfg := platformcore.DefaultConfig()
	cfg.Seed = 7
	g.Reset(cfg)
	if g.loadErr != nil {
		t.Fatalf("Reset: %v", g.loadErr)
	}
	return g
}

func press(g *Game, a platformcore.Action) platformcore.StepResult {
	in := platformcore.NewInputFrame()
	in.Set(a)
	return g.Step(in)
}

// playSolution feeds the current stage's solution through Step and returns
// the result of the last tick.
func playSolution(t *testing.T, g *Game) platformcore.StepResult {
	t.Helper()
	cmds, err := core.ParseScript(g.Stage().Solution)
	if err != nil {
		t.Fatalf("stage %s: %v", g.Stage().ID, err)
	}
	var res platformcore.StepResult
	for _, c := range cmds {
		res = press(g, commandActions[c])
	}
	return res
}

func TestResetLoadsBuiltinStages(t *testing.T) {
	g := newGame(t, Options{})

	if g.StageCount() < 6 {
		t.Fatalf("StageCount = %d, want at least 6", g.StageCount())
	}
	if g.Session() == nil {
		t.Fatal("Session is nil after Reset")
	}
	if g.Stage().ID != "01-first-steps" {
		t.Errorf("first stage = %q, want 01-first-steps", g.Stage().ID)
	}
	if g.Session().Status() != core.StatusPlaying {
		t.Errorf("Status = %v, want playing", g.Session().Status())
	}
}

func TestStartStage(t *testing.T) {
	tests := []struct {
		name  string
		start int
		want  string
	}{
		{"first", 0, "01-first-steps"},
		{"third", 2, "03-slide"},
		{"negative clamps", -3, "01-first-steps"},
		{"past end clamps", 99, "06-wrap"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGame(t, Options{StartStage: tt.start})
			if g.Stage().ID != tt.want {
				t.Errorf("Stage = %q, want %q", g.Stage().ID, tt.want)
			}
		})
	}
}

func TestClearReportedOnce(t *testing.T) {
	g := newGame(t, Options{})

	res := playSolution(t, g)
	if res.Cleared == nil {
		t.Fatal("expected a clear record on the clearing tick")
	}
	if res.Cleared.StageID != "01-first-steps" {
		t.Errorf("StageID = %q", res.Cleared.StageID)
	}
	if res.Cleared.Moves != 4 {
		t.Errorf("Moves = %d, want 4", res.Cleared.Moves)
	}
	if res.State.Score == 0 {
		t.Error("score should increase on clear")
	}

	// Undo reopens the stage; clearing again does not report twice.
	press(g, platformcore.ActionUndo)
	if g.Session().Status() != core.StatusPlaying {
		t.Fatalf("Status after undo = %v", g.Session().Status())
	}
	res = press(g, platformcore.ActionDown)
	if g.Session().Status() != core.StatusCleared {
		t.Fatalf("Status after redo = %v", g.Session().Status())
	}
	if res.Cleared != nil {
		t.Error("stage reported cleared twice")
	}
}

func TestFullRun(t *testing.T) {
	g := newGame(t, Options{})

	clears := 0
	for i := 0; i < g.StageCount(); i++ {
		id := g.Stage().ID
		res := playSolution(t, g)
		if res.Cleared == nil {
			t.Fatalf("stage %s not cleared by its solution", id)
		}
		clears++
		res = press(g, platformcore.ActionNext)
		if i == g.StageCount()-1 && !res.State.GameOver {
			t.Fatal("run should be over after the last stage")
		}
	}

	state := g.State()
	if !state.GameOver || !state.Won {
		t.Errorf("State = %+v, want won", state)
	}
	if clears != g.StageCount() {
		t.Errorf("clears = %d", clears)
	}
	if state.Score < 100*clears {
		t.Errorf("Score = %d, want at least %d", state.Score, 100*clears)
	}
}

func TestInputIgnoredAfterClear(t *testing.T) {
	g := newGame(t, Options{})
	playSolution(t, g)

	moves := g.Session().Moves()
	press(g, platformcore.ActionLeft)
	if g.Session().Moves() != moves {
		t.Error("movement applied after the stage was cleared")
	}
	if g.Stage().ID != "01-first-steps" {
		t.Error("stage advanced without Next")
	}
}

func TestRejectionShowsNotice(t *testing.T) {
	g := newGame(t, Options{})

	// The first stage has a wall directly above the start.
	press(g, platformcore.ActionUp)
	if g.notice != reason(core.ErrBlocked) {
		t.Errorf("notice = %q, want %q", g.notice, reason(core.ErrBlocked))
	}
	if g.Session().Moves() != 0 {
		t.Error("rejected move was counted")
	}

	// No shifts are allowed on the first stage.
	press(g, platformcore.ActionShiftRight)
	if g.notice != reason(core.ErrNoShiftsLeft) {
		t.Errorf("notice = %q, want %q", g.notice, reason(core.ErrNoShiftsLeft))
	}
}

func TestRestart(t *testing.T) {
	g := newGame(t, Options{})
	press(g, platformcore.ActionRight)
	press(g, platformcore.ActionRestart)

	if g.Session().Moves() != 0 {
		t.Errorf("Moves = %d after restart", g.Session().Moves())
	}
	if g.Session().Grid().Player() != core.C(1, 1) {
		t.Errorf("Player = %v after restart", g.Session().Grid().Player())
	}
}

func TestDifficultyScalesBudget(t *testing.T) {
	tests := []struct {
		preset config.DifficultyPreset
		want   int
	}{
		{config.DifficultyNormal, 1},
		{config.DifficultyEasy, 2},
		{config.DifficultyHard, 1},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			g := newGame(t, Options{Preset: tt.preset, StartStage: 1})
			if got := g.Session().MaxShifts(); got != tt.want {
				t.Errorf("MaxShifts = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRender(t *testing.T) {
	g := newGame(t, Options{})
	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"First Steps", "@", "Shifts: 0/0"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newGame(t, Options{})
	screen := platformcore.NewScreen(30, 8)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected too-small notice:\n%s", screen.String())
	}
}

func TestDeterministicRender(t *testing.T) {
	a := newGame(t, Options{StartStage: 4})
	b := newGame(t, Options{StartStage: 4})
	sa := platformcore.NewScreen(80, 24)
	sb := platformcore.NewScreen(80, 24)

	for _, act := range []platformcore.Action{platformcore.ActionRight, platformcore.ActionRight} {
		press(a, act)
		press(b, act)
	}
	a.Render(sa)
	b.Render(sb)
	if sa.String() != sb.String() {
		t.Error("same seed and input produced different frames")
	}
}
