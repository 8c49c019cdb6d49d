// Package rubik provides Rubik's Dungeon, a turn-based puzzle where whole rows
// and columns of a layered dungeon rotate around the player.
package rubik

import (
	"errors"
	"fmt"
	"sync"

	"github.com/full-fish/RubicksDungeon/internal/config"
	platformcore "github.com/full-fish/RubicksDungeon/internal/core"
	"github.com/full-fish/RubicksDungeon/internal/games/rubik/core"
	"github.com/full-fish/RubicksDungeon/internal/games/rubik/stages"
	"github.com/full-fish/RubicksDungeon/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "rubik"

// Options configures new games.
type Options struct {
	Config     config.RubikConfig
	Stages     []stages.Stage // Empty loads the built-in set
	Preset     config.DifficultyPreset
	StartStage int // 0-indexed
}

// SessionConfig resolves the rule parameters for one attempt at st.
func (o Options) SessionConfig(st stages.Stage, seed int64) core.SessionConfig {
	preset := o.Preset
	if preset == "" {
		preset = config.DifficultyNormal
	}
	return core.SessionConfig{
		MaxShifts:    preset.ShiftBudget(o.Config.MaxShifts(st.MaxShifts)),
		UndoLimit:    o.Config.Rules.UndoLimit,
		VariantRange: o.Config.Rules.VariantRange,
		Seed:         seed,
	}
}

// Package-level options, set by the CLI before the platform creates games.
var (
	optMu    sync.RWMutex
	defaults Options
)

// Configure sets the options used by games created through the registry.
func Configure(o Options) {
	optMu.Lock()
	defer optMu.Unlock()
	defaults = o
}

// SetStartStage changes only the starting stage (0-indexed).
func SetStartStage(i int) {
	optMu.Lock()
	defer optMu.Unlock()
	defaults.StartStage = i
}

func configured() Options {
	optMu.RLock()
	defer optMu.RUnlock()
	return defaults
}

func init() {
	registry.Register(GameID, "Rubik's Dungeon", func() registry.Game {
		return New(configured())
	})
}

// Game implements registry.Game on top of a rule-engine session.
type Game struct {
	opts    Options
	catalog *core.Catalog
	colors  map[uint16]platformcore.Color
	loadErr error

	index   int
	stage   stages.Stage
	session *core.Session

	seed     int64
	tickRate int
	screenW  int
	screenH  int

	score    int
	cleared  int
	recorded bool // Clear of the current stage already reported
	finished bool

	cue        string
	cueLeft    int
	notice     string
	noticeLeft int
}

// New creates a game. Missing configuration falls back to the built-in defaults.
func New(opts Options) *Game {
	if len(opts.Config.Tiles) == 0 {
		opts.Config = config.DefaultRubikConfig()
	}
	if opts.Preset == "" {
		opts.Preset = config.DifficultyNormal
	}
	return &Game{opts: opts}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Rubik's Dungeon"
}

// Reset starts a run from the configured stage.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.seed = cfg.Seed
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = platformcore.DefaultConfig().TickRate
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.score = 0
	g.cleared = 0
	g.finished = false
	g.loadErr = nil
	g.cue, g.cueLeft = "", 0
	g.notice, g.noticeLeft = "", 0

	if g.catalog == nil {
		cat, err := g.opts.Config.Catalog()
		if err != nil {
			g.loadErr = err
			return
		}
		g.catalog = cat
		g.colors = make(map[uint16]platformcore.Color, cat.Len())
		for _, def := range cat.All() {
			c, _ := platformcore.ParseColor(def.Color)
			g.colors[def.ID] = c
		}
	}
	if len(g.opts.Stages) == 0 {
		all, err := stages.Builtin(nil).LoadAll()
		if err != nil {
			g.loadErr = err
			return
		}
		g.opts.Stages = all
	}
	if len(g.opts.Stages) == 0 {
		g.loadErr = errors.New("no stages to play")
		return
	}

	g.index = platformcore.Clamp(g.opts.StartStage, 0, len(g.opts.Stages)-1)
	g.loadStage()
}

// loadStage builds a fresh session for g.index.
func (g *Game) loadStage() {
	g.stage = g.opts.Stages[g.index]
	session, err := g.stage.NewSession(g.catalog, g.opts.SessionConfig(g.stage, g.seed+int64(g.index)))
	if err != nil {
		g.loadErr = fmt.Errorf("stage %s: %w", g.stage.ID, err)
		return
	}
	session.Subscribe(core.ListenerFunc(g.onEvent))
	g.session = session
	g.recorded = false
	g.say(g.stage.Metadata["hint"])
}

// Session exposes the active rule-engine session.
func (g *Game) Session() *core.Session {
	return g.session
}

// Stage returns the stage being played.
func (g *Game) Stage() stages.Stage {
	return g.stage
}

// Step applies at most one command per tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if g.cueLeft > 0 {
		g.cueLeft--
	}
	if g.noticeLeft > 0 {
		g.noticeLeft--
	}
	if g.loadErr != nil || g.finished || g.session == nil {
		return platformcore.StepResult{State: g.State()}
	}

	s := g.session
	switch s.Status() {
	case core.StatusCleared:
		switch {
		case in.Has(platformcore.ActionNext), in.Has(platformcore.ActionConfirm):
			g.advance()
		case in.Has(platformcore.ActionUndo):
			g.report(s.Undo())
		case in.Has(platformcore.ActionRestart):
			s.Reset()
		}
	case core.StatusFailed:
		switch {
		case in.Has(platformcore.ActionUndo):
			g.report(s.Undo())
		case in.Has(platformcore.ActionRestart):
			s.Reset()
		}
	default:
		g.command(in)
	}

	res := platformcore.StepResult{}
	if g.session.Status() == core.StatusCleared && !g.recorded {
		g.recorded = true
		g.cleared++
		g.score += stageScore(g.session)
		res.Cleared = &platformcore.ClearRecord{
			StageID:    g.stage.ID,
			Moves:      g.session.Moves(),
			ShiftsUsed: g.session.ShiftsUsed(),
			Undos:      g.session.Undos(),
		}
	}
	res.State = g.State()
	return res
}

// command maps one input action onto a session command.
func (g *Game) command(in platformcore.InputFrame) {
	s := g.session
	var err error
	switch {
	case in.Has(platformcore.ActionUp):
		_, err = s.MovePlayer(0, -1)
	case in.Has(platformcore.ActionDown):
		_, err = s.MovePlayer(0, 1)
	case in.Has(platformcore.ActionLeft):
		_, err = s.MovePlayer(-1, 0)
	case in.Has(platformcore.ActionRight):
		_, err = s.MovePlayer(1, 0)
	case in.Has(platformcore.ActionShiftUp):
		_, err = s.ShiftCol(-1)
	case in.Has(platformcore.ActionShiftDown):
		_, err = s.ShiftCol(1)
	case in.Has(platformcore.ActionShiftLeft):
		_, err = s.ShiftRow(-1)
	case in.Has(platformcore.ActionShiftRight):
		_, err = s.ShiftRow(1)
	case in.Has(platformcore.ActionUndo):
		err = s.Undo()
	case in.Has(platformcore.ActionRestart):
		s.Reset()
		g.say("Stage restarted")
	}
	g.report(err)
}

// advance moves to the next stage or ends the run after the last one.
func (g *Game) advance() {
	if g.index+1 >= len(g.opts.Stages) {
		g.finished = true
		return
	}
	g.index++
	g.loadStage()
}

func (g *Game) report(err error) {
	if err != nil {
		g.say(reason(err))
	}
}

func (g *Game) say(msg string) {
	g.notice = msg
	g.noticeLeft = g.tickRate * 3
}

// onEvent turns committed sound events into HUD cues.
func (g *Game) onEvent(e core.Event) {
	var kind config.SoundKind
	switch e.Kind {
	case core.EventSoundWalk:
		kind = config.SoundWalk
	case core.EventSoundPush:
		kind = config.SoundPush
	case core.EventSoundDestroy:
		kind = config.SoundDestroy
	case core.EventSoundShift:
		kind = config.SoundShift
	default:
		return
	}
	if cue := g.opts.Config.Cue(e.Tile.ID, kind); cue != "" {
		g.cue = cue
		g.cueLeft = g.tickRate
	}
}

// reason turns a rejection into a short player-facing message.
func reason(err error) string {
	switch {
	case errors.Is(err, core.ErrBlocked):
		return "Something blocks the way"
	case errors.Is(err, core.ErrPushBlocked):
		return "It won't budge"
	case errors.Is(err, core.ErrOutOfBounds):
		return "That's the edge of the dungeon"
	case errors.Is(err, core.ErrLocked):
		return "An anchored tile holds this line"
	case errors.Is(err, core.ErrEdgeOverflow):
		return "No room to be pushed aside"
	case errors.Is(err, core.ErrBoardFull):
		return "The line is packed solid"
	case errors.Is(err, core.ErrNoShiftsLeft):
		return "No shifts left"
	case errors.Is(err, core.ErrNothingToUndo):
		return "Nothing to undo"
	default:
		return err.Error()
	}
}

// stageScore rewards unused shifts and penalizes undos.
func stageScore(s *core.Session) int {
	score := 100 + 25*s.ShiftsLeft() - 5*s.Undos()
	if score < 10 {
		score = 10
	}
	return score
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.score,
		GameOver: g.finished,
		Won:      g.finished,
	}
}

// StageCount returns how many stages the run has.
func (g *Game) StageCount() int {
	return len(g.opts.Stages)
}
