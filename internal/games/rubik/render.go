package rubik

import (
	"fmt"

	platformcore "github.com/full-fish/RubicksDungeon/internal/core"
	"github.com/full-fish/RubicksDungeon/internal/games/rubik/core"
)

// Screen rows reserved around the board.
const (
	hudRows    = 2 // Title and separator
	footerRows = 3 // Status, separator, controls
	anchorGap  = 2 // Anchor markers sit two cells outside the frame
)

// Render draws the current frame.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.loadErr != nil {
		g.renderOverlay(dst, "Cannot load stage", g.loadErr.Error())
		return
	}
	if g.session == nil {
		return
	}

	g.renderHUD(dst)

	grid := g.session.Grid()
	boardW, boardH := grid.Width()*2+3, grid.Height()+2
	area := platformcore.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows-footerRows)
	if area.W < boardW+2*anchorGap || area.H < boardH+anchorGap {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", boardW+2*anchorGap, boardH+anchorGap+hudRows+footerRows))
		return
	}

	frame := area.Centered(boardW, boardH)
	g.renderBoard(dst, frame)
	g.renderFooter(dst)

	if g.finished {
		g.renderOverlay(dst, "All stages cleared!", fmt.Sprintf("Final score %d  Q to quit", g.score))
	}
}

// renderHUD draws the title bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	s := g.session
	hud := fmt.Sprintf(" %s [%d/%d] | Shifts: %d/%d | Moves: %d | Undo: %d | Score: %d",
		g.stage.Title(), g.index+1, len(g.opts.Stages),
		s.ShiftsLeft(), s.MaxShifts(), s.Moves(), s.UndoDepth(), g.score)
	dst.DrawTextWithColor(0, 0, hud, platformcore.ColorCyan)
	if g.cueLeft > 0 {
		cue := "♪ " + g.cue
		dst.DrawTextWithColor(dst.Width()-len([]rune(cue))-1, 0, cue, platformcore.ColorGray)
	}
	for x := 0; x < dst.Width(); x++ {
		dst.SetWithColor(x, 1, '─', platformcore.ColorGray)
	}
}

// renderBoard draws the frame, the cells and the anchor markers.
func (g *Game) renderBoard(dst *platformcore.Screen, frame platformcore.Rect) {
	s := g.session
	grid := s.Grid()

	frameColor := platformcore.ColorGray
	switch s.Status() {
	case core.StatusFailed:
		frameColor = platformcore.ColorRed
	case core.StatusCleared:
		frameColor = platformcore.ColorBrightGreen
	}
	dst.DrawBox(frame, frameColor)

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			r, c := g.cellGlyph(x, y)
			dst.SetWithColor(frame.X+2+x*2, frame.Y+1+y, r, c)
		}
	}

	// Lines holding a non-shifting tile cannot rotate.
	for y := 0; y < grid.Height(); y++ {
		if !s.CanShiftRow(y) {
			dst.SetWithColor(frame.X-anchorGap, frame.Y+1+y, '=', platformcore.ColorBlue)
		}
	}
	for x := 0; x < grid.Width(); x++ {
		if !s.CanShiftCol(x) {
			dst.SetWithColor(frame.X+2+x*2, frame.Y-1, '‖', platformcore.ColorBlue)
		}
	}

	// Mark the player's row and column, the lines a shift would rotate.
	p := grid.Player()
	dst.SetWithColor(frame.Right()-1+anchorGap, frame.Y+1+p.Y, '◂', platformcore.ColorYellow)
	dst.SetWithColor(frame.X+2+p.X*2, frame.Bottom(), '▴', platformcore.ColorYellow)
}

// cellGlyph picks what to show for one cell: player, then object, then sky,
// then floor.
func (g *Game) cellGlyph(x, y int) (rune, platformcore.Color) {
	s := g.session
	grid := s.Grid()

	if grid.Player() == core.C(x, y) {
		if s.Status() == core.StatusFailed {
			return '@', platformcore.ColorBrightRed
		}
		return '@', platformcore.ColorBrightWhite
	}
	for _, l := range []core.Layer{core.LayerObject, core.LayerSky, core.LayerFloor} {
		cell := grid.CellAt(x, y, l)
		if cell.Empty() {
			continue
		}
		def, ok := g.catalog.Lookup(cell.ID)
		if !ok {
			return '?', platformcore.ColorMagenta
		}
		r := def.Glyph
		// Variants roughen plain floor a little.
		if l == core.LayerFloor && r == '.' && cell.Variant%7 == 0 {
			r = ','
		}
		return r, g.colors[def.ID]
	}
	return ' ', platformcore.ColorDefault
}

// renderFooter draws the status line and controls.
func (g *Game) renderFooter(dst *platformcore.Screen) {
	h := dst.Height()
	status, color := g.statusLine()
	dst.DrawTextWithColor(1, h-3, status, color)
	for x := 0; x < dst.Width(); x++ {
		dst.SetWithColor(x, h-2, '─', platformcore.ColorGray)
	}
	dst.DrawTextWithColor(0, h-1, " ←↑↓→/hjkl: Move | WASD: Shift | U: Undo | R: Restart | Q: Quit", platformcore.ColorGray)
}

func (g *Game) statusLine() (string, platformcore.Color) {
	switch g.session.Status() {
	case core.StatusFailed:
		return "You fell into a trap. U to undo, R to restart.", platformcore.ColorRed
	case core.StatusCleared:
		if g.index+1 >= len(g.opts.Stages) {
			return "Treasure found! Press N to finish.", platformcore.ColorBrightGreen
		}
		return "Treasure found! Press N for the next stage.", platformcore.ColorBrightGreen
	}
	if g.noticeLeft > 0 && g.notice != "" {
		return g.notice, platformcore.ColorYellow
	}
	if g.session.ShiftsLeft() == 0 && g.session.MaxShifts() > 0 {
		return "Out of shifts. Walk it out or undo.", platformcore.ColorGray
	}
	return "", platformcore.ColorDefault
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	w := platformcore.Max(len([]rune(line1)), len([]rune(line2))) + 4
	box := platformcore.NewRect(0, 0, dst.Width(), dst.Height()).Centered(w, 5)
	dst.DrawRect(box, ' ', platformcore.ColorDefault)
	dst.DrawBox(box, platformcore.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, platformcore.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+3, line2, platformcore.ColorGray)
}
