package core

import (
	"errors"
	"fmt"
	"strings"
)

// Command is one step of a replay script.
type Command rune

const (
	CmdUp         Command = 'U'
	CmdDown       Command = 'D'
	CmdLeft       Command = 'L'
	CmdRight      Command = 'R'
	CmdShiftUp    Command = '^' // Player's column, tiles move up
	CmdShiftDown  Command = 'v' // Player's column, tiles move down
	CmdShiftLeft  Command = '<' // Player's row, tiles move left
	CmdShiftRight Command = '>' // Player's row, tiles move right
	CmdUndo       Command = 'z'
)

// Valid reports whether c is a known command.
func (c Command) Valid() bool {
	switch c {
	case CmdUp, CmdDown, CmdLeft, CmdRight,
		CmdShiftUp, CmdShiftDown, CmdShiftLeft, CmdShiftRight, CmdUndo:
		return true
	}
	return false
}

func moveCommand(dx, dy int) Command {
	switch {
	case dy < 0:
		return CmdUp
	case dy > 0:
		return CmdDown
	case dx < 0:
		return CmdLeft
	default:
		return CmdRight
	}
}

func shiftCommand(axis Axis, dir int) Command {
	switch {
	case axis == AxisCol && dir < 0:
		return CmdShiftUp
	case axis == AxisCol:
		return CmdShiftDown
	case dir < 0:
		return CmdShiftLeft
	default:
		return CmdShiftRight
	}
}

// ParseScript reads a command string. Whitespace and commas are ignored.
func ParseScript(src string) ([]Command, error) {
	var cmds []Command
	for i, r := range src {
		if r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		c := Command(r)
		if !c.Valid() {
			return nil, fmt.Errorf("script: unknown command %q at offset %d", r, i)
		}
		cmds = append(cmds, c)
	}
	return cmds, nil
}

// FormatScript renders commands back into script notation.
func FormatScript(cmds []Command) string {
	var b strings.Builder
	for _, c := range cmds {
		b.WriteRune(rune(c))
	}
	return b.String()
}

// Apply runs a single command against the session.
func (s *Session) Apply(c Command) error {
	var err error
	switch c {
	case CmdUp:
		_, err = s.MovePlayer(0, -1)
	case CmdDown:
		_, err = s.MovePlayer(0, 1)
	case CmdLeft:
		_, err = s.MovePlayer(-1, 0)
	case CmdRight:
		_, err = s.MovePlayer(1, 0)
	case CmdShiftUp:
		_, err = s.ShiftCol(-1)
	case CmdShiftDown:
		_, err = s.ShiftCol(1)
	case CmdShiftLeft:
		_, err = s.ShiftRow(-1)
	case CmdShiftRight:
		_, err = s.ShiftRow(1)
	case CmdUndo:
		err = s.Undo()
	default:
		err = fmt.Errorf("script: unknown command %q", rune(c))
	}
	return err
}

// ReplayResult summarizes a script run.
type ReplayResult struct {
	Applied  int
	Rejected int
	Status   Status
}

// Replay applies cmds in order. Rejected commands are counted and skipped;
// any other error stops the run.
func (s *Session) Replay(cmds []Command) (ReplayResult, error) {
	var res ReplayResult
	for _, c := range cmds {
		err := s.Apply(c)
		switch {
		case err == nil:
			res.Applied++
		case IsRejection(err):
			res.Rejected++
		default:
			res.Status = s.status
			return res, err
		}
	}
	res.Status = s.status
	return res, nil
}

// ErrScriptIncomplete is returned by callers that require a cleared stage.
var ErrScriptIncomplete = errors.New("script did not clear the stage")
