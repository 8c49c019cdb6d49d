package tui

import (
	"strings"
	"testing"

	"github.com/full-fish/RubicksDungeon/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextWithColor(0, 0, "@B", core.ColorYellow)
	s.DrawTextWithColor(2, 0, "#", core.ColorGray)
	s.DrawText(0, 1, "ok")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() produced %d lines, expected 2", len(lines))
	}
	for _, want := range []string{"@B", "#"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("first line %q does not contain %q", lines[0], want)
		}
	}
	if !strings.Contains(lines[1], "ok") {
		t.Errorf("second line %q does not contain %q", lines[1], "ok")
	}
}
