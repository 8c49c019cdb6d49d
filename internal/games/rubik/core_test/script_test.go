package core_test

import (
	"testing"

	"github.com/full-fish/RubicksDungeon/internal/games/rubik/core"
)

func TestParseScript(t *testing.T) {
	tests := []struct {
		src     string
		want    string
		wantErr bool
	}{
		{src: "UDLR", want: "UDLR"},
		{src: "R, R ^ z\n>", want: "RR^z>"},
		{src: "", want: ""},
		{src: "RQ", wantErr: true},
	}

	for _, tt := range tests {
		cmds, err := core.ParseScript(tt.src)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseScript(%q) error = %v, wantErr %v", tt.src, err, tt.wantErr)
			continue
		}
		if got := core.FormatScript(cmds); got != tt.want {
			t.Errorf("ParseScript(%q) = %q, expected %q", tt.src, got, tt.want)
		}
	}
}

func TestReplay(t *testing.T) {
	s := newSession(t, rows(
		"@.#",
		"..G",
	), 1)

	// The second R hits the wall; the row shift carries the wall onto the player and shoves them back.
	cmds, err := core.ParseScript("R R < D R R")
	if err != nil {
		t.Fatalf("ParseScript() error = %v", err)
	}
	res, err := s.Replay(cmds)
	if err != nil {
		t.Fatalf("Replay() error = %v", err)
	}
	if res.Status != core.StatusCleared {
		t.Errorf("Status = %v, expected %v", res.Status, core.StatusCleared)
	}
	if res.Rejected == 0 {
		t.Error("expected at least one rejected command")
	}
	if got := core.FormatScript(s.History()); got == "" {
		t.Error("History() is empty after replay")
	}
}
