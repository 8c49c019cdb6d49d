package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveClear(StageClear{StageID: "01-first-steps", Moves: 4}); err != nil {
		t.Fatalf("SaveClear() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	best, err := store.BestClear("01-first-steps")
	if err != nil || best == nil {
		t.Fatalf("BestClear() = %v, %v after reopen", best, err)
	}
}

func TestStoreScores(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("rubik")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() on empty table = %d, want 0", high)
	}

	for _, s := range []int{250, 100, 400, 175} {
		if _, err := store.SaveScore("rubik", s); err != nil {
			t.Fatalf("SaveScore(%d) failed: %v", s, err)
		}
	}
	store.SaveScore("other", 999)

	top, err := store.TopScores("rubik", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	want := []int{400, 250, 175}
	if len(top) != len(want) {
		t.Fatalf("TopScores() returned %d entries, want %d", len(top), len(want))
	}
	for i, w := range want {
		if top[i].Score != w {
			t.Errorf("TopScores()[%d] = %d, want %d", i, top[i].Score, w)
		}
	}

	high, _ = store.HighScore("rubik")
	if high != 400 {
		t.Errorf("HighScore() = %d, want 400", high)
	}

	if err := store.ClearScores("rubik"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if left, _ := store.TopScores("rubik", 10); len(left) != 0 {
		t.Errorf("%d scores left after ClearScores", len(left))
	}
	if other, _ := store.TopScores("other", 10); len(other) != 1 {
		t.Error("ClearScores touched another game")
	}
}

func TestStoreBestClear(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestClear("02-crate")
	if err != nil {
		t.Fatalf("BestClear() failed: %v", err)
	}
	if best != nil {
		t.Fatalf("BestClear() on empty table = %+v, want nil", best)
	}

	clears := []StageClear{
		{StageID: "02-crate", Moves: 9, ShiftsUsed: 0},
		{StageID: "02-crate", Moves: 6, ShiftsUsed: 1, Undos: 2},
		{StageID: "02-crate", Moves: 6, ShiftsUsed: 0, Undos: 3},
		{StageID: "03-slide", Moves: 1, ShiftsUsed: 1},
	}
	for _, c := range clears {
		if _, err := store.SaveClear(c); err != nil {
			t.Fatalf("SaveClear(%+v) failed: %v", c, err)
		}
	}

	best, err = store.BestClear("02-crate")
	if err != nil {
		t.Fatalf("BestClear() failed: %v", err)
	}
	if best.Moves != 6 || best.ShiftsUsed != 0 {
		t.Errorf("BestClear() = %d moves %d shifts, want 6 and 0", best.Moves, best.ShiftsUsed)
	}
	if best.RunID == "" {
		t.Error("SaveClear did not assign a run id")
	}

	list, err := store.ClearsForStage("02-crate", 0)
	if err != nil {
		t.Fatalf("ClearsForStage() failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("ClearsForStage() returned %d, want 3", len(list))
	}
	if list[2].Moves != 9 {
		t.Errorf("worst clear listed last should have 9 moves, got %d", list[2].Moves)
	}
}

func TestStoreRunClears(t *testing.T) {
	store := openTestStore(t)
	run := NewRunID()

	store.SaveClear(StageClear{RunID: run, StageID: "01-first-steps", Moves: 4})
	store.SaveClear(StageClear{RunID: run, StageID: "02-crate", Moves: 4})
	store.SaveClear(StageClear{RunID: NewRunID(), StageID: "01-first-steps", Moves: 5})

	got, err := store.RunClears(run)
	if err != nil {
		t.Fatalf("RunClears() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("RunClears() returned %d, want 2", len(got))
	}
	if got[0].StageID != "01-first-steps" || got[1].StageID != "02-crate" {
		t.Errorf("RunClears() order = %s, %s", got[0].StageID, got[1].StageID)
	}

	stats, err := store.AllStageStats()
	if err != nil {
		t.Fatalf("AllStageStats() failed: %v", err)
	}
	first := stats["01-first-steps"]
	if first == nil || first.Clears != 2 || first.BestMoves != 4 {
		t.Errorf("stats for 01-first-steps = %+v", first)
	}
}

func TestSaveClearRequiresStage(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveClear(StageClear{Moves: 3}); err == nil {
		t.Error("SaveClear without stage id should fail")
	}
}
