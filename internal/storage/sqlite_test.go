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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{GameID: "mazechase", Score: 100, Outcome: OutcomeLost, Ticks: 900, DotsEaten: 10},
		{GameID: "mazechase", Score: 50, Outcome: OutcomeQuit, Ticks: 300, DotsEaten: 5},
		{GameID: "mazechase", Score: 2090, Outcome: OutcomeWon, Ticks: 5000, DotsEaten: 209},
		{GameID: "other", Score: 500, Outcome: OutcomeLost},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	got, err := store.TopRuns("mazechase", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(got))
	}

	// Should be sorted descending
	if got[0].Score != 2090 || got[1].Score != 100 || got[2].Score != 50 {
		t.Errorf("Runs not in expected order: %v", got)
	}
	if got[0].Outcome != OutcomeWon || got[0].Ticks != 5000 || got[0].DotsEaten != 209 {
		t.Errorf("Run fields not round-tripped: %+v", got[0])
	}
	if got[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}

	other, err := store.TopRuns("other", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 run for other game, got %d", len(other))
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveRun(Run{GameID: "test", Score: (i + 1) * 100, Outcome: OutcomeLost})
	}

	runs, err := store.TopRuns("test", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreTopRunsTieBreaksOnTicks(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "test", Score: 100, Outcome: OutcomeLost, Ticks: 800})
	store.SaveRun(Run{GameID: "test", Score: 100, Outcome: OutcomeLost, Ticks: 400})

	runs, err := store.TopRuns("test", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if runs[0].Ticks != 400 {
		t.Errorf("Faster run should rank first, got ticks %d", runs[0].Ticks)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("mazechase")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveRun(Run{GameID: "mazechase", Score: 100, Outcome: OutcomeLost})
	store.SaveRun(Run{GameID: "mazechase", Score: 300, Outcome: OutcomeLost})
	store.SaveRun(Run{GameID: "mazechase", Score: 200, Outcome: OutcomeWon})

	high, err = store.HighScore("mazechase")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "mazechase", Score: 100, Outcome: OutcomeLost})
	store.SaveRun(Run{GameID: "mazechase", Score: 200, Outcome: OutcomeLost})
	store.SaveRun(Run{GameID: "other", Score: 300, Outcome: OutcomeLost})

	if err := store.ClearRuns("mazechase"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns("mazechase", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}

	other, _ := store.TopRuns("other", 10)
	if len(other) != 1 {
		t.Errorf("Other game runs should not be affected by clearing")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("mazechase")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveRun(Run{GameID: "mazechase", Score: 100, Outcome: OutcomeLost, DotsEaten: 10})
	store.SaveRun(Run{GameID: "mazechase", Score: 2090, Outcome: OutcomeWon, DotsEaten: 209})
	store.SaveRun(Run{GameID: "mazechase", Score: 300, Outcome: OutcomeLost, DotsEaten: 30})

	stats, err := store.GetGameStats("mazechase")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.Wins != 1 || stats.HighScore != 2090 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.TotalDots != 249 {
		t.Errorf("Expected 249 total dots, got %d", stats.TotalDots)
	}
	if want := 830.0; stats.AvgScore != want {
		t.Errorf("Expected average %.1f, got %.1f", want, stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
