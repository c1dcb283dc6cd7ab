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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsResults(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveResult(Result{Score: 1234, MaxTile: 128, Moves: 90}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 1234 {
		t.Errorf("HighScore() after reopen = %d, want 1234", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	results := []Result{
		{Player: "ann", Score: 100, MaxTile: 16, Moves: 40},
		{Player: "bob", Score: 50, MaxTile: 8, Moves: 20},
		{Player: "ann", Score: 20480, MaxTile: 2048, Moves: 900, Won: true},
	}
	for i, r := range results {
		id, err := store.SaveResult(r)
		if err != nil {
			t.Fatalf("SaveResult(%d) failed: %v", i, err)
		}
		if id <= 0 {
			t.Errorf("SaveResult(%d) returned id %d", i, id)
		}
	}

	top, err := store.TopResults(10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(top))
	}

	// Should be sorted descending
	wantScores := []int{20480, 100, 50}
	for i, want := range wantScores {
		if top[i].Score != want {
			t.Errorf("top[%d].Score = %d, want %d", i, top[i].Score, want)
		}
	}

	best := top[0]
	if !best.Won || best.MaxTile != 2048 || best.Moves != 900 || best.Player != "ann" {
		t.Errorf("best result fields not round-tripped: %+v", best)
	}
	if top[1].Won {
		t.Error("non-winning result reported as won")
	}
	if best.CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestStoreTopResultsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 15 {
		if _, err := store.SaveResult(Result{Score: i * 10}); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	top, err := store.TopResults(5)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(top) != 5 {
		t.Errorf("Expected 5 results with limit, got %d", len(top))
	}
	if top[0].Score != 140 {
		t.Errorf("Expected highest score 140, got %d", top[0].Score)
	}

	// Non-positive limit falls back to 10.
	top, err = store.TopResults(0)
	if err != nil {
		t.Fatalf("TopResults(0) failed: %v", err)
	}
	if len(top) != 10 {
		t.Errorf("TopResults(0) returned %d results, want 10", len(top))
	}
}

func TestStoreTiesKeepInsertionOrder(t *testing.T) {
	store := openTestStore(t)

	first, _ := store.SaveResult(Result{Player: "first", Score: 500})
	second, _ := store.SaveResult(Result{Player: "second", Score: 500})

	top, err := store.TopResults(2)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if top[0].ID != first || top[1].ID != second {
		t.Errorf("tie order = [%d %d], want [%d %d]", top[0].ID, top[1].ID, first, second)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for no scores, got %d", high)
	}

	store.SaveResult(Result{Score: 100})
	store.SaveResult(Result{Score: 300})
	store.SaveResult(Result{Score: 200})

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score 300, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty store failed: %v", err)
	}
	if st.Games != 0 || st.HighScore != 0 || !st.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", st)
	}

	store.SaveResult(Result{Score: 100, MaxTile: 64})
	store.SaveResult(Result{Score: 300, MaxTile: 2048, Won: true})
	store.SaveResult(Result{Score: 200, MaxTile: 128})

	st, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Games != 3 {
		t.Errorf("Games = %d, want 3", st.Games)
	}
	if st.Wins != 1 {
		t.Errorf("Wins = %d, want 1", st.Wins)
	}
	if st.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", st.HighScore)
	}
	if st.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", st.AvgScore)
	}
	if st.BestTile != 2048 {
		t.Errorf("BestTile = %d, want 2048", st.BestTile)
	}
	if st.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClear(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{Score: 100})
	store.SaveResult(Result{Score: 200})

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	top, err := store.TopResults(10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("Expected 0 results after clear, got %d", len(top))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// This test verifies that paths with nested directories work
	tmpDir := t.TempDir()
	nestedPath := filepath.Join(tmpDir, "nested", "dir", "test.db")

	store, err := Open(nestedPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(nestedPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreTildePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.t2048/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".t2048", "scores.db")); err != nil {
		t.Errorf("database not created under HOME: %v", err)
	}
}
