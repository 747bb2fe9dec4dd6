package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestBestTimes(t *testing.T) {
	store := openTestStore(t)

	results := []Result{
		{LevelID: "tutorial/1", Won: true, Elapsed: 40 * time.Second, Stars: 2, Lives: 3},
		{LevelID: "tutorial/1", Won: false, Elapsed: 5 * time.Second, Lives: 0},
		{LevelID: "tutorial/1", Won: true, Elapsed: 25 * time.Second, Stars: 2, Lives: 1},
		{LevelID: "tutorial/1", Won: true, Elapsed: 31500 * time.Millisecond, Stars: 2, Lives: 2},
		{LevelID: "tutorial/2", Won: true, Elapsed: time.Second},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	best, err := store.BestTimes("tutorial/1", 10)
	if err != nil {
		t.Fatalf("BestTimes() failed: %v", err)
	}
	if len(best) != 3 {
		t.Fatalf("BestTimes() returned %d results, expected 3", len(best))
	}

	expected := []time.Duration{25 * time.Second, 31500 * time.Millisecond, 40 * time.Second}
	for i, e := range expected {
		if best[i].Elapsed != e {
			t.Errorf("BestTimes()[%d].Elapsed = %v, expected %v", i, best[i].Elapsed, e)
		}
		if !best[i].Won {
			t.Errorf("BestTimes()[%d].Won = false", i)
		}
	}

	limited, err := store.BestTimes("tutorial/1", 1)
	if err != nil {
		t.Fatalf("BestTimes() failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("BestTimes(limit 1) returned %d results", len(limited))
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 3; i++ {
		if _, err := store.SaveResult(Result{LevelID: "a", Serie: "s", Stars: i}); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	history, err := store.History("a", 0)
	if err != nil {
		t.Fatalf("History() failed: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("History() returned %d results, expected 3", len(history))
	}
	if history[0].Stars != 3 || history[2].Stars != 1 {
		t.Errorf("History() order = %d..%d, expected 3..1", history[0].Stars, history[2].Stars)
	}
	if history[0].Serie != "s" {
		t.Errorf("Serie = %q, expected s", history[0].Serie)
	}
}

func TestLevelIDsAndStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{LevelID: "b", Won: true, Elapsed: 9 * time.Second})
	store.SaveResult(Result{LevelID: "a", Won: false, Elapsed: 2 * time.Second})
	store.SaveResult(Result{LevelID: "b", Won: true, Elapsed: 7 * time.Second})
	store.SaveResult(Result{LevelID: "b", Won: false, Elapsed: time.Second})

	ids, err := store.LevelIDs()
	if err != nil {
		t.Fatalf("LevelIDs() failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("LevelIDs() = %v, expected [a b]", ids)
	}

	stats, err := store.Stats("b")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Attempts != 3 || stats.Wins != 2 {
		t.Errorf("Stats() = %d attempts / %d wins, expected 3 / 2", stats.Attempts, stats.Wins)
	}
	if stats.Best != 7*time.Second {
		t.Errorf("Stats().Best = %v, expected 7s", stats.Best)
	}

	never, err := store.Stats("a")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if never.Best != 0 {
		t.Errorf("Stats(a).Best = %v, expected 0", never.Best)
	}
}

func TestClearResults(t *testing.T) {
	store := openTestStore(t)
	store.SaveResult(Result{LevelID: "x", Won: true, Elapsed: time.Second})

	if err := store.ClearResults("x"); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}
	history, err := store.History("x", 10)
	if err != nil {
		t.Fatalf("History() failed: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("History() after clear returned %d results", len(history))
	}
}
