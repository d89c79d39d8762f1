package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
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

func save(t *testing.T, store *Store, rec ScoreRecord) {
	t.Helper()
	if _, err := store.SaveScore(rec); err != nil {
		t.Fatalf("SaveScore(%+v) failed: %v", rec, err)
	}
}

func scores(entries []ScoreEntry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Score
	}
	return out
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

	save(t, store, ScoreRecord{GameID: "bomber", Player: "ann", Session: "s1", Level: 2, Score: 100})
	save(t, store, ScoreRecord{GameID: "bomber", Player: "bob", Session: "s2", Level: 1, Score: 50})
	save(t, store, ScoreRecord{GameID: "bomber", Player: "ann", Session: "s3", Level: 3, Score: 200})
	save(t, store, ScoreRecord{GameID: "maze", Player: "bob", Session: "s4", Level: 4, Score: 500})

	top, err := store.TopScores("bomber", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if diff := cmp.Diff([]int{200, 100, 50}, scores(top)); diff != "" {
		t.Errorf("bomber scores mismatch (-want +got):\n%s", diff)
	}

	first := top[0]
	if first.Player != "ann" || first.Session != "s3" || first.Level != 3 || first.GameID != "bomber" {
		t.Errorf("top entry = %+v", first)
	}
	if first.CreatedAt.IsZero() {
		t.Error("created_at was not parsed")
	}

	maze, err := store.TopScores("maze", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(maze) != 1 || maze[0].Score != 500 {
		t.Errorf("maze scores = %v", scores(maze))
	}
}

func TestStoreSaveRequiresGame(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore(ScoreRecord{Score: 10}); err == nil {
		t.Error("SaveScore() without a game id succeeded")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		save(t, store, ScoreRecord{GameID: "collision", Score: (i + 1) * 100})
	}

	top, err := store.TopScores("collision", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if diff := cmp.Diff([]int{500, 400, 300}, scores(top)); diff != "" {
		t.Errorf("top scores mismatch (-want +got):\n%s", diff)
	}

	// Non-positive limits fall back to ten
	for i := range 12 {
		save(t, store, ScoreRecord{GameID: "maze", Score: i})
	}
	top, err = store.TopScores("maze", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 10 {
		t.Errorf("default limit returned %d rows, want 10", len(top))
	}
}

func TestStoreTiesKeepInsertOrder(t *testing.T) {
	store := openTestStore(t)

	save(t, store, ScoreRecord{GameID: "bomber", Player: "first", Score: 100})
	save(t, store, ScoreRecord{GameID: "bomber", Player: "second", Score: 100})

	top, err := store.TopScores("bomber", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if top[0].Player != "first" || top[1].Player != "second" {
		t.Errorf("tie order = %s, %s", top[0].Player, top[1].Player)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("collision")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	for _, s := range []int{100, 300, 200} {
		save(t, store, ScoreRecord{GameID: "collision", Score: s})
	}

	high, err = store.HighScore("collision")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	save(t, store, ScoreRecord{GameID: "bomber", Score: 100})
	save(t, store, ScoreRecord{GameID: "bomber", Score: 200})
	save(t, store, ScoreRecord{GameID: "maze", Score: 300})

	if err := store.ClearScores("bomber"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	bomber, _ := store.TopScores("bomber", 10)
	if len(bomber) != 0 {
		t.Errorf("Expected 0 bomber scores after clear, got %d", len(bomber))
	}

	maze, _ := store.TopScores("maze", 10)
	if len(maze) != 1 {
		t.Errorf("Maze scores should not be affected by clearing bomber")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := range 20 {
		save(t, store, ScoreRecord{GameID: "maze", Score: i * 10})
	}

	all, err := store.AllScores("maze")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(all))
	}
}

func TestStorePlayerScores(t *testing.T) {
	store := openTestStore(t)

	save(t, store, ScoreRecord{GameID: "bomber", Player: "ann", Score: 10})
	save(t, store, ScoreRecord{GameID: "maze", Player: "bob", Score: 20})
	save(t, store, ScoreRecord{GameID: "collision", Player: "ann", Score: 30})

	got, err := store.PlayerScores("ann", 10)
	if err != nil {
		t.Fatalf("PlayerScores() failed: %v", err)
	}
	// Most recent first
	if diff := cmp.Diff([]int{30, 10}, scores(got)); diff != "" {
		t.Errorf("player scores mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("bomber")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("stats for unplayed game = %+v", empty)
	}

	save(t, store, ScoreRecord{GameID: "bomber", Level: 1, Score: 100})
	save(t, store, ScoreRecord{GameID: "bomber", Level: 3, Score: 300})
	save(t, store, ScoreRecord{GameID: "maze", Level: 2, Score: 50})

	stats, err := store.GetGameStats("bomber")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.BestLevel != 3 || stats.TotalScore != 400 || stats.AvgScore != 200 {
		t.Errorf("bomber stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("last played was not parsed")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["maze"].HighScore != 50 || all["bomber"].GamesCount != 2 {
		t.Errorf("all stats = %v", all)
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
