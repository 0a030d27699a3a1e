package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Parent directories are created on demand
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("snake", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("tetris", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("snake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	expected := []int{200, 100, 50}
	for i, e := range expected {
		if scores[i].Score != e {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, e)
		}
		if scores[i].GameID != "snake" {
			t.Errorf("scores[%d].GameID = %q", i, scores[i].GameID)
		}
	}

	tetris, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(tetris) != 1 || tetris[0].Score != 500 {
		t.Errorf("tetris scores = %+v, expected one entry of 500", tetris)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		if _, err := store.SaveScore("pacman", i*10); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("pacman", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}
	if scores[0].Score != 190 {
		t.Errorf("Expected top score 190, got %d", scores[0].Score)
	}
}

func TestStoreAllScoresAndClear(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("snake", 10)
	store.SaveScore("escape", 20)
	store.SaveScore("snake", 30)

	all, err := store.AllScores("")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(all))
	}
	// Oldest first
	if all[0].Score != 10 || all[2].Score != 30 {
		t.Errorf("AllScores order = %+v", all)
	}

	if err := store.ClearScores("snake"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	snake, _ := store.AllScores("snake")
	if len(snake) != 0 {
		t.Errorf("Expected snake history cleared, got %d entries", len(snake))
	}
	escape, _ := store.AllScores("escape")
	if len(escape) != 1 {
		t.Errorf("ClearScores should not touch other games, got %d entries", len(escape))
	}
}

func TestStoreHighScoreKeepsMaximum(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	got, err := store.HighScore(ctx, "high_score_snake")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if got != 0 {
		t.Errorf("missing key should read 0, got %d", got)
	}

	steps := []struct {
		save     int
		expected int
	}{
		{40, 40},
		{25, 40},
		{75, 75},
	}
	for _, st := range steps {
		if err := store.SaveHighScore(ctx, "high_score_snake", st.save); err != nil {
			t.Fatalf("SaveHighScore(%d) failed: %v", st.save, err)
		}
		got, _ := store.HighScore(ctx, "high_score_snake")
		if got != st.expected {
			t.Errorf("after saving %d, HighScore = %d, expected %d", st.save, got, st.expected)
		}
	}

	list, err := store.HighScores(ctx)
	if err != nil {
		t.Fatalf("HighScores() failed: %v", err)
	}
	if len(list) != 1 || list[0].Key != "high_score_snake" || list[0].Value != 75 {
		t.Errorf("HighScores = %+v", list)
	}
}

func TestStoreVictories(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for want := 1; want <= 3; want++ {
		got, err := store.AddVictory(ctx, "Memoria_AnnavsBob")
		if err != nil {
			t.Fatalf("AddVictory() failed: %v", err)
		}
		if got != want {
			t.Errorf("AddVictory returned %d, expected %d", got, want)
		}
	}
	store.AddVictory(ctx, "Memoria_BobvsAnna")

	got, err := store.Victories(ctx, "Memoria_AnnavsBob")
	if err != nil {
		t.Fatalf("Victories() failed: %v", err)
	}
	if got != 3 {
		t.Errorf("Victories = %d, expected 3", got)
	}
	if n, _ := store.Victories(ctx, "Memoria_nobodyvsBob"); n != 0 {
		t.Errorf("unknown key should read 0, got %d", n)
	}

	all, err := store.AllVictories(ctx)
	if err != nil {
		t.Fatalf("AllVictories() failed: %v", err)
	}
	if len(all) != 2 || all[0].Key != "Memoria_AnnavsBob" {
		t.Errorf("AllVictories = %+v", all)
	}
}

func TestStoreAllGamesStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("tetris", 10)
	store.SaveScore("tetris", 30)
	store.SaveScore("snake", 5)

	stats, err := store.AllGamesStats()
	if err != nil {
		t.Fatalf("AllGamesStats() failed: %v", err)
	}
	st, ok := stats["tetris"]
	if !ok {
		t.Fatal("missing tetris stats")
	}
	if st.GamesCount != 2 || st.BestScore != 30 || st.AvgScore != 20 {
		t.Errorf("tetris stats = %+v", st)
	}
	if len(stats) != 2 {
		t.Errorf("Expected stats for 2 games, got %d", len(stats))
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandHome("~/.arcade/scores.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if !strings.HasPrefix(got, home) || !strings.HasSuffix(got, filepath.Join(".arcade", "scores.db")) {
		t.Errorf("ExpandHome = %q", got)
	}

	if got, _ := ExpandHome("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed: %q", got)
	}
}
