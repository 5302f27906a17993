package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
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

func save(t *testing.T, s *Store, gameID string, score, ticks int) {
	t.Helper()

	if _, err := s.SaveScore(Result{GameID: gameID, Score: score, Ticks: ticks}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
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

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.bubblepop/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".bubblepop", "scores.db")); err != nil {
		t.Errorf("database not created under HOME: %v", err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	session := uuid.New()
	if _, err := store.SaveScore(Result{SessionID: session, GameID: "bubbles", Player: "ana", Score: 5, Ticks: 300}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	save(t, store, "bubbles", 5, 120)
	save(t, store, "bubbles", 3, 50)
	save(t, store, "bubbles_classic", 9, 400)

	scores, err := store.TopScores("bubbles", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Equal scores are ranked by the faster clear
	if scores[0].Score != 5 || scores[0].Ticks != 120 {
		t.Errorf("first entry = %+v, expected score 5 in 120 ticks", scores[0])
	}
	if scores[1].SessionID != session || scores[1].Player != "ana" {
		t.Errorf("second entry = %+v, expected ana's session", scores[1])
	}
	if scores[2].Score != 3 {
		t.Errorf("third entry score = %d, expected 3", scores[2].Score)
	}
	if scores[0].SessionID == uuid.Nil {
		t.Error("SaveScore should assign a session id")
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestStoreDuplicateSessionRejected(t *testing.T) {
	store := openTestStore(t)
	r := Result{SessionID: uuid.New(), GameID: "bubbles", Score: 1}

	if _, err := store.SaveScore(r); err != nil {
		t.Fatalf("first SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore(r); err == nil {
		t.Error("saving the same session twice should fail")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 1; i <= 5; i++ {
		save(t, store, "bubbles", i, 10)
	}

	scores, err := store.TopScores("bubbles", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 5 || scores[1].Score != 4 || scores[2].Score != 3 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("bubbles")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	save(t, store, "bubbles", 4, 10)
	save(t, store, "bubbles", 7, 10)

	if high, _ = store.HighScore("bubbles"); high != 7 {
		t.Errorf("Expected high score of 7, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	save(t, store, "bubbles", 5, 10)
	save(t, store, "bubbles_classic", 6, 10)

	if err := store.ClearScores("bubbles"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("bubbles", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("bubbles_classic", 10); len(scores) != 1 {
		t.Error("Other modes should not be affected by clearing")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("bubbles")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	save(t, store, "bubbles", 5, 200)
	save(t, store, "bubbles", 3, 90)

	stats, err := store.Stats("bubbles")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 5 || stats.AvgScore != 4 || stats.BestTicks != 90 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}
