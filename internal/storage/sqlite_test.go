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

func TestStoreOpenCreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestBestScoreDefaultsToZero(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore(GameID)
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("BestScore() on empty store = %d, expected 0", best)
	}
}

func TestUpdateBestOnlyRaises(t *testing.T) {
	store := openTestStore(t)

	best, err := store.UpdateBest(GameID, 7)
	if err != nil {
		t.Fatalf("UpdateBest() failed: %v", err)
	}
	if best != 7 {
		t.Errorf("UpdateBest(7) = %d, expected 7", best)
	}

	// A lower score must not overwrite the stored best
	best, err = store.UpdateBest(GameID, 3)
	if err != nil {
		t.Fatalf("UpdateBest() failed: %v", err)
	}
	if best != 7 {
		t.Errorf("UpdateBest(3) after 7 = %d, expected 7", best)
	}

	best, err = store.UpdateBest(GameID, 12)
	if err != nil {
		t.Fatalf("UpdateBest() failed: %v", err)
	}
	if best != 12 {
		t.Errorf("UpdateBest(12) = %d, expected 12", best)
	}

	stored, err := store.BestScore(GameID)
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if stored != 12 {
		t.Errorf("BestScore() = %d, expected 12", stored)
	}
}

func TestSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore(GameID, score); err != nil {
			t.Fatalf("SaveScore(%d) failed: %v", score, err)
		}
	}

	scores, err := store.TopScores(GameID, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
	}
}

func TestTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore(GameID, (i+1)*100)
	}

	scores, err := store.TopScores(GameID, 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(GameID, 10)
	store.UpdateBest(GameID, 10)

	if err := store.ClearScores(GameID); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, err := store.TopScores(GameID, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("Expected no scores after clear, got %d", len(scores))
	}

	best, err := store.BestScore(GameID)
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Best after clear = %d, expected 0", best)
	}
}
