package score

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileStoreMissingFileIsZero(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))
	rec, err := store.Load("snakeHighScore")
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if rec.Score != 0 {
		t.Fatalf("expected zero score, got %d", rec.Score)
	}
}

func TestFileStoreRoundTripKeepsOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scores.json")
	store := NewFileStore(path)
	at := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	if err := store.Save("snakeHighScore", Record{Score: 12, RunID: "run-a", SetAt: at}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save("other", Record{Score: 3}); err != nil {
		t.Fatalf("save other: %v", err)
	}

	reopened := NewFileStore(path)
	rec, err := reopened.Load("snakeHighScore")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if rec.Score != 12 || rec.RunID != "run-a" || !rec.SetAt.Equal(at) {
		t.Fatalf("unexpected record %+v", rec)
	}
	other, err := reopened.Load("other")
	if err != nil || other.Score != 3 {
		t.Fatalf("other key lost: %+v, %v", other, err)
	}

	matches, err := filepath.Glob(filepath.Join(filepath.Dir(path), ".highscore-*"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 0 {
		t.Fatalf("temporary files left behind: %v", matches)
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	store := NewFileStore(path)
	if _, err := store.Load("snakeHighScore"); err == nil {
		t.Fatal("expected decode error for corrupt file")
	}
	if err := store.Save("snakeHighScore", Record{Score: 1}); err == nil {
		t.Fatal("save must not clobber a file it cannot read")
	}
}

func TestStoresRejectNegativeScores(t *testing.T) {
	stores := map[string]Store{
		"memory": NewMemoryStore(),
		"file":   NewFileStore(filepath.Join(t.TempDir(), "scores.json")),
	}
	for name, s := range stores {
		if err := s.Save("k", Record{Score: -1}); !errors.Is(err, ErrNegativeScore) {
			t.Errorf("%s: expected ErrNegativeScore, got %v", name, err)
		}
	}
}

func TestMemoryStore(t *testing.T) {
	m := NewMemoryStore()
	if rec, _ := m.Load("k"); rec.Score != 0 {
		t.Fatalf("empty store returned %d", rec.Score)
	}
	if err := m.Save("k", Record{Score: 9}); err != nil {
		t.Fatal(err)
	}
	if rec, _ := m.Load("k"); rec.Score != 9 {
		t.Fatalf("expected 9, got %d", rec.Score)
	}
}
