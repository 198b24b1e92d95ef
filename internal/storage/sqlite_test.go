package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/vovakirdan/brickrun/internal/highscore"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestBestScoreOnlyRises(t *testing.T) {
	store := openTemp(t)

	steps := []struct {
		set  int
		want int
	}{
		{0, 0},
		{50, 50},
		{20, 50},
		{50, 50},
		{75, 75},
	}
	for _, s := range steps {
		if err := store.SetBest("breakout", s.set); err != nil {
			t.Fatalf("SetBest(%d) failed: %v", s.set, err)
		}
		got, err := store.Best("breakout")
		if err != nil {
			t.Fatalf("Best() failed: %v", err)
		}
		if got != s.want {
			t.Errorf("after SetBest(%d): Best() = %d, expected %d", s.set, got, s.want)
		}
	}

	if got, _ := store.Best("runner:easy"); got != 0 {
		t.Errorf("unknown mode best = %d, expected 0", got)
	}
}

func TestBestScoreSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	keeper := highscore.NewKeeper(store, nil)
	keeper.Record("runner:hard", 314)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	if got := highscore.NewKeeper(store, nil).Best("runner:hard"); got != 314 {
		t.Errorf("reopened best = %d, expected 314", got)
	}
}

func TestSaveAndTopRuns(t *testing.T) {
	store := openTemp(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveRun("breakout", uuid.Nil, score); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	fixed := uuid.MustParse("6f1c2a52-4a5e-4f1e-9e7b-1d2c3b4a5f60")
	got, err := store.SaveRun("runner:easy", fixed, 500)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if got != fixed {
		t.Errorf("SaveRun returned %s, expected %s", got, fixed)
	}

	runs, err := store.TopRuns("breakout", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	for i, want := range []int{200, 100, 50} {
		if runs[i].Score != want {
			t.Errorf("runs[%d].Score = %d, expected %d", i, runs[i].Score, want)
		}
		if runs[i].RunID == uuid.Nil {
			t.Errorf("runs[%d] has no run id", i)
		}
	}

	limited, _ := store.TopRuns("breakout", 2)
	if len(limited) != 2 {
		t.Errorf("limit ignored: got %d runs", len(limited))
	}

	runner, _ := store.TopRuns("runner:easy", 10)
	if len(runner) != 1 || runner[0].RunID != fixed {
		t.Errorf("runner runs = %+v", runner)
	}
}

func TestDuplicateRunIDRejected(t *testing.T) {
	store := openTemp(t)
	id := uuid.New()
	if _, err := store.SaveRun("breakout", id, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveRun("breakout", id, 2); err == nil {
		t.Error("expected an error for a duplicate run id")
	}
}

func TestClearMode(t *testing.T) {
	store := openTemp(t)
	store.SaveRun("breakout", uuid.Nil, 10)
	store.SetBest("breakout", 10)
	store.SaveRun("runner:hard", uuid.Nil, 20)

	if err := store.ClearMode("breakout"); err != nil {
		t.Fatalf("ClearMode() failed: %v", err)
	}

	if runs, _ := store.TopRuns("breakout", 10); len(runs) != 0 {
		t.Errorf("breakout runs left: %d", len(runs))
	}
	if best, _ := store.Best("breakout"); best != 0 {
		t.Errorf("breakout best = %d after clear", best)
	}
	if runs, _ := store.TopRuns("runner:hard", 10); len(runs) != 1 {
		t.Error("other modes should be untouched")
	}
}

func TestStats(t *testing.T) {
	store := openTemp(t)
	for _, s := range []int{10, 20, 30} {
		store.SaveRun("runner:medium", uuid.Nil, s)
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	st, ok := stats["runner:medium"]
	if !ok {
		t.Fatal("missing stats for runner:medium")
	}
	if st.RunsCount != 3 || st.HighScore != 30 || st.TotalScore != 60 || st.AvgScore != 20 {
		t.Errorf("unexpected stats: %+v", st)
	}
	if st.LastPlayed.IsZero() {
		t.Error("LastPlayed not parsed")
	}
}
