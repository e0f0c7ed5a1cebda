package fixture

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/tetris-engine/core/internal/board"
	"github.com/tetris-engine/core/internal/piece"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveLoadScenarioRoundTrip(t *testing.T) {
	s := openTestStore(t)

	literal := board.Literal{{Row: 0, Col: 0}, {Row: 0, Col: 1}}
	active := piece.Piece{Kind: piece.T, Orientation: 2, Row: 4, Col: 3}
	want := ExpectedCounts{Trivials: 34, Nontrivials: 34, Placements: 48}

	if err := s.SaveScenario("tucks-t", literal, active, want); err != nil {
		t.Fatalf("SaveScenario: %v", err)
	}

	got, err := s.LoadScenario("tucks-t")
	if err != nil {
		t.Fatalf("LoadScenario: %v", err)
	}

	if got.Name != "tucks-t" {
		t.Fatalf("Name = %q, want %q", got.Name, "tucks-t")
	}
	if len(got.Board) != len(literal) {
		t.Fatalf("Board has %d cells, want %d", len(got.Board), len(literal))
	}
	if got.Active.Piece() != active {
		t.Fatalf("Active = %+v, want %+v", got.Active.Piece(), active)
	}
	if got.Want != want {
		t.Fatalf("Want = %+v, want %+v", got.Want, want)
	}
}

func TestLoadScenarioNotFound(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.LoadScenario("missing"); err != ErrScenarioNotFound {
		t.Fatalf("LoadScenario(missing) error = %v, want ErrScenarioNotFound", err)
	}
}

func TestSaveScenarioOverwrites(t *testing.T) {
	s := openTestStore(t)

	p := piece.New(piece.I)
	if err := s.SaveScenario("x", nil, p, ExpectedCounts{Placements: 1}); err != nil {
		t.Fatalf("SaveScenario: %v", err)
	}
	if err := s.SaveScenario("x", nil, p, ExpectedCounts{Placements: 2}); err != nil {
		t.Fatalf("SaveScenario (overwrite): %v", err)
	}

	got, err := s.LoadScenario("x")
	if err != nil {
		t.Fatalf("LoadScenario: %v", err)
	}
	if got.Want.Placements != 2 {
		t.Fatalf("Placements = %d, want 2 (overwrite should win)", got.Want.Placements)
	}
}

func TestRecordRunAccumulatesHistory(t *testing.T) {
	s := openTestStore(t)

	if err := s.RecordRun("tucks-t", 34, 34, 5*time.Millisecond); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}
	if err := s.RecordRun("tucks-t", 34, 34, 7*time.Millisecond); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}

	runs, err := s.Runs("tucks-t")
	if err != nil {
		t.Fatalf("Runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Runs returned %d records, want 2", len(runs))
	}
	for _, r := range runs {
		if r.Trivials != 34 || r.Nontrivials != 34 {
			t.Fatalf("run record = %+v, want trivials=nontrivials=34", r)
		}
	}
}

func TestRunsForUnknownScenarioIsEmpty(t *testing.T) {
	s := openTestStore(t)

	runs, err := s.Runs("never-recorded")
	if err != nil {
		t.Fatalf("Runs: %v", err)
	}
	if len(runs) != 0 {
		t.Fatalf("Runs returned %d records, want 0", len(runs))
	}
}
