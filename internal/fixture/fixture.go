package fixture

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/tetris-engine/core/internal/board"
	"github.com/tetris-engine/core/internal/piece"
)

// ErrScenarioNotFound is returned by LoadScenario when no scenario has
// been saved under the given name.
var ErrScenarioNotFound = errors.New("fixture: scenario not found")

const (
	scenarioPrefix = "scenario/"
	runPrefix      = "run/"
)

// PieceState is the on-disk representation of an active piece: just
// enough to reconstruct a piece.Piece without round-tripping through the
// text command language.
type PieceState struct {
	Kind        piece.Kind        `json:"kind"`
	Orientation piece.Orientation `json:"orientation"`
	Row         int               `json:"row"`
	Col         int               `json:"col"`
}

// FromPiece captures p as a PieceState.
func FromPiece(p piece.Piece) PieceState {
	return PieceState{Kind: p.Kind, Orientation: p.Orientation, Row: p.Row, Col: p.Col}
}

// Piece reconstructs a piece.Piece from the captured state.
func (s PieceState) Piece() piece.Piece {
	return piece.Piece{Kind: s.Kind, Orientation: s.Orientation, Row: s.Row, Col: s.Col}
}

// ExpectedCounts records the move-generation counts a scenario is meant
// to be checked against, mirroring the boundary-scenario tables used to
// validate move generation.
type ExpectedCounts struct {
	Trivials    int `json:"trivials"`
	Nontrivials int `json:"nontrivials"`
	Placements  int `json:"placements"`
}

// Scenario is a named board + active piece + (optional) expected move
// generation counts, as saved by SaveScenario and returned by
// LoadScenario.
type Scenario struct {
	Name   string         `json:"name"`
	Board  board.Literal  `json:"board"`
	Active PieceState     `json:"active"`
	Want   ExpectedCounts `json:"want"`
	Saved  time.Time      `json:"saved"`
}

// RunRecord is one move-generation run's telemetry: how long it took and
// what it found. It is written by RecordRun and consumed by nothing in
// the core — purely for a CLI operator or test harness to inspect later.
type RunRecord struct {
	Scenario    string        `json:"scenario"`
	Trivials    int           `json:"trivials"`
	Nontrivials int           `json:"nontrivials"`
	Elapsed     time.Duration `json:"elapsed"`
	Recorded    time.Time     `json:"recorded"`
}

// Store wraps an embedded ordered key-value database for persisting
// scenarios and run telemetry.
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) the embedded database at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScenario persists a named board/piece/expected-count fixture,
// overwriting any existing scenario of the same name.
func (s *Store) SaveScenario(name string, literal board.Literal, active piece.Piece, want ExpectedCounts) error {
	scenario := Scenario{
		Name:   name,
		Board:  literal,
		Active: FromPiece(active),
		Want:   want,
		Saved:  now(),
	}

	data, err := json.Marshal(scenario)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(scenarioPrefix+name), data)
	})
}

// LoadScenario loads a previously saved scenario by name, or
// ErrScenarioNotFound if none exists.
func (s *Store) LoadScenario(name string) (Scenario, error) {
	var scenario Scenario

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(scenarioPrefix + name))
		if err == badger.ErrKeyNotFound {
			return ErrScenarioNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &scenario)
		})
	})
	if err != nil {
		return Scenario{}, err
	}
	return scenario, nil
}

// RecordRun appends a telemetry record for a move-generation run against
// the named scenario. Each call gets its own key, keyed by recorded time,
// so a scenario can accumulate a history of runs rather than overwriting
// the last one.
func (s *Store) RecordRun(scenarioName string, trivialCount, nontrivialCount int, elapsed time.Duration) error {
	record := RunRecord{
		Scenario:    scenarioName,
		Trivials:    trivialCount,
		Nontrivials: nontrivialCount,
		Elapsed:     elapsed,
		Recorded:    now(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	key := runPrefix + scenarioName + "/" + record.Recorded.UTC().Format("2006-01-02T15:04:05.000000000Z")
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// Runs returns every telemetry record saved for the named scenario, in
// the order they were recorded.
func (s *Store) Runs(scenarioName string) ([]RunRecord, error) {
	var records []RunRecord

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		prefix := []byte(runPrefix + scenarioName + "/")
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			if err := item.Value(func(val []byte) error {
				var record RunRecord
				if err := json.Unmarshal(val, &record); err != nil {
					return err
				}
				records = append(records, record)
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
	return records, err
}

var now = time.Now
