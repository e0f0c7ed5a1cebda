// Command movegen is a CLI front end over move generation and
// lookahead: load a board literal and an active piece, optionally
// follow a hold, and print every reachable placement with the command
// sequence that reaches it.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/tetris-engine/core/internal/board"
	"github.com/tetris-engine/core/internal/command"
	"github.com/tetris-engine/core/internal/controller"
	"github.com/tetris-engine/core/internal/fixture"
	"github.com/tetris-engine/core/internal/game"
	"github.com/tetris-engine/core/internal/lookahead"
	"github.com/tetris-engine/core/internal/movegen"
	"github.com/tetris-engine/core/internal/piece"
)

var (
	boardPath = flag.String("board", "", "path to a JSON board literal ([{\"row\":_,\"col\":_}, ...]); empty board if unset")
	pieceSpec = flag.String("piece", "T0", "active piece as a kind letter followed by an orientation digit, e.g. T0, L3")
	hold      = flag.String("hold", "", "optional held piece kind letter")
	queueSeed = flag.Int64("queue-seed", 1, "seed for the seven-bag queue backing lookahead")
	depth     = flag.Int("depth", 0, "lookahead depth; 0 runs a single move-generation call against -piece directly")
	dbDir     = flag.String("db", "", "fixture store directory; required only with -record")
	record    = flag.String("record", "", "fixture scenario name to save this run's telemetry under")
	asJSON    = flag.Bool("json", false, "print placements as a JSON array instead of one line per placement")
)

func main() {
	flag.Parse()

	b, err := loadBoard(*boardPath)
	if err != nil {
		log.Fatalf("movegen: %v", err)
	}

	active, err := parsePieceSpec(*pieceSpec)
	if err != nil {
		log.Fatalf("movegen: %v", err)
	}

	var store *fixture.Store
	if *record != "" {
		if *dbDir == "" {
			log.Fatal("movegen: -record requires -db")
		}
		store, err = fixture.Open(*dbDir)
		if err != nil {
			log.Fatalf("movegen: opening fixture store: %v", err)
		}
		defer store.Close()
	}

	if *depth > 0 {
		runLookahead(b, active, store)
		return
	}

	start := time.Now()
	list := movegen.Generate(&b, active)
	elapsed := time.Since(start)

	if store != nil {
		if err := store.RecordRun(*record, len(list.Trivials), len(list.Nontrivials), elapsed); err != nil {
			log.Fatalf("movegen: recording run: %v", err)
		}
	}

	printPlacements(list)
}

func runLookahead(b board.Board, active piece.Piece, store *fixture.Store) {
	g := game.New(*queueSeed)
	g.Board = b
	g.Active = active
	if *hold != "" {
		kind, ok := piece.KindFromLetter((*hold)[0])
		if !ok {
			log.Fatalf("movegen: invalid -hold kind %q", *hold)
		}
		g.Held = &kind
	}

	start := time.Now()
	games := lookahead.ManyLookahead(g, *depth)
	elapsed := time.Since(start)

	if store != nil {
		if err := store.RecordRun(*record, 0, 0, elapsed); err != nil {
			log.Fatalf("movegen: recording run: %v", err)
		}
	}

	if *asJSON {
		type row struct {
			Board board.Literal `json:"board"`
		}
		rows := make([]row, len(games))
		for i, g := range games {
			rows[i] = row{Board: g.Board.ToLiteral()}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rows); err != nil {
			log.Fatalf("movegen: encoding output: %v", err)
		}
		return
	}

	fmt.Printf("%d reachable game states at depth %d\n", len(games), *depth)
}

func printPlacements(list movegen.PlacementList) {
	if *asJSON {
		type row struct {
			Piece    piece.Piece `json:"piece"`
			Commands string      `json:"commands"`
		}
		rows := make([]row, 0, len(list.Placements))
		for _, p := range list.Placements {
			seq := placementCommands(p)
			rendered, err := command.RenderSequence(seq)
			if err != nil {
				log.Fatalf("movegen: rendering commands: %v", err)
			}
			rows = append(rows, row{Piece: p.Piece, Commands: rendered})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rows); err != nil {
			log.Fatalf("movegen: encoding output: %v", err)
		}
		return
	}

	for _, p := range list.Placements {
		seq := placementCommands(p)
		rendered, err := command.RenderSequence(seq)
		if err != nil {
			log.Fatalf("movegen: rendering commands: %v", err)
		}
		fmt.Printf("%s %s\n", pieceString(p.Piece), rendered)
	}
}

func placementCommands(p movegen.Placement) []controller.Command {
	out := make([]controller.Command, 0, len(p.TrivialBase)+p.NontrivialIndex)
	out = append(out, p.TrivialBase...)
	out = append(out, p.NontrivialExtension[:p.NontrivialIndex]...)
	return out
}

func pieceString(p piece.Piece) string {
	return fmt.Sprintf("%s%d@%d,%d", p.Kind, p.Orientation, p.Row, p.Col)
}

func loadBoard(path string) (board.Board, error) {
	if path == "" {
		return board.Board{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return board.Board{}, fmt.Errorf("reading board literal: %w", err)
	}
	return board.ParseLiteralJSON(data)
}

// parsePieceSpec parses a piece spec of the form "<kind letter><orientation digit>",
// e.g. "T0" or "L3", placed at the piece package's spawn anchor.
func parsePieceSpec(spec string) (piece.Piece, error) {
	if len(spec) < 2 {
		return piece.Piece{}, fmt.Errorf("piece spec %q: want <kind letter><orientation digit>", spec)
	}
	kind, ok := piece.KindFromLetter(spec[0])
	if !ok {
		return piece.Piece{}, fmt.Errorf("piece spec %q: unknown kind letter %q", spec, spec[0])
	}
	orientation, err := strconv.Atoi(spec[1:])
	if err != nil || orientation < 0 || orientation >= piece.NumOrientations {
		return piece.Piece{}, fmt.Errorf("piece spec %q: orientation must be 0-%d", spec, piece.NumOrientations-1)
	}
	p := piece.New(kind)
	p.Orientation = piece.Orientation(orientation)
	return p, nil
}
