// Package game ties board, active piece, hold, and piece queue together
// into the single mutable unit a player (or a search routine) drives
// one placement at a time, plus the packed history ring that lets past
// board states be reconstructed.
package game

import (
	"github.com/tetris-engine/core/internal/board"
	"github.com/tetris-engine/core/internal/piece"
	"github.com/tetris-engine/core/internal/queue"
)

// historySlots is the number of 16-bit records the history ring keeps.
const historySlots = 8

// Game is the complete mutable state a single player session needs:
// the board, the piece currently falling, an optional held kind, the
// queue of pieces to come, and a packed record of the last eight
// placements.
type Game struct {
	Board   board.Board
	Active  piece.Piece
	Held    *piece.Kind
	Queue   *queue.Queue
	History uint128
}

// New returns a Game with an empty board and a queue seeded from seed.
func New(seed int64) *Game {
	q := queue.New(seed)
	return &Game{
		Active: piece.New(q.Next()),
		Queue:  q,
	}
}

// Clone returns a deep copy of g: an independent board, queue, and
// history, so mutating the clone never affects g. Used by Lookahead to
// fork search state across goroutines.
func (g *Game) Clone() *Game {
	clone := *g
	clone.Queue = g.Queue.Clone()
	if g.Held != nil {
		h := *g.Held
		clone.Held = &h
	}
	return &clone
}

// PlaceActive locks the active piece into the board, clears any full
// lines, records the placement in history, and draws the next active
// piece from the queue. held reports whether this placement came from
// a hold swap (recorded in the history bit, not otherwise meaningful
// here). The caller must ensure the active piece can legally be set
// (board.PieceCanSet) before calling; this method does not check.
func (g *Game) PlaceActive(held bool) {
	record := encode(g.Active, held, tSpinNone)
	g.History = g.History.shiftInLow16(record)

	g.Board.SetPiece(g.Active)
	g.Board.ClearLines()
	g.Active = piece.New(g.Queue.Next())
}

// SetActive overrides the active piece directly (e.g. after an
// external placement search has picked a target piece). If held is
// true, Hold is performed first.
func (g *Game) SetActive(p piece.Piece, held bool) {
	if held {
		g.Hold()
	}
	g.Active = p
}

// Hold swaps the active piece into the hold slot, pulling the
// previously held kind (or the next queued kind, if hold was empty)
// in as the new active piece.
func (g *Game) Hold() {
	prevHeld := g.Held
	activeKind := g.Active.Kind
	g.Held = &activeKind
	if prevHeld != nil {
		g.Active = piece.New(*prevHeld)
	} else {
		g.Active = piece.New(g.Queue.Next())
	}
}

// HoldPiece returns the piece that would become active if Hold were
// called right now, without mutating g.
func (g *Game) HoldPiece() piece.Piece {
	if g.Held != nil {
		return piece.New(*g.Held)
	}
	return piece.New(g.Queue.Peek())
}

// PastStates reconstructs up to historySlots prior board states by
// reverse-applying each encoded history entry (removing the recorded
// piece from the board), oldest first. Since a history record does not
// carry the piece's absolute position (see decode), each removal is
// only exact when the decoded piece's spawn-anchored cells happen to
// coincide with where it actually landed; callers that need a fully
// faithful rewind must keep their own placement log rather than rely
// on this best-effort trail. The active piece, hold, and queue are
// never rewound at all, since none of those are recorded in history.
func (g *Game) PastStates() []board.Board {
	var boards []board.Board
	cur := g.Board
	h := g.History
	for h != (uint128{}) {
		boards = append(boards, cur)
		record := h.low16()
		p, ok := decode(record)
		if ok {
			cur.RemovePiece(p)
		}
		h = h.shiftRight16()
	}
	boards = append(boards, cur)

	for i, j := 0, len(boards)-1; i < j; i, j = i+1, j-1 {
		boards[i], boards[j] = boards[j], boards[i]
	}
	return boards
}
