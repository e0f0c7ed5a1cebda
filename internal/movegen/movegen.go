// Package movegen enumerates every board-legal resting placement reachable
// from a piece's spawn state. It runs in two phases: a cheap "trivial" pass
// (rotate once, then hard-drop while sliding left and right) followed by a
// DFS over the remaining command space that discovers placements only a
// tuck, spin, or multi-step maneuver can reach.
package movegen

import (
	"github.com/tetris-engine/core/internal/board"
	"github.com/tetris-engine/core/internal/controller"
	"github.com/tetris-engine/core/internal/piece"
)

// commands is the fixed transition set the nontrivial DFS tries from every
// frontier piece, in this exact order.
var commands = []controller.Command{
	controller.MoveHorizontalCommand(1),
	controller.MoveHorizontalCommand(-1),
	controller.RotateCommand(piece.CW),
	controller.RotateCommand(piece.Rot180),
	controller.RotateCommand(piece.CCW),
	controller.DropCommand,
}

// Placement is one reachable resting piece, together with the command
// sequence(s) that reach it: a trivial base (rotate, optional slide, drop)
// optionally followed by a nontrivial extension up to nontrivialIndex.
type Placement struct {
	Piece              piece.Piece
	TrivialBase        []controller.Command
	NontrivialExtension []controller.Command
	NontrivialIndex    int // exclusive end index into NontrivialExtension
}

// PlacementList is the complete result of a move-generation run: every
// individually reachable resting piece, plus the raw trivial and
// nontrivial command lists used to build them.
type PlacementList struct {
	Placements  []Placement
	Trivials    [][]controller.Command
	Nontrivials [][]controller.Command
}

// Generate enumerates every reachable placement for active on b, starting
// from active's current position. The board is never mutated.
func Generate(b *board.Board, active piece.Piece) PlacementList {
	seen := make(map[piece.Key]struct{})
	trivials, trivialPieces := trivial(b, active, seen)
	nontrivials := nontrivial(b, trivialPieces, seen)
	return buildPlacements(b, active, trivials, nontrivials)
}

// trivial performs the per-orientation rotate/slide/drop sweep. For each of
// the four orientations (a single forced sweep for O, which has no distinct
// orientations board-wise) it hard-drops straight down, then repeatedly
// slides one column right and hard-drops again until blocked, then resets
// and repeats sliding left. The rotation goes through the same kick
// resolution the recorded Rotate command replays with; orientation 0 is
// reached with a Null command instead of a rotation.
func trivial(b *board.Board, active piece.Piece, seen map[piece.Key]struct{}) ([][]controller.Command, []piece.Piece) {
	var out [][]controller.Command
	var outPieces []piece.Piece

	for rotation := 0; rotation < piece.NumOrientations; rotation++ {
		dir := piece.Direction(rotation)
		rot := controller.RotateCommand(dir)
		if rotation == 0 {
			rot = controller.Command{Kind: controller.Null}
		}
		rotated, ok := controller.New(b, active).Apply(rot)
		if !ok {
			rotated = active
		}

		addDroppedPiece(b, rotated, seen, &outPieces)
		out = append(out, []controller.Command{rot, controller.DropCommand})

		rep := 1
		cur := rotated
		for {
			moved, ok := cur.Move(0, 1)
			if !ok || b.CollidesWithPiece(moved) {
				break
			}
			cur = moved
			addDroppedPiece(b, cur, seen, &outPieces)
			out = append(out, []controller.Command{rot, controller.MoveHorizontalCommand(rep), controller.DropCommand})
			rep++
		}

		rep = 1
		cur = rotated
		for {
			moved, ok := cur.Move(0, -1)
			if !ok || b.CollidesWithPiece(moved) {
				break
			}
			cur = moved
			addDroppedPiece(b, cur, seen, &outPieces)
			out = append(out, []controller.Command{rot, controller.MoveHorizontalCommand(-rep), controller.DropCommand})
			rep++
		}

		if active.Kind == piece.O {
			break
		}
	}
	return out, outPieces
}

// addDroppedPiece hard-drops p and records the resting piece in seen and
// pieces if it has not been recorded already.
func addDroppedPiece(b *board.Board, p piece.Piece, seen map[piece.Key]struct{}, pieces *[]piece.Piece) {
	down := b.PieceMaxDown(p)
	dropped, ok := p.Move(down, 0)
	if !ok {
		dropped = p
	}
	key := dropped.Key()
	if _, ok := seen[key]; ok {
		return
	}
	seen[key] = struct{}{}
	*pieces = append(*pieces, dropped)
}

// nontrivial runs the DFS extension from every trivial resting piece.
func nontrivial(b *board.Board, pieces []piece.Piece, seen map[piece.Key]struct{}) [][]controller.Command {
	out := make([][]controller.Command, 0, len(pieces))
	for _, p := range pieces {
		out = append(out, nontrivialFrom(b, p, seen))
	}
	return out
}

// nontrivialFrom runs a DFS from a single trivial resting piece p, trying
// the fixed command set at every frontier piece and recording a path of
// commands (with runs of undo collapsed into a single Backtrack token) for
// every newly discovered piece.
func nontrivialFrom(b *board.Board, p piece.Piece, seen map[piece.Key]struct{}) []controller.Command {
	var out []controller.Command

	dfsStack := []piece.Piece{p}
	outStack := []controller.Command{{Kind: controller.Null}}

	for len(dfsStack) > 0 {
		backtrackCounter := 0
		for len(outStack) > 0 && outStack[len(outStack)-1].Kind == controller.Backtrack {
			backtrackCounter += outStack[len(outStack)-1].Magnitude
			outStack = outStack[:len(outStack)-1]
		}
		if backtrackCounter != 0 {
			out = append(out, controller.BacktrackCommand(backtrackCounter))
		}

		cmd := outStack[len(outStack)-1]
		outStack = outStack[:len(outStack)-1]
		out = append(out, cmd)

		cur := dfsStack[len(dfsStack)-1]
		dfsStack = dfsStack[:len(dfsStack)-1]
		outStack = append(outStack, controller.BacktrackCommand(1))

		ctrl := controller.New(b, cur)
		for _, c := range commands {
			next, ok := ctrl.Apply(c)
			if !ok {
				continue
			}
			key := next.Key()
			if _, seenBefore := seen[key]; seenBefore {
				continue
			}
			seen[key] = struct{}{}
			dfsStack = append(dfsStack, next)
			outStack = append(outStack, c)
		}
	}
	return out
}

// buildPlacements replays every (trivial, nontrivial) command pair from
// the starting piece, recording the resulting piece as its own Placement
// at every nontrivial prefix that ends in a successful non-Backtrack
// command and leaves the piece settled.
func buildPlacements(b *board.Board, start piece.Piece, trivials, nontrivials [][]controller.Command) PlacementList {
	list := PlacementList{Trivials: trivials, Nontrivials: nontrivials}

	n := len(trivials)
	if len(nontrivials) < n {
		n = len(nontrivials)
	}
	for i := 0; i < n; i++ {
		trivial := trivials[i]
		nontrivial := nontrivials[i]

		cur := start
		for _, c := range trivial {
			next, ok := controller.New(b, cur).Apply(c)
			if ok {
				cur = next
			}
		}

		// Backtrack commands in nontrivial refer back into the pieces
		// this very replay pushes, so it needs one stateful Controller
		// across the whole nontrivial sequence rather than a fresh one
		// per command.
		ctrl := controller.New(b, cur)
		for idx, cmd := range nontrivial {
			// A Backtrack only returns to a piece an earlier prefix
			// already reached, so it never yields a new placement.
			if !ctrl.ApplyMut(cmd) || cmd.Kind == controller.Backtrack {
				continue
			}
			// The DFS that produced nontrivial visits (and records a
			// replay step for) every reachable piece position,
			// including plenty that are mid-air — that breadth is
			// what lets it find tucks and spins at all. Only the
			// positions that are actually settled belong in the
			// emitted placement list.
			if !b.PieceCanSet(ctrl.Current()) {
				continue
			}
			list.Placements = append(list.Placements, Placement{
				Piece:               ctrl.Current(),
				TrivialBase:         trivial,
				NontrivialExtension: nontrivial,
				NontrivialIndex:     idx + 1,
			})
		}
	}
	return list
}

// Contains reports whether any placement in the list rests exactly at p.
func (l PlacementList) Contains(p piece.Piece) bool {
	for _, placement := range l.Placements {
		if placement.Piece.Equal(p) {
			return true
		}
	}
	return false
}
