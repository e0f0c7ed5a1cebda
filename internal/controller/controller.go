// Package controller executes piece commands against a board and keeps an
// undo stack of the pieces each command produced, mirroring the way a
// real game loop applies input one command at a time and can roll it
// back on a bad guess.
package controller

import (
	"github.com/tetris-engine/core/internal/board"
	"github.com/tetris-engine/core/internal/kicks"
	"github.com/tetris-engine/core/internal/piece"
)

// CommandKind identifies the shape of a Command's payload.
type CommandKind uint8

const (
	Null CommandKind = iota
	MoveHorizontal
	MoveDrop
	Rotate
	Backtrack
)

// Command is one step a Controller can apply: a horizontal shift by
// Magnitude columns, a hard drop, a rotation by Dir, or a Backtrack that
// undoes the last Magnitude applied commands.
type Command struct {
	Kind      CommandKind
	Magnitude int
	Dir       piece.Direction
}

// MoveHorizontalCommand builds a MoveHorizontal command shifting n
// columns; negative n moves left.
func MoveHorizontalCommand(n int) Command { return Command{Kind: MoveHorizontal, Magnitude: n} }

// RotateCommand builds a Rotate command in the given direction.
func RotateCommand(dir piece.Direction) Command { return Command{Kind: Rotate, Dir: dir} }

// BacktrackCommand builds a Backtrack command undoing the last n
// applied commands.
func BacktrackCommand(n int) Command { return Command{Kind: Backtrack, Magnitude: n} }

// DropCommand is the single hard-drop command value.
var DropCommand = Command{Kind: MoveDrop}

// CanMovePiece reports whether p can shift by (dRow, dCol) on b without
// colliding or leaving bounds.
func CanMovePiece(b *board.Board, p piece.Piece, dRow, dCol int) bool {
	if !p.CanMove(dRow, dCol) {
		return false
	}
	moved, ok := p.Move(dRow, dCol)
	if !ok {
		return false
	}
	return !b.CollidesWithPiece(moved)
}

// CanRotatePiece reports whether p can rotate by dir on b with no kick,
// no collision, and no out-of-bounds cell.
func CanRotatePiece(b *board.Board, p piece.Piece, dir piece.Direction) bool {
	if !p.CanRotate(dir) {
		return false
	}
	rotated, ok := p.Rotate(dir)
	if !ok {
		return false
	}
	return !b.CollidesWithPiece(rotated)
}

// CanRotateKickPiece reports whether p can rotate by dir, translated by
// the given kick offset, without colliding or leaving bounds.
func CanRotateKickPiece(b *board.Board, p piece.Piece, dir piece.Direction, dRow, dCol int) bool {
	if !p.CanRotateKick(dir, dRow, dCol) {
		return false
	}
	kicked, ok := p.RotateWithKick(dir, dRow, dCol)
	if !ok {
		return false
	}
	return !b.CollidesWithPiece(kicked)
}

// tryRotate attempts every kick candidate for (p.Kind, p.Orientation,
// dir) in order and returns the first that lands legally, matching the
// guideline SRS kick-resolution order.
func tryRotate(b *board.Board, p piece.Piece, dir piece.Direction) (piece.Piece, bool) {
	for _, k := range kicks.GetKicks(p.Kind, p.Orientation, dir) {
		if CanRotateKickPiece(b, p, dir, k.DRow, k.DCol) {
			kicked, _ := p.RotateWithKick(dir, k.DRow, k.DCol)
			return kicked, true
		}
	}
	return piece.Piece{}, false
}

// Controller executes a sequence of Commands against a board, keeping
// every intermediate piece on a stack so Backtrack can roll back to any
// earlier point. The board a Controller was built with is never
// mutated by Apply/ApplyMut — only the active piece moves.
type Controller struct {
	board    *board.Board
	pieces   []piece.Piece
	commands []Command
}

// New creates a Controller over b (not copied; the caller owns its
// lifetime) whose stack starts with start as the only entry.
func New(b *board.Board, start piece.Piece) *Controller {
	return &Controller{board: b, pieces: []piece.Piece{start}}
}

// Current returns the piece at the top of the stack.
func (c *Controller) Current() piece.Piece {
	return c.pieces[len(c.pieces)-1]
}

// Size returns the number of commands applied (equivalently, one less
// than the number of pieces on the stack).
func (c *Controller) Size() int {
	return len(c.commands)
}

// IsEmpty reports whether no commands have been applied yet.
func (c *Controller) IsEmpty() bool {
	return len(c.commands) == 0
}

// Apply computes the result of applying cmd to the current piece
// without mutating the Controller's stack. It returns the resulting
// piece and whether the command succeeded; a failed command (other
// than Backtrack on an empty stack, which panics) is a silent no-op
// reported via ok=false.
func (c *Controller) Apply(cmd Command) (piece.Piece, bool) {
	cur := c.Current()
	switch cmd.Kind {
	case Null:
		return cur, true
	case MoveHorizontal:
		if !CanMovePiece(c.board, cur, 0, cmd.Magnitude) {
			return cur, false
		}
		moved, _ := cur.Move(0, cmd.Magnitude)
		return moved, true
	case MoveDrop:
		down := c.board.PieceMaxDown(cur)
		if down == 0 {
			return cur, false
		}
		dropped, ok := cur.Move(down, 0)
		if !ok {
			return cur, false
		}
		return dropped, true
	case Rotate:
		if rotated, ok := tryRotate(c.board, cur, cmd.Dir); ok {
			return rotated, true
		}
		return cur, false
	case Backtrack:
		if c.IsEmpty() && cmd.Magnitude > 0 {
			panic("controller: backtrack on empty command stack")
		}
		idx := len(c.pieces) - 1 - cmd.Magnitude
		if idx < 0 {
			panic("controller: backtrack count exceeds stack size")
		}
		return c.pieces[idx], true
	default:
		return cur, false
	}
}

// ApplyMut applies cmd and, on success, either pushes the resulting piece
// and records cmd in the command history (for ordinary commands) or
// truncates both stacks by cmd.Magnitude (for Backtrack, which is not
// itself recorded). Failed commands leave the Controller unchanged.
func (c *Controller) ApplyMut(cmd Command) bool {
	result, ok := c.Apply(cmd)
	if !ok {
		return false
	}
	switch cmd.Kind {
	case Backtrack:
		newLen := len(c.pieces) - cmd.Magnitude
		c.pieces = c.pieces[:newLen]
		newCmdLen := len(c.commands) - cmd.Magnitude
		c.commands = c.commands[:newCmdLen]
	default:
		c.pieces = append(c.pieces, result)
		c.commands = append(c.commands, cmd)
	}
	return true
}

// Undo pops the most recently applied command. It panics if the stack
// is already empty: undoing nothing is a programmer error, not a
// recoverable failure.
func (c *Controller) Undo() {
	if c.IsEmpty() {
		panic("controller: undo on empty command stack")
	}
	c.pieces = c.pieces[:len(c.pieces)-1]
	c.commands = c.commands[:len(c.commands)-1]
}

// Reset truncates the stack back to just the original starting piece.
func (c *Controller) Reset() {
	c.pieces = c.pieces[:1]
	c.commands = c.commands[:0]
}

// Commands returns the sequence of commands applied so far, in order.
func (c *Controller) Commands() []Command {
	return c.commands
}
