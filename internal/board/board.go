// Package board implements the bit-packed playing field: ten 64-bit
// columns, one bit per row, plus the piece-collision predicates and
// line-clear/line-insert bit arithmetic built on top of them.
package board

import (
	"math/bits"

	"github.com/tetris-engine/core/internal/piece"
)

// Width is the number of columns on the board.
const Width = piece.BoardWidth

// Height is the number of addressable rows. Only the bottom 20 are ever
// placed into during normal play; the rest exist so pieces spawned near
// the top never run out of headroom before a line clear brings the
// stack back down.
const Height = piece.BoardHeight

// Board is ten column bitboards. Row 0 is the floor; bit i of a column
// is set iff that column's cell in row i is occupied. A Board is a
// small value type, cheap to copy (as MoveGen and Lookahead both do
// heavily when cloning search state).
type Board struct {
	columns [Width]uint64
}

// Get reports whether (row, col) is occupied.
func (b *Board) Get(row, col int) bool {
	return b.columns[col]>>uint(row)&1 != 0
}

// Set occupies (row, col).
func (b *Board) Set(row, col int) {
	b.columns[col] |= 1 << uint(row)
}

// Remove clears (row, col).
func (b *Board) Remove(row, col int) {
	b.columns[col] &^= 1 << uint(row)
}

// SetRow fills the given row according to data, one bool per column.
func (b *Board) SetRow(row int, data [Width]bool) {
	for col, v := range data {
		if v {
			b.Set(row, col)
		} else {
			b.Remove(row, col)
		}
	}
}

// RemoveRow clears every cell in the given row.
func (b *Board) RemoveRow(row int) {
	var empty [Width]bool
	b.SetRow(row, empty)
}

// Height returns one past the row of the highest occupied cell in col,
// i.e. the index of the first empty row — 0 if the column is empty.
func (b *Board) Height(col int) int {
	return columnHeight(b.columns[col])
}

// Heights returns Height for every column.
func (b *Board) Heights() [Width]int {
	var out [Width]int
	for col := range b.columns {
		out[col] = b.Height(col)
	}
	return out
}

// HeightBelow returns Height for the portion of col strictly below row,
// ignoring anything at or above it.
func (b *Board) HeightBelow(col, row int) int {
	mask := ^(^uint64(0) << uint(row))
	return columnHeight(b.columns[col] & mask)
}

func columnHeight(col uint64) int {
	return 64 - bits.LeadingZeros64(col)
}

// SetPiece occupies every cell p covers. Cells that are out of bounds
// are silently skipped (p.AbsoluteCells reports ok=false and nothing is
// written), matching the rest of this module's bounded-arithmetic model.
func (b *Board) SetPiece(p piece.Piece) {
	cells, ok := p.AbsoluteCells()
	if !ok {
		return
	}
	for _, c := range cells {
		b.Set(c.Row, c.Col)
	}
}

// RemovePiece clears every cell p covers.
func (b *Board) RemovePiece(p piece.Piece) {
	cells, ok := p.AbsoluteCells()
	if !ok {
		return
	}
	for _, c := range cells {
		b.Remove(c.Row, c.Col)
	}
}

// CollidesWithPiece reports whether any cell p covers is already
// occupied. An out-of-bounds piece never collides (AbsoluteCells
// already rejects it at the Piece layer; callers are expected to check
// bounds separately via Piece.CanMove/CanRotate).
func (b *Board) CollidesWithPiece(p piece.Piece) bool {
	cells, ok := p.AbsoluteCells()
	if !ok {
		return false
	}
	for _, c := range cells {
		if b.Get(c.Row, c.Col) {
			return true
		}
	}
	return false
}

// PieceGrounded reports whether p rests on the floor or on an occupied
// cell directly beneath it.
func (b *Board) PieceGrounded(p piece.Piece) bool {
	cells, ok := p.AbsoluteCells()
	if !ok {
		return false
	}
	for _, c := range cells {
		if c.Row == 0 || b.Get(c.Row-1, c.Col) {
			return true
		}
	}
	return false
}

// PieceCanSet reports whether p can be locked in place: no collision,
// and resting on the floor or another piece.
func (b *Board) PieceCanSet(p piece.Piece) bool {
	return !b.CollidesWithPiece(p) && b.PieceGrounded(p)
}

// PieceMaxDown returns the largest number of rows (as a non-positive
// value) p can move straight down before its lowest cell in some column
// would land on an occupied cell or the floor.
func (b *Board) PieceMaxDown(p piece.Piece) int {
	cells, ok := p.AbsoluteCells()
	if !ok {
		return 0
	}
	min := 0
	for i, c := range cells {
		drop := c.Row - b.HeightBelow(c.Col, c.Row)
		if i == 0 || drop < min {
			min = drop
		}
	}
	return -min
}

// AllClear reports whether every column is empty.
func (b *Board) AllClear() bool {
	for _, c := range b.columns {
		if c != 0 {
			return false
		}
	}
	return true
}

// ClearLines removes every full row and shifts everything above each
// cleared row down to fill the gap, independently per column. It
// returns a bitmask of the rows that were cleared (bit i set iff row i
// was full), which InsertRows can later replay in reverse via
// InsertFullLine.
func (b *Board) ClearLines() uint64 {
	full := b.columns[0]
	for i := 1; i < Width; i++ {
		full &= b.columns[i]
	}
	for i := range b.columns {
		rows := full
		col := b.columns[i]
		for rows != 0 {
			r := uint(bits.Len64(rows) - 1)
			mask := (uint64(1) << r) - 1
			col = col&mask | col>>1&^mask
			rows &^= 1 << r
		}
		b.columns[i] = col
	}
	return full
}

// InsertRows is the inverse of ClearLines: given the mask it returned,
// reinsert a full row at each of those row indices, shifting everything
// at or above it up by one. Rows are reinserted from the lowest index
// up so each insertion sees the others' shifts correctly.
func (b *Board) InsertRows(rows uint64) {
	for rows != 0 {
		row := uint(bits.TrailingZeros64(rows))
		b.InsertFullLine(int(row))
		rows &^= 1 << row
	}
}

// InsertFullLine shifts every cell at or above row up by one, leaves
// everything below row untouched, and sets row itself to fully
// occupied. This is the exact inverse of the per-column shift ClearLines
// performs.
func (b *Board) InsertFullLine(row int) {
	below := (uint64(1) << uint(row)) - 1
	for i := range b.columns {
		col := b.columns[i]
		preserved := col & below
		col = (col &^ below) << 1
		col |= preserved
		col |= 1 << uint(row)
		b.columns[i] = col
	}
}
