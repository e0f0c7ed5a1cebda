package game

import "github.com/tetris-engine/core/internal/piece"

// uint128 is a 128-bit unsigned value big enough to hold eight 16-bit
// history records, split into high and low 64-bit halves since Go has
// no native 128-bit integer type.
type uint128 struct {
	hi, lo uint64
}

// shiftInLow16 shifts the whole 128-bit value left by 16 bits and ORs
// record into the new low 16 bits, discarding whatever was in the top
// 16 bits (the ninth-oldest record, once the ring is full).
func (u uint128) shiftInLow16(record uint16) uint128 {
	newHi := u.hi<<16 | u.lo>>48
	newLo := u.lo<<16 | uint64(record)
	return uint128{hi: newHi, lo: newLo}
}

// low16 returns the low 16 bits: the most recently pushed record.
func (u uint128) low16() uint16 {
	return uint16(u.lo & 0xFFFF)
}

// shiftRight16 shifts the whole value right by 16 bits, the inverse
// direction walk PastStates uses to retire records oldest-last.
func (u uint128) shiftRight16() uint128 {
	newLo := u.lo>>16 | (u.hi&0xFFFF)<<48
	newHi := u.hi >> 16
	return uint128{hi: newHi, lo: newLo}
}

// tSpin identifies the rotation-finish classification recorded per
// placement. Detection itself lives outside this module (an
// evaluator's concern); Game only ever writes tSpinNone. encode stores
// the classification in bits 6-7, but decode does not return it.
type tSpin uint8

const (
	tSpinNone tSpin = iota
	tSpinMini
	tSpinFull
)

// History record layout, low bit 0 first:
//
//	bits 0-2   kind + 1 (3 bits, 1-7; 0 never occurs, so an empty
//	           slot is always distinguishable from a placement)
//	bits 3-4   orientation (2 bits, 0-3)
//	bit  5     held flag
//	bits 6-7   t-spin classification (2 bits: none/mini/full)
//	bits 8-15  reserved, always zero
const (
	kindBits        = 3
	kindShift       = 0
	orientationBits = 2
	orientationShift = kindBits
	heldShift        = kindBits + orientationBits
	tSpinBits        = 2
	tSpinShift       = heldShift + 1
)

// encode packs p's kind and orientation, the held flag, and the t-spin
// classification into a single 16-bit record. Bits 8-15 are always
// zero.
func encode(p piece.Piece, held bool, spin tSpin) uint16 {
	var record uint16
	record |= uint16(p.Kind+1) << kindShift
	record |= uint16(p.Orientation) << orientationShift
	if held {
		record |= 1 << heldShift
	}
	record |= uint16(spin) << tSpinShift
	return record
}

// decode unpacks a history record back into the kind and orientation
// it recorded, along with whether the record is well-formed (reserved
// bits zero, kind in range). The held flag and t-spin bits are not
// returned. The record carries no position: at 16
// bits, kind/orientation/held/t-spin already use every bit the layout
// grants, so PastStates can tell WHAT was placed but not WHERE — the
// decoded piece is reported at its spawn anchor, and callers that need
// an exact board rewind must track absolute placement cells
// themselves rather than relying on history alone.
func decode(record uint16) (piece.Piece, bool) {
	kindField := record >> kindShift & ((1 << kindBits) - 1)
	orientation := piece.Orientation(record >> orientationShift & ((1 << orientationBits) - 1))
	reserved := record >> (tSpinShift + tSpinBits)
	if kindField == 0 || kindField > piece.NumKinds || reserved != 0 {
		return piece.Piece{}, false
	}
	kind := piece.Kind(kindField - 1)
	return piece.Piece{Kind: kind, Orientation: orientation, Row: piece.SpawnRow, Col: piece.SpawnCol}, true
}
