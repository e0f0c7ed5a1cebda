// Package kicks holds the wall-kick offset tables and the dispatcher that
// picks the right table for a given piece kind, looked up as ordered
// candidate lists the same way the rest of this module treats any other
// precomputed table: flat package-level data, no runtime construction.
package kicks

import "github.com/tetris-engine/core/internal/piece"

// Offset is a candidate kick translation, tried in order until one does
// not collide.
type Offset struct {
	DRow, DCol int
}

// GetKicks returns the ordered candidate kick offsets for rotating a
// piece of the given kind, currently in orientation `from`, by dir.
//
// I pieces use a five-candidate table for +-90 rotations and a distinct
// two-candidate table for 180; O pieces always kick by exactly one
// forced translation; every other kind uses a five-candidate table for
// +-90 and a six-candidate table for 180.
func GetKicks(kind piece.Kind, from piece.Orientation, dir piece.Direction) []Offset {
	d := int(from)
	switch kind {
	case piece.I:
		if dir == piece.Rot180 {
			return fiveOneEighty[d][:]
		}
		return five[d][sideIndex(dir)][:]
	case piece.O:
		return []Offset{oOffsets[d][dir-1]}
	default:
		if dir == piece.Rot180 {
			return threeOneEighty[d][:]
		}
		return three[d][sideIndex(dir)][:]
	}
}

// sideIndex maps CW->0, CCW->1; Rot180 must be handled by the caller
// before reaching here.
func sideIndex(dir piece.Direction) int {
	if dir == piece.CW {
		return 0
	}
	return 1
}
