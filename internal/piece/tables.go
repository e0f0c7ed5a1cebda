package piece

// offset is a single cell's position relative to a piece's anchor.
type offset struct {
	dRow, dCol int8
}

// rotations[kind][orientation] gives the four cell offsets for that
// (kind, orientation) pair. Indexed the same way for every kind so that
// AbsoluteCells needs no special-casing.
var rotations = [NumKinds][NumOrientations][cellCount]offset{
	Z: {
		{{1, -1}, {1, 0}, {0, 0}, {0, 1}},
		{{1, 1}, {0, 1}, {0, 0}, {-1, 0}},
		{{-1, 1}, {-1, 0}, {0, 0}, {0, -1}},
		{{-1, -1}, {0, -1}, {0, 0}, {1, 0}},
	},
	L: {
		{{1, 1}, {0, -1}, {0, 0}, {0, 1}},
		{{-1, 1}, {1, 0}, {0, 0}, {-1, 0}},
		{{-1, -1}, {0, 1}, {0, 0}, {0, -1}},
		{{1, -1}, {-1, 0}, {0, 0}, {1, 0}},
	},
	O: {
		{{1, 0}, {1, 1}, {0, 0}, {0, 1}},
		{{0, 1}, {-1, 1}, {0, 0}, {-1, 0}},
		{{-1, 0}, {-1, -1}, {0, 0}, {0, -1}},
		{{0, -1}, {1, -1}, {0, 0}, {1, 0}},
	},
	S: {
		{{1, 0}, {1, 1}, {0, -1}, {0, 0}},
		{{0, 1}, {-1, 1}, {1, 0}, {0, 0}},
		{{-1, 0}, {-1, -1}, {0, 1}, {0, 0}},
		{{0, -1}, {1, -1}, {-1, 0}, {0, 0}},
	},
	I: {
		{{0, -1}, {0, 0}, {0, 1}, {0, 2}},
		{{1, 0}, {0, 0}, {-1, 0}, {-2, 0}},
		{{0, 1}, {0, 0}, {0, -1}, {0, -2}},
		{{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
	},
	J: {
		{{1, -1}, {0, -1}, {0, 0}, {0, 1}},
		{{1, 1}, {1, 0}, {0, 0}, {-1, 0}},
		{{-1, 1}, {0, 1}, {0, 0}, {0, -1}},
		{{-1, -1}, {-1, 0}, {0, 0}, {1, 0}},
	},
	T: {
		{{1, 0}, {0, -1}, {0, 0}, {0, 1}},
		{{0, 1}, {1, 0}, {0, 0}, {-1, 0}},
		{{-1, 0}, {0, 1}, {0, 0}, {0, -1}},
		{{0, -1}, {-1, 0}, {0, 0}, {1, 0}},
	},
}
