package kicks

// three[from][0] is the five-candidate CW table, three[from][1] is CCW,
// for every kind except I and O.
var three = [4][2][5]Offset{
	0: {
		{{0, 0}, {0, -1}, {1, -1}, {-2, 0}, {-2, -1}},
		{{0, 0}, {0, 1}, {1, 1}, {-2, 0}, {-2, 1}},
	},
	1: {
		{{0, 0}, {0, 1}, {-1, 1}, {2, 0}, {2, 1}},
		{{0, 0}, {0, 1}, {-1, 1}, {2, 0}, {2, 1}},
	},
	2: {
		{{0, 0}, {0, 1}, {1, 1}, {-2, 0}, {-2, 1}},
		{{0, 0}, {0, -1}, {1, -1}, {-2, 0}, {-2, -1}},
	},
	3: {
		{{0, 0}, {0, -1}, {-1, -1}, {2, 0}, {2, -1}},
		{{0, 0}, {0, -1}, {-1, -1}, {2, 0}, {2, -1}},
	},
}

// threeOneEighty[from] is the six-candidate 180-degree table, for every
// kind except I and O.
var threeOneEighty = [4][6]Offset{
	{{0, 0}, {1, 0}, {1, 1}, {1, -1}, {0, 1}, {0, -1}},
	{{0, 0}, {0, 1}, {2, 1}, {1, 1}, {2, 0}, {-1, 0}},
	{{0, 0}, {-1, 0}, {-1, -1}, {-1, 1}, {0, -1}, {0, 1}},
	{{0, 0}, {0, -1}, {2, -1}, {1, -1}, {2, 0}, {-1, 0}},
}

// five[from][0] is the five-candidate CW table, five[from][1] is CCW,
// for the I piece.
var five = [4][2][5]Offset{
	0: {
		{{0, 1}, {0, 2}, {0, -1}, {-1, -1}, {2, 2}},
		{{-1, 0}, {-1, -1}, {-1, 2}, {-2, 2}, {2, -1}},
	},
	1: {
		{{-1, 0}, {-1, -1}, {-1, 2}, {1, -1}, {-2, 2}},
		{{0, -1}, {0, -2}, {0, 1}, {-2, -2}, {1, 1}},
	},
	2: {
		{{0, -1}, {0, 1}, {0, -2}, {1, 1}, {-2, -2}},
		{{1, 0}, {1, -2}, {1, 1}, {2, -2}, {-1, 1}},
	},
	3: {
		{{1, 0}, {1, 1}, {1, -2}, {-1, 1}, {2, -2}},
		{{0, 1}, {0, 2}, {0, -1}, {2, 2}, {-1, -1}},
	},
}

// fiveOneEighty[from] is the two-candidate 180-degree table, for the I
// piece.
var fiveOneEighty = [4][2]Offset{
	{{-1, 1}, {0, 1}},
	{{-1, -1}, {-1, 0}},
	{{1, -1}, {0, -1}},
	{{1, 1}, {1, 0}},
}

// oOffsets[from][dir-1] is the single forced translation for the O
// piece, indexed by (rotation amount - 1) since O never has more than
// one candidate.
var oOffsets = [4][3]Offset{
	{{1, 0}, {1, 1}, {0, 1}},
	{{0, 1}, {-1, 1}, {-1, 0}},
	{{-1, 0}, {-1, -1}, {0, -1}},
	{{0, -1}, {1, -1}, {1, 0}},
}
