package cube

// Predefined moves for convenience, named the way notation reads them.
//
// Example:
//
//	c.ApplyAll([]Move{R, U, RPrime, UPrime})
var (
	U      = Move{Face: FaceU, Turn: CW}
	UPrime = Move{Face: FaceU, Turn: CCW}
	U2     = Move{Face: FaceU, Turn: Double}

	D      = Move{Face: FaceD, Turn: CW}
	DPrime = Move{Face: FaceD, Turn: CCW}
	D2     = Move{Face: FaceD, Turn: Double}

	F      = Move{Face: FaceF, Turn: CW}
	FPrime = Move{Face: FaceF, Turn: CCW}
	F2     = Move{Face: FaceF, Turn: Double}

	B      = Move{Face: FaceB, Turn: CW}
	BPrime = Move{Face: FaceB, Turn: CCW}
	B2     = Move{Face: FaceB, Turn: Double}

	R      = Move{Face: FaceR, Turn: CW}
	RPrime = Move{Face: FaceR, Turn: CCW}
	R2     = Move{Face: FaceR, Turn: Double}

	L      = Move{Face: FaceL, Turn: CW}
	LPrime = Move{Face: FaceL, Turn: CCW}
	L2     = Move{Face: FaceL, Turn: Double}
)

// QuarterTurns is the 12-move basic set used by the search engine:
// every face, clockwise and counter-clockwise, no half turns.
var QuarterTurns = []Move{R, RPrime, U, UPrime, F, FPrime, D, DPrime, L, LPrime, B, BPrime}

// AllTurns is the full 18-token alphabet: QuarterTurns plus the six half
// turns. Used by Scramble and by callers that want to move a cube through
// states a pure quarter-turn search would reach only after two plies.
var AllTurns = []Move{
	U, UPrime, U2,
	D, DPrime, D2,
	F, FPrime, F2,
	B, BPrime, B2,
	R, RPrime, R2,
	L, LPrime, L2,
}

// SexyMove is R U R' U', one of the most common algorithms and a cheap way
// to exercise six-fold periodicity in tests: applied six times it returns
// a cube to its starting state.
var SexyMove = []Move{R, U, RPrime, UPrime}
