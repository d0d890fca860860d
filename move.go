package cube

import "strings"

// Face names one of the six faces in standard notation.
type Face string

const (
	FaceU Face = "U" // Up
	FaceD Face = "D" // Down
	FaceF Face = "F" // Front
	FaceB Face = "B" // Back
	FaceR Face = "R" // Right
	FaceL Face = "L" // Left
)

// Turn is the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise quarter turn
	CCW    Turn = -1 // Counter-clockwise quarter turn
	Double Turn = 2  // Half turn
)

// Move is a single face turn: one of the 18 tokens in the move alphabet.
type Move struct {
	Face Face
	Turn Turn
}

// Notation returns the standard notation string for the move, e.g. R, R', R2.
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return string(m.Face) + suffix
}

// String is an alias for Notation so a Move prints readably in logs and tests.
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the move that undoes m. R becomes R', R' becomes R, R2 is
// its own inverse.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	}
	return inv
}

// SameAxis reports whether two faces sit on opposite ends of the same axis
// (U/D, F/B, R/L). Used by the search engine's redundancy pruning to
// canonicalize consecutive opposite-face turns.
func SameAxis(a, b Face) bool {
	return OppositeFace(a) == b
}

// OppositeFace returns the face on the other end of f's axis.
func OppositeFace(f Face) Face {
	switch f {
	case FaceU:
		return FaceD
	case FaceD:
		return FaceU
	case FaceF:
		return FaceB
	case FaceB:
		return FaceF
	case FaceR:
		return FaceL
	case FaceL:
		return FaceR
	default:
		return f
	}
}

// ParseMove parses a single notation token (R, R', R2, and lowercase
// equivalents) into a Move. It returns ErrInvalidNotation for anything else
// rather than silently producing a zero-value Move.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	var face Face
	switch s[0] {
	case 'U', 'u':
		face = FaceU
	case 'D', 'd':
		face = FaceD
	case 'F', 'f':
		face = FaceF
	case 'B', 'b':
		face = FaceB
	case 'R', 'r':
		face = FaceR
	case 'L', 'l':
		face = FaceL
	default:
		return Move{}, ErrInvalidNotation
	}

	turn := CW
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			turn = CCW
		case "2":
			turn = Double
		default:
			return Move{}, ErrInvalidNotation
		}
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a space-separated sequence of notation tokens, e.g.
// "R U R' U'". Unlike the convenience parser it is modeled on, it stops and
// returns the error from the first invalid token instead of skipping it.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))
	for _, part := range parts {
		m, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatMoves formats a sequence of moves as a space-separated notation
// string, the inverse of ParseMoves.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}
	return strings.Join(parts, " ")
}
