package cube

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"
	"time"
)

// Color is a sticker color, one of the six named colors below. The zero
// value is White.
type Color byte

const (
	White  Color = iota // Up face when solved
	Yellow              // Down face when solved
	Green               // Front face when solved
	Blue                // Back face when solved
	Red                 // Right face when solved
	Orange              // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// faceOrder is the canonical face ordering used by Serialize, Deserialize,
// and String: U, D, F, B, L, R.
var faceOrder = [6]Face{FaceU, FaceD, FaceF, FaceB, FaceL, FaceR}

// faceIndex maps a Face to its slot in Cube.Facelets and in faceOrder.
func faceIndex(f Face) (int, bool) {
	switch f {
	case FaceU:
		return 0, true
	case FaceD:
		return 1, true
	case FaceF:
		return 2, true
	case FaceB:
		return 3, true
	case FaceL:
		return 4, true
	case FaceR:
		return 5, true
	default:
		return 0, false
	}
}

func faceToSolvedColor(f Face) Color {
	switch f {
	case FaceU:
		return White
	case FaceD:
		return Yellow
	case FaceF:
		return Green
	case FaceB:
		return Blue
	case FaceR:
		return Red
	case FaceL:
		return Orange
	default:
		return White
	}
}

func colorToLetter(c Color) byte {
	return c.String()[0]
}

func letterToColor(b byte) (Color, bool) {
	switch b {
	case 'W':
		return White, true
	case 'Y':
		return Yellow, true
	case 'G':
		return Green, true
	case 'B':
		return Blue, true
	case 'R':
		return Red, true
	case 'O':
		return Orange, true
	default:
		return 0, false
	}
}

// Cube is a 3x3x3 twisty cube. Each face has 9 stickers indexed row-major:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// The center (index 4) defines the face's color and never moves under any
// move in the alphabet. Cube carries no notion of solving technique; it is
// a pure data model, cheap to clone and cheap to compare.
type Cube struct {
	Facelets [6][9]Color
}

// NewSolvedCube returns a cube in the solved state: White on top, Green in
// front, the standard competition orientation.
func NewSolvedCube() *Cube {
	c := &Cube{}
	for _, f := range faceOrder {
		idx, _ := faceIndex(f)
		color := faceToSolvedColor(f)
		for i := 0; i < 9; i++ {
			c.Facelets[idx][i] = color
		}
	}
	return c
}

// Clone returns a deep copy of c.
func (c *Cube) Clone() *Cube {
	clone := &Cube{}
	clone.Facelets = c.Facelets
	return clone
}

// Equal reports whether c and other have identical stickers.
func (c *Cube) Equal(other *Cube) bool {
	if other == nil {
		return false
	}
	return c.Facelets == other.Facelets
}

// IsSolved reports whether every sticker on every face matches that face's
// center color.
func (c *Cube) IsSolved() bool {
	for i := 0; i < 6; i++ {
		center := c.Facelets[i][4]
		for j := 0; j < 9; j++ {
			if c.Facelets[i][j] != center {
				return false
			}
		}
	}
	return true
}

// Heuristic estimates the number of quarter turns remaining to solve c.
// It counts misplaced stickers (those that differ from their face's
// center) and divides by 8, floor division: a single quarter turn can
// disturb at most 20 stickers but resolves at most 8 of them towards a
// solved position, so misplaced/8 never overestimates the true distance
// and is admissible for IDA*.
func (c *Cube) Heuristic() int {
	misplaced := 0
	for i := 0; i < 6; i++ {
		center := c.Facelets[i][4]
		for j := 0; j < 9; j++ {
			if c.Facelets[i][j] != center {
				misplaced++
			}
		}
	}
	return misplaced / 8
}

// Apply turns one face of c in place. It returns ErrInvalidMove for any
// Face/Turn pair outside the 18-token alphabet; Apply is total over that
// alphabet and never panics on a value it produced or ParseMove returned.
func (c *Cube) Apply(m Move) error {
	idx, ok := faceIndex(m.Face)
	if !ok {
		return ErrInvalidMove
	}
	switch m.Turn {
	case CW:
		c.turnCW(idx)
	case CCW:
		c.turnCCW(idx)
	case Double:
		c.turnCW(idx)
		c.turnCW(idx)
	default:
		return ErrInvalidMove
	}
	return nil
}

// ApplyAll applies a sequence of moves in order, stopping at the first
// invalid one. The cube is left mutated up to (but not including) the
// move that failed.
func (c *Cube) ApplyAll(moves []Move) error {
	for _, m := range moves {
		if err := c.Apply(m); err != nil {
			return err
		}
	}
	return nil
}

// turnCW rotates the face at idx clockwise and cycles the affected edges.
func (c *Cube) turnCW(idx int) {
	c.rotateFaceCW(idx)
	c.cycleEdgesCW(idx)
}

// turnCCW rotates the face at idx counter-clockwise and cycles the
// affected edges. Implemented as three clockwise turns rather than a
// mirrored edge table, trading one extra pass of index shuffling for half
// the hand-verified tables to keep correct.
func (c *Cube) turnCCW(idx int) {
	c.turnCW(idx)
	c.turnCW(idx)
	c.turnCW(idx)
}

// rotateFaceCW permutes the 8 non-center stickers of face idx one quarter
// turn clockwise.
func (c *Cube) rotateFaceCW(idx int) {
	f := &c.Facelets[idx]
	t := f[0]
	f[0], f[6], f[8], f[2] = f[6], f[8], f[2], t
	t = f[1]
	f[1], f[3], f[7], f[5] = f[3], f[7], f[5], t
}

// cycleEdgesCW cycles the rows/columns of the four adjacent faces that a
// clockwise turn of idx carries around. The index tables below are the
// validated geometry of the cube: which 3 stickers on each neighboring
// face move into which, for each of the six axes.
func (c *Cube) cycleEdgesCW(idx int) {
	uI, _ := faceIndex(FaceU)
	dI, _ := faceIndex(FaceD)
	fI, _ := faceIndex(FaceF)
	bI, _ := faceIndex(FaceB)
	rI, _ := faceIndex(FaceR)
	lI, _ := faceIndex(FaceL)

	switch faceOrder[idx] {
	case FaceU:
		c.cycle4(
			fI, 0, 1, 2,
			lI, 0, 1, 2,
			bI, 0, 1, 2,
			rI, 0, 1, 2,
		)
	case FaceD:
		c.cycle4(
			fI, 6, 7, 8,
			rI, 6, 7, 8,
			bI, 6, 7, 8,
			lI, 6, 7, 8,
		)
	case FaceF:
		c.cycle4Edge(
			uI, 6, 7, 8,
			rI, 0, 3, 6,
			dI, 2, 1, 0,
			lI, 8, 5, 2,
		)
	case FaceB:
		c.cycle4Edge(
			uI, 2, 1, 0,
			lI, 0, 3, 6,
			dI, 6, 7, 8,
			rI, 8, 5, 2,
		)
	case FaceR:
		c.cycle4Edge(
			uI, 2, 5, 8,
			bI, 6, 3, 0,
			dI, 2, 5, 8,
			fI, 2, 5, 8,
		)
	case FaceL:
		c.cycle4Edge(
			uI, 0, 3, 6,
			fI, 0, 3, 6,
			dI, 0, 3, 6,
			bI, 8, 5, 2,
		)
	}
}

// cycle4 cycles 4 groups of 3 same-index stickers (used by U and D, whose
// adjacent rows share column indices across faces): a <- d <- c <- b <- a.
func (c *Cube) cycle4(fa, a1, a2, a3, fb, b1, b2, b3, fc, c1, c2, c3, fd, d1, d2, d3 int) {
	ta, tb, tc := c.Facelets[fa][a1], c.Facelets[fa][a2], c.Facelets[fa][a3]

	c.Facelets[fa][a1], c.Facelets[fa][a2], c.Facelets[fa][a3] =
		c.Facelets[fd][d1], c.Facelets[fd][d2], c.Facelets[fd][d3]

	c.Facelets[fd][d1], c.Facelets[fd][d2], c.Facelets[fd][d3] =
		c.Facelets[fc][c1], c.Facelets[fc][c2], c.Facelets[fc][c3]

	c.Facelets[fc][c1], c.Facelets[fc][c2], c.Facelets[fc][c3] =
		c.Facelets[fb][b1], c.Facelets[fb][b2], c.Facelets[fb][b3]

	c.Facelets[fb][b1], c.Facelets[fb][b2], c.Facelets[fb][b3] = ta, tb, tc
}

// cycle4Edge cycles 4 groups of 3 stickers with independent per-face
// indices (used by F, B, R, L, whose adjacent edges run along different
// rows/columns/diagonals on each neighbor): 1 <- 4 <- 3 <- 2 <- 1.
func (c *Cube) cycle4Edge(f1, a1, a2, a3, f2, b1, b2, b3, f3, c1, c2, c3, f4, d1, d2, d3 int) {
	ta, tb, tc := c.Facelets[f1][a1], c.Facelets[f1][a2], c.Facelets[f1][a3]

	c.Facelets[f1][a1], c.Facelets[f1][a2], c.Facelets[f1][a3] =
		c.Facelets[f4][d1], c.Facelets[f4][d2], c.Facelets[f4][d3]

	c.Facelets[f4][d1], c.Facelets[f4][d2], c.Facelets[f4][d3] =
		c.Facelets[f3][c1], c.Facelets[f3][c2], c.Facelets[f3][c3]

	c.Facelets[f3][c1], c.Facelets[f3][c2], c.Facelets[f3][c3] =
		c.Facelets[f2][b1], c.Facelets[f2][b2], c.Facelets[f2][b3]

	c.Facelets[f2][b1], c.Facelets[f2][b2], c.Facelets[f2][b3] = ta, tb, tc
}

// Scramble returns k moves drawn uniformly from the 18-token alphabet and
// applies them to c in place. If r is nil, a default source seeded from
// the current time is used; callers that need reproducibility should pass
// their own *rand.Rand.
func (c *Cube) Scramble(k int, r *rand.Rand) []Move {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	moves := make([]Move, k)
	for i := 0; i < k; i++ {
		m := AllTurns[r.Intn(len(AllTurns))]
		moves[i] = m
		_ = c.Apply(m) // m is drawn from AllTurns, always valid
	}
	return moves
}

// Serialize returns the 54-character state string: faces in U, D, F, B, L,
// R order, each face's 9 stickers row-major.
func (c *Cube) Serialize() string {
	var sb strings.Builder
	sb.Grow(54)
	for _, f := range faceOrder {
		idx, _ := faceIndex(f)
		for i := 0; i < 9; i++ {
			sb.WriteByte(colorToLetter(c.Facelets[idx][i]))
		}
	}
	return sb.String()
}

// Deserialize parses a 54-character state string in the format Serialize
// produces. It returns ErrInvalidStateLength if the input isn't exactly 54
// bytes, or ErrInvalidStateColor if any byte isn't one of W/Y/G/B/R/O.
func Deserialize(s string) (*Cube, error) {
	if len(s) != 54 {
		return nil, ErrInvalidStateLength
	}
	c := &Cube{}
	for pos, f := range faceOrder {
		idx, _ := faceIndex(f)
		for i := 0; i < 9; i++ {
			color, ok := letterToColor(s[pos*9+i])
			if !ok {
				return nil, ErrInvalidStateColor
			}
			c.Facelets[idx][i] = color
		}
	}
	return c, nil
}

// Hash returns an FNV-1a digest of Serialize(), for callers that want to
// de-duplicate cube states (a transposition table, a seen-set). The search
// engine in internal/ida does not use this itself: the state space here is
// coarse-grained enough that IDA*'s bound-driven pruning suffices without
// one.
func (c *Cube) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(c.Serialize()))
	return h.Sum64()
}

// String renders c as an unfolded cross, U face on top, D face on bottom,
// L/F/R/B side by side in the middle band.
func (c *Cube) String() string {
	var sb strings.Builder
	uI, _ := faceIndex(FaceU)
	dI, _ := faceIndex(FaceD)

	writeFace := func(idx, indent int) {
		for row := 0; row < 3; row++ {
			sb.WriteString(strings.Repeat(" ", indent))
			for col := 0; col < 3; col++ {
				fmt.Fprintf(&sb, "%s ", c.Facelets[idx][row*3+col])
			}
			sb.WriteByte('\n')
		}
	}

	writeFaceRow := func(row int, idx int) {
		for col := 0; col < 3; col++ {
			fmt.Fprintf(&sb, "%s ", c.Facelets[idx][row*3+col])
		}
	}

	writeFace(uI, 6)

	for row := 0; row < 3; row++ {
		for _, f := range []Face{FaceL, FaceF, FaceR, FaceB} {
			idx, _ := faceIndex(f)
			writeFaceRow(row, idx)
		}
		sb.WriteByte('\n')
	}

	writeFace(dI, 6)

	return sb.String()
}
