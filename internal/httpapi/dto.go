package httpapi

import (
	"github.com/nkasten/cubesolver"
	"github.com/nkasten/cubesolver/internal/solve"
)

type cubeDTO struct {
	Faces    map[string][]string `json:"faces"`
	IsSolved bool                `json:"isSolved"`
}

// serializedFaceOrder mirrors Cube.Serialize's face ordering (U, D, F, B,
// L, R), each face contributing a 9-byte run of W/Y/G/B/R/O letters.
var serializedFaceOrder = []string{"U", "D", "F", "B", "L", "R"}

var letterToColorName = map[byte]string{
	'W': "white", 'Y': "yellow", 'G': "green", 'B': "blue", 'R': "red", 'O': "orange",
}

func toCubeDTO(c *cube.Cube) cubeDTO {
	state := c.Serialize()
	faces := make(map[string][]string, len(serializedFaceOrder))
	for pos, name := range serializedFaceOrder {
		stickers := make([]string, 9)
		for i := 0; i < 9; i++ {
			stickers[i] = letterToColorName[state[pos*9+i]]
		}
		faces[name] = stickers
	}
	return cubeDTO{Faces: faces, IsSolved: c.IsSolved()}
}

type statusDTO struct {
	Status string `json:"status"`
	Solver string `json:"solver"`
}

type solversDTO struct {
	Solvers []string `json:"solvers"`
	Current string   `json:"current"`
}

type selectSolverRequest struct {
	Solver string `json:"solver"`
}

type scrambleRequest struct {
	Moves int `json:"moves"`
}

type scrambleResponse struct {
	Moves string  `json:"moves"`
	Cube  cubeDTO `json:"cube"`
}

type moveRequest struct {
	Move string `json:"move"`
}

type stateRequest struct {
	State string `json:"state"`
}

type solveRequest struct {
	MaxDepth int  `json:"maxDepth"`
	BudgetMs int  `json:"budgetMs"`
	Persist  bool `json:"persist"`
}

type resultDTO struct {
	Backend   string `json:"backend"`
	Moves     string `json:"moves"`
	Success   bool   `json:"success"`
	TimedOut  bool   `json:"timeout"`
	Nodes     int64  `json:"nodes"`
	ElapsedMs int64  `json:"elapsedMs"`
}

func toResultDTO(r solve.Result) resultDTO {
	return resultDTO{
		Backend:   r.Backend,
		Moves:     cube.FormatMoves(r.Moves),
		Success:   r.Success,
		TimedOut:  r.TimedOut,
		Nodes:     r.Nodes,
		ElapsedMs: r.Elapsed.Milliseconds(),
	}
}

type solveResponse struct {
	RunID   string      `json:"runId,omitempty"`
	Results []resultDTO `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
}
