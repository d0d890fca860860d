package httpapi

import (
	"context"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nkasten/cubesolver"
	"github.com/nkasten/cubesolver/internal/solve"
)

func respondError(c *gin.Context, status int, err error) {
	c.JSON(status, errorResponse{Error: err.Error()})
}

func (s *Server) handleStatus(c *gin.Context) {
	s.mu.RLock()
	solver := s.solver
	s.mu.RUnlock()
	c.JSON(http.StatusOK, statusDTO{Status: "ok", Solver: solver})
}

func (s *Server) handleGetCube(c *gin.Context) {
	s.mu.RLock()
	dto := toCubeDTO(s.cube)
	s.mu.RUnlock()
	c.JSON(http.StatusOK, dto)
}

func (s *Server) handleListSolvers(c *gin.Context) {
	s.mu.RLock()
	current := s.solver
	s.mu.RUnlock()
	c.JSON(http.StatusOK, solversDTO{Solvers: s.reg.IDs(), Current: current})
}

func (s *Server) handleSelectSolver(c *gin.Context) {
	var req selectSolverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	if _, err := s.reg.Get(req.Solver); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	s.solver = req.Solver
	s.mu.Unlock()

	c.JSON(http.StatusOK, statusDTO{Status: "ok", Solver: req.Solver})
}

func (s *Server) handleReset(c *gin.Context) {
	s.mu.Lock()
	s.cube = cube.NewSolvedCube()
	dto := toCubeDTO(s.cube)
	s.mu.Unlock()
	c.JSON(http.StatusOK, dto)
}

func (s *Server) handleScramble(c *gin.Context) {
	var req scrambleRequest
	_ = c.ShouldBindJSON(&req)
	n := req.Moves
	if n <= 0 {
		n = 20
	}

	s.mu.Lock()
	moves := s.cube.Scramble(n, rand.New(rand.NewSource(time.Now().UnixNano())))
	dto := toCubeDTO(s.cube)
	s.mu.Unlock()

	c.JSON(http.StatusOK, scrambleResponse{Moves: cube.FormatMoves(moves), Cube: dto})
}

func (s *Server) handleMove(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	m, err := cube.ParseMove(req.Move)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	err = s.cube.Apply(m)
	dto := toCubeDTO(s.cube)
	s.mu.Unlock()

	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

func (s *Server) handleSetState(c *gin.Context) {
	var req stateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	parsed, err := cube.Deserialize(req.State)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	s.cube = parsed
	dto := toCubeDTO(s.cube)
	s.mu.Unlock()

	c.JSON(http.StatusOK, dto)
}

func (s *Server) handleSolveAll(c *gin.Context) {
	var req solveRequest
	_ = c.ShouldBindJSON(&req)

	opts := solve.Options{MaxDepth: req.MaxDepth}
	if req.BudgetMs > 0 {
		opts.Budget = time.Duration(req.BudgetMs) * time.Millisecond
	}

	s.mu.RLock()
	snapshot := s.cube.Clone()
	s.mu.RUnlock()

	results := solve.RunAll(context.Background(), s.reg, snapshot, opts)

	resp := solveResponse{Results: make([]resultDTO, len(results))}
	for i, r := range results {
		resp.Results[i] = toResultDTO(r)
	}

	if req.Persist && s.runs != nil {
		runID, err := s.runs.Create(opts.MaxDepth, snapshot.Serialize(), results)
		if err != nil {
			s.log.WithError(err).Warn("failed to persist solve run")
		} else {
			resp.RunID = runID
		}
	}

	c.JSON(http.StatusOK, resp)
}
