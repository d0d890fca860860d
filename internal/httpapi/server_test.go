package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/nkasten/cubesolver"
	"github.com/nkasten/cubesolver/internal/solve"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(solve.NewRegistry())
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		r = bytes.NewReader(b)
	} else {
		r = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)
	return w
}

func TestHandleStatusDefaultsToSequential(t *testing.T) {
	s := newTestServer(t)
	w := doJSON(t, s, http.MethodGet, "/status", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var got statusDTO
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Solver != "sequential" {
		t.Errorf("solver = %q, want %q", got.Solver, "sequential")
	}
}

func TestHandleGetCubeStartsSolved(t *testing.T) {
	s := newTestServer(t)
	w := doJSON(t, s, http.MethodGet, "/cube", nil)
	var got cubeDTO
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.IsSolved {
		t.Error("fresh server's cube should start solved")
	}
}

func TestHandleListSolversIncludesSequential(t *testing.T) {
	s := newTestServer(t)
	w := doJSON(t, s, http.MethodGet, "/solvers", nil)
	var got solversDTO
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	found := false
	for _, id := range got.Solvers {
		if id == "sequential" {
			found = true
		}
	}
	if !found {
		t.Errorf("solvers = %v, want sequential present", got.Solvers)
	}
}

func TestHandleSelectSolverRejectsUnknownID(t *testing.T) {
	s := newTestServer(t)
	w := doJSON(t, s, http.MethodPost, "/solver/select", selectSolverRequest{Solver: "quantum"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandleSelectSolverAcceptsKnownID(t *testing.T) {
	s := newTestServer(t)
	w := doJSON(t, s, http.MethodPost, "/solver/select", selectSolverRequest{Solver: "openmp"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	status := doJSON(t, s, http.MethodGet, "/status", nil)
	var got statusDTO
	json.Unmarshal(status.Body.Bytes(), &got)
	if got.Solver != "openmp" {
		t.Errorf("solver = %q after select, want %q", got.Solver, "openmp")
	}
}

func TestHandleResetRestoresSolvedCube(t *testing.T) {
	s := newTestServer(t)
	doJSON(t, s, http.MethodPost, "/cube/scramble", scrambleRequest{Moves: 10})
	w := doJSON(t, s, http.MethodPost, "/cube/reset", nil)

	var got cubeDTO
	json.Unmarshal(w.Body.Bytes(), &got)
	if !got.IsSolved {
		t.Error("reset should restore the solved cube")
	}
}

func TestHandleScrambleMutatesCube(t *testing.T) {
	s := newTestServer(t)
	w := doJSON(t, s, http.MethodPost, "/cube/scramble", scrambleRequest{Moves: 15})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var got scrambleResponse
	json.Unmarshal(w.Body.Bytes(), &got)
	if got.Moves == "" {
		t.Error("scramble response should report the moves applied")
	}
}

func TestHandleMoveAppliesValidNotation(t *testing.T) {
	s := newTestServer(t)
	w := doJSON(t, s, http.MethodPost, "/cube/move", moveRequest{Move: "R"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var got cubeDTO
	json.Unmarshal(w.Body.Bytes(), &got)
	if got.IsSolved {
		t.Error("a single R move should leave the cube unsolved")
	}
}

func TestHandleMoveRejectsInvalidNotation(t *testing.T) {
	s := newTestServer(t)
	w := doJSON(t, s, http.MethodPost, "/cube/move", moveRequest{Move: "Q"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandleSetStateRejectsWrongLength(t *testing.T) {
	s := newTestServer(t)
	w := doJSON(t, s, http.MethodPost, "/cube/state", stateRequest{State: "short"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandleSetStateAcceptsValidSerialization(t *testing.T) {
	s := newTestServer(t)
	solved := cube.NewSolvedCube()
	solved.Apply(cube.R)

	w := doJSON(t, s, http.MethodPost, "/cube/state", stateRequest{State: solved.Serialize()})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var got cubeDTO
	json.Unmarshal(w.Body.Bytes(), &got)
	if got.IsSolved {
		t.Error("the posted state has one R turn applied and should not be solved")
	}
}

func TestHandleSolveAllSolvesASingleMoveScramble(t *testing.T) {
	s := newTestServer(t)
	doJSON(t, s, http.MethodPost, "/cube/move", moveRequest{Move: "R"})

	w := doJSON(t, s, http.MethodPost, "/cube/solve", solveRequest{MaxDepth: 6, BudgetMs: 20000})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var got solveResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got.Results) == 0 {
		t.Fatal("expected at least one backend result")
	}
	for _, r := range got.Results {
		if !r.Success && !r.TimedOut {
			t.Errorf("%s: expected success or timeout, got neither", r.Backend)
		}
	}
}

func TestCORSPreflightShortCircuits(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodOptions, "/cube", nil)
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("OPTIONS status = %d, want 200", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing permissive CORS header")
	}
}
