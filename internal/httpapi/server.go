// Package httpapi exposes the cube and solver registry over HTTP. It holds
// the only genuinely shared mutable state in the repository: the search
// engine itself always works on per-worker clones (spec.md's
// shared-resource policy), but the facade's cube is one value every
// request reads or mutates, guarded by a RWMutex.
package httpapi

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nkasten/cubesolver"
	"github.com/nkasten/cubesolver/internal/solve"
	"github.com/nkasten/cubesolver/internal/storage"
)

// Server wires the solver registry and a shared cube up to a gin router.
type Server struct {
	mu     sync.RWMutex
	cube   *cube.Cube
	solver string
	reg    *solve.Registry
	runs   *storage.RunRepository
	log    *logrus.Logger
	engine *gin.Engine
}

// Option configures a Server at construction time.
type Option func(*Server)

// WithStorage attaches a run repository. A nil repo (the zero value, never
// passed) is also accepted by leaving this option unused: persistence is
// optional everywhere in this package.
func WithStorage(runs *storage.RunRepository) Option {
	return func(s *Server) { s.runs = runs }
}

// WithLogger overrides the default logrus logger.
func WithLogger(log *logrus.Logger) Option {
	return func(s *Server) { s.log = log }
}

// NewServer builds a Server with a solved cube and the sequential backend
// selected, then registers every route.
func NewServer(reg *solve.Registry, opts ...Option) *Server {
	s := &Server{
		cube:   cube.NewSolvedCube(),
		solver: "sequential",
		reg:    reg,
		log:    logrus.New(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.engine = gin.New()
	s.engine.Use(gin.Recovery(), s.requestLogger(), corsMiddleware())
	s.registerRoutes()
	return s
}

// Engine exposes the underlying gin.Engine, e.g. for httptest.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// ListenAndServe starts the HTTP server on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.log.WithField("addr", addr).Info("cubesolver listening")
	return http.ListenAndServe(addr, s.engine)
}

func (s *Server) registerRoutes() {
	s.engine.GET("/status", s.handleStatus)
	s.engine.GET("/cube", s.handleGetCube)
	s.engine.GET("/solvers", s.handleListSolvers)
	s.engine.POST("/solver/select", s.handleSelectSolver)
	s.engine.POST("/cube/reset", s.handleReset)
	s.engine.POST("/cube/scramble", s.handleScramble)
	s.engine.POST("/cube/move", s.handleMove)
	s.engine.POST("/cube/state", s.handleSetState)
	s.engine.POST("/cube/solve", s.handleSolveAll)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		s.log.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
		}).Info("request handled")
	}
}
