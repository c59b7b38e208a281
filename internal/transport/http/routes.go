// Package http exposes the solver engine over HTTP: a supplemented feature
// beyond spec.md's CLI-only external interface (spec.md's Non-goals exclude
// proof-of-work/all-solutions/difficulty/N>5, not an HTTP front end).
// Grounded on the sudoku-api teacher's routes.go route-registration shape
// (gin.Engine + r.Group("/api")), generalized from the teacher's fixed
// 9x9/JSON-puzzle-bank surface to accept an arbitrary N and return either
// the solved board or a 422 on "no solution."
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"sudoku-api/internal/checker"
	"sudoku-api/internal/config"
	"sudoku-api/internal/solver"
)

// RegisterRoutes wires the health check and solve endpoint onto r.
func RegisterRoutes(r *gin.Engine, cfg *config.Config) {
	r.GET("/health", healthHandler)

	api := r.Group("/api")
	{
		api.POST("/solve", solveHandler(cfg))
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SolveRequest is the wire shape for POST /api/solve: N is the box side,
// Givens is the row-major flat grid (0 marks an empty cell), matching §6's
// in-file representation rather than inventing a separate JSON schema.
type SolveRequest struct {
	N      int   `json:"n" binding:"required"`
	Givens []int `json:"givens" binding:"required"`
}

// SolveResponse carries the solved grid, or Solved=false when no solution
// exists (P7).
type SolveResponse struct {
	Solved bool  `json:"solved"`
	N      int   `json:"n,omitempty"`
	Board  []int `json:"board,omitempty"`
}

func solveHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SolveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		board, err := solver.NewBoard(req.N, req.Givens)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		solved, ok := solver.Solve(c.Request.Context(), board, cfg.Workers)
		if !ok {
			c.JSON(http.StatusUnprocessableEntity, SolveResponse{Solved: false})
			return
		}

		if violations := checker.CheckSolution(solved, req.Givens); len(violations) > 0 {
			slog.Error("internal inconsistency", "violation", violations[0].String())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal solver inconsistency"})
			return
		}

		c.JSON(http.StatusOK, SolveResponse{
			Solved: true,
			N:      req.N,
			Board:  solved.Digits(),
		})
	}
}
