package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nkasten/cubesolver"
	"github.com/nkasten/cubesolver/internal/solve"
)

var (
	solveBackend  string
	solveMaxDepth int
	solveBudgetMs int
)

var solveCmd = &cobra.Command{
	Use:   "solve <state>",
	Short: "Solve a cube state with one backend",
	Long:  `Run a single backend's IDA* search against a serialized cube state and print the solution notation.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVar(&solveBackend, "backend", "sequential", "backend id (sequential, openmp, mpi, hybrid)")
	solveCmd.Flags().IntVar(&solveMaxDepth, "max-depth", 20, "maximum iterative-deepening bound")
	solveCmd.Flags().IntVar(&solveBudgetMs, "budget-ms", 0, "wall-clock budget in milliseconds (0 = package default)")
}

func runSolve(cmd *cobra.Command, args []string) error {
	c, err := cube.Deserialize(args[0])
	if err != nil {
		return fmt.Errorf("invalid state: %w", err)
	}

	reg := solve.NewRegistry()
	backend, err := reg.Get(solveBackend)
	if err != nil {
		return fmt.Errorf("backend %q: %w", solveBackend, err)
	}

	opts := solve.Options{MaxDepth: solveMaxDepth}
	if solveBudgetMs > 0 {
		opts.Budget = time.Duration(solveBudgetMs) * time.Millisecond
	}

	result := backend.Solve(context.Background(), c, opts)
	printResult(result)
	return nil
}

func printResult(r solve.Result) {
	switch {
	case r.Success:
		fmt.Printf("%s: solved in %d moves, %d nodes, %s\n", r.Backend, len(r.Moves), r.Nodes, r.Elapsed.Round(time.Millisecond))
		fmt.Println(cube.FormatMoves(r.Moves))
	case r.TimedOut:
		fmt.Printf("%s: timed out after %d nodes, %s\n", r.Backend, r.Nodes, r.Elapsed.Round(time.Millisecond))
	default:
		fmt.Printf("%s: no solution within bound, %d nodes, %s\n", r.Backend, r.Nodes, r.Elapsed.Round(time.Millisecond))
	}
}
