package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/nkasten/cubesolver"
	"github.com/nkasten/cubesolver/internal/solve"
)

var benchMaxDepth int

var benchCmd = &cobra.Command{
	Use:   "bench <state>",
	Short: "Race every backend against the same cube state",
	Long:  `Run solve.RunAll against a serialized cube state and print a comparison table.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().IntVar(&benchMaxDepth, "max-depth", 20, "maximum iterative-deepening bound")
}

var benchHeaderStyle = lipgloss.NewStyle().Bold(true).Underline(true)

func runBench(cmd *cobra.Command, args []string) error {
	c, err := cube.Deserialize(args[0])
	if err != nil {
		return fmt.Errorf("invalid state: %w", err)
	}

	reg := solve.NewRegistry()
	opts := solve.Options{MaxDepth: benchMaxDepth}
	results := solve.RunAll(context.Background(), reg, c, opts)

	fmt.Printf("Comparing %d backends:\n", len(results))
	fmt.Println()
	fmt.Println(benchHeaderStyle.Render(fmt.Sprintf("%-10s  %-8s  %-10s  %-8s  %-10s  %s", "Backend", "Success", "Nodes", "Elapsed", "Moves", "Notation")))
	fmt.Println("----------  --------  ----------  --------  ----------  --------")

	for _, r := range results {
		success := "no"
		if r.Success {
			success = "yes"
		} else if r.TimedOut {
			success = "timeout"
		}
		notation := cube.FormatMoves(r.Moves)
		if len(notation) > 40 {
			notation = notation[:40] + "..."
		}
		fmt.Printf("%-10s  %-8s  %-10d  %-8s  %-10d  %s\n",
			r.Backend, success, r.Nodes, r.Elapsed.Round(time.Millisecond), len(r.Moves), notation)
	}

	return nil
}
