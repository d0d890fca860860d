package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nkasten/cubesolver"
	"github.com/nkasten/cubesolver/internal/solve"
	"github.com/nkasten/cubesolver/internal/tui"
)

var watchMaxDepth int

var watchCmd = &cobra.Command{
	Use:   "watch <state>",
	Short: "Watch every backend race live",
	Long:  `Launch the interactive dashboard, racing every registered backend against the same cube state.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().IntVar(&watchMaxDepth, "max-depth", 20, "maximum iterative-deepening bound")
}

func runWatch(cmd *cobra.Command, args []string) error {
	c, err := cube.Deserialize(args[0])
	if err != nil {
		return fmt.Errorf("invalid state: %w", err)
	}

	reg := solve.NewRegistry()
	opts := solve.Options{MaxDepth: watchMaxDepth}
	return tui.Run(reg, c, opts)
}
