package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/nkasten/cubesolver"
)

var scrambleMoves int

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long:  `Generate a random scramble and print the moves and the resulting cube serialization.`,
	RunE:  runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVar(&scrambleMoves, "moves", 20, "number of scramble moves to apply")
}

func runScramble(cmd *cobra.Command, args []string) error {
	c := cube.NewSolvedCube()
	moves := c.Scramble(scrambleMoves, rand.New(rand.NewSource(time.Now().UnixNano())))

	fmt.Printf("Moves: %s\n", cube.FormatMoves(moves))
	fmt.Printf("State: %s\n", c.Serialize())
	return nil
}
