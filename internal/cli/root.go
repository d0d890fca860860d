// Package cli implements the command-line interface for cubesolver.
package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nkasten/cubesolver/internal/httpapi"
	"github.com/nkasten/cubesolver/internal/solve"
	"github.com/nkasten/cubesolver/internal/storage"
)

const version = "0.1.0"

var noStorage bool

// rootCmd is the base command: `cubesolver [port]` starts the HTTP facade
// on the given port (default 8080). A non-numeric or out-of-range port
// exits 1; everything else that goes wrong starting the server also exits
// 1 through cobra's own error path.
var rootCmd = &cobra.Command{
	Use:     "cubesolver [port]",
	Short:   "Rubik's Cube IDA* solver service",
	Long:    `cubesolver runs an HTTP facade over a parallel IDA* cube solver with four backends: sequential, threaded, cluster, and hybrid.`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runServe,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noStorage, "no-storage", false, "disable SQLite persistence of comparison runs")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	port := 8080
	if len(args) == 1 {
		p, err := strconv.Atoi(args[0])
		if err != nil || p <= 0 || p > 65535 {
			fmt.Fprintf(os.Stderr, "invalid port: %s\n", args[0])
			os.Exit(1)
		}
		port = p
	}

	reg := solve.NewRegistry()
	var opts []httpapi.Option

	if !noStorage {
		db, err := storage.OpenDefault()
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: persistence disabled, failed to open database: %v\n", err)
		} else {
			opts = append(opts, httpapi.WithStorage(storage.NewRunRepository(db)))
		}
	}

	server := httpapi.NewServer(reg, opts...)
	return server.ListenAndServe(fmt.Sprintf(":%d", port))
}
