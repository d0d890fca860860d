// cubesolver runs a parallel IDA* Rubik's Cube solver as an HTTP service,
// with CLI subcommands for one-off scrambles, solves, benchmarks, and a
// live dashboard.
package main

import (
	"github.com/nkasten/cubesolver/internal/cli"
)

func main() {
	cli.Execute()
}
