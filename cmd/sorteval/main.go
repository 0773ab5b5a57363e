// Command sorteval benchmarks sorting algorithms across datasets, sizes and
// degrees of sortedness.
package main

import (
	"fmt"
	"os"

	"github.com/eunmann/sort-eval/internal/cli"
)

func main() {
	if err := cli.Run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
