package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/eunmann/sort-eval/pkg/dataset"
	"github.com/eunmann/sort-eval/pkg/logging"
	"github.com/eunmann/sort-eval/pkg/sortalgo"
	"github.com/eunmann/sort-eval/pkg/sortedness"
	"github.com/spf13/cobra"
)

// inputOptions select integers from arguments or a dataset file.
type inputOptions struct {
	file       string
	column     int
	columnName string
	header     bool
	limit      int
}

func (o *inputOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.file, "file", "", "read values from a CSV/Parquet file or s3:// URI")
	cmd.Flags().IntVar(&o.column, "column", 0, "zero-based column index in --file")
	cmd.Flags().StringVar(&o.columnName, "column-name", "", "parquet column name in --file")
	cmd.Flags().BoolVar(&o.header, "header", false, "skip the first CSV row of --file")
	cmd.Flags().IntVar(&o.limit, "limit", 0, "read at most this many values from --file")
}

func (o *inputOptions) values(ctx context.Context, args []string) ([]int, error) {
	if o.file != "" {
		if len(args) > 0 {
			return nil, errors.New("pass values either as arguments or with --file, not both")
		}
		return dataset.Load(ctx, dataset.Source{
			Path:       o.file,
			Column:     o.column,
			ColumnName: o.columnName,
			Header:     o.header,
			Limit:      o.limit,
		})
	}
	if len(args) == 0 {
		return nil, errors.New("no values given")
	}
	return parseArgs(args)
}

// parseArgs accepts values as separate arguments or comma-separated lists.
func parseArgs(args []string) ([]int, error) {
	var out []int
	for _, a := range args {
		for _, part := range strings.Split(a, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			v, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("invalid integer %q", part)
			}
			out = append(out, v)
		}
	}
	return out, nil
}

func newInversionsCmd(g *globalOptions) *cobra.Command {
	var (
		in    inputOptions
		naive bool
	)

	cmd := &cobra.Command{
		Use:   "inversions [values...]",
		Short: "Print the inversion count (degree of sortedness) of a sequence",
		Example: `  sorteval inversions 3 1 2
  sorteval inversions --file data/SalesRecordsData.csv --column 8 --header`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.Init(g.debug, g.human)
			values, err := in.values(cmd.Context(), args)
			if err != nil {
				return err
			}

			count := sortedness.Count(values)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "values:     %d\n", len(values))
			fmt.Fprintf(out, "inversions: %d\n", count)
			fmt.Fprintf(out, "maximum:    %d\n", sortedness.Max(len(values)))
			if naive {
				if n := sortedness.Naive(values); n != count {
					return fmt.Errorf("inversion count mismatch: merge=%d naive=%d", count, n)
				}
				fmt.Fprintln(out, "naive:      ok")
			}
			return nil
		},
	}

	in.register(cmd)
	cmd.Flags().BoolVar(&naive, "naive", false, "cross-check with the quadratic counter")
	return cmd
}

func newSortCmd(g *globalOptions) *cobra.Command {
	var (
		in        inputOptions
		algorithm string
	)

	cmd := &cobra.Command{
		Use:   "sort [values...]",
		Short: "Sort a sequence with one algorithm, or all of them",
		Example: `  sorteval sort 5 3 8 1 9 2
  sorteval sort --algorithm MergeSort 5,3,8,1,9,2
  sorteval sort --algorithm all 4 2 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.Init(g.debug, g.human)
			values, err := in.values(cmd.Context(), args)
			if err != nil {
				return err
			}

			var algs []sortalgo.Algorithm
			if strings.EqualFold(algorithm, "all") {
				algs = sortalgo.All()
			} else {
				a, err := sortalgo.ByName(algorithm)
				if err != nil {
					return fmt.Errorf("%w (known: %v)", err, sortalgo.Names())
				}
				algs = []sortalgo.Algorithm{a}
			}

			for _, a := range algs {
				work := append([]int(nil), values...)
				writeSorted(cmd.OutOrStdout(), a.Name(), a.Sort(work), len(algs) > 1)
			}
			return nil
		},
	}

	in.register(cmd)
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", string(sortalgo.Quick), "algorithm name, or \"all\"")
	return cmd
}

func writeSorted(w io.Writer, name sortalgo.Name, values []int, labelled bool) {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	if labelled {
		fmt.Fprintf(w, "%s: %s\n", name, strings.Join(parts, " "))
		return
	}
	fmt.Fprintln(w, strings.Join(parts, " "))
}
