// Package cli implements the command-line interface for sorteval.
package cli

import (
	"io"
	"os"

	"github.com/eunmann/sort-eval/pkg/config"
	"github.com/eunmann/sort-eval/pkg/logging"
	"github.com/spf13/cobra"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	debug      bool
	human      bool
}

// Run executes the CLI with the given arguments.
func Run(args []string) error {
	return execute(args, os.Stdout, os.Stderr)
}

func execute(args []string, stdout, stderr io.Writer) error {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.Execute()
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "sorteval",
		Short: "Compare sorting algorithms by run time and memory",
		Long: `sorteval measures InsertionSort, SelectionSort, BubbleSort, MergeSort and
QuickSort on synthetic and real-world integer datasets, against input size
and degree of sortedness (inversion count).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (YAML or JSON)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&opts.human, "human", false, "human-friendly console logs")

	root.AddCommand(
		newRunCmd(opts),
		newScenariosCmd(opts),
		newInversionsCmd(opts),
		newSortCmd(opts),
	)
	return root
}

// loadConfig reads the config and initialises logging from it.
func (o *globalOptions) loadConfig() (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return cfg, err
	}
	logging.Init(o.debug || cfg.Debug, o.human)
	return cfg, nil
}
