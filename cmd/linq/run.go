package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kbukum/golinq/linq"
	"github.com/kbukum/golinq/logger"
	"github.com/kbukum/golinq/plan"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Input  string
	Plan   string
	Pretty bool
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evaluate a plan over an input file",
		Long: `Evaluate a query plan over a list of elements and print the result as JSON.

Both files may be YAML or JSON. Use "-" as the input path to read stdin.

Example:
  linq run --input numbers.json --plan evens.yml
  echo '[3, 1, 2]' | linq run --input - --plan max.yml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Input, "input", "", "path to the input list, or - for stdin (required)")
	cmd.Flags().StringVar(&opts.Plan, "plan", "", "path to the plan (required)")
	cmd.Flags().BoolVar(&opts.Pretty, "pretty", false, "indent the JSON output")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("plan")

	return cmd
}

func runPlan(cmd *cobra.Command, opts *RunOptions) error {
	planData, err := os.ReadFile(opts.Plan)
	if err != nil {
		return fmt.Errorf("reading plan: %w", err)
	}
	p, err := plan.Parse(planData)
	if err != nil {
		return err
	}

	inputData, err := readInput(cmd, opts.Input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	items, err := plan.ParseInput(inputData)
	if err != nil {
		return err
	}

	res, err := plan.Run(p, items,
		linq.WithContext(cmd.Context()),
		linq.WithSequenceEqualMode(opts.mode),
		linq.WithLogger(opts.log.WithComponent("engine")),
	)
	if err != nil {
		return err
	}
	opts.log.Debug("plan evaluated", logger.Fields("kind", res.Kind, logger.FieldElements, len(items)))

	enc := json.NewEncoder(cmd.OutOrStdout())
	if opts.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(res)
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}
