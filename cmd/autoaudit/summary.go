package main

import (
	"context"

	"github.com/autoaudit/autoaudit/internal/audit"
	"github.com/autoaudit/autoaudit/internal/benchmark"
	"github.com/spf13/cobra"
)

var summaryBenchmarkKey string

var summaryCmd = &cobra.Command{
	Use:   "summary [results.json]",
	Short: "Print summary statistics for a result document.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, label, err := loadRowsForCommand(cmd.Context(), args, summaryBenchmarkKey)
		if err != nil {
			return err
		}
		writeSummary(cmd.OutOrStdout(), label, rows)
		return nil
	},
}

func init() {
	summaryCmd.Flags().StringVar(&summaryBenchmarkKey, "benchmark", "", "Embedded benchmark key used when no results file is given")
}

// loadRowsForCommand resolves the result document for a terminal command.
// An explicit file argument wins, then the named embedded benchmark, then
// the catalog default.
func loadRowsForCommand(ctx context.Context, args []string, benchmarkKey string) ([]audit.Row, string, error) {
	if len(args) == 1 {
		doc, err := audit.FileSource{Path: args[0]}.Load(ctx)
		if err != nil {
			return nil, "", err
		}
		return audit.Normalize(doc), args[0], nil
	}

	catalog, err := benchmark.LoadCatalog()
	if err != nil {
		return nil, "", err
	}
	def, _ := catalog.Get(benchmarkKey)
	doc, err := catalog.Source(def).Load(ctx)
	if err != nil {
		return nil, "", err
	}
	return audit.Normalize(doc), def.Name, nil
}
