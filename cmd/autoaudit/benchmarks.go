package main

import (
	"context"
	"fmt"
	"io"

	"github.com/autoaudit/autoaudit/internal/audit"
	"github.com/autoaudit/autoaudit/internal/benchmark"
	"github.com/spf13/cobra"
)

var benchmarksCmd = &cobra.Command{
	Use:   "benchmarks",
	Short: "List the embedded benchmark catalog.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := benchmark.LoadCatalog()
		if err != nil {
			return err
		}
		return writeBenchmarkList(cmd.Context(), cmd.OutOrStdout(), catalog)
	},
}

func writeBenchmarkList(ctx context.Context, w io.Writer, catalog *benchmark.Catalog) error {
	defaultKey := catalog.Default().Key
	for _, def := range catalog.List() {
		doc, err := catalog.Source(def).Load(ctx)
		if err != nil {
			return fmt.Errorf("benchmark %s: %w", def.Key, err)
		}
		rows := audit.Normalize(doc)

		marker := ""
		if def.Key == defaultKey {
			marker = " " + uiMutedStyle.Render("(default)")
		}
		fmt.Fprintf(w, "%s %s%s\n", uiValueStyle.Render(def.Key), def.Name, marker)
		fmt.Fprintf(w, "  %s\n", uiMutedStyle.Render(fmt.Sprintf("%s %s, %d controls", def.Framework, def.Version, len(rows))))
	}
	return nil
}
