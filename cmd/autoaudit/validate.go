package main

import (
	"fmt"

	"github.com/autoaudit/autoaudit/internal/audit"
	"github.com/autoaudit/autoaudit/internal/benchmark"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [results.json...]",
	Short: "Parse and sanity check result documents, or the embedded catalog.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd, args)
	},
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if len(args) == 0 {
		catalog, err := benchmark.LoadCatalog()
		if err != nil {
			return err
		}

		var controls int
		for _, def := range catalog.List() {
			doc, err := catalog.Source(def).Load(ctx)
			if err != nil {
				return fmt.Errorf("benchmark %s: %w", def.Key, err)
			}
			rows := audit.Normalize(doc)
			if err := checkRows(def.Key, rows); err != nil {
				return err
			}
			controls += len(rows)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "validated %d benchmarks (%d controls)\n", len(catalog.List()), controls)
		return nil
	}

	var controls int
	for _, path := range args {
		doc, err := audit.FileSource{Path: path}.Load(ctx)
		if err != nil {
			return err
		}
		rows := audit.Normalize(doc)
		if err := checkRows(path, rows); err != nil {
			return err
		}
		controls += len(rows)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "validated %d documents (%d controls)\n", len(args), controls)
	return nil
}

// checkRows enforces the invariants the dashboard relies on: every control
// has an id, ids are unique within a document, and a violation count never
// understates the listed violations.
func checkRows(label string, rows []audit.Row) error {
	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		if row.ID == "" {
			return fmt.Errorf("%s: control with empty id", label)
		}
		if seen[row.ID] {
			return fmt.Errorf("%s: duplicate control id %q", label, row.ID)
		}
		seen[row.ID] = true
		if row.ViolationCount < len(row.Violations) {
			return fmt.Errorf("%s: control %s counts %d violations but lists %d", label, row.ID, row.ViolationCount, len(row.Violations))
		}
	}
	return nil
}
