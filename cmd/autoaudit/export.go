package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/autoaudit/autoaudit/internal/audit"
	"github.com/autoaudit/autoaudit/internal/report"
	"github.com/spf13/cobra"
)

var (
	exportBenchmarkKey string
	exportStatus       string
	exportOut          string
	exportFormat       string
)

var exportCmd = &cobra.Command{
	Use:   "export [results.json]",
	Short: "Write the filtered results to a CSV or PDF report file.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd, args)
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportBenchmarkKey, "benchmark", "", "Embedded benchmark key used when no results file is given")
	exportCmd.Flags().StringVar(&exportStatus, "status", "", "Status filter: all, compliant, noncompliant or error")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file path (.csv or .pdf)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "Report format, csv or pdf (defaults to the --out extension)")
}

func runExport(cmd *cobra.Command, args []string) error {
	if strings.TrimSpace(exportOut) == "" {
		return errors.New("--out is required")
	}

	format := strings.ToLower(strings.TrimSpace(exportFormat))
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(exportOut)), ".")
	}
	if format != "csv" && format != "pdf" {
		return fmt.Errorf("unsupported report format %q, want csv or pdf", format)
	}

	rows, label, err := loadRowsForCommand(cmd.Context(), args, exportBenchmarkKey)
	if err != nil {
		return err
	}
	filter := audit.ParseFilter(exportStatus)
	visible := audit.Apply(rows, filter)

	f, err := os.Create(exportOut)
	if err != nil {
		return err
	}

	if format == "pdf" {
		err = report.WritePDF(f, visible, report.PDFOptions{
			Benchmark:   label,
			Filter:      filter,
			GeneratedAt: time.Now().UTC(),
		})
	} else {
		err = report.WriteCSV(f, visible)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d controls)\n", exportOut, len(visible))
	return nil
}
