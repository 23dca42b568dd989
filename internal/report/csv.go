// Package report renders filtered audit results as downloadable artifacts.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/autoaudit/autoaudit/internal/audit"
)

// csvColumns is the exported column order. Violations are joined into a
// single cell so each control stays one row.
var csvColumns = []string{"id", "title", "service", "status", "violation_count", "violations", "error"}

// WriteCSV writes one row per control followed by a summary section.
func WriteCSV(w io.Writer, rows []audit.Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvColumns); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.ID,
			row.Title,
			row.Service,
			row.Status.String(),
			strconv.Itoa(row.ViolationCount),
			strings.Join(row.Violations, "; "),
			row.Error,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("csv: write row %s: %w", row.ID, err)
		}
	}

	writeCSVSummary(cw, audit.Summarize(rows))

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csv: flush: %w", err)
	}
	return nil
}

func writeCSVSummary(cw *csv.Writer, s audit.Summary) {
	_ = cw.Write([]string{})
	_ = cw.Write([]string{"# SUMMARY"})
	_ = cw.Write([]string{"Total Controls", strconv.Itoa(s.Total)})
	_ = cw.Write([]string{"Compliant", strconv.Itoa(s.Compliant)})
	_ = cw.Write([]string{"NonCompliant", strconv.Itoa(s.NonCompliant)})
	_ = cw.Write([]string{"Errored", strconv.Itoa(s.Errored)})
	_ = cw.Write([]string{"Unknown", strconv.Itoa(s.Unknown)})
	_ = cw.Write([]string{"Violations", strconv.Itoa(s.Violations)})
	_ = cw.Write([]string{"Compliance", fmt.Sprintf("%d%%", s.CompliancePercent())})
}
