package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	gofpdf "github.com/go-pdf/fpdf"

	"github.com/autoaudit/autoaudit/internal/audit"
)

// PDFOptions carries the report header fields.
type PDFOptions struct {
	Benchmark   string
	Filter      audit.Filter
	GeneratedAt time.Time
}

var pdfStatusColors = map[audit.Status][]int{
	audit.StatusCompliant:    {22, 163, 74},
	audit.StatusNonCompliant: {220, 38, 38},
	audit.StatusError:        {217, 119, 6},
	audit.StatusUnknown:      {100, 116, 139},
}

// WritePDF renders the rows as a printable compliance report: a summary
// block, the results table, and a violation appendix for rows that carry
// violation details.
func WritePDF(w io.Writer, rows []audit.Row, opts PDFOptions) error {
	if opts.GeneratedAt.IsZero() {
		opts.GeneratedAt = time.Now()
	}
	if opts.Filter == "" {
		opts.Filter = audit.FilterAll
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("AutoAudit Compliance Report", false)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AddPage()

	addReportHeader(pdf, opts)
	addSummaryTable(pdf, audit.Summarize(rows))
	addResultsTable(pdf, rows)
	addViolationAppendix(pdf, rows)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("pdf: render report: %w", err)
	}
	return nil
}

func addReportHeader(pdf *gofpdf.Fpdf, opts PDFOptions) {
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(15, 23, 42)
	pdf.CellFormat(0, 10, "AutoAudit Compliance Report", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 116, 139)
	line := "Benchmark: " + opts.Benchmark
	if opts.Filter != audit.FilterAll {
		line += "  |  Filter: " + string(opts.Filter)
	}
	line += "  |  Generated: " + opts.GeneratedAt.Format("2006-01-02 15:04 MST")
	pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	pdf.Ln(4)
}

func addSummaryTable(pdf *gofpdf.Fpdf, s audit.Summary) {
	type stat struct {
		label string
		value string
		color []int
	}
	stats := []stat{
		{label: "Total", value: strconv.Itoa(s.Total), color: []int{15, 23, 42}},
		{label: "Compliant", value: strconv.Itoa(s.Compliant), color: pdfStatusColors[audit.StatusCompliant]},
		{label: "NonCompliant", value: strconv.Itoa(s.NonCompliant), color: pdfStatusColors[audit.StatusNonCompliant]},
		{label: "Errored", value: strconv.Itoa(s.Errored), color: pdfStatusColors[audit.StatusError]},
		{label: "Unknown", value: strconv.Itoa(s.Unknown), color: pdfStatusColors[audit.StatusUnknown]},
		{label: "Compliance", value: strconv.Itoa(s.CompliancePercent()) + "%", color: []int{15, 23, 42}},
	}

	pageW, _ := pdf.GetPageSize()
	cellW := (pageW - 20) / float64(len(stats))

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(30, 41, 59)
	pdf.SetTextColor(255, 255, 255)
	for _, st := range stats {
		pdf.CellFormat(cellW, 8, st.label, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "B", 11)
	for _, st := range stats {
		pdf.SetTextColor(st.color[0], st.color[1], st.color[2])
		pdf.CellFormat(cellW, 9, st.value, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.Ln(6)
}

func addResultsTable(pdf *gofpdf.Fpdf, rows []audit.Row) {
	pageW, _ := pdf.GetPageSize()
	usable := pageW - 20

	idW := 28.0
	serviceW := 28.0
	statusW := 28.0
	countW := 18.0
	titleW := usable - idW - serviceW - statusW - countW

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(30, 41, 59)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(idW, 8, "Control", "1", 0, "L", true, 0, "")
	pdf.CellFormat(titleW, 8, "Title", "1", 0, "L", true, 0, "")
	pdf.CellFormat(serviceW, 8, "Service", "1", 0, "L", true, 0, "")
	pdf.CellFormat(statusW, 8, "Status", "1", 0, "C", true, 0, "")
	pdf.CellFormat(countW, 8, "Viol.", "1", 0, "C", true, 0, "")
	pdf.Ln(-1)

	if len(rows) == 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 116, 139)
		pdf.CellFormat(usable, 8, "No results match the active filter.", "1", 1, "C", false, 0, "")
		return
	}

	for _, row := range rows {
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(60, 60, 60)
		pdf.CellFormat(idW, 7, clip(row.ID, 16), "1", 0, "L", false, 0, "")
		pdf.CellFormat(titleW, 7, clip(row.Title, 58), "1", 0, "L", false, 0, "")
		pdf.CellFormat(serviceW, 7, clip(row.Service, 16), "1", 0, "L", false, 0, "")

		color := pdfStatusColors[row.Status]
		if color == nil {
			color = pdfStatusColors[audit.StatusUnknown]
		}
		pdf.SetTextColor(color[0], color[1], color[2])
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(statusW, 7, string(row.Status), "1", 0, "C", false, 0, "")

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(60, 60, 60)
		pdf.CellFormat(countW, 7, strconv.Itoa(row.ViolationCount), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}
}

func addViolationAppendix(pdf *gofpdf.Fpdf, rows []audit.Row) {
	withDetails := make([]audit.Row, 0, len(rows))
	for _, row := range rows {
		if len(row.Violations) > 0 || row.Error != "" {
			withDetails = append(withDetails, row)
		}
	}
	if len(withDetails) == 0 {
		return
	}

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(15, 23, 42)
	pdf.CellFormat(0, 9, "Violation Details", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	for _, row := range withDetails {
		color := pdfStatusColors[row.Status]
		if color == nil {
			color = pdfStatusColors[audit.StatusUnknown]
		}

		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(color[0], color[1], color[2])
		pdf.CellFormat(0, 7, row.ID+"  "+clip(row.Title, 80), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(80, 80, 80)
		if row.Error != "" {
			pdf.MultiCell(0, 5, "error: "+row.Error, "", "L", false)
		}
		for _, v := range row.Violations {
			pdf.MultiCell(0, 5, "- "+v, "", "L", false)
		}
		pdf.Ln(3)
	}
}

func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max > 3 {
		return string(runes[:max-3]) + "..."
	}
	return string(runes[:max])
}
