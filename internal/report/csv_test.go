package report

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"
	"testing"

	"github.com/autoaudit/autoaudit/internal/audit"
)

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	rows := []audit.Row{
		{
			ID:             "E8-AC-01",
			Title:          "Application control enforced on workstations",
			Service:        "workstation",
			Status:         audit.StatusNonCompliant,
			ViolationCount: 2,
			Violations:     []string{"unapproved executable", "unrestricted scripts"},
		},
		{
			ID:      "E8-AC-02",
			Title:   "Rulesets validated annually",
			Service: "workstation",
			Status:  audit.StatusCompliant,
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	r := csv.NewReader(&buf)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		t.Fatalf("read header: %v", err)
	}
	if len(header) != len(csvColumns) || header[0] != "id" || header[3] != "status" {
		t.Fatalf("header = %v, want %v", header, csvColumns)
	}

	first, err := r.Read()
	if err != nil {
		t.Fatalf("read first row: %v", err)
	}
	if first[0] != "E8-AC-01" || first[3] != "noncompliant" || first[4] != "2" {
		t.Fatalf("first row = %v", first)
	}
	if !strings.Contains(first[5], "unapproved executable; unrestricted scripts") {
		t.Fatalf("violations cell = %q", first[5])
	}

	if _, err := r.Read(); err != nil {
		t.Fatalf("read second row: %v", err)
	}

	sawSummary := false
	sawTotal := false
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("read summary: %v", err)
		}
		if len(rec) > 0 && rec[0] == "# SUMMARY" {
			sawSummary = true
		}
		if len(rec) > 1 && rec[0] == "Total Controls" && rec[1] == "2" {
			sawTotal = true
		}
	}
	if !sawSummary || !sawTotal {
		t.Fatalf("summary section missing: sawSummary=%v sawTotal=%v", sawSummary, sawTotal)
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "id,title,service,status,violation_count,violations,error") {
		t.Fatalf("output missing header: %q", out)
	}
	if !strings.Contains(out, "Total Controls,0") {
		t.Fatalf("output missing zero summary: %q", out)
	}
}
