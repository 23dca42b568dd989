package main

import (
	"strings"
	"testing"

	"github.com/autoaudit/autoaudit/internal/audit"
)

func TestWriteSummaryPrintsStats(t *testing.T) {
	t.Parallel()

	rows := []audit.Row{
		{ID: "C-1", Status: audit.StatusCompliant},
		{ID: "C-2", Status: audit.StatusNonCompliant, ViolationCount: 2},
		{ID: "C-3", Status: audit.StatusError},
	}

	var buf strings.Builder
	writeSummary(&buf, "ACSC Essential Eight", rows)
	out := buf.String()

	for _, want := range []string{
		"AutoAudit Summary",
		"ACSC Essential Eight",
		"Total controls",
		"Compliant",
		"Non-compliant",
		"Errors",
		"Open violations",
		"Compliance",
		"33%",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary output missing %q:\n%s", want, out)
		}
	}
}

func TestComplianceMeterFillsByPercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		percent    int
		wantFilled int
	}{
		{percent: 0, wantFilled: 0},
		{percent: 47, wantFilled: 11},
		{percent: 100, wantFilled: uiMeterWidth},
		{percent: -4, wantFilled: 0},
		{percent: 250, wantFilled: uiMeterWidth},
	}
	for _, tc := range tests {
		got := strings.Count(complianceMeter(tc.percent), "#")
		if got != tc.wantFilled {
			t.Fatalf("complianceMeter(%d) filled %d segments, want %d", tc.percent, got, tc.wantFilled)
		}
	}
}
