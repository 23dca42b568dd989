package audit

import "testing"

func TestSummarize(t *testing.T) {
	t.Parallel()

	rows := []Row{
		{Status: StatusCompliant},
		{Status: StatusCompliant},
		{Status: StatusNonCompliant, ViolationCount: 3},
		{Status: StatusError},
		{Status: StatusUnknown},
		{Status: Status("skipped"), ViolationCount: 1},
	}

	got := Summarize(rows)
	want := Summary{Total: 6, Compliant: 2, NonCompliant: 1, Errored: 1, Unknown: 2, Violations: 4}
	if got != want {
		t.Fatalf("Summarize() = %+v, want %+v", got, want)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	t.Parallel()

	if got := Summarize(nil); got != (Summary{}) {
		t.Fatalf("Summarize(nil) = %+v, want zero summary", got)
	}
}

func TestCompliancePercent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		summary Summary
		want    int
	}{
		{name: "empty reports zero", summary: Summary{}, want: 0},
		{name: "half", summary: Summary{Total: 2, Compliant: 1}, want: 50},
		{name: "two thirds rounds up", summary: Summary{Total: 3, Compliant: 2}, want: 67},
		{name: "one third rounds down", summary: Summary{Total: 3, Compliant: 1}, want: 33},
		{name: "full", summary: Summary{Total: 4, Compliant: 4}, want: 100},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.summary.CompliancePercent(); got != tc.want {
				t.Fatalf("CompliancePercent() = %d, want %d", got, tc.want)
			}
		})
	}
}
