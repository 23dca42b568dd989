package views

import "testing"

func TestDashboardURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    string
		service   string
		query     string
		benchmark string
		chart     string
		want      string
	}{
		{name: "defaults collapse to root", want: "/"},
		{name: "all status is omitted", status: "all", chart: "donut", want: "/"},
		{name: "filters are encoded sorted", status: "noncompliant", chart: "bar", want: "/?chart=bar&status=noncompliant"},
		{name: "service and query survive", service: "iam", query: "mfa", want: "/?q=mfa&service=iam"},
		{name: "values are trimmed", status: "  noncompliant  ", want: "/?status=noncompliant"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := DashboardURL(tc.status, tc.service, tc.query, tc.benchmark, tc.chart); got != tc.want {
				t.Fatalf("DashboardURL() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCheckDetailURLEscapesID(t *testing.T) {
	t.Parallel()

	if got := CheckDetailURL("5.1/a", "cis-docker"); got != "/checks/5.1%2Fa?benchmark=cis-docker" {
		t.Fatalf("CheckDetailURL() = %q", got)
	}
	if got := CheckDetailURL("E8-AC-01", ""); got != "/checks/E8-AC-01" {
		t.Fatalf("CheckDetailURL() = %q", got)
	}
}

func TestCheckStatusBadgeClass(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status string
		want   string
	}{
		{status: "compliant", want: "badge bg-emerald-100 text-emerald-800 dark:bg-emerald-900/50 dark:text-emerald-100"},
		{status: " NonCompliant ", want: "badge bg-rose-100 text-rose-800 dark:bg-rose-900/50 dark:text-rose-100"},
		{status: "error", want: "badge bg-amber-100 text-amber-800 dark:bg-amber-900/50 dark:text-amber-100"},
		{status: "unknown", want: "badge bg-slate-100 text-slate-800 dark:bg-slate-900/50 dark:text-slate-100"},
		{status: "skipped", want: "badge-outline"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.status, func(t *testing.T) {
			t.Parallel()
			if got := CheckStatusBadgeClass(tc.status); got != tc.want {
				t.Fatalf("CheckStatusBadgeClass(%q) = %q, want %q", tc.status, got, tc.want)
			}
		})
	}
}

func TestHumanizeCheckStatusFallsBackToTitleCase(t *testing.T) {
	t.Parallel()

	if got := HumanizeCheckStatus("noncompliant"); got != "Non-compliant" {
		t.Fatalf("HumanizeCheckStatus(noncompliant) = %q", got)
	}
	if got := HumanizeCheckStatus("not_applicable"); got != "Not Applicable" {
		t.Fatalf("HumanizeCheckStatus(not_applicable) = %q", got)
	}
	if got := HumanizeCheckStatus(""); got != "—" {
		t.Fatalf("HumanizeCheckStatus(empty) = %q", got)
	}
}

func TestIsActivePath(t *testing.T) {
	t.Parallel()

	if !IsActivePath("/", "/") {
		t.Fatal("root should be active on root")
	}
	if IsActivePath("/runs", "/") {
		t.Fatal("root should only match exactly")
	}
	if !IsActivePath("/runs", "/runs") {
		t.Fatal("runs should be active on /runs")
	}
}

func TestComplianceTextClass(t *testing.T) {
	t.Parallel()

	if got := ComplianceTextClass(80); got != "text-emerald-600 dark:text-emerald-400" {
		t.Fatalf("ComplianceTextClass(80) = %q", got)
	}
	if got := ComplianceTextClass(50); got != "text-amber-600 dark:text-amber-400" {
		t.Fatalf("ComplianceTextClass(50) = %q", got)
	}
	if got := ComplianceTextClass(49); got != "text-rose-600 dark:text-rose-400" {
		t.Fatalf("ComplianceTextClass(49) = %q", got)
	}
}
