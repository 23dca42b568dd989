package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/autoaudit/autoaudit/internal/http/viewmodels"
)

const (
	selectFilterTrigger    = "change delay:150ms from:select, submit"
	debouncedFilterTrigger = "input changed delay:300ms from:input[name='q'], " + selectFilterTrigger
)

func renderViewComponent(t *testing.T, component templ.Component) string {
	t.Helper()

	var buf bytes.Buffer
	if err := component.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render component: %v", err)
	}
	return buf.String()
}

func TestDashboardResultsUsesDebouncedHTMXFilters(t *testing.T) {
	t.Parallel()

	html := renderViewComponent(t, DashboardResults(viewmodels.DashboardViewData{}))
	assertContains(t, html, `hx-get="/"`)
	assertContains(t, html, `hx-target="#dashboard-results"`)
	assertContains(t, html, `hx-swap="outerHTML"`)
	assertContains(t, html, `hx-push-url="true"`)
	assertContains(t, html, `hx-trigger="`+debouncedFilterTrigger+`"`)
}

func TestDashboardResultsRendersEmptyPlaceholderRow(t *testing.T) {
	t.Parallel()

	html := renderViewComponent(t, DashboardResults(viewmodels.DashboardViewData{}))
	assertContains(t, html, `No checks match the current filter.`)
}

func TestDashboardResultsMarksSelectedFilterOptions(t *testing.T) {
	t.Parallel()

	html := renderViewComponent(t, DashboardResults(viewmodels.DashboardViewData{
		Filters: viewmodels.DashboardFiltersData{
			Status: "noncompliant",
			StatusOptions: []viewmodels.SelectOption{
				{Value: "all", Label: "All statuses"},
				{Value: "noncompliant", Label: "Non-compliant", Selected: true},
			},
		},
	}))

	assertContains(t, html, `<option value="all">All statuses</option>`)
	assertContains(t, html, `<option value="noncompliant" selected>Non-compliant</option>`)
}

func TestDashboardResultsExportLinksCarryActiveFilters(t *testing.T) {
	t.Parallel()

	html := renderViewComponent(t, DashboardResults(viewmodels.DashboardViewData{
		Filters: viewmodels.DashboardFiltersData{
			Status:    "noncompliant",
			Benchmark: "cis-docker",
		},
	}))

	assertContains(t, html, `href="/export.csv?benchmark=cis-docker&amp;status=noncompliant"`)
	assertContains(t, html, `href="/export.pdf?benchmark=cis-docker&amp;status=noncompliant"`)
	assertContains(t, html, `hx-boost="false"`)
}

func TestDashboardResultsRowLinksToCheckDetail(t *testing.T) {
	t.Parallel()

	html := renderViewComponent(t, DashboardResults(viewmodels.DashboardViewData{
		Filters: viewmodels.DashboardFiltersData{Benchmark: "essential-eight"},
		Results: viewmodels.DashboardResultsData{
			Rows: []viewmodels.ResultRowItem{
				{ID: "E8-AC-01", Title: "Restrict administrative privileges", Status: "noncompliant", StatusLabel: "Non-compliant", ViolationCount: 3},
			},
			TotalCount:    1,
			FilteredCount: 1,
		},
	}))

	assertContains(t, html, `href="/checks/E8-AC-01?benchmark=essential-eight"`)
	assertContains(t, html, `Restrict administrative privileges`)
	assertNotContains(t, html, `No checks match the current filter.`)
}

func TestDashboardResultsShowsLoadWarningOnlyWhenLoadFailed(t *testing.T) {
	t.Parallel()

	degraded := renderViewComponent(t, DashboardResults(viewmodels.DashboardViewData{
		Results: viewmodels.DashboardResultsData{LoadFailed: true},
	}))
	assertContains(t, degraded, `Benchmark results are temporarily unavailable.`)
	assertContains(t, degraded, `role="alert"`)

	healthy := renderViewComponent(t, DashboardResults(viewmodels.DashboardViewData{}))
	assertNotContains(t, healthy, `Benchmark results are temporarily unavailable.`)
}

func assertContains(t *testing.T, content, want string) {
	t.Helper()
	if !strings.Contains(content, want) {
		t.Fatalf("expected rendered HTML to contain %q", want)
	}
}

func assertNotContains(t *testing.T, content, disallowed string) {
	t.Helper()
	if strings.Contains(content, disallowed) {
		t.Fatalf("expected rendered HTML to not contain %q", disallowed)
	}
}
