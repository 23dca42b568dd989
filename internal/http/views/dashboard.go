package views

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/autoaudit/autoaudit/internal/http/viewmodels"
)

// DashboardPage renders the full dashboard document.
func DashboardPage(data viewmodels.DashboardViewData) templ.Component {
	return Layout(data.Layout, dashboardContent(data))
}

func dashboardContent(data viewmodels.DashboardViewData) templ.Component {
	return markup(func(b *strings.Builder) {
		b.WriteString(`<div class="space-y-6">`)
		writeDashboardHeader(b, data)
		writeDashboardResults(b, data)
		b.WriteString(`</div>`)
	})
}

// DashboardResults renders the filterable region of the dashboard. htmx swaps
// this fragment in place whenever a filter control changes.
func DashboardResults(data viewmodels.DashboardViewData) templ.Component {
	return markup(func(b *strings.Builder) {
		writeDashboardResults(b, data)
	})
}

func writeDashboardHeader(b *strings.Builder, data viewmodels.DashboardViewData) {
	b.WriteString(`<div class="flex flex-wrap items-baseline gap-x-3 gap-y-1">`)
	b.WriteString(`<h1 class="text-2xl font-semibold tracking-tight">` + esc(data.BenchmarkName) + `</h1>`)
	if version := strings.TrimSpace(data.BenchmarkVersion); version != "" {
		b.WriteString(`<span class="text-sm text-slate-500 dark:text-slate-400">` + esc(version) + `</span>`)
	}
	b.WriteString(`<span class="ml-auto ` + ComplianceTextClass(data.Summary.CompliancePercent) + ` text-sm font-semibold">` + FormatPercent(data.Summary.CompliancePercent) + ` compliant</span>`)
	b.WriteString(`</div>`)
}

func writeDashboardResults(b *strings.Builder, data viewmodels.DashboardViewData) {
	b.WriteString(`<section id="dashboard-results" class="space-y-6">`)
	if data.Results.LoadFailed {
		b.WriteString(`<div class="rounded-md border border-amber-300 bg-amber-50 px-4 py-3 text-sm text-amber-800 dark:border-amber-700 dark:bg-amber-900/30 dark:text-amber-200" role="alert">`)
		b.WriteString(`Benchmark results are temporarily unavailable. Showing an empty report.`)
		b.WriteString(`</div>`)
	}
	writeStatCards(b, data.Summary)
	writeChartCard(b, data)
	writeResultsCard(b, data)
	b.WriteString(`</section>`)
}

func writeStatCards(b *strings.Builder, summary viewmodels.SummaryViewData) {
	b.WriteString(`<div class="grid grid-cols-2 gap-4 sm:grid-cols-3 lg:grid-cols-6">`)
	writeStatCard(b, "Compliance", FormatPercent(summary.CompliancePercent), ComplianceTextClass(summary.CompliancePercent))
	writeStatCard(b, "Total controls", FormatInt(summary.TotalCount), "")
	writeStatCard(b, "Compliant", FormatInt(summary.CompliantCount), "text-emerald-600 dark:text-emerald-400")
	writeStatCard(b, "Non-compliant", FormatInt(summary.NonCompliantCount), "text-rose-600 dark:text-rose-400")
	writeStatCard(b, "Errors", FormatInt(summary.ErroredCount+summary.UnknownCount), "text-amber-600 dark:text-amber-400")
	writeStatCard(b, "Open violations", FormatInt(summary.ViolationCount), "")
	b.WriteString(`</div>`)
}

func writeStatCard(b *strings.Builder, label, value, accent string) {
	valueClass := "text-2xl font-semibold tabular-nums"
	if accent != "" {
		valueClass += " " + accent
	}
	b.WriteString(`<div class="rounded-lg border border-slate-200 bg-white p-4 shadow-sm dark:border-slate-800 dark:bg-slate-900">`)
	b.WriteString(`<div class="text-xs font-medium uppercase tracking-wide text-slate-500 dark:text-slate-400">` + esc(label) + `</div>`)
	b.WriteString(`<div class="mt-1 ` + valueClass + `">` + value + `</div>`)
	b.WriteString(`</div>`)
}

func writeChartCard(b *strings.Builder, data viewmodels.DashboardViewData) {
	b.WriteString(`<div class="rounded-lg border border-slate-200 bg-white p-4 shadow-sm dark:border-slate-800 dark:bg-slate-900">`)
	b.WriteString(`<div class="mb-4 flex items-center justify-between">`)
	b.WriteString(`<h2 class="text-sm font-semibold text-slate-700 dark:text-slate-200">Status distribution</h2>`)
	writeChartToggle(b, data)
	b.WriteString(`</div>`)
	writeStatusChart(b, data.Chart)
	b.WriteString(`</div>`)
}

func writeChartToggle(b *strings.Builder, data viewmodels.DashboardViewData) {
	filters := data.Filters
	b.WriteString(`<div class="flex gap-1 rounded-md border border-slate-200 p-0.5 text-xs dark:border-slate-700" role="group" aria-label="Chart type">`)
	writeChartToggleLink(b, "donut", "Donut", filters)
	writeChartToggleLink(b, "bar", "Bar", filters)
	b.WriteString(`</div>`)
}

func writeChartToggleLink(b *strings.Builder, kind, label string, filters viewmodels.DashboardFiltersData) {
	class := "rounded px-2 py-1 text-slate-500 hover:text-slate-900 dark:hover:text-slate-100"
	if filters.Chart == kind {
		class = "rounded bg-slate-900 px-2 py-1 font-medium text-white dark:bg-slate-100 dark:text-slate-900"
	}
	href := esc(DashboardURL(filters.Status, filters.Service, filters.Query, filters.Benchmark, kind))
	b.WriteString(`<a href="` + href + `" class="` + class + `" hx-get="` + href + `" hx-target="#dashboard-results" hx-swap="outerHTML" hx-push-url="true">` + esc(label) + `</a>`)
}

func writeResultsCard(b *strings.Builder, data viewmodels.DashboardViewData) {
	b.WriteString(`<div class="rounded-lg border border-slate-200 bg-white shadow-sm dark:border-slate-800 dark:bg-slate-900">`)
	writeFilterBar(b, data.Filters)
	writeResultsMeta(b, data)
	writeResultsTable(b, data)
	b.WriteString(`</div>`)
}

func writeFilterBar(b *strings.Builder, filters viewmodels.DashboardFiltersData) {
	b.WriteString(`<form method="get" action="/"` +
		` hx-get="/"` +
		` hx-target="#dashboard-results"` +
		` hx-swap="outerHTML"` +
		` hx-push-url="true"` +
		` hx-trigger="input changed delay:300ms from:input[name='q'], change delay:150ms from:select, submit"` +
		` class="flex flex-wrap items-center gap-2 border-b border-slate-200 p-4 dark:border-slate-800">`)
	b.WriteString(`<input type="search" name="q" value="` + esc(filters.Query) + `" placeholder="Search controls" aria-label="Search controls" class="w-48 rounded-md border border-slate-300 px-3 py-1.5 text-sm dark:border-slate-700 dark:bg-slate-800">`)
	writeFilterSelect(b, "status", "Status", filters.StatusOptions)
	writeFilterSelect(b, "service", "Service", filters.ServiceOptions)
	writeFilterSelect(b, "benchmark", "Benchmark", filters.BenchmarkOptions)
	b.WriteString(`<input type="hidden" name="chart" value="` + esc(filters.Chart) + `">`)
	b.WriteString(`<button type="submit" class="rounded-md bg-slate-900 px-3 py-1.5 text-sm font-medium text-white hover:bg-slate-700 dark:bg-slate-100 dark:text-slate-900">Apply</button>`)
	b.WriteString(`</form>`)
}

func writeFilterSelect(b *strings.Builder, name, label string, options []viewmodels.SelectOption) {
	b.WriteString(`<select name="` + name + `" aria-label="` + esc(label) + `" class="rounded-md border border-slate-300 px-2 py-1.5 text-sm dark:border-slate-700 dark:bg-slate-800">`)
	for _, option := range options {
		b.WriteString(`<option value="` + esc(option.Value) + `"`)
		if option.Selected {
			b.WriteString(` selected`)
		}
		b.WriteString(`>` + esc(option.Label) + `</option>`)
	}
	b.WriteString(`</select>`)
}

func writeResultsMeta(b *strings.Builder, data viewmodels.DashboardViewData) {
	filters := data.Filters
	b.WriteString(`<div class="flex flex-wrap items-center gap-2 px-4 pt-3 text-sm text-slate-500 dark:text-slate-400">`)
	b.WriteString(`<span>Showing ` + FormatInt(data.Results.FilteredCount) + ` of ` + FormatInt(data.Results.TotalCount) + ` controls</span>`)
	b.WriteString(`<span class="ml-auto flex gap-3">`)
	b.WriteString(`<a href="` + esc(ExportURL("csv", filters.Status, filters.Service, filters.Query, filters.Benchmark)) + `" hx-boost="false" class="font-medium text-sky-700 hover:underline dark:text-sky-400">Export CSV</a>`)
	b.WriteString(`<a href="` + esc(ExportURL("pdf", filters.Status, filters.Service, filters.Query, filters.Benchmark)) + `" hx-boost="false" class="font-medium text-sky-700 hover:underline dark:text-sky-400">Export PDF</a>`)
	b.WriteString(`</span>`)
	b.WriteString(`</div>`)
}

func writeResultsTable(b *strings.Builder, data viewmodels.DashboardViewData) {
	b.WriteString(`<div class="overflow-x-auto p-4">`)
	b.WriteString(`<table class="min-w-full divide-y divide-slate-200 text-sm dark:divide-slate-800">`)
	b.WriteString(`<thead>`)
	b.WriteString(`<tr class="text-left text-xs font-medium uppercase tracking-wide text-slate-500 dark:text-slate-400">`)
	b.WriteString(`<th class="px-3 py-2">Control</th>`)
	b.WriteString(`<th class="px-3 py-2">Title</th>`)
	b.WriteString(`<th class="px-3 py-2">Service</th>`)
	b.WriteString(`<th class="px-3 py-2">Status</th>`)
	b.WriteString(`<th class="px-3 py-2 text-right">Violations</th>`)
	b.WriteString(`</tr>`)
	b.WriteString(`</thead>`)
	b.WriteString(`<tbody class="divide-y divide-slate-100 dark:divide-slate-800/60">`)
	if len(data.Results.Rows) == 0 {
		b.WriteString(`<tr><td colspan="5" class="px-3 py-8 text-center text-slate-500 dark:text-slate-400">No checks match the current filter.</td></tr>`)
	}
	for _, row := range data.Results.Rows {
		writeResultRow(b, row, data.Filters.Benchmark)
	}
	b.WriteString(`</tbody>`)
	b.WriteString(`</table>`)
	b.WriteString(`</div>`)
}

func writeResultRow(b *strings.Builder, row viewmodels.ResultRowItem, benchmark string) {
	b.WriteString(`<tr>`)
	b.WriteString(`<td class="px-3 py-2"><a href="` + esc(CheckDetailURL(row.ID, benchmark)) + `" class="font-medium text-sky-700 hover:underline dark:text-sky-400">` + esc(row.ID) + `</a></td>`)
	b.WriteString(`<td class="px-3 py-2">` + esc(row.Title) + `</td>`)
	b.WriteString(`<td class="px-3 py-2 text-slate-500 dark:text-slate-400">` + esc(HumanizeService(row.Service)) + `</td>`)
	b.WriteString(`<td class="px-3 py-2"><span class="` + CheckStatusBadgeClass(row.Status) + `">` + esc(row.StatusLabel) + `</span></td>`)
	b.WriteString(`<td class="px-3 py-2 text-right tabular-nums">` + FormatInt(row.ViolationCount) + `</td>`)
	b.WriteString(`</tr>`)
}
