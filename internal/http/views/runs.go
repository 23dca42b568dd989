package views

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/autoaudit/autoaudit/internal/http/viewmodels"
)

// RunsPage renders the recent scan run activity.
func RunsPage(data viewmodels.RunsViewData) templ.Component {
	return Layout(data.Layout, runsContent(data))
}

func runsContent(data viewmodels.RunsViewData) templ.Component {
	return markup(func(b *strings.Builder) {
		b.WriteString(`<div class="space-y-6">`)
		b.WriteString(`<div>`)
		b.WriteString(`<h1 class="text-2xl font-semibold tracking-tight">Runs</h1>`)
		b.WriteString(`<p class="mt-1 text-sm text-slate-500 dark:text-slate-400">Scan runs reported to this dashboard, newest first. Kept in memory only.</p>`)
		b.WriteString(`</div>`)
		writeRunsTable(b, data.Runs)
		b.WriteString(`</div>`)
	})
}

func writeRunsTable(b *strings.Builder, runs []viewmodels.RunRowItem) {
	b.WriteString(`<div class="overflow-x-auto rounded-lg border border-slate-200 bg-white p-4 shadow-sm dark:border-slate-800 dark:bg-slate-900">`)
	b.WriteString(`<table class="min-w-full divide-y divide-slate-200 text-sm dark:divide-slate-800">`)
	b.WriteString(`<thead>`)
	b.WriteString(`<tr class="text-left text-xs font-medium uppercase tracking-wide text-slate-500 dark:text-slate-400">`)
	b.WriteString(`<th class="px-3 py-2">Reported</th>`)
	b.WriteString(`<th class="px-3 py-2">User</th>`)
	b.WriteString(`<th class="px-3 py-2">Benchmark</th>`)
	b.WriteString(`<th class="px-3 py-2">Outcome</th>`)
	b.WriteString(`</tr>`)
	b.WriteString(`</thead>`)
	b.WriteString(`<tbody class="divide-y divide-slate-100 dark:divide-slate-800/60">`)
	if len(runs) == 0 {
		b.WriteString(`<tr><td colspan="4" class="px-3 py-8 text-center text-slate-500 dark:text-slate-400">No runs reported yet.</td></tr>`)
	}
	for _, run := range runs {
		b.WriteString(`<tr>`)
		b.WriteString(`<td class="px-3 py-2 font-mono text-xs text-slate-500 dark:text-slate-400">` + esc(run.ReportedAt) + `</td>`)
		b.WriteString(`<td class="px-3 py-2">` + esc(run.User) + `</td>`)
		b.WriteString(`<td class="px-3 py-2">` + esc(run.Benchmark) + `</td>`)
		b.WriteString(`<td class="px-3 py-2"><span class="` + RunOutcomeBadgeClass(run.Outcome) + `">` + esc(HumanizeRunOutcome(run.Outcome)) + `</span></td>`)
		b.WriteString(`</tr>`)
	}
	b.WriteString(`</tbody>`)
	b.WriteString(`</table>`)
	b.WriteString(`</div>`)
}
