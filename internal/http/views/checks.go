package views

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/autoaudit/autoaudit/internal/http/viewmodels"
)

// CheckDetailPage renders a single control with its violations.
func CheckDetailPage(data viewmodels.CheckDetailViewData) templ.Component {
	return Layout(data.Layout, checkDetailContent(data))
}

func checkDetailContent(data viewmodels.CheckDetailViewData) templ.Component {
	return markup(func(b *strings.Builder) {
		check := data.Check
		b.WriteString(`<div class="space-y-6">`)
		b.WriteString(`<a href="` + esc(DashboardURL("", "", "", data.BenchmarkKey, "")) + `" class="text-sm font-medium text-sky-700 hover:underline dark:text-sky-400">&larr; Back to dashboard</a>`)

		b.WriteString(`<div class="rounded-lg border border-slate-200 bg-white p-6 shadow-sm dark:border-slate-800 dark:bg-slate-900">`)
		b.WriteString(`<div class="flex flex-wrap items-center gap-3">`)
		b.WriteString(`<span class="` + CheckStatusBadgeClass(check.Status) + `">` + esc(check.StatusLabel) + `</span>`)
		b.WriteString(`<span class="font-mono text-sm text-slate-500 dark:text-slate-400">` + esc(check.ID) + `</span>`)
		if service := strings.TrimSpace(check.Service); service != "" {
			b.WriteString(`<span class="badge-outline">` + esc(service) + `</span>`)
		}
		b.WriteString(`</div>`)
		b.WriteString(`<h1 class="mt-3 text-xl font-semibold tracking-tight">` + esc(check.Title) + `</h1>`)
		b.WriteString(`<p class="mt-1 text-sm text-slate-500 dark:text-slate-400">` + esc(data.BenchmarkName) + `</p>`)
		b.WriteString(`</div>`)

		if errText := strings.TrimSpace(check.Error); errText != "" {
			b.WriteString(`<div class="rounded-lg border border-rose-200 bg-rose-50 p-4 dark:border-rose-900 dark:bg-rose-950/40">`)
			b.WriteString(`<h2 class="text-sm font-semibold text-rose-800 dark:text-rose-200">Collector error</h2>`)
			b.WriteString(`<p class="mt-1 font-mono text-sm text-rose-700 dark:text-rose-300">` + esc(errText) + `</p>`)
			b.WriteString(`</div>`)
		}

		b.WriteString(`<div class="rounded-lg border border-slate-200 bg-white p-6 shadow-sm dark:border-slate-800 dark:bg-slate-900">`)
		b.WriteString(`<h2 class="text-sm font-semibold text-slate-700 dark:text-slate-200">Violations (` + FormatInt(check.ViolationCount) + `)</h2>`)
		if len(check.Violations) == 0 {
			b.WriteString(`<p class="mt-2 text-sm text-slate-500 dark:text-slate-400">No violations recorded for this control.</p>`)
		} else {
			b.WriteString(`<ol class="mt-3 list-decimal space-y-1 pl-5 text-sm">`)
			for _, violation := range check.Violations {
				b.WriteString(`<li class="break-all">` + esc(violation) + `</li>`)
			}
			b.WriteString(`</ol>`)
		}
		b.WriteString(`</div>`)
		b.WriteString(`</div>`)
	})
}
