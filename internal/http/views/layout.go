package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/autoaudit/autoaudit/internal/http/viewmodels"
)

const (
	tailwindScriptSrc = "https://cdn.tailwindcss.com"
	htmxScriptSrc     = "https://unpkg.com/htmx.org@1.9.12"
)

// badgeStyles covers the badge classes the components rely on; everything else
// comes from the Tailwind runtime.
const badgeStyles = `.badge{display:inline-flex;align-items:center;border-radius:9999px;padding:0.125rem 0.625rem;font-size:0.75rem;font-weight:500;white-space:nowrap}` +
	`.badge-outline{display:inline-flex;align-items:center;border-radius:9999px;padding:0.125rem 0.625rem;font-size:0.75rem;font-weight:500;white-space:nowrap;border:1px solid #cbd5e1;color:#64748b}`

// Layout wraps page content in the shared HTML shell: head, navigation and
// footer. Navigation is boosted so full-page links swap via htmx.
func Layout(data viewmodels.LayoutData, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		writeLayoutHead(&b, data)
		writeLayoutNav(&b, data)
		b.WriteString(`<main class="mx-auto w-full max-w-6xl flex-1 px-4 py-6">`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main>`+
			`<footer class="border-t border-slate-200 py-4 text-center text-xs text-slate-400 dark:border-slate-800">AutoAudit compliance dashboard</footer>`+
			`</body></html>`)
		return err
	})
}

func writeLayoutHead(b *strings.Builder, data viewmodels.LayoutData) {
	title := strings.TrimSpace(data.Title)
	if title == "" {
		title = "AutoAudit"
	} else {
		title += " · AutoAudit"
	}
	b.WriteString(`<!DOCTYPE html>`)
	b.WriteString(`<html lang="en" class="h-full">`)
	b.WriteString(`<head>`)
	b.WriteString(`<meta charset="utf-8">`)
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	b.WriteString(`<title>` + esc(title) + `</title>`)
	b.WriteString(`<script src="` + tailwindScriptSrc + `"></script>`)
	b.WriteString(`<script src="` + htmxScriptSrc + `" defer></script>`)
	b.WriteString(`<style>` + badgeStyles + `</style>`)
	b.WriteString(`</head>`)
	b.WriteString(`<body hx-boost="true" class="flex min-h-full flex-col bg-slate-50 text-slate-900 dark:bg-slate-950 dark:text-slate-100">`)
}

func writeLayoutNav(b *strings.Builder, data viewmodels.LayoutData) {
	b.WriteString(`<header class="border-b border-slate-200 bg-white dark:border-slate-800 dark:bg-slate-900">`)
	b.WriteString(`<div class="mx-auto flex w-full max-w-6xl items-center gap-6 px-4 py-3">`)
	b.WriteString(`<a href="/" class="text-lg font-semibold tracking-tight">AutoAudit</a>`)
	b.WriteString(`<nav class="flex items-center gap-1" aria-label="Main">`)
	writeNavLink(b, data, "/", "Dashboard")
	writeNavLink(b, data, "/runs", "Runs")
	b.WriteString(`</nav>`)
	b.WriteString(`</div>`)
	b.WriteString(`</header>`)
}

func writeNavLink(b *strings.Builder, data viewmodels.LayoutData, href, label string) {
	class := "rounded-md px-3 py-2 text-sm font-medium text-slate-600 hover:bg-slate-100 hover:text-slate-900 dark:text-slate-300 dark:hover:bg-slate-800"
	if IsActivePath(data.ActivePath, href) {
		class = "rounded-md bg-slate-900 px-3 py-2 text-sm font-medium text-white dark:bg-slate-100 dark:text-slate-900"
	}
	b.WriteString(`<a href="` + href + `" class="` + class + `"`)
	if current := AriaCurrent(data.ActivePath, href); current != "" {
		b.WriteString(` aria-current="` + current + `"`)
	}
	b.WriteString(`>` + esc(label) + `</a>`)
}
