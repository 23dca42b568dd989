package views

import (
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/autoaudit/autoaudit/internal/http/viewmodels"
)

// StatusChart renders the status distribution as an inline SVG, either as a
// donut or as a bar chart depending on the selected kind.
func StatusChart(data viewmodels.ChartViewData) templ.Component {
	return markup(func(b *strings.Builder) {
		writeStatusChart(b, data)
	})
}

func writeStatusChart(b *strings.Builder, data viewmodels.ChartViewData) {
	if data.Kind == "bar" {
		writeBarChart(b, data)
		return
	}
	writeDonutChart(b, data)
}

// The donut uses the unit-circumference trick: with r=15.915 the circle
// circumference is ~100, so dash lengths equal percentages.
func writeDonutChart(b *strings.Builder, data viewmodels.ChartViewData) {
	b.WriteString(`<div class="flex flex-wrap items-center gap-6" data-chart="donut">`)
	b.WriteString(`<svg viewBox="0 0 42 42" class="h-40 w-40" role="img" aria-label="Check status distribution">`)
	b.WriteString(`<circle cx="21" cy="21" r="15.915" fill="none" stroke="#e2e8f0" stroke-width="5"></circle>`)
	offset := 25.0
	for _, segment := range data.Segments {
		if segment.Count == 0 || data.Total == 0 {
			continue
		}
		dash := segment.Percent
		b.WriteString(`<circle cx="21" cy="21" r="15.915" fill="none" stroke="` + segment.Color + `" stroke-width="5"` +
			` stroke-dasharray="` + chartNumber(dash) + ` ` + chartNumber(100-dash) + `"` +
			` stroke-dashoffset="` + chartNumber(offset) + `">` +
			`<title>` + esc(segment.Label) + `: ` + FormatInt(segment.Count) + `</title>` +
			`</circle>`)
		offset -= dash
	}
	b.WriteString(`<text x="21" y="20.5" text-anchor="middle" font-size="8" font-weight="600" class="fill-slate-900 dark:fill-slate-100">` + FormatInt(data.Total) + `</text>`)
	b.WriteString(`<text x="21" y="27" text-anchor="middle" font-size="3.5" class="fill-slate-500">controls</text>`)
	b.WriteString(`</svg>`)
	writeChartLegend(b, data)
	b.WriteString(`</div>`)
}

func writeBarChart(b *strings.Builder, data viewmodels.ChartViewData) {
	maxCount := 0
	for _, segment := range data.Segments {
		if segment.Count > maxCount {
			maxCount = segment.Count
		}
	}

	b.WriteString(`<div data-chart="bar">`)
	b.WriteString(`<svg viewBox="0 0 320 160" class="h-44 w-full max-w-xl" role="img" aria-label="Check status distribution">`)
	for idx, segment := range data.Segments {
		x := 20 + idx*76
		height := 0.0
		if maxCount > 0 {
			height = float64(segment.Count) / float64(maxCount) * 110
		}
		y := 130 - height
		b.WriteString(`<rect x="` + strconv.Itoa(x) + `" y="` + chartNumber(y) + `" width="56" height="` + chartNumber(height) + `" rx="3" fill="` + segment.Color + `">` +
			`<title>` + esc(segment.Label) + `: ` + FormatInt(segment.Count) + `</title>` +
			`</rect>`)
		b.WriteString(`<text x="` + strconv.Itoa(x+28) + `" y="` + chartNumber(y-5) + `" text-anchor="middle" font-size="11" font-weight="600" class="fill-slate-900 dark:fill-slate-100">` + FormatInt(segment.Count) + `</text>`)
		b.WriteString(`<text x="` + strconv.Itoa(x+28) + `" y="147" text-anchor="middle" font-size="9" class="fill-slate-500">` + esc(segment.Label) + `</text>`)
	}
	b.WriteString(`<line x1="12" y1="130" x2="308" y2="130" stroke="#cbd5e1" stroke-width="1"></line>`)
	b.WriteString(`</svg>`)
	b.WriteString(`</div>`)
}

func writeChartLegend(b *strings.Builder, data viewmodels.ChartViewData) {
	b.WriteString(`<ul class="w-48 space-y-2 text-sm">`)
	for _, segment := range data.Segments {
		b.WriteString(`<li class="flex items-center gap-2">`)
		b.WriteString(`<span class="inline-block h-2.5 w-2.5 rounded-full" style="background-color:` + segment.Color + `"></span>`)
		b.WriteString(`<span class="text-slate-600 dark:text-slate-300">` + esc(segment.Label) + `</span>`)
		b.WriteString(`<span class="ml-auto font-medium tabular-nums">` + FormatInt(segment.Count) + `</span>`)
		b.WriteString(`</li>`)
	}
	b.WriteString(`</ul>`)
}

func chartNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
