package views

import (
	"net/url"
	"strconv"
	"strings"
	"unicode"
)

func FormatInt(v int) string {
	return strconv.Itoa(v)
}

func FormatPercent(v int) string {
	return strconv.Itoa(v) + "%"
}

func DashboardURL(status, service, query, benchmark, chart string) string {
	values := url.Values{}
	if status = strings.TrimSpace(status); status != "" && status != "all" {
		values.Set("status", status)
	}
	if service = strings.TrimSpace(service); service != "" {
		values.Set("service", service)
	}
	if query = strings.TrimSpace(query); query != "" {
		values.Set("q", query)
	}
	if benchmark = strings.TrimSpace(benchmark); benchmark != "" {
		values.Set("benchmark", benchmark)
	}
	if chart = strings.TrimSpace(chart); chart != "" && chart != "donut" {
		values.Set("chart", chart)
	}
	if len(values) == 0 {
		return "/"
	}
	return "/?" + values.Encode()
}

func ExportURL(format, status, service, query, benchmark string) string {
	base := "/export." + strings.TrimSpace(format)
	values := url.Values{}
	if status = strings.TrimSpace(status); status != "" && status != "all" {
		values.Set("status", status)
	}
	if service = strings.TrimSpace(service); service != "" {
		values.Set("service", service)
	}
	if query = strings.TrimSpace(query); query != "" {
		values.Set("q", query)
	}
	if benchmark = strings.TrimSpace(benchmark); benchmark != "" {
		values.Set("benchmark", benchmark)
	}
	if len(values) == 0 {
		return base
	}
	return base + "?" + values.Encode()
}

func CheckDetailURL(id, benchmark string) string {
	href := "/checks/" + url.PathEscape(strings.TrimSpace(id))
	if benchmark = strings.TrimSpace(benchmark); benchmark != "" {
		href += "?benchmark=" + url.QueryEscape(benchmark)
	}
	return href
}

func CheckStatusBadgeClass(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "compliant":
		return "badge bg-emerald-100 text-emerald-800 dark:bg-emerald-900/50 dark:text-emerald-100"
	case "noncompliant":
		return "badge bg-rose-100 text-rose-800 dark:bg-rose-900/50 dark:text-rose-100"
	case "error":
		return "badge bg-amber-100 text-amber-800 dark:bg-amber-900/50 dark:text-amber-100"
	case "unknown":
		return "badge bg-slate-100 text-slate-800 dark:bg-slate-900/50 dark:text-slate-100"
	default:
		return "badge-outline"
	}
}

func HumanizeCheckStatus(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "compliant":
		return "Compliant"
	case "noncompliant":
		return "Non-compliant"
	case "error":
		return "Error"
	case "unknown":
		return "Unknown"
	default:
		return fallbackHumanized(status)
	}
}

func HumanizeStatusFilter(filter string) string {
	switch strings.ToLower(strings.TrimSpace(filter)) {
	case "", "all":
		return "All statuses"
	case "compliant":
		return "Compliant"
	case "noncompliant":
		return "Non-compliant"
	case "error":
		return "Errors"
	default:
		return fallbackHumanized(filter)
	}
}

func ComplianceTextClass(percent int) string {
	switch {
	case percent >= 80:
		return "text-emerald-600 dark:text-emerald-400"
	case percent >= 50:
		return "text-amber-600 dark:text-amber-400"
	default:
		return "text-rose-600 dark:text-rose-400"
	}
}

func StatusChartColor(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "compliant":
		return "#16a34a"
	case "noncompliant":
		return "#dc2626"
	case "error":
		return "#d97706"
	default:
		return "#64748b"
	}
}

func RunOutcomeBadgeClass(outcome string) string {
	switch strings.ToLower(strings.TrimSpace(outcome)) {
	case "success":
		return "badge bg-emerald-100 text-emerald-800 dark:bg-emerald-900/50 dark:text-emerald-100"
	case "error":
		return "badge bg-rose-100 text-rose-800 dark:bg-rose-900/50 dark:text-rose-100"
	default:
		return "badge-outline"
	}
}

func HumanizeRunOutcome(outcome string) string {
	switch strings.ToLower(strings.TrimSpace(outcome)) {
	case "success":
		return "Success"
	case "error":
		return "Error"
	default:
		return fallbackHumanized(outcome)
	}
}

func HumanizeService(service string) string {
	service = strings.TrimSpace(service)
	if service == "" {
		return "—"
	}
	return service
}

func fallbackHumanized(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "—"
	}
	parts := strings.FieldsFunc(strings.ToLower(value), func(r rune) bool {
		return r == '_' || r == ':' || r == '-'
	})
	for idx, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		if len(runes) == 0 {
			continue
		}
		runes[0] = unicode.ToUpper(runes[0])
		parts[idx] = string(runes)
	}
	if len(parts) == 0 {
		return value
	}
	return strings.Join(parts, " ")
}

func IsActivePath(activePath, target string) bool {
	activePath = strings.TrimSpace(activePath)
	target = strings.TrimSpace(target)
	if target == "/" {
		return activePath == "/"
	}
	return strings.HasPrefix(activePath, target)
}

func AriaCurrent(activePath, target string) string {
	if IsActivePath(activePath, target) {
		return "page"
	}
	return ""
}
