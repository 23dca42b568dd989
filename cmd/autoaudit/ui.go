package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/autoaudit/autoaudit/internal/audit"
	"github.com/charmbracelet/lipgloss"
)

// Terminal palette for summary and benchmarks output, aligned with the
// dashboard chart colors.
var (
	uiTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA")).Background(lipgloss.Color("#0284C7")).Padding(0, 1)
	uiMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	uiLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Width(16)
	uiValueStyle = lipgloss.NewStyle().Bold(true)

	uiCompliantStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#16A34A")).Bold(true)
	uiNonCompliantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626")).Bold(true)
	uiErroredStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#D97706")).Bold(true)

	uiMeterEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B3B4F"))
)

const uiMeterWidth = 25

// writeSummary prints the stat block the dashboard shows, shaped for a
// terminal.
func writeSummary(w io.Writer, label string, rows []audit.Row) {
	s := audit.Summarize(rows)

	fmt.Fprintln(w, uiTitleStyle.Render("AutoAudit Summary"))
	fmt.Fprintln(w, uiMutedStyle.Render(label))
	fmt.Fprintln(w)

	writeStatLine(w, "Total controls", fmt.Sprintf("%d", s.Total), uiValueStyle)
	writeStatLine(w, "Compliant", fmt.Sprintf("%d", s.Compliant), uiCompliantStyle)
	writeStatLine(w, "Non-compliant", fmt.Sprintf("%d", s.NonCompliant), uiNonCompliantStyle)
	writeStatLine(w, "Errors", fmt.Sprintf("%d", s.Errored+s.Unknown), uiErroredStyle)
	writeStatLine(w, "Open violations", fmt.Sprintf("%d", s.Violations), uiValueStyle)
	fmt.Fprintln(w)

	percent := s.CompliancePercent()
	fmt.Fprintf(w, "%s %s %s\n",
		uiLabelStyle.Render("Compliance"),
		complianceMeter(percent),
		styleForPercent(percent).Render(fmt.Sprintf("%d%%", percent)),
	)
}

func writeStatLine(w io.Writer, label, value string, style lipgloss.Style) {
	fmt.Fprintf(w, "%s %s\n", uiLabelStyle.Render(label), style.Render(value))
}

// complianceMeter renders a fixed-width bar filled to the given percent.
func complianceMeter(percent int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := uiMeterWidth * percent / 100
	style := styleForPercent(percent)

	var bar strings.Builder
	for i := 0; i < uiMeterWidth; i++ {
		if i < filled {
			bar.WriteString(style.Render("#"))
		} else {
			bar.WriteString(uiMeterEmptyStyle.Render("."))
		}
	}
	return bar.String()
}

// styleForPercent matches the dashboard's traffic-light thresholds.
func styleForPercent(percent int) lipgloss.Style {
	switch {
	case percent >= 80:
		return uiCompliantStyle
	case percent >= 50:
		return uiErroredStyle
	default:
		return uiNonCompliantStyle
	}
}
