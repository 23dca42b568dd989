package handlers

import (
	"net/http"
	"time"

	"github.com/autoaudit/autoaudit/internal/audit"
	"github.com/labstack/echo/v5"
)

// HandleAPISummary returns the summary statistics for a benchmark as JSON.
func (h *Handlers) HandleAPISummary(c *echo.Context) error {
	ctx := c.Request().Context()
	def := h.ActiveBenchmark(c)

	rows, err := h.LoadRows(ctx, def)
	if err != nil {
		c.Logger().Error("load results", "benchmark", def.Key, "error", err)
	}
	summary := audit.Summarize(rows)

	return c.JSON(http.StatusOK, map[string]any{
		"benchmark":          def.Key,
		"generated_at":       time.Now().UTC().Format(time.RFC3339),
		"summary":            summary,
		"compliance_percent": summary.CompliancePercent(),
	})
}

// HandleAPIChecks returns the normalized, filtered rows as JSON.
func (h *Handlers) HandleAPIChecks(c *echo.Context) error {
	ctx := c.Request().Context()
	def := h.ActiveBenchmark(c)
	filters := parseDashboardFilters(c)

	rows, err := h.LoadRows(ctx, def)
	if err != nil {
		c.Logger().Error("load results", "benchmark", def.Key, "error", err)
	}
	visible := narrowRows(audit.Apply(rows, filters.Status), filters.Service, filters.Query)

	return c.JSON(http.StatusOK, map[string]any{
		"benchmark": def.Key,
		"filter":    string(filters.Status),
		"count":     len(visible),
		"checks":    visible,
	})
}
