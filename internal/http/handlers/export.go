package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/autoaudit/autoaudit/internal/audit"
	"github.com/autoaudit/autoaudit/internal/metrics"
	"github.com/autoaudit/autoaudit/internal/report"
	"github.com/labstack/echo/v5"
)

// HandleExportCSV streams the filtered rows as a CSV download.
func (h *Handlers) HandleExportCSV(c *echo.Context) error {
	return h.handleExport(c, "csv")
}

// HandleExportPDF streams the filtered rows as a PDF report.
func (h *Handlers) HandleExportPDF(c *echo.Context) error {
	return h.handleExport(c, "pdf")
}

func (h *Handlers) handleExport(c *echo.Context, format string) error {
	ctx := c.Request().Context()
	def := h.ActiveBenchmark(c)
	filters := parseDashboardFilters(c)

	rows, loadErr := h.LoadRows(ctx, def)
	if loadErr != nil {
		c.Logger().Error("load results", "benchmark", def.Key, "error", loadErr)
	}
	visible := narrowRows(audit.Apply(rows, filters.Status), filters.Service, filters.Query)

	filename := fmt.Sprintf("autoaudit-%s-%s.%s", def.Key, filters.Status, format)
	contentType := "text/csv; charset=utf-8"
	if format == "pdf" {
		contentType = "application/pdf"
	}
	c.Response().Header().Set(echo.HeaderContentType, contentType)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	c.Response().WriteHeader(http.StatusOK)

	var err error
	if format == "pdf" {
		err = report.WritePDF(c.Response(), visible, report.PDFOptions{
			Benchmark:   def.Name,
			Filter:      filters.Status,
			GeneratedAt: time.Now().UTC(),
		})
	} else {
		err = report.WriteCSV(c.Response(), visible)
	}
	if err != nil {
		metrics.ExportsTotal.WithLabelValues(format, "error").Inc()
		return err
	}
	metrics.ExportsTotal.WithLabelValues(format, "ok").Inc()
	return nil
}
