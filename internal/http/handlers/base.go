// Package handlers contains HTTP handler logic split by page.
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/autoaudit/autoaudit/internal/audit"
	"github.com/autoaudit/autoaudit/internal/benchmark"
	"github.com/autoaudit/autoaudit/internal/config"
	"github.com/autoaudit/autoaudit/internal/http/viewmodels"
	"github.com/autoaudit/autoaudit/internal/metrics"
	"github.com/autoaudit/autoaudit/internal/runlog"
	"github.com/labstack/echo/v5"
)

const (
	// ContextKeyRequestID stores the request id (X-Request-ID) for logging and client error references.
	ContextKeyRequestID = "request_id"

	// InternalErrorCode is a stable error code safe to return to clients.
	InternalErrorCode = "INTERNAL_ERROR"
)

// Handlers groups all HTTP handlers and shared dependencies.
type Handlers struct {
	Cfg     config.Config
	Catalog *benchmark.Catalog

	// Override replaces the default benchmark's result document when set,
	// typically a FileSource pointed at RESULTS_PATH.
	Override audit.Source

	RunLog *runlog.Log
}

// ActiveBenchmark resolves the benchmark selected by the request, falling
// back to the configured default and then to the catalog default.
func (h *Handlers) ActiveBenchmark(c *echo.Context) benchmark.Definition {
	key := strings.TrimSpace(c.QueryParam("benchmark"))
	if key == "" {
		key = h.Cfg.DefaultBenchmark
	}
	def, _ := h.Catalog.Get(key)
	return def
}

// LoadRows loads and normalizes the result document for a benchmark.
func (h *Handlers) LoadRows(ctx context.Context, def benchmark.Definition) ([]audit.Row, error) {
	source := h.Catalog.Source(def)
	if h.Override != nil && def.Key == h.Catalog.Default().Key {
		source = h.Override
	}
	doc, err := source.Load(ctx)
	if err != nil {
		metrics.DocumentLoadsTotal.WithLabelValues(def.Key, "error").Inc()
		return nil, err
	}
	metrics.DocumentLoadsTotal.WithLabelValues(def.Key, "ok").Inc()
	return audit.Normalize(doc), nil
}

// LayoutData builds the common layout data for page rendering.
func (h *Handlers) LayoutData(c *echo.Context, title string) viewmodels.LayoutData {
	return viewmodels.LayoutData{
		Title:      title,
		ActivePath: c.Request().URL.Path,
	}
}

// RenderComponent renders a templ component as the response.
func (h *Handlers) RenderComponent(c *echo.Context, component templ.Component) error {
	c.Response().Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(c.Request().Context(), c.Response()); err != nil {
		return h.RenderError(c, err)
	}
	return nil
}

// RenderError returns a plain text error response.
func (h *Handlers) RenderError(c *echo.Context, err error) error {
	requestID, _ := c.Get(ContextKeyRequestID).(string)
	path := ""
	if req := c.Request(); req != nil && req.URL != nil {
		path = req.URL.Path
	}
	method := ""
	if req := c.Request(); req != nil {
		method = req.Method
	}
	c.Logger().Error("http error",
		"request_id", requestID,
		"method", method,
		"path", path,
		"ip", c.RealIP(),
		"error", err,
	)

	msg := "Internal server error."
	if requestID != "" {
		msg = fmt.Sprintf("%s Reference: %s.", msg, requestID)
	}
	msg = fmt.Sprintf("%s Code: %s.", msg, InternalErrorCode)
	return c.String(http.StatusInternalServerError, msg)
}

// RenderNotFound returns a 404 response.
func RenderNotFound(c *echo.Context) error {
	return c.String(http.StatusNotFound, "404 page not found")
}

func observeRender(page string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.RenderDuration.WithLabelValues(page).Observe(time.Since(start).Seconds())
	metrics.RendersTotal.WithLabelValues(page, status).Inc()
}

func serviceNames(rows []audit.Row) []string {
	seen := make(map[string]struct{}, len(rows))
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		service := strings.TrimSpace(row.Service)
		if service == "" {
			continue
		}
		key := strings.ToLower(service)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		names = append(names, service)
	}
	sort.Strings(names)
	return names
}
