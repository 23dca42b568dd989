package handlers

import (
	"strings"
	"time"

	"github.com/autoaudit/autoaudit/internal/audit"
	"github.com/autoaudit/autoaudit/internal/benchmark"
	"github.com/autoaudit/autoaudit/internal/http/viewmodels"
	"github.com/autoaudit/autoaudit/internal/http/views"
	"github.com/autoaudit/autoaudit/internal/metrics"
	"github.com/labstack/echo/v5"
)

type dashboardFilters struct {
	Status  audit.Filter
	Service string
	Query   string
	Chart   string
}

func parseDashboardFilters(c *echo.Context) dashboardFilters {
	chart := strings.ToLower(strings.TrimSpace(c.QueryParam("chart")))
	if chart != "bar" {
		chart = "donut"
	}
	return dashboardFilters{
		Status:  audit.ParseFilter(c.QueryParam("status")),
		Service: strings.TrimSpace(c.QueryParam("service")),
		Query:   strings.TrimSpace(c.QueryParam("q")),
		Chart:   chart,
	}
}

// narrowRows applies the service and free-text filters on top of the status
// filter. An empty service or query leaves rows untouched.
func narrowRows(rows []audit.Row, service, query string) []audit.Row {
	service = strings.TrimSpace(service)
	query = strings.ToLower(strings.TrimSpace(query))
	if service == "" && query == "" {
		return rows
	}
	out := make([]audit.Row, 0, len(rows))
	for _, row := range rows {
		if service != "" && !strings.EqualFold(strings.TrimSpace(row.Service), service) {
			continue
		}
		if query != "" && !rowMatchesQuery(row, query) {
			continue
		}
		out = append(out, row)
	}
	return out
}

func rowMatchesQuery(row audit.Row, loweredQuery string) bool {
	for _, field := range []string{row.ID, row.Title, row.Service} {
		if strings.Contains(strings.ToLower(field), loweredQuery) {
			return true
		}
	}
	return false
}

// HandleDashboard renders the dashboard page. Filter changes arrive as htmx
// requests targeting the results region and get the fragment back.
func (h *Handlers) HandleDashboard(c *echo.Context) error {
	ctx := c.Request().Context()
	start := time.Now()

	def := h.ActiveBenchmark(c)
	filters := parseDashboardFilters(c)

	rows, loadErr := h.LoadRows(ctx, def)
	if loadErr != nil {
		c.Logger().Error("load results", "benchmark", def.Key, "error", loadErr)
	}

	summary := audit.Summarize(rows)
	visible := narrowRows(audit.Apply(rows, filters.Status), filters.Service, filters.Query)
	metrics.RowsVisible.WithLabelValues(def.Key, string(filters.Status)).Set(float64(len(visible)))

	data := viewmodels.DashboardViewData{
		Layout:           h.LayoutData(c, "Dashboard"),
		BenchmarkKey:     def.Key,
		BenchmarkName:    def.Name,
		BenchmarkVersion: def.Version,
		Summary:          summaryViewData(summary),
		Chart:            chartViewData(summary, filters.Chart),
		Filters: viewmodels.DashboardFiltersData{
			Status:           string(filters.Status),
			StatusOptions:    statusOptions(filters.Status),
			Service:          filters.Service,
			ServiceOptions:   serviceOptions(serviceNames(rows), filters.Service),
			Query:            filters.Query,
			Benchmark:        def.Key,
			BenchmarkOptions: benchmarkOptions(h.Catalog.List(), def.Key),
			Chart:            filters.Chart,
		},
		Results: viewmodels.DashboardResultsData{
			Rows:          resultItems(visible),
			TotalCount:    len(rows),
			FilteredCount: len(visible),
			LoadFailed:    loadErr != nil,
		},
	}

	addVary(c, "HX-Request", "HX-Target")
	var err error
	if isHXTarget(c, "dashboard-results") {
		err = h.RenderComponent(c, views.DashboardResults(data))
	} else {
		err = h.RenderComponent(c, views.DashboardPage(data))
	}
	observeRender("dashboard", start, err)
	return err
}

// HandleHealthz returns a simple health check response.
func (h *Handlers) HandleHealthz(c *echo.Context) error {
	return c.String(200, "ok")
}

func summaryViewData(summary audit.Summary) viewmodels.SummaryViewData {
	return viewmodels.SummaryViewData{
		TotalCount:        summary.Total,
		CompliantCount:    summary.Compliant,
		NonCompliantCount: summary.NonCompliant,
		ErroredCount:      summary.Errored,
		UnknownCount:      summary.Unknown,
		ViolationCount:    summary.Violations,
		CompliancePercent: summary.CompliancePercent(),
	}
}

func chartViewData(summary audit.Summary, kind string) viewmodels.ChartViewData {
	counts := []struct {
		status audit.Status
		count  int
	}{
		{audit.StatusCompliant, summary.Compliant},
		{audit.StatusNonCompliant, summary.NonCompliant},
		{audit.StatusError, summary.Errored},
		{audit.StatusUnknown, summary.Unknown},
	}

	segments := make([]viewmodels.ChartSegmentItem, 0, len(counts))
	for _, entry := range counts {
		percent := 0.0
		if summary.Total > 0 {
			percent = float64(entry.count) / float64(summary.Total) * 100
		}
		segments = append(segments, viewmodels.ChartSegmentItem{
			Label:   views.HumanizeCheckStatus(string(entry.status)),
			Count:   entry.count,
			Percent: percent,
			Color:   views.StatusChartColor(string(entry.status)),
		})
	}

	return viewmodels.ChartViewData{
		Kind:     kind,
		Total:    summary.Total,
		Segments: segments,
	}
}

func statusOptions(selected audit.Filter) []viewmodels.SelectOption {
	filters := audit.Filters()
	options := make([]viewmodels.SelectOption, 0, len(filters))
	for _, filter := range filters {
		options = append(options, viewmodels.SelectOption{
			Value:    string(filter),
			Label:    views.HumanizeStatusFilter(string(filter)),
			Selected: filter == selected,
		})
	}
	return options
}

func serviceOptions(names []string, selected string) []viewmodels.SelectOption {
	options := make([]viewmodels.SelectOption, 0, len(names)+1)
	options = append(options, viewmodels.SelectOption{Value: "", Label: "All services", Selected: selected == ""})
	for _, name := range names {
		options = append(options, viewmodels.SelectOption{
			Value:    name,
			Label:    name,
			Selected: strings.EqualFold(name, selected),
		})
	}
	return options
}

func benchmarkOptions(defs []benchmark.Definition, activeKey string) []viewmodels.SelectOption {
	options := make([]viewmodels.SelectOption, 0, len(defs))
	for _, def := range defs {
		options = append(options, viewmodels.SelectOption{
			Value:    def.Key,
			Label:    def.Name,
			Selected: def.Key == activeKey,
		})
	}
	return options
}

func resultItems(rows []audit.Row) []viewmodels.ResultRowItem {
	items := make([]viewmodels.ResultRowItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, viewmodels.ResultRowItem{
			ID:             row.ID,
			Title:          row.Title,
			Service:        row.Service,
			Status:         string(row.Status),
			StatusLabel:    views.HumanizeCheckStatus(string(row.Status)),
			ViolationCount: row.ViolationCount,
			Violations:     row.Violations,
			Error:          row.Error,
		})
	}
	return items
}
