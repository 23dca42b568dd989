package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/autoaudit/autoaudit/internal/http/viewmodels"
	"github.com/autoaudit/autoaudit/internal/http/views"
	"github.com/autoaudit/autoaudit/internal/metrics"
	"github.com/autoaudit/autoaudit/internal/runlog"
	"github.com/labstack/echo/v5"
)

const runTimestampLayout = "2006-01-02 15:04:05 MST"

// HandleRuns renders the recent run activity page.
func (h *Handlers) HandleRuns(c *echo.Context) error {
	start := time.Now()

	entries := h.RunLog.Entries()
	items := make([]viewmodels.RunRowItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, runRowItem(entry))
	}

	data := viewmodels.RunsViewData{
		Layout: h.LayoutData(c, "Runs"),
		Runs:   items,
	}

	err := h.RenderComponent(c, views.RunsPage(data))
	observeRender("runs", start, err)
	return err
}

func runRowItem(entry runlog.Entry) viewmodels.RunRowItem {
	return viewmodels.RunRowItem{
		ID:         entry.ID,
		ReportedAt: entry.Timestamp.Format(runTimestampLayout),
		User:       entry.User,
		Benchmark:  entry.Benchmark,
		Outcome:    entry.Outcome,
	}
}

// HandleAPIRunsList returns the recorded runs, newest first.
func (h *Handlers) HandleAPIRunsList(c *echo.Context) error {
	entries := h.RunLog.Entries()
	return c.JSON(http.StatusOK, map[string]any{
		"count": len(entries),
		"runs":  entries,
	})
}

type runReport struct {
	User      string `json:"user"`
	Benchmark string `json:"benchmark"`
	Outcome   string `json:"outcome"`
}

// HandleAPIRunsCreate records an externally reported scan run. An empty body
// records a run with defaults; malformed JSON is rejected.
func (h *Handlers) HandleAPIRunsCreate(c *echo.Context) error {
	var rep runReport
	if err := json.NewDecoder(c.Request().Body).Decode(&rep); err != nil && !errors.Is(err, io.EOF) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid run payload")
	}
	if strings.TrimSpace(rep.Benchmark) == "" {
		rep.Benchmark = h.Catalog.Default().Key
	}

	entry := h.RunLog.Record(rep.User, rep.Benchmark, rep.Outcome)
	metrics.RunsRecordedTotal.WithLabelValues(entry.Outcome).Inc()
	return c.JSON(http.StatusOK, map[string]any{"ok": true, "id": entry.ID})
}
