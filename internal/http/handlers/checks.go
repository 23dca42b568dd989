package handlers

import (
	"strings"
	"time"

	"github.com/autoaudit/autoaudit/internal/audit"
	"github.com/autoaudit/autoaudit/internal/http/viewmodels"
	"github.com/autoaudit/autoaudit/internal/http/views"
	"github.com/labstack/echo/v5"
)

// HandleCheckDetail renders a single control looked up by row ID.
func (h *Handlers) HandleCheckDetail(c *echo.Context) error {
	ctx := c.Request().Context()
	start := time.Now()

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return RenderNotFound(c)
	}

	def := h.ActiveBenchmark(c)
	rows, loadErr := h.LoadRows(ctx, def)
	if loadErr != nil {
		c.Logger().Error("load results", "benchmark", def.Key, "error", loadErr)
	}

	for _, row := range rows {
		if row.ID != id {
			continue
		}
		data := viewmodels.CheckDetailViewData{
			Layout:        h.LayoutData(c, row.ID),
			BenchmarkKey:  def.Key,
			BenchmarkName: def.Name,
			Check:         resultItems([]audit.Row{row})[0],
		}
		err := h.RenderComponent(c, views.CheckDetailPage(data))
		observeRender("check_detail", start, err)
		return err
	}

	return RenderNotFound(c)
}
