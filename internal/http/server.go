package httpapp

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/autoaudit/autoaudit/internal/http/handlers"
	"github.com/google/uuid"
	"github.com/labstack/echo/v5"
)

// EchoServer is the HTTP server wrapper.
type EchoServer struct {
	h *handlers.Handlers
	e *echo.Echo
}

// NewEchoServer creates a new HTTP server around the given handlers.
func NewEchoServer(h *handlers.Handlers, logger *slog.Logger) *EchoServer {
	e := echo.New()
	if logger != nil {
		e.Logger = logger
	}

	es := &EchoServer{h: h, e: e}
	e.HTTPErrorHandler = es.httpErrorHandler
	e.Use(requestIDMiddleware())
	es.registerRoutes()
	return es
}

func (es *EchoServer) registerRoutes() {
	es.e.GET("/healthz", es.h.HandleHealthz)

	es.e.GET("/", es.h.HandleDashboard)
	es.e.GET("/checks/:id", es.h.HandleCheckDetail)
	es.e.GET("/runs", es.h.HandleRuns)
	es.e.GET("/export.csv", es.h.HandleExportCSV)
	es.e.GET("/export.pdf", es.h.HandleExportPDF)

	api := es.e.Group("/api")
	api.GET("/summary", es.h.HandleAPISummary)
	api.GET("/checks", es.h.HandleAPIChecks)
	api.GET("/runs", es.h.HandleAPIRunsList)
	api.POST("/runs", es.h.HandleAPIRunsCreate)
}

// Handler exposes the router for mounting on an http.Server.
func (es *EchoServer) Handler() http.Handler {
	return es.e
}

// requestIDMiddleware tags every request with an id used in logs and in the
// reference shown on error pages. An inbound X-Request-ID is trusted as-is.
func requestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			id := strings.TrimSpace(c.Request().Header.Get(echo.HeaderXRequestID))
			if id == "" {
				id = uuid.NewString()
			}
			c.Set(handlers.ContextKeyRequestID, id)
			c.Response().Header().Set(echo.HeaderXRequestID, id)
			return next(c)
		}
	}
}

// httpErrorHandler keeps error responses generic. Client errors get the bare
// status text, everything else goes through RenderError so details stay in
// the log and never reach the response body.
func (es *EchoServer) httpErrorHandler(c *echo.Context, err error) {
	if r, _ := echo.UnwrapResponse(c.Response()); r != nil && r.Committed {
		return
	}

	status := httpStatusFromError(err)
	switch {
	case status == http.StatusNotFound:
		_ = c.String(http.StatusNotFound, "404 page not found")
	case status >= 400 && status < 500:
		_ = c.String(status, http.StatusText(status))
	default:
		_ = es.h.RenderError(c, err)
	}
}

func httpStatusFromError(err error) int {
	var coder interface{ StatusCode() int }
	if errors.As(err, &coder) {
		return coder.StatusCode()
	}
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	return http.StatusInternalServerError
}
