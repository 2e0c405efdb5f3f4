package adminapi

import (
	"net/http"
	"time"

	"github.com/aerotools/catalogd/internal/webserver"
	"github.com/aerotools/catalogd/pkg/metrics"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"
)

func registerMetricsRoutes() {
	webserver.ApiGET("/metrics/summary", metricsSummary)
	webserver.ApiGET("/audit", auditTail)
}

// metricsSummary reports the recent window of every series the service
// records. The window defaults to one hour and is capped at a week.
func metricsSummary(c echo.Context) error {
	window := time.Duration(cast.ToInt(c.QueryParam("minutes"))) * time.Minute
	if window <= 0 {
		window = time.Hour
	}
	if window > 7*24*time.Hour {
		window = 7 * 24 * time.Hour
	}

	names := []string{
		metrics.CatalogMutations,
		metrics.CatalogSize,
		metrics.CatalogSyncPush,
		metrics.CatalogSyncFailure,
		metrics.SystemCPUUse,
		metrics.SystemMemUse,
	}
	out := make([]metrics.SummaryStats, 0, len(names))
	for _, name := range names {
		out = append(out, metrics.Summary(name, window))
	}
	return ok(c, out)
}

func auditTail(c echo.Context) error {
	logger := GetAudit(c)
	if logger == nil {
		return fail(c, http.StatusServiceUnavailable, "AUDIT_DISABLED", "audit trail is not enabled", nil)
	}
	n := cast.ToInt(c.QueryParam("limit"))
	if n <= 0 || n > 1000 {
		n = 100
	}
	entries, err := logger.Tail(n)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "cannot read audit trail", err.Error())
	}
	return ok(c, entries)
}
