package adminapi

import (
	"errors"
	"net/http"

	"github.com/aerotools/catalogd/internal/audit"
	"github.com/aerotools/catalogd/internal/catalog"
	"github.com/aerotools/catalogd/internal/webserver"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"
)

const envContextKey = "catalogd_env"

// Env carries the services the handlers need; it is injected into the
// echo context so handlers stay plain functions.
type Env struct {
	Engine *catalog.Engine
	Audit  *audit.Logger
}

// InitRouter installs the env middleware and registers every admin
// route against the web server.
func InitRouter(env *Env) {
	webserver.UseApi(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(envContextKey, env)
			return next(c)
		}
	})
	registerProductRoutes()
	registerReportRoutes()
	registerMetricsRoutes()
}

// GetEngine returns the catalog engine bound to this request.
func GetEngine(c echo.Context) *catalog.Engine {
	return c.Get(envContextKey).(*Env).Engine
}

// GetAudit returns the audit trail bound to this request, possibly nil.
func GetAudit(c echo.Context) *audit.Logger {
	return c.Get(envContextKey).(*Env).Audit
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, echo.Map{"code": 0, "data": data})
}

// okList returns a mutation result. A degraded write-through keeps the
// 200 but carries a persistWarning so the UI can tell the user changes
// may not survive a restart.
func okList(c echo.Context, list interface{}, perr error) error {
	body := echo.Map{"code": 0, "data": list}
	if perr != nil {
		body["persistWarning"] = perr.Error()
	}
	return c.JSON(http.StatusOK, body)
}

func fail(c echo.Context, status int, code, msg string, detail interface{}) error {
	return c.JSON(status, echo.Map{"code": 1, "error": code, "msg": msg, "detail": detail})
}

func paged(c echo.Context, rows interface{}, total int64, page, pageSize int) error {
	return c.JSON(http.StatusOK, echo.Map{
		"code": 0, "data": rows, "total": total, "page": page, "perPage": pageSize,
	})
}

func parsePagination(c echo.Context) (page, pageSize int) {
	page = cast.ToInt(c.QueryParam("page"))
	if page <= 0 {
		page = 1
	}
	pageSize = cast.ToInt(c.QueryParam("perPage"))
	if pageSize <= 0 || pageSize > 500 {
		pageSize = 20
	}
	return page, pageSize
}

func isPersistenceError(err error) bool {
	var pe *catalog.PersistenceError
	return errors.As(err, &pe)
}

// failFromError maps the catalog error taxonomy onto the API envelope.
func failFromError(c echo.Context, err error) error {
	switch e := err.(type) {
	case *catalog.ValidationError:
		return fail(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Product failed validation", e.Fields)
	case *catalog.NotFoundError:
		return fail(c, http.StatusNotFound, "NOT_FOUND", e.Error(), nil)
	case *catalog.ImportError:
		status := http.StatusBadRequest
		if e.Reason == catalog.ReasonInvalid {
			status = http.StatusUnprocessableEntity
		}
		return fail(c, status, e.Reason, e.Error(), e.Records)
	default:
		return fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
	}
}
