package webserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aerotools/catalogd/config"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// server is the process-wide web server instance; adminapi registers
// its routes against it through the Api* helpers.
var server *WebServer

type WebServer struct {
	cfg  *config.AppConfig
	root *echo.Echo
	api  *echo.Group
}

// Init builds the echo instance with recover and zap request logging
// middleware and the /api route group.
func Init(cfg *config.AppConfig) *WebServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(zapLogger)

	server = &WebServer{
		cfg:  cfg,
		root: e,
		api:  e.Group("/api"),
	}
	return server
}

// Listen serves until the listener fails or Shutdown is called.
func Listen() error {
	addr := fmt.Sprintf("%s:%d", server.cfg.Web.Host, server.cfg.Web.Port)
	zap.S().Infof("admin api listening on %s", addr)
	err := server.root.Start(addr)
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func Shutdown(ctx context.Context) error {
	return server.root.Shutdown(ctx)
}

// UseApi attaches middleware to the /api group (context injection etc.).
func UseApi(m ...echo.MiddlewareFunc) {
	server.api.Use(m...)
}

func ApiGET(path string, h echo.HandlerFunc)    { server.api.GET(path, h) }
func ApiPOST(path string, h echo.HandlerFunc)   { server.api.POST(path, h) }
func ApiPUT(path string, h echo.HandlerFunc)    { server.api.PUT(path, h) }
func ApiDELETE(path string, h echo.HandlerFunc) { server.api.DELETE(path, h) }

// zapLogger logs one line per request with the structured fields the
// rest of the service uses.
func zapLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}
		zap.L().Info("http request",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.Int("status", c.Response().Status),
			zap.Duration("latency", time.Since(start)),
		)
		return err
	}
}
