package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aerotools/catalogd/config"
	"github.com/aerotools/catalogd/internal/adminapi"
	"github.com/aerotools/catalogd/internal/app"
	"github.com/aerotools/catalogd/internal/webserver"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	cfile       = flag.String("c", "/etc/catalogd.yml", "config file")
	showVersion = flag.Bool("v", false, "print version and exit")
	initCatalog = flag.Bool("reset", false, "reset the catalog to the built-in defaults and exit")
)

var version = "dev"

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println("catalogd", version)
		return
	}

	cfg := config.LoadConfig(*cfile)
	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	if *initCatalog {
		if _, err := application.Engine().ResetToDefaults(); err != nil {
			zap.S().Fatalf("catalog reset failed: %v", err)
		}
		zap.S().Info("catalog reset to defaults")
		return
	}

	webserver.Init(cfg)
	adminapi.InitRouter(&adminapi.Env{
		Engine: application.Engine(),
		Audit:  application.Audit(),
	})

	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		return webserver.Listen()
	})

	g.Go(func() error {
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
		select {
		case sig := <-sigc:
			zap.S().Infof("received signal %s, shutting down", sig)
		case <-ctx.Done():
		}
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return webserver.Shutdown(sctx)
	})

	if err := g.Wait(); err != nil {
		zap.S().Errorf("catalogd stopped: %v", err)
	}
}
