package main

import (
	"context"
	"expvar"
	"log"
	"net/http"
	_ "net/http/pprof"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	dig_container "github.com/trezcool/genmo/apps/api/di/dig"
	echoapi "github.com/trezcool/genmo/apps/api/echo"
	"github.com/trezcool/genmo/core"
	logsvc "github.com/trezcool/genmo/services/logger"
)

func main() {
	c := dig_container.New()

	err := c.Invoke(func(
		conf *core.Config,
		zl *logsvc.ZapLogger,
		logger core.Logger,
		kv core.KVStore,
		server *echoapi.Server,
		shutdown dig_container.Shutdown,
	) {
		defer zl.Sync()
		defer func() {
			if err := kv.Close(); err != nil {
				logger.Error("closing storage", "error", err)
			}
		}()
		defer logger.Info("Application stopped")

		logger.Info("Application initializing", "version", conf.Build, "storage", conf.Storage.Backend)

		// =========================================================================
		// Start Debug Service
		//
		// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
		// /debug/vars - Added to the default mux by importing the expvar package.

		// Expose important info under /debug/vars.
		expvar.NewString("build").Set(conf.Build)
		expvar.NewString("env").Set(conf.Env)

		debugSrv := &http.Server{Addr: conf.Server.DebugHost, Handler: http.DefaultServeMux}

		var g errgroup.Group
		g.Go(func() error {
			if err := debugSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("debug server closed", "error", err)
			}
			return nil
		})

		// =========================================================================
		// Start API Service

		apiErrors := make(chan error, 1)
		g.Go(func() error {
			err := server.Start()
			apiErrors <- err
			return err
		})

		// =========================================================================
		// Shutdown

		select {
		case err := <-apiErrors:
			if err != nil {
				logger.Error("server error", "error", err)
			}

		case sig := <-shutdown:
			logger.Info("Start shutdown...", "signal", sig.String())

			// give outstanding requests a deadline for completion
			ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
			defer cancel()

			if err := server.Stop(ctx); err != nil {
				logger.Error("could not stop server gracefully", "error", err)
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()
		if err := debugSrv.Shutdown(ctx); err != nil {
			logger.Error("could not stop debug server", "error", err)
		}

		if err := g.Wait(); err != nil {
			logger.Error("shutdown", "error", errors.Wrap(err, "waiting for servers"))
		}
	})
	if err != nil {
		log.Fatal(err)
	}
}
