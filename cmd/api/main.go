package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hwmgr-labs/hardware-manager-backend/config"
	httpapi "github.com/hwmgr-labs/hardware-manager-backend/internal/api/http"
	"github.com/hwmgr-labs/hardware-manager-backend/internal/bootstrap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: cfg.App.ServiceName,
		Version:     cfg.App.Version,
		Static:      cfg.Static,
		CORS:        cfg.CORS,
		RateLimit:   cfg.RateLimit,
		Metrics:     httpapi.NewMetrics(),
	})

	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: r,
	}

	go func() {
		log.Printf("[info] %s %s listening on %s (static=%s)", cfg.App.ServiceName, cfg.App.Version, srv.Addr, cfg.Static.Dir)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Println("[info] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[warn] graceful shutdown failed: %v", err)
	}
}
