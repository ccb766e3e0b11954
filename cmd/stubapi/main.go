package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"healthshop-client/internal/config"
	"healthshop-client/internal/stubserver"
)

func main() {
	cfg := config.StubFromEnv()
	logger := log.New(os.Stdout, "[stubapi] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	srv := stubserver.New(cfg, logger)
	if cfg.CatalogFile != "" {
		if err := srv.LoadCatalog(cfg.CatalogFile); err != nil {
			logger.Fatalf("load catalog: %v", err)
		}
		logger.Printf("catalog loaded from %s", cfg.CatalogFile)
	} else {
		srv.Seed()
		logger.Printf("seeded built-in demo catalog")
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
