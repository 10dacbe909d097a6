// @title        Wallet Store API
// @version      1.0
// @description  Local persistence backend for the desktop wallet keystore and address.
// @host         localhost:8080
// @BasePath     /
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlexZinkM/wallet-store/internal/api"
	"github.com/AlexZinkM/wallet-store/internal/config"
	"github.com/AlexZinkM/wallet-store/internal/hostenv"
	"github.com/AlexZinkM/wallet-store/internal/logger"
	"github.com/AlexZinkM/wallet-store/internal/store"
)

func main() {
	if err := config.Init(); err != nil {
		log.Fatal(err)
	}
	logger.Init(config.GetLogLevel())

	provider := hostenv.FromConfig(config.GetConfigDir(), config.GetAppIdentifier())
	walletStore, err := store.New(provider, store.WithAtomicWrites(config.AtomicWritesEnabled()))
	if err != nil {
		slog.Error("cannot resolve wallet directory", "error", err)
		os.Exit(1)
	}
	slog.Info("wallet store ready", "dir", walletStore.Dir(), "atomic_writes", config.AtomicWritesEnabled())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if config.WatchEnabled() {
		err := walletStore.Watch(ctx, func(e store.Event) {
			slog.Info("wallet file changed", "record", string(e.Record), "op", e.Op.String(), "path", e.Path)
		})
		if err != nil {
			slog.Warn("wallet watcher not started", "error", err)
		}
	}

	rps, burst := config.GetRateLimit()
	router, err := api.SetupRouter(walletStore, api.Options{
		AddressRecord:  config.AddressRecordEnabled(),
		RateLimitRPS:   rps,
		RateLimitBurst: burst,
	})
	if err != nil {
		slog.Error("failed to set up router", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort("127.0.0.1", config.GetPort()),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown failed", "error", err)
		}
	}()

	slog.Info("listening", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
