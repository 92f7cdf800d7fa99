package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/vaultpass/pwgen-go/internal/clipboard"
	"github.com/vaultpass/pwgen-go/internal/config"
	"github.com/vaultpass/pwgen-go/internal/crypto"
	"github.com/vaultpass/pwgen-go/internal/handler"
	"github.com/vaultpass/pwgen-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if cfg.RandomSource == config.SourceMath {
		slog.Warn("using non-cryptographic random source")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gen := crypto.NewGenerator(cfg.Source())
	genService := service.NewGeneratorService(gen, cfg.Defaults)

	widget, err := service.NewWidget(gen, clipboard.NewCopier(clipboard.System{}, cfg.CopyReset), cfg.Defaults)
	if err != nil {
		slog.Error("widget init failed", "error", err)
		os.Exit(1)
	}
	defer widget.Close()

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: handler.NewRouter(ctx,
			handler.NewGeneratorHandler(genService),
			handler.NewWidgetHandler(widget),
			cfg.RateRPS, cfg.RateBurst,
		),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Addr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
