package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Bahjat/header-insight-tool/internal/analyzer"
	"github.com/Bahjat/header-insight-tool/internal/headers"
	"github.com/Bahjat/header-insight-tool/internal/platform/config"
	"github.com/Bahjat/header-insight-tool/internal/platform/logger"
	"github.com/Bahjat/header-insight-tool/internal/platform/middleware"
	"github.com/Bahjat/header-insight-tool/internal/remediation"
	"github.com/Bahjat/header-insight-tool/internal/web"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(os.Stdout, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	if cfg.GroqAPIKey == "" {
		log.Warn("GROQ_API_KEY is not set; AI summaries will be replaced by an advisory")
	}

	inspector := headers.NewInspector(headers.NewHTTPClient(headers.ClientOptions{}))
	summarizer := remediation.NewClient(cfg.GroqAPIKey, cfg.GroqEndpoint)
	svc := analyzer.NewService(inspector, summarizer, log)

	mux := http.NewServeMux()
	analyzer.NewTransport(svc, log).RegisterRoutes(mux)
	web.RegisterRoutes(mux)

	var handler http.Handler = mux
	handler = middleware.SecurityHeaders(handler)
	handler = middleware.CORS(handler)
	handler = middleware.Logging(log)(handler)
	handler = middleware.RequestID(handler)

	srv := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
