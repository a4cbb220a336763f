package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/imagelens/product-analyzer/internal/analyzer"
	"github.com/imagelens/product-analyzer/internal/config"
	"github.com/imagelens/product-analyzer/internal/extract"
	"github.com/imagelens/product-analyzer/internal/gemini"
	"github.com/imagelens/product-analyzer/internal/prompt"
	"github.com/imagelens/product-analyzer/internal/server"
)

// The HTTP deployment: plain prompt, search tool only, search_info
// dropped from responses, titles longer than 100 characters truncated,
// and a one-shot non-streaming fallback when streaming fails.

const (
	httpModel      = "gemini-2.0-flash-exp"
	titleLimit     = 100
	shutdownWindow = 10 * time.Second
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	config.LoadEnvFile()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	model := cfg.Model
	if model == "" {
		model = httpModel
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	completer, err := gemini.New(ctx, cfg.APIKey, gemini.Config{
		Model:          model,
		EnableSearch:   true,
		StreamFallback: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize Gemini client")
	}

	svc := analyzer.New(completer, prompt.VariantPlain, extract.Config{
		TitleLimit: titleLimit,
	})

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: server.NewHTTP(svc).Handler(),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("HTTP server started")
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownWindow)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("shutdown with error")
		os.Exit(1)
	}
	log.Info().Msg("shutdown complete")
}
