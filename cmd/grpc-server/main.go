package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/imagelens/product-analyzer/internal/analyzer"
	"github.com/imagelens/product-analyzer/internal/config"
	"github.com/imagelens/product-analyzer/internal/extract"
	"github.com/imagelens/product-analyzer/internal/gemini"
	"github.com/imagelens/product-analyzer/internal/prompt"
	"github.com/imagelens/product-analyzer/internal/server"
	"github.com/imagelens/product-analyzer/productanalyzerpb"
)

// The gRPC deployment: structured prompt, URL context tool enabled,
// search_info populated, no title truncation, stream errors surfaced
// without a non-streaming fallback.

// maxRecvMsgSize leaves headroom above the 10 MiB image ceiling.
const maxRecvMsgSize = 12 * 1024 * 1024

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	config.LoadEnvFile()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	completer, err := gemini.New(ctx, cfg.APIKey, gemini.Config{
		Model:            cfg.Model,
		Temperature:      ptr(float32(0.7)),
		EnableSearch:     true,
		EnableURLContext: true,
		ThinkingBudget:   ptr(int32(-1)),
		StreamFallback:   false,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize Gemini client")
	}

	svc := analyzer.New(completer, prompt.VariantStructured, extract.Config{
		IncludeSearchInfo: true,
	})

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		log.Fatal().Err(err).Int("port", cfg.GRPCPort).Msg("failed to listen")
	}

	grpcServer := grpc.NewServer(
		grpc.MaxRecvMsgSize(maxRecvMsgSize),
		grpc.NumStreamWorkers(uint32(cfg.GRPCWorkers)),
	)
	productanalyzerpb.RegisterProductAnalyzerServer(grpcServer, server.NewGRPC(svc))

	// Prometheus counters are shared with the HTTP variant, which
	// exposes them on its main listener. Here they need a side listener
	// of their own or they would be unobservable.
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsServer := &http.Server{Addr: cfg.MetricsAddr, Handler: metricsMux}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Int("port", cfg.GRPCPort).Int("workers", cfg.GRPCWorkers).Msg("gRPC server started")
		return grpcServer.Serve(lis)
	})
	g.Go(func() error {
		log.Info().Str("addr", cfg.MetricsAddr).Msg("metrics server started")
		if err := metricsServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutting down gRPC server")
		grpcServer.GracefulStop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return metricsServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && err != grpc.ErrServerStopped {
		log.Error().Err(err).Msg("shutdown with error")
		os.Exit(1)
	}
	log.Info().Msg("shutdown complete")
}

func ptr[T any](v T) *T { return &v }
