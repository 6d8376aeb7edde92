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

	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"

	"github.com/napolitain/alchemy/internal/alchemy"
	"github.com/napolitain/alchemy/internal/config"
	"github.com/napolitain/alchemy/internal/growth"
	"github.com/napolitain/alchemy/internal/logger"
	"github.com/napolitain/alchemy/internal/metrics"
	"github.com/napolitain/alchemy/internal/rpc"
)

const (
	serviceName     = "alchemy-server"
	shutdownTimeout = 5 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		color.Red("Failed to load config: %v", err)
		os.Exit(1)
	}
	log := logger.Init(cfg.LoggerConfig(serviceName))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// newGRPCServer builds the gRPC server with the alchemy service registered
func newGRPCServer(cfg *config.Config, log *slog.Logger) (*grpc.Server, error) {
	curves, err := growth.NewMemo(growth.Default(), cfg.CurveCacheSize)
	if err != nil {
		return nil, err
	}

	// The discount breakdown is only logged while developing
	var diag *slog.Logger
	if cfg.Development() {
		diag = log
	}

	s := grpc.NewServer(grpc.ChainUnaryInterceptor(
		metrics.UnaryServerInterceptor(),
		rpc.LoggingInterceptor(log),
	))
	rpc.RegisterAlchemyServer(s, rpc.NewServer(alchemy.NewCalculator(curves, diag)))
	return s, nil
}

// newMetricsServer serves the Prometheus registry, or returns nil when disabled
func newMetricsServer(addr string) *http.Server {
	if addr == "" {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// run serves until ctx is done, then stops gracefully
func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	lis, err := net.Listen("tcp", cfg.GRPCAddr())
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	return serve(ctx, lis, cfg, log)
}

func serve(ctx context.Context, lis net.Listener, cfg *config.Config, log *slog.Logger) error {
	s, err := newGRPCServer(cfg, log)
	if err != nil {
		return err
	}

	errCh := make(chan error, 2)

	metricsSrv := newMetricsServer(cfg.MetricsAddr)
	if metricsSrv != nil {
		go func() {
			log.Info("metrics listening", "addr", cfg.MetricsAddr)
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("metrics server: %w", err)
			}
		}()
	}

	go func() {
		log.Info("gRPC server listening", "addr", lis.Addr().String(), "environment", cfg.Environment)
		if err := s.Serve(lis); err != nil {
			errCh <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err = <-errCh:
	}

	stopped := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(shutdownTimeout):
		s.Stop()
	}

	if metricsSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = metricsSrv.Shutdown(shutdownCtx)
	}
	return err
}
