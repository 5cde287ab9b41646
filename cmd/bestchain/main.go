package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/bestchain7000/internal/chain"
	"github.com/goodnatureofminers/bestchain7000/internal/emit"
	"github.com/goodnatureofminers/bestchain7000/internal/header"
	"github.com/goodnatureofminers/bestchain7000/internal/metrics"
	"github.com/goodnatureofminers/bestchain7000/internal/model"
	"github.com/goodnatureofminers/bestchain7000/internal/service"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	Input       string         `long:"input" env:"BESTCHAIN_INPUT" description:"path to the header records file; stdin when empty"`
	Output      string         `long:"output" env:"BESTCHAIN_OUTPUT" description:"path for the best chain hashes; stdout when empty"`
	WorkMode    model.WorkMode `long:"work-mode" env:"BESTCHAIN_WORK_MODE" description:"aggregate work computation" choice:"proxy" choice:"target" default:"proxy"`
	Workers     int            `long:"workers" env:"BESTCHAIN_WORKERS" description:"tip evaluation worker count" default:"4"`
	MetricsAddr string         `long:"metrics-addr" env:"BESTCHAIN_METRICS_ADDR" description:"address for the metrics server; disabled when empty"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if !cfg.WorkMode.Valid() {
		logger.Fatal("unknown work mode", zap.String("work_mode", string(cfg.WorkMode)))
	}
	if cfg.Workers < 1 {
		logger.Fatal("worker count must be positive", zap.Int("workers", cfg.Workers))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("bestchain failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	in, closeIn, err := openInput(cfg.Input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer closeIn()

	out, closeOut, err := openOutput(cfg.Output)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	defer closeOut()

	pipeline, err := service.NewPipeline(
		header.NewReader(in, logger),
		chain.NewSelector(cfg.WorkMode, cfg.Workers, logger),
		emit.NewEmitter(out, logger),
		metrics.NewPipeline(),
		logger,
	)
	if err != nil {
		return err
	}

	return pipeline.Run(ctx)
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
