package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"topics/internal/api"
	"topics/internal/api/handler/v1handler"
	"topics/internal/config"
	"topics/internal/enrollment"
	"topics/internal/worker"
	"topics/pkg/logger"
	"topics/pkg/storage/postgres"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, enroller enrollment.Enroller) func(ctx context.Context) {
	server, err := api.NewServer(api.Deps{
		Deps: v1handler.Deps{Enroller: enroller},
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func setupWorkers(
	ctx context.Context,
	cfg *config.Config,
	pgsql *postgres.PgSQL,
	enroller enrollment.Enroller,
) func(ctx context.Context) {
	riverClient, err := worker.Start(ctx, pgsql.Pool, enroller, worker.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not start workers", zap.Error(err))
	}
	logger.Info(ctx, "workers started", zap.Int("maxWorkers", cfg.Worker.MaxWorkers))

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping workers...")
		if err := riverClient.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop workers", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			meterProvider, err := api.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}

			pgsql, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			enroller, closeCache := getEnroller(ctx, cfg, pgsql, meterProvider)
			defer closeCache()

			// workers outlive the signal context so in-flight jobs can finish during shutdown
			stopWorkers := setupWorkers(context.WithoutCancel(ctx), cfg, pgsql, enroller)
			stopWebserver := setupServer(ctx, cfg, enroller)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorkers(shutdownCtx)
			if err := meterProvider.Shutdown(shutdownCtx); err != nil {
				logger.Warn(ctx, "could not shutdown meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
