// Package main provides the CLI entrypoint for the topics service.
// It wires subcommands (serve, enroll, migrate, jwt), loads configuration, and initializes logging.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"

	"topics/internal/config"
	"topics/internal/enrollment"
	"topics/pkg/directory"
	"topics/pkg/directory/httpdirectory"
	"topics/pkg/logger"
	"topics/pkg/storage/postgres"
	"topics/pkg/topiccache"
	redistopiccache "topics/pkg/topiccache/redis"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
		InsertChunkSize:    cfg.Database.InsertChunkSize,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// getDirectory returns the subscriber directory selected by configuration.
// The postgres driver reads the subscribers table of the service database.
func getDirectory(cfg *config.Config, pgsql *postgres.PgSQL) directory.Directory {
	if cfg.Directory.Driver == config.DirectoryDriverHTTP {
		return httpdirectory.New(&http.Client{Timeout: cfg.Directory.Timeout}, httpdirectory.Options{
			BaseURL:   cfg.Directory.BaseURL,
			Token:     cfg.Directory.Token,
			BatchSize: cfg.Directory.BatchSize,
		})
	}

	return pgsql
}

// getTopicCache returns the Redis topic cache when enabled, and a no-op cache otherwise.
func getTopicCache(ctx context.Context, cfg *config.Config) (topiccache.Cache, func()) {
	if !cfg.Redis.Enabled {
		return topiccache.Noop{}, func() {}
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		// the cache is optional, enrollment keeps working against postgres
		logger.Warn(ctx, "could not reach redis", zap.Error(err))
	}

	return redistopiccache.New(client, redistopiccache.Options{TTL: cfg.Redis.TTL}), func() {
		logger.Info(ctx, "closing redis client...")
		if err := client.Close(); err != nil {
			logger.Warn(ctx, "could not close redis connection", zap.Error(err))
		}
	}
}

// getEnroller wires storage, directory and cache into an enrollment.Enroller.
// A nil meterProvider falls back to the global otel provider.
func getEnroller(
	ctx context.Context,
	cfg *config.Config,
	pgsql *postgres.PgSQL,
	meterProvider metric.MeterProvider,
) (enrollment.Enroller, func()) {
	cache, closeCache := getTopicCache(ctx, cfg)

	opts := enrollment.NewOptions(cfg)
	opts.MeterProvider = meterProvider
	enroller, err := enrollment.New(pgsql, getDirectory(cfg, pgsql), cache, opts)
	if err != nil {
		logger.Fatal(ctx, "could not create enroller", zap.Error(err))
	}

	return enroller, closeCache
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use: "topics",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	configPath := flag.String("c", "config.yml", "The config file path")
	flag.Parse()

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file", err)
	}

	logger.Setup(cfg.Environment)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
		enrollCommand(cfg),
		JWTCommand(cfg),
	)

	err = rootCmd.Execute()
	logger.Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
