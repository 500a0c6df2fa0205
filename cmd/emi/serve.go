package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/loanlens/emi-calculator/internal/config"
	"github.com/loanlens/emi-calculator/internal/output"
	"github.com/loanlens/emi-calculator/internal/repository"
	"github.com/loanlens/emi-calculator/internal/server"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var (
		addr     string
		envFiles []string
		labels   string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := config.LoadServerSettings(envFiles...)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				settings.Addr = addr
			}
			if !cmd.Flags().Changed("log-level") {
				if lvl, err := logrus.ParseLevel(settings.LogLevel); err == nil {
					root.logger.SetLevel(lvl)
				}
			}
			configFile := root.configFile
			if configFile == "" {
				configFile = settings.ConfigFile
			}
			cfg, err := loadConfiguration(configFile)
			if err != nil {
				return err
			}
			engine, err := newEngine(cfg, root.logger)
			if err != nil {
				return err
			}
			style, err := output.ParseLabelStyle(labels)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cache := newCache(ctx, settings, root.logger)
			if closer, ok := cache.(interface{ Close() error }); ok {
				defer closer.Close()
			}

			srv := server.New(server.Dependencies{
				Engine:   engine,
				Cache:    cache,
				Logger:   root.logger,
				Settings: *settings,
				Labels:   style,
			})
			return srv.Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address (overrides SERVER_ADDR)")
	cmd.Flags().StringSliceVar(&envFiles, "env-file", nil, "env files to load (default .env)")
	cmd.Flags().StringVar(&labels, "labels", "index", "chart labels: index or month")
	return cmd
}

// newCache prefers Redis when configured and reachable, otherwise memory.
func newCache(ctx context.Context, settings *config.ServerSettings, logger *logrus.Logger) repository.CacheRepository {
	if settings.RedisAddr == "" {
		return repository.NewMemoryCache(settings.CacheTTL)
	}
	rc := repository.NewRedisCache(repository.RedisOptions{
		Addr:     settings.RedisAddr,
		Password: settings.RedisPassword,
		DB:       settings.RedisDB,
		TTL:      settings.CacheTTL,
	})
	if err := rc.Ping(ctx); err != nil {
		logger.WithError(err).WithField("addr", settings.RedisAddr).Warn("redis unreachable, using in-memory cache")
		_ = rc.Close()
		return repository.NewMemoryCache(settings.CacheTTL)
	}
	logger.WithField("addr", settings.RedisAddr).Info("using redis cache")
	return rc
}
