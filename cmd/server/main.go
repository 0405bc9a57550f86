package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mohammed-shakir/brightness-trends/internal/cache/redisstore"
	"github.com/mohammed-shakir/brightness-trends/internal/config"
	"github.com/mohammed-shakir/brightness-trends/internal/details"
	"github.com/mohammed-shakir/brightness-trends/internal/ee"
	"github.com/mohammed-shakir/brightness-trends/internal/httpclient"
	"github.com/mohammed-shakir/brightness-trends/internal/logger"
	"github.com/mohammed-shakir/brightness-trends/internal/maplayer"
	"github.com/mohammed-shakir/brightness-trends/internal/observability"
	"github.com/mohammed-shakir/brightness-trends/internal/regionstore"
	"github.com/mohammed-shakir/brightness-trends/internal/server"
	"github.com/mohammed-shakir/brightness-trends/internal/timeseries"
)

var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.FromEnv()

	zl := logger.Build(logger.Config{
		Level:     cfg.LogLevel,
		Console:   strings.ToLower(os.Getenv("LOG_CONSOLE")) == "true",
		Component: "server",
	}, os.Stdout)
	appLog := logger.NewSlog(&zl)

	observability.ExposeBuildInfo(Version)
	appLog.Info("starting server",
		"addr", cfg.Addr,
		"version", Version,
		"analytics", cfg.AnalyticsURL,
		"polygon_dir", cfg.PolygonDir)

	// Everything below must succeed before a single request is served.
	creds, err := ee.LoadCredentials(cfg.EEAccount, cfg.EEPrivateKeyFile)
	if err != nil {
		appLog.Error("failed to load analytics credentials", "err", err)
		return 1
	}

	regions, err := regionstore.New(cfg.PolygonDir)
	if err != nil {
		appLog.Error("failed to load region catalog", "err", err)
		return 1
	}
	appLog.Info("region catalog loaded", "regions", len(regions.IDs()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rc, err := redisstore.New(ctx, cfg.RedisAddr, cfg.CacheOpTimeout)
	if err != nil {
		appLog.Error("failed to connect to redis", "err", err)
		return 1
	}
	defer func() { _ = rc.Close() }()

	eeClient, err := ee.NewClient(appLog, httpclient.NewOutbound(cfg.RemoteTimeout), cfg.AnalyticsURL, creds)
	if err != nil {
		appLog.Error("failed to initialize analytics client", "err", err)
		return 1
	}

	deps := server.Deps{
		Details:   details.New(appLog, regions, rc, timeseries.New(eeClient), cfg.WikiURL, cfg.CacheTTL),
		Overlay:   maplayer.New(appLog, eeClient),
		RegionIDs: regions.IDs(),
	}

	if err := server.Run(ctx, cfg, appLog, deps); err != nil {
		appLog.Error("server exited with error", "err", err)
		return 1
	}
	appLog.Info("server stopped")
	return 0
}
