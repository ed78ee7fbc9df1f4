package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/likith1908/portfolio-api/internal/config"
	"github.com/likith1908/portfolio-api/internal/httpserver"
	"github.com/likith1908/portfolio-api/internal/httpserver/deps"
	"github.com/likith1908/portfolio-api/internal/logger"
	"github.com/likith1908/portfolio-api/internal/store"
	mongostore "github.com/likith1908/portfolio-api/internal/store/mongo"
	"github.com/likith1908/portfolio-api/internal/version"
)

type App struct {
	cfg    *config.Config
	logger logger.Logger
	server *httpserver.Server
	store  store.Store
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Connect to MongoDB early - fail fast if unavailable.
	client, err := mongostore.Connect(mongostore.ConnectOptions{
		URL:            cfg.MongoURL,
		ConnectTimeout: cfg.MongoConnectTotal,
		RetryInterval:  cfg.MongoRetryInterval,
		MaxWait:        cfg.MongoMaxWait,
		PingTimeout:    cfg.MongoPingTimeout,
		WarnThreshold:  cfg.MongoWarnThreshold,
	}, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to connect to MongoDB: %v", err)
		os.Exit(1)
	}

	st := mongostore.NewStore(client, cfg.DBName)
	loggerClient.Infof("MongoDB initialized, database %q", cfg.DBName)

	if cfg.AdminToken == "" && len(cfg.AdminCIDRs) == 0 {
		loggerClient.Warn("contact submissions listing is unprotected; set PORTFOLIO_ADMIN_TOKEN or PORTFOLIO_ADMIN_CIDRS")
	} else {
		loggerClient.Info("contact submissions guards configured",
			logger.Bool("token", cfg.AdminToken != ""),
			logger.Bool("cidr_allowlist", len(cfg.AdminCIDRs) > 0))
	}

	d := deps.Deps{
		Logger:              loggerClient,
		Store:               st,
		StartTime:           time.Now(),
		Version:             version.Version,
		AdminToken:          cfg.AdminToken,
		AdminCIDRs:          cfg.AdminCIDRs,
		TrustProxy:          cfg.TrustProxy,
		ContactBurst:        cfg.ContactBurst,
		ContactRefillPerMin: cfg.ContactRefillPerMin,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:    cfg,
		logger: loggerClient,
		server: server,
		store:  st,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting Portfolio API v%s on %s", version.Version, a.cfg.ListenAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if err := a.store.Close(shutdownCtx); err != nil {
		a.logger.Warnf("failed to close mongodb: %v", err)
	} else {
		a.logger.Info("✅ MongoDB closed cleanly")
	}

	a.logger.Info("✅ Portfolio API stopped cleanly")
	return nil
}
