// Command seed loads a portfolio YAML file into MongoDB. Run it once
// against an empty database; collection records are appended on every
// run, only the profile and skills singletons are idempotent.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/likith1908/portfolio-api/internal/config"
	"github.com/likith1908/portfolio-api/internal/logger"
	"github.com/likith1908/portfolio-api/internal/seed"
	mongostore "github.com/likith1908/portfolio-api/internal/store/mongo"
)

func main() {
	file := flag.String("file", "seed/portfolio.yaml", "path to the portfolio seed file")
	flag.Parse()

	cfg := config.Load()
	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	f, err := seed.NewLoader(*file).Load()
	if err != nil {
		log.Fatalf("❌ seed failed: %v", err)
	}

	client, err := mongostore.Connect(mongostore.ConnectOptions{
		URL:            cfg.MongoURL,
		ConnectTimeout: cfg.MongoConnectTotal,
		RetryInterval:  cfg.MongoRetryInterval,
		MaxWait:        cfg.MongoMaxWait,
		PingTimeout:    cfg.MongoPingTimeout,
		WarnThreshold:  cfg.MongoWarnThreshold,
	}, loggerClient)
	if err != nil {
		log.Fatalf("❌ seed failed: %v", err)
	}

	st := mongostore.NewStore(client, cfg.DBName)
	ctx := context.Background()
	defer func() {
		if err := st.Close(ctx); err != nil {
			loggerClient.Warnf("failed to close mongodb: %v", err)
		}
	}()

	if err := seed.NewSeeder(st, loggerClient).Run(ctx, f); err != nil {
		log.Fatalf("❌ seed failed: %v", err)
	}
}
