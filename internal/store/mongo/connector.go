package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/likith1908/portfolio-api/internal/logger"
)

// ConnectOptions defines MongoDB connection retry behavior.
type ConnectOptions struct {
	URL            string        // connection string (ex: "mongodb://localhost:27017")
	ConnectTimeout time.Duration // total time allowed for connection attempts (ex: 30s)
	RetryInterval  time.Duration // initial wait between retries (grows exponentially)
	MaxWait        time.Duration // max wait between retries
	PingTimeout    time.Duration // timeout for each ping attempt
	WarnThreshold  int           // warn (instead of error) up to this many attempts
}

func (o ConnectOptions) validate() error {
	if o.ConnectTimeout <= 0 {
		return fmt.Errorf("ConnectTimeout must be > 0, got %v", o.ConnectTimeout)
	}
	if o.RetryInterval <= 0 {
		return fmt.Errorf("RetryInterval must be > 0, got %v", o.RetryInterval)
	}
	if o.MaxWait <= 0 {
		return fmt.Errorf("MaxWait must be > 0, got %v", o.MaxWait)
	}
	if o.PingTimeout <= 0 {
		return fmt.Errorf("PingTimeout must be > 0, got %v", o.PingTimeout)
	}
	return nil
}

// Connect creates a MongoDB client and pings it until it answers or
// ConnectTimeout elapses, backing off exponentially between attempts.
func Connect(opts ConnectOptions, log logger.Logger) (*mongo.Client, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(opts.URL))
	if err != nil {
		return nil, fmt.Errorf("creating mongo client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.ConnectTimeout)
	defer cancel()

	log.Info("connecting to mongodb", logger.Duration("timeout", opts.ConnectTimeout))

	start := time.Now()
	attempt := 0
	wait := opts.RetryInterval

	for {
		attempt++

		pingCtx, pingCancel := context.WithTimeout(ctx, opts.PingTimeout)
		err = client.Ping(pingCtx, readpref.Primary())
		pingCancel()

		if err == nil {
			if attempt > 1 {
				log.Warn("connected to mongodb after retry",
					logger.Int("attempts", attempt),
					logger.Duration("elapsed", time.Since(start)))
			} else {
				log.Info("connected to mongodb")
			}
			return client, nil
		}

		select {
		case <-ctx.Done():
			_ = client.Disconnect(context.Background())
			return nil, fmt.Errorf("mongodb unreachable after %v (%d attempts): %w",
				opts.ConnectTimeout, attempt, err)
		case <-time.After(wait):
		}

		if attempt <= opts.WarnThreshold {
			log.Warn("mongodb connection failed, retrying",
				logger.Int("attempt", attempt),
				logger.Duration("next_retry_in", wait),
				logger.Error(err))
		} else {
			log.Error("mongodb still unavailable - connection attempts failing",
				logger.Int("attempt", attempt),
				logger.Duration("next_retry_in", wait),
				logger.Error(err))
		}

		wait *= 2
		if wait > opts.MaxWait {
			wait = opts.MaxWait
		}
	}
}
