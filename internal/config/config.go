package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenAddr      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	// MongoDB
	MongoURL           string        // ex: "mongodb://localhost:27017"
	DBName             string        // database name, default "portfolio"
	MongoConnectTotal  time.Duration // total time to retry connecting (ex: 30s)
	MongoRetryInterval time.Duration // initial wait between retries (grows exponentially)
	MongoMaxWait       time.Duration // max wait between retries
	MongoPingTimeout   time.Duration // timeout for each ping attempt
	MongoWarnThreshold int           // warn after this many attempts

	// Access restrictions on the contact submissions listing
	AdminToken string   // optional bearer token; empty = endpoint stays open
	AdminCIDRs []string // optional IP/CIDR allowlist; empty = no filtering
	TrustProxy bool     // true => trust X-Forwarded-For headers

	// Public surface
	CORSOrigins         []string // allowed CORS origins, default ["*"]
	ContactBurst        int      // token-bucket burst for POST /api/contact
	ContactRefillPerMin int      // token-bucket refill rate per IP per minute
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenAddr:      getenv("PORTFOLIO_LISTEN_ADDR", ":8080"),
		ShutdownTimeout: mustDuration("PORTFOLIO_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("PORTFOLIO_LOG_LEVEL", "info"),
		PrettyLog: mustBool("PORTFOLIO_PRETTY_LOG", true),

		// MongoDB settings
		MongoURL:           requireEnv("MONGO_URL"),
		DBName:             getenv("DB_NAME", "portfolio"),
		MongoConnectTotal:  mustDuration("MONGO_CONNECT_TIMEOUT", 30*time.Second),
		MongoRetryInterval: mustDuration("MONGO_RETRY_INTERVAL", 2*time.Second),
		MongoMaxWait:       mustDuration("MONGO_MAX_WAIT", 10*time.Second),
		MongoPingTimeout:   mustDuration("MONGO_PING_TIMEOUT", 5*time.Second),
		MongoWarnThreshold: getenvInt("MONGO_WARN_THRESHOLD", 3),

		// Access restrictions
		AdminToken: getenv("PORTFOLIO_ADMIN_TOKEN", ""),
		AdminCIDRs: splitAndTrim(getenv("PORTFOLIO_ADMIN_CIDRS", "")),
		TrustProxy: mustBool("PORTFOLIO_TRUST_PROXY", false),

		// Public surface
		CORSOrigins:         splitAndTrim(getenv("PORTFOLIO_CORS_ORIGINS", "*")),
		ContactBurst:        getenvInt("PORTFOLIO_CONTACT_BURST", 5),
		ContactRefillPerMin: getenvInt("PORTFOLIO_CONTACT_REFILL_PER_MIN", 3),
	}

	// Log config only in debug mode with sensitive fields redacted
	// (the Mongo URL usually embeds credentials).
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.MongoURL = "***REDACTED***"
		if cfg.AdminToken != "" {
			cfgCopy.AdminToken = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
