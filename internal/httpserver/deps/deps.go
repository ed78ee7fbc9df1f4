package deps

import (
	"time"

	"github.com/likith1908/portfolio-api/internal/logger"
	"github.com/likith1908/portfolio-api/internal/store"
)

type Deps struct {
	Logger    logger.Logger
	Store     store.Store
	StartTime time.Time
	Version   string

	AdminToken string   // bearer token guarding the submissions listing; empty disables the check
	AdminCIDRs []string // IPs/CIDRs allowed to list submissions; empty disables the check
	TrustProxy bool     // true when running behind a trusted reverse proxy

	ContactBurst        int // rate-limit burst for contact form posts, per client IP
	ContactRefillPerMin int // rate-limit refill per minute for contact form posts
}
