package module

import (
	"time"

	"mondegreen/internal/core/quota"
	"mondegreen/internal/platform/config"
)

// Options tune the ingestion module
type Options struct {
	// RateLimit is the max sync calls per user per window
	RateLimit int

	// RateWindow is the rolling window length
	RateWindow time.Duration
}

// FromConfig reads module options from the CORRECTIONS_ scope
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORRECTIONS_")
	return Options{
		RateLimit:  c.MayInt("RATE_LIMIT", quota.DefaultLimit),
		RateWindow: c.MayDuration("RATE_WINDOW", quota.DefaultWindow),
	}
}
