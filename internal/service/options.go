package service

import (
	"context"
	"time"
)

// Options tunes service timeouts and lifetimes.
type Options struct {
	// Timeout bounds every database round trip of one service call.
	Timeout time.Duration
	// SessionTTL is the lifetime of a login session.
	SessionTTL time.Duration
	// CacheTTL is how long catalog reads stay in Redis.
	CacheTTL time.Duration
	// ActivationTTL is the lifetime of a registration link.
	ActivationTTL time.Duration
}

// DefaultOptions returns the production defaults.
func DefaultOptions() Options {
	return Options{
		Timeout:       5 * time.Second,
		SessionTTL:    24 * time.Hour,
		CacheTTL:      5 * time.Minute,
		ActivationTTL: 24 * time.Hour,
	}
}

func (o Options) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if o.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, o.Timeout)
}

func utcNow() time.Time {
	return time.Now().UTC()
}
