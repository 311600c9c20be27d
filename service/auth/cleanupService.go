package authsvc

import (
	"context"
	"log/slog"
	"time"
)

// Sweeper is implemented by token stores that can drop expired tokens in bulk.
type Sweeper interface {
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

type Cleaner interface {
	PurgeExpired(ctx context.Context) (int64, error)
	// Run purges every interval until ctx is done.
	Run(ctx context.Context, interval time.Duration)
}

type cleaner struct {
	s   Sweeper
	log *slog.Logger
}

func NewCleaner(s Sweeper, log *slog.Logger) Cleaner { return &cleaner{s: s, log: log} }

func (c *cleaner) PurgeExpired(ctx context.Context) (int64, error) {
	return c.s.PurgeExpired(ctx, time.Now().UTC())
}

func (c *cleaner) Run(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n, err := c.PurgeExpired(ctx)
			if err != nil {
				c.log.Error("token purge failed", "err", err)
				continue
			}
			if n > 0 {
				c.log.Info("purged expired tokens", "count", n)
			}
		}
	}
}
