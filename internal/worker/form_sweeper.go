package worker

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Sweeper evicts expired entries and reports how many were removed.
type Sweeper interface {
	Sweep() int
}

// RunFormSweeper calls Sweep every interval until ctx is cancelled.
func RunFormSweeper(ctx context.Context, sweeper Sweeper, interval time.Duration, logger *zap.Logger) error {
	if interval <= 0 {
		<-ctx.Done()
		return nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := sweeper.Sweep(); n > 0 {
				logger.Debug("form sweep", zap.Int("evicted", n))
			}
		}
	}
}
