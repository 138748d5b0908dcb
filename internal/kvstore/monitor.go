package kvstore

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// StartBudgetMonitor periodically measures the persisted snapshot and warns
// when it grows past budget bytes. Inlined data URIs can swell the snapshot
// well beyond what per-file upload ceilings suggest, and no backend enforces
// a hard cap, so the overage is surfaced in the log for the operator.
func StartBudgetMonitor(
	ctx context.Context,
	store Store,
	interval time.Duration,
	budget int,
	log *zap.Logger,
) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				value, ok, err := store.Get(ctx, KeySnapshot)
				if err != nil {
					log.Error("failed to measure persisted snapshot", zap.Error(err))
					continue
				}
				if !ok {
					continue
				}
				if len(value) > budget {
					log.Warn("persisted snapshot exceeds storage budget",
						zap.Int("size", len(value)),
						zap.Int("budget", budget),
					)
				}
			}
		}
	}()
}
