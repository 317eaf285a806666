package engine

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// SweepIdle deletes games nobody has polled within the idle timeout and
// returns how many were removed. Games this process has never seen start
// their idle window now.
func (e *Engine) SweepIdle(ctx context.Context, now time.Time) int {
	states, err := e.store.ListGames(ctx)
	if err != nil {
		e.logger.Error("idle sweep failed", zap.Error(err))
		return 0
	}

	stale := make([]string, 0)
	e.mu.Lock()
	for _, s := range states {
		id := s.Game.ID
		last, ok := e.lastPoll[id]
		if !ok {
			e.lastPoll[id] = now
			continue
		}
		if now.Sub(last) > e.idleTimeout {
			stale = append(stale, id)
		}
	}
	e.mu.Unlock()

	removed := 0
	for _, id := range stale {
		keep := func() bool { return !e.stillIdle(id, now) }
		if deleted, err := e.deleteGame(ctx, id, keep); err == nil && deleted {
			removed++
			e.logger.Info("game deleted for inactivity", zap.String("game", id))
		}
	}
	return removed
}

// stillIdle rechecks the poll time in case the game was polled mid-sweep
func (e *Engine) stillIdle(gameID string, now time.Time) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	last, ok := e.lastPoll[gameID]
	return ok && now.Sub(last) > e.idleTimeout
}

// RunSweeper sweeps idle games every interval until ctx is cancelled
func (e *Engine) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := e.SweepIdle(ctx, e.now()); n > 0 {
				e.logger.Debug("idle sweep finished", zap.Int("removed", n))
			}
		}
	}
}
