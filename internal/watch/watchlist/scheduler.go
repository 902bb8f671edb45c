package watchlist

import (
	"time"

	"go.uber.org/zap"
)

// StartReloader runs an immediate watchlist load and then reloads on the
// given interval, so direction or level changes made in the database reach
// the engine without a restart. A failed reload keeps the previous watchlist
// and retries on the next tick.
func (l *Loader) StartReloader(interval time.Duration) {
	go func() {
		if err := l.Reload(); err != nil {
			l.Logger.Warn("initial watchlist load failed", zap.Error(err))
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			if err := l.Reload(); err != nil {
				l.Logger.Warn("watchlist reload failed", zap.Error(err))
			}
		}
	}()
}
