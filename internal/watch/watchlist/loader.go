// Package watchlist feeds the GTT watchlist from storage into the trigger
// engine and keeps the symbol set available for stream subscription.
package watchlist

import (
	"context"
	"sync"
	"time"

	"gttwatch/internal/watch/engine"
	"gttwatch/pkg/bybit"
	"gttwatch/pkg/storage/postgres"

	"go.uber.org/zap"
)

// EntrySource yields the current watchlist rows. Backed by Postgres in
// production.
type EntrySource interface {
	ListWatchEntries(ctx context.Context) ([]postgres.WatchEntry, error)
}

type Loader struct {
	Source  EntrySource
	Engine  *engine.Engine
	Timeout time.Duration
	Logger  *zap.Logger

	mu      sync.RWMutex
	symbols []string
}

// Reload fetches the watchlist and applies every entry to the engine as one
// atomic metadata write per symbol. The loaded symbol set replaces the
// previous one for subscription purposes; engine records for symbols that
// left the list stay untouched until the next engine reset.
func (l *Loader) Reload() error {
	ctx, cancel := context.WithTimeout(context.Background(), l.Timeout)
	defer cancel()

	entries, err := l.Source.ListWatchEntries(ctx)
	if err != nil {
		l.Logger.Error("failed to load watchlist", zap.Error(err))
		return err
	}

	symbols := make([]string, 0, len(entries))
	for _, e := range entries {
		l.Engine.SetMetadata(e.Symbol, e.Direction, e.TargetPrice, e.TriggerPrice, e.GTTPrice)
		symbols = append(symbols, e.Symbol)
	}

	l.mu.Lock()
	l.symbols = symbols
	l.mu.Unlock()

	l.Logger.Info("watchlist loaded", zap.Int("count", len(symbols)))
	return nil
}

// Symbols returns a copy of the most recently loaded symbol set.
func (l *Loader) Symbols() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]string, len(l.symbols))
	copy(out, l.symbols)
	return out
}

// Topics returns the ticker stream topics for the loaded symbols, in the
// shape the WebSocket client subscribes with.
func (l *Loader) Topics() []string {
	symbols := l.Symbols()

	topics := make([]string, 0, len(symbols))
	for _, s := range symbols {
		topics = append(topics, bybit.TickerTopic(s))
	}
	return topics
}
