package watchlist

import (
	"context"
	"errors"
	"testing"
	"time"

	"gttwatch/internal/watch/engine"
	"gttwatch/pkg/storage/postgres"

	"go.uber.org/zap"
)

type memorySource struct {
	entries []postgres.WatchEntry
	err     error
}

func (m *memorySource) ListWatchEntries(ctx context.Context) ([]postgres.WatchEntry, error) {
	return m.entries, m.err
}

// go test -v --run TestReloadAppliesMetadata
func TestReloadAppliesMetadata(t *testing.T) {
	eng := engine.New()
	loader := &Loader{
		Source: &memorySource{entries: []postgres.WatchEntry{
			{Symbol: "BTCUSDT", Direction: engine.DirectionShort, TargetPrice: 47000, TriggerPrice: 45100, GTTPrice: 45000},
			{Symbol: "ETHUSDT", Direction: engine.DirectionLong, TargetPrice: 2300, TriggerPrice: 2390, GTTPrice: 2400},
		}},
		Engine:  eng,
		Timeout: time.Second,
		Logger:  zap.NewNop(),
	}

	if err := loader.Reload(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := loader.Symbols(); len(got) != 2 {
		t.Fatalf("expected 2 symbols, got %v", got)
	}

	topics := loader.Topics()
	if len(topics) != 2 || topics[0] != "tickers.BTCUSDT" {
		t.Errorf("unexpected topics: %v", topics)
	}

	// Metadata landed in the engine: a price makes the symbol evaluable.
	eng.UpdatePrice("BTCUSDT", 45000)
	triggered := eng.CheckTriggers()
	if len(triggered) != 1 || triggered[0].Symbol != "BTCUSDT" {
		t.Errorf("expected BTCUSDT triggered, got %v", triggered)
	}
}

// go test -v --run TestReloadFailureKeepsPreviousSymbols
func TestReloadFailureKeepsPreviousSymbols(t *testing.T) {
	src := &memorySource{entries: []postgres.WatchEntry{
		{Symbol: "BTCUSDT", Direction: engine.DirectionShort, GTTPrice: 45000},
	}}
	loader := &Loader{
		Source:  src,
		Engine:  engine.New(),
		Timeout: time.Second,
		Logger:  zap.NewNop(),
	}

	if err := loader.Reload(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	src.err = errors.New("db down")
	if err := loader.Reload(); err == nil {
		t.Fatal("expected error from failing source")
	}

	if got := loader.Symbols(); len(got) != 1 || got[0] != "BTCUSDT" {
		t.Errorf("expected previous symbol set to survive, got %v", got)
	}
}
