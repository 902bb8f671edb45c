package engine

import (
	"math"
	"testing"
)

// go test -v --run TestEligibilityNeedsBothAxes
func TestEligibilityNeedsBothAxes(t *testing.T) {
	store := NewStateStore()

	// Price only.
	store.UpdatePrice("PRICEONLY", 10)
	// Metadata only.
	store.SetMetadata("METAONLY", DirectionShort, 12, 11, 10)

	if got := store.EligibleSymbols(); len(got) != 0 {
		t.Fatalf("expected no eligible symbols, got %v", got)
	}

	// Complete the missing axis on each.
	store.SetMetadata("PRICEONLY", DirectionLong, 8, 9, 10)
	store.UpdatePrice("METAONLY", 9.5)

	eligible := store.EligibleSymbols()
	if len(eligible) != 2 {
		t.Fatalf("expected 2 eligible symbols, got %d", len(eligible))
	}
}

// go test -v --run TestMetadataBeforePrice
func TestMetadataBeforePrice(t *testing.T) {
	store := NewStateStore()

	// The two axes have no ordering constraint between them.
	store.SetMetadata("AAA", DirectionShort, 105, 101, 100)
	store.UpdatePrice("AAA", 99)

	eligible := store.EligibleSymbols()
	if len(eligible) != 1 {
		t.Fatalf("expected 1 eligible symbol, got %d", len(eligible))
	}

	rec := eligible[0].Record
	if rec.LastPrice != 99 || rec.Direction != DirectionShort || rec.GTTPrice != 100 {
		t.Errorf("unexpected record: %+v", rec)
	}
	if rec.TargetPrice != 105 || rec.TriggerPrice != 101 {
		t.Errorf("target/trigger not stored: %+v", rec)
	}
}

// go test -v --run TestBatchAppliesOverlappingPrefix
func TestBatchAppliesOverlappingPrefix(t *testing.T) {
	store := NewStateStore()

	symbols := []string{"A", "B", "C"}
	prices := []float64{1, 2, 3, 4, 5}

	outcomes := store.UpdatePriceBatch(symbols, prices)
	if len(outcomes) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(outcomes))
	}
	for _, o := range outcomes {
		if !o.Applied {
			t.Errorf("row %q skipped: %s", o.Symbol, o.Reason)
		}
	}
	if store.Len() != 3 {
		t.Errorf("expected 3 tracked symbols, got %d", store.Len())
	}

	// Longer symbol slice this time; the extra symbols are ignored.
	outcomes = store.UpdatePriceBatch([]string{"D", "E", "F"}, []float64{6})
	if len(outcomes) != 1 {
		t.Fatalf("expected 1 outcome, got %d", len(outcomes))
	}
	if store.Len() != 4 {
		t.Errorf("expected 4 tracked symbols, got %d", store.Len())
	}
}

// go test -v --run TestBatchSkipsMalformedRows
func TestBatchSkipsMalformedRows(t *testing.T) {
	store := NewStateStore()

	symbols := []string{"A", "", "B", "C"}
	prices := []float64{1, 2, math.NaN(), 3}

	outcomes := store.UpdatePriceBatch(symbols, prices)
	if len(outcomes) != 4 {
		t.Fatalf("expected 4 outcomes, got %d", len(outcomes))
	}

	applied := 0
	for _, o := range outcomes {
		if o.Applied {
			applied++
		} else {
			t.Logf("skipped %q: %s", o.Symbol, o.Reason)
		}
	}
	if applied != 2 {
		t.Errorf("expected 2 applied rows, got %d", applied)
	}

	// The bad rows must not abort the rest: "C" made it in.
	if store.Len() != 2 {
		t.Errorf("expected 2 tracked symbols, got %d", store.Len())
	}
}

// go test -v --run TestLastWriteWins
func TestLastWriteWins(t *testing.T) {
	store := NewStateStore()

	store.UpdatePrice("AAA", 10)
	store.UpdatePrice("AAA", 20)
	store.SetMetadata("AAA", DirectionLong, 1, 2, 3)
	store.SetMetadata("AAA", DirectionShort, 4, 5, 6)

	eligible := store.EligibleSymbols()
	if len(eligible) != 1 {
		t.Fatalf("expected 1 eligible symbol, got %d", len(eligible))
	}

	rec := eligible[0].Record
	if rec.LastPrice != 20 {
		t.Errorf("expected last price 20, got %v", rec.LastPrice)
	}
	if rec.Direction != DirectionShort || rec.TargetPrice != 4 || rec.TriggerPrice != 5 || rec.GTTPrice != 6 {
		t.Errorf("metadata not overwritten as a unit: %+v", rec)
	}
}

// go test -v --run TestResetClearsEverything
func TestResetClearsEverything(t *testing.T) {
	store := NewStateStore()

	store.UpdatePrice("AAA", 100)
	store.SetMetadata("AAA", DirectionShort, 105, 101, 100)

	store.Reset()

	if store.Len() != 0 {
		t.Errorf("expected empty store after reset, got %d symbols", store.Len())
	}
	if got := store.EligibleSymbols(); len(got) != 0 {
		t.Errorf("expected no eligible symbols after reset, got %v", got)
	}
}

// go test -v --run TestSnapshotDetachedFromStore
func TestSnapshotDetachedFromStore(t *testing.T) {
	store := NewStateStore()

	store.UpdatePrice("AAA", 100)
	store.SetMetadata("AAA", DirectionShort, 105, 101, 100)

	snap := store.EligibleSymbols()
	store.UpdatePrice("AAA", 200)

	if snap[0].Record.LastPrice != 100 {
		t.Errorf("snapshot mutated by later write: %+v", snap[0].Record)
	}
}
