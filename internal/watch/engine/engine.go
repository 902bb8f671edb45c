// Package engine tracks the latest traded price and the GTT order metadata
// for a set of symbols, and evaluates which symbols are approaching or have
// reached their trigger price. It is purely in-memory and synchronous; feeds,
// persistence and order placement live with the caller.
package engine

// Engine bundles the symbol state store with the approach-ratio setting.
// Callers own the instance; there is no package-level singleton.
type Engine struct {
	store     *StateStore
	threshold *Threshold
}

func New() *Engine {
	return &Engine{
		store:     NewStateStore(),
		threshold: NewThreshold(),
	}
}

// SetThreshold overwrites the approach ratio used by FindPotentialTriggers.
// Non-positive values are rejected with ErrNonPositiveThreshold.
func (e *Engine) SetThreshold(ratio float64) error {
	return e.threshold.Set(ratio)
}

// Threshold returns the current approach ratio.
func (e *Engine) Threshold() float64 {
	return e.threshold.Get()
}

// UpdatePrice upserts the last traded price for one symbol.
func (e *Engine) UpdatePrice(symbol string, price float64) {
	e.store.UpdatePrice(symbol, price)
}

// UpdatePriceBatch upserts prices pairwise over the overlapping prefix of the
// two slices, reporting a per-row outcome.
func (e *Engine) UpdatePriceBatch(symbols []string, prices []float64) []BatchOutcome {
	return e.store.UpdatePriceBatch(symbols, prices)
}

// SetMetadata upserts the direction and price levels for one symbol as a
// single atomic write.
func (e *Engine) SetMetadata(symbol, direction string, targetPrice, triggerPrice, gttPrice float64) {
	e.store.SetMetadata(symbol, direction, targetPrice, triggerPrice, gttPrice)
}

// EligibleSymbols returns a snapshot of every symbol with both a price and
// metadata, in unspecified order.
func (e *Engine) EligibleSymbols() []SymbolSnapshot {
	return e.store.EligibleSymbols()
}

// FindPotentialTriggers recomputes, from the current state, the symbols whose
// last price is within the approach band of their GTT price.
func (e *Engine) FindPotentialTriggers() []Trigger {
	return findPotentialTriggers(e.store.EligibleSymbols(), e.threshold.Get())
}

// CheckTriggers recomputes, from the current state, the symbols whose last
// price has reached or crossed their GTT price.
func (e *Engine) CheckTriggers() []Trigger {
	return checkTriggers(e.store.EligibleSymbols())
}

// Reset clears all symbol state. The approach ratio keeps its current value.
func (e *Engine) Reset() {
	e.store.Reset()
}
