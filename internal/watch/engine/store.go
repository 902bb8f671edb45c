package engine

import (
	"math"
	"sync"
)

// StateStore owns the per-symbol records. A single map keyed by symbol keeps
// the metadata tuple and the last price in one place, so a metadata write can
// never be observed half-applied across fields.
//
// Writers take the exclusive lock; EligibleSymbols copies records out under
// the read lock so evaluators always see a consistent snapshot.
type StateStore struct {
	mu      sync.RWMutex
	records map[string]*SymbolRecord
}

func NewStateStore() *StateStore {
	return &StateStore{
		records: make(map[string]*SymbolRecord),
	}
}

// record returns the entry for symbol, creating it if needed.
// Caller must hold the write lock.
func (s *StateStore) record(symbol string) *SymbolRecord {
	rec, ok := s.records[symbol]
	if !ok {
		rec = &SymbolRecord{}
		s.records[symbol] = rec
	}
	return rec
}

// UpdatePrice upserts the last traded price for one symbol. Any finite or
// non-finite value is accepted here; filtering of malformed rows happens only
// on the batch path where per-row outcomes are reported.
func (s *StateStore) UpdatePrice(symbol string, price float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.record(symbol)
	rec.LastPrice = price
	rec.HasPrice = true
}

// BatchOutcome reports what happened to a single row of a price batch.
type BatchOutcome struct {
	Symbol  string
	Applied bool
	Reason  string // empty when applied
}

// UpdatePriceBatch upserts prices pairwise. When the two slices differ in
// length only the overlapping prefix is applied and the rest of the longer
// slice is ignored. A row with an empty symbol or a non-finite price is
// skipped without aborting the batch; every row gets an outcome either way.
func (s *StateStore) UpdatePriceBatch(symbols []string, prices []float64) []BatchOutcome {
	n := len(symbols)
	if len(prices) < n {
		n = len(prices)
	}

	outcomes := make([]BatchOutcome, 0, n)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := 0; i < n; i++ {
		symbol, price := symbols[i], prices[i]

		switch {
		case symbol == "":
			outcomes = append(outcomes, BatchOutcome{Symbol: symbol, Reason: "empty symbol"})
		case math.IsNaN(price) || math.IsInf(price, 0):
			outcomes = append(outcomes, BatchOutcome{Symbol: symbol, Reason: "non-finite price"})
		default:
			rec := s.record(symbol)
			rec.LastPrice = price
			rec.HasPrice = true
			outcomes = append(outcomes, BatchOutcome{Symbol: symbol, Applied: true})
		}
	}

	return outcomes
}

// SetMetadata upserts the metadata tuple for one symbol as a single atomic
// write. The direction tag is stored verbatim; an unrecognized tag simply
// keeps the symbol out of both evaluator results until corrected.
func (s *StateStore) SetMetadata(symbol, direction string, targetPrice, triggerPrice, gttPrice float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.record(symbol)
	rec.Direction = direction
	rec.TargetPrice = targetPrice
	rec.TriggerPrice = triggerPrice
	rec.GTTPrice = gttPrice
	rec.HasMetadata = true
}

// EligibleSymbols returns a snapshot of every symbol that has both a last
// price and metadata. Order is unspecified. The returned copies are detached
// from the store, so callers may iterate while writers keep mutating.
func (s *StateStore) EligibleSymbols() []SymbolSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]SymbolSnapshot, 0, len(s.records))
	for symbol, rec := range s.records {
		if rec.eligible() {
			out = append(out, SymbolSnapshot{Symbol: symbol, Record: *rec})
		}
	}
	return out
}

// Len returns the number of tracked symbols, eligible or not.
func (s *StateStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Reset drops every record and returns the store to its initial empty state.
func (s *StateStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make(map[string]*SymbolRecord)
}
