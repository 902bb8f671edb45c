package engine

// Recognized trade direction tags. Comparison is exact and case-sensitive;
// any other tag is stored verbatim but never matches an evaluation branch.
const (
	DirectionLong  = "LONG"
	DirectionShort = "SHORT"
)

// SymbolRecord holds the live state tracked for one symbol. The price and the
// metadata tuple are independent axes: either may be written first, and a
// symbol becomes eligible for evaluation only once both are present.
type SymbolRecord struct {
	LastPrice float64
	HasPrice  bool

	// Metadata tuple, always written together by SetMetadata.
	Direction    string
	TargetPrice  float64
	TriggerPrice float64
	GTTPrice     float64
	HasMetadata  bool
}

// eligible reports whether the record carries everything the evaluators need:
// a last price plus the direction/GTT metadata.
func (r SymbolRecord) eligible() bool {
	return r.HasPrice && r.HasMetadata
}

// SymbolSnapshot pairs a symbol with a copy of its record, taken at a single
// point in time.
type SymbolSnapshot struct {
	Symbol string
	Record SymbolRecord
}
