package engine

// Trigger is one evaluator hit: a symbol together with the last price that
// produced the match.
type Trigger struct {
	Symbol string
	Price  float64
}

// findPotentialTriggers returns the symbols approaching their GTT price.
//
// A SHORT position is adversely hit by a rising price, so its approach band
// starts at gtt*ratio below the GTT price. A LONG position is hit by a
// falling price, so its band starts at gtt/ratio above it. Both bands carry
// the same proportional early-warning margin of (1 - ratio).
func findPotentialTriggers(eligible []SymbolSnapshot, ratio float64) []Trigger {
	var candidates []Trigger

	for _, snap := range eligible {
		rec := snap.Record
		switch rec.Direction {
		case DirectionShort:
			if rec.LastPrice >= rec.GTTPrice*ratio {
				candidates = append(candidates, Trigger{Symbol: snap.Symbol, Price: rec.LastPrice})
			}
		case DirectionLong:
			if rec.LastPrice <= rec.GTTPrice/ratio {
				candidates = append(candidates, Trigger{Symbol: snap.Symbol, Price: rec.LastPrice})
			}
		}
	}

	return candidates
}

// checkTriggers returns the symbols whose last price has reached or crossed
// the GTT price. Unlike the approach check this is independent of the
// approach ratio.
func checkTriggers(eligible []SymbolSnapshot) []Trigger {
	var triggered []Trigger

	for _, snap := range eligible {
		rec := snap.Record
		switch rec.Direction {
		case DirectionShort:
			if rec.LastPrice >= rec.GTTPrice {
				triggered = append(triggered, Trigger{Symbol: snap.Symbol, Price: rec.LastPrice})
			}
		case DirectionLong:
			if rec.LastPrice <= rec.GTTPrice {
				triggered = append(triggered, Trigger{Symbol: snap.Symbol, Price: rec.LastPrice})
			}
		}
	}

	return triggered
}
