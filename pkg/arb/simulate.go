package arb

import (
	"triarb/pkg/pricepath"
	"triarb/pkg/quote"
)

// simulate walks path's three legs starting from a notional 1.0 unit of the
// home asset, consulting store for each leg's quote. It returns the final
// amount and true if all three symbols were present in store. Quantities
// are never consulted, matching the spec's explicit exclusion of capacity
// modeling from the core.
func simulate(path *pricepath.Path, store *quote.Store) (float64, bool) {
	amount := startingAmount
	for _, leg := range path.Legs {
		q, ok := store.Get(leg.Symbol)
		if !ok {
			return 0, false
		}
		switch leg.Side {
		case pricepath.Ask:
			amount /= q.BestAskPrice
		default: // pricepath.Bid
			amount *= q.BestBidPrice
		}
	}
	return amount, true
}

// profitable reports whether amount strictly exceeds the starting amount;
// ties are never profitable.
func profitable(amount float64) bool {
	return amount > startingAmount
}
