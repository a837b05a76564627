package arb

import "triarb/pkg/pricepath"

// buildSymbolIndex maps each symbol to the paths that reference it, in
// universe construction order, so callers get deterministic iteration.
// Each path is referenced from up to three buckets but never duplicated in
// memory — a shared *pricepath.Path pointer lives in all three, the Go
// equivalent of the original's Arc<PricingPath> fan-out.
func buildSymbolIndex(paths []*pricepath.Path) map[string][]*pricepath.Path {
	index := make(map[string][]*pricepath.Path, len(paths)*3)
	for _, path := range paths {
		for _, symbol := range path.Symbols() {
			index[symbol] = append(index[symbol], path)
		}
	}
	return index
}
