package arb

import (
	"triarb/pkg/pricepath"
	"triarb/pkg/quote"
)

// EdgeEvaluator maintains a reverse index from symbol to the paths that
// reference it, so only paths touching the triggering symbol are
// re-evaluated. Scans sequentially and returns the first profitable path in
// universe order. Grounded on the original implementation's
// HashMapEdgeScanner.
type EdgeEvaluator struct {
	store *quote.Store
	index map[string][]*pricepath.Path
}

// NewEdgeEvaluator builds an evaluator backed by a symbol->paths reverse
// index computed once from paths.
func NewEdgeEvaluator(paths []*pricepath.Path, store *quote.Store) *EdgeEvaluator {
	return &EdgeEvaluator{store: store, index: buildSymbolIndex(paths)}
}

func (e *EdgeEvaluator) ProcessUpdate(u quote.Update) (Opportunity, bool) {
	e.store.Put(u)

	candidates := e.index[u.Symbol]
	for _, path := range candidates {
		amount, ok := simulate(path, e.store)
		if !ok || !profitable(amount) {
			continue
		}
		return Opportunity{
			Path:            path,
			FinalAmount:     amount,
			TriggerSymbol:   u.Symbol,
			TriggerUpdateID: u.UpdateID,
		}, true
	}
	return Opportunity{}, false
}
