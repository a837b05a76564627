package arb

import (
	"triarb/pkg/pricepath"
	"triarb/pkg/quote"
)

// NaiveEvaluator scans every path in the universe on every update,
// sequentially, returning the first profitable one it finds. Grounded on
// the original implementation's NaivePrecompiledScanner.
type NaiveEvaluator struct {
	paths []*pricepath.Path
	store *quote.Store
}

// NewNaiveEvaluator builds an evaluator that scans the full path universe on
// every update.
func NewNaiveEvaluator(paths []*pricepath.Path, store *quote.Store) *NaiveEvaluator {
	return &NaiveEvaluator{paths: paths, store: store}
}

func (e *NaiveEvaluator) ProcessUpdate(u quote.Update) (Opportunity, bool) {
	e.store.Put(u)

	for _, path := range e.paths {
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
