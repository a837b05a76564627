// Package arb evaluates top-of-book updates against a precomputed universe
// of pricing paths, looking for profitable three-leg cycles.
package arb

import (
	"triarb/pkg/pricepath"
	"triarb/pkg/quote"
)

// Opportunity is a profitable cycle discovered for a triggering update.
type Opportunity struct {
	Path            *pricepath.Path
	FinalAmount     float64
	TriggerSymbol   string
	TriggerUpdateID uint64
}

// Evaluator processes one top-of-book update and reports the best (or
// first, depending on variant) profitable cycle it implies, if any.
type Evaluator interface {
	ProcessUpdate(u quote.Update) (Opportunity, bool)
}

const startingAmount = 1.0
