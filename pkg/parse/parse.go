// Package parse turns raw bookTicker frames into Update values. Two
// interchangeable implementations are offered behind one contract: a
// structured-deserialization baseline (Parser variant "json") and a
// hand-scanned variant (Parser variant "scan") tuned to avoid allocation
// beyond the output record itself.
package parse

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Wrap with fmt.Errorf("...: %w", ErrX) so callers can
// use errors.Is against them.
var (
	ErrMissingField   = errors.New("parse: required field missing")
	ErrMalformedField = errors.New("parse: field has unexpected shape")
	ErrBadNumber      = errors.New("parse: numeric conversion failed")
)

// BookTickerParser parses one bookTicker message into an Update.
// Implementations must be stateless and safe for concurrent use: a failed
// call never poisons the parser for subsequent calls.
type BookTickerParser interface {
	Parse(raw []byte) (Update, error)
}

// Update mirrors quote.Update's fields; kept independent of package quote so
// parse has no dependency on the store.
type Update struct {
	Symbol       string
	BestBidPrice float64
	BestBidQty   float64
	BestAskPrice float64
	BestAskQty   float64
	UpdateID     uint64
}

// New returns the requested parser variant ("json" or "scan").
func New(variant string) (BookTickerParser, error) {
	switch variant {
	case "json", "":
		return JSONParser{}, nil
	case "scan":
		return ScanParser{}, nil
	default:
		return nil, fmt.Errorf("parse: unknown variant %q", variant)
	}
}
