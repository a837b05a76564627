package pipeline

import (
	"triarb/pkg/parse"
	"triarb/pkg/quote"
)

func toQuoteUpdate(u parse.Update) quote.Update {
	return quote.Update{
		Symbol:       u.Symbol,
		BestBidPrice: u.BestBidPrice,
		BestBidQty:   u.BestBidQty,
		BestAskPrice: u.BestAskPrice,
		BestAskQty:   u.BestAskQty,
		UpdateID:     u.UpdateID,
	}
}
