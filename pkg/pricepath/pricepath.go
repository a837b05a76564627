// Package pricepath builds the universe of three-leg home→X→Y→home trading
// cycles from exchange symbol metadata.
package pricepath

import (
	"fmt"
	"log/slog"
)

// Side names which side of the book a leg consumes.
type Side int

const (
	// Bid means the leg sells base for quote (you receive Bid per unit base).
	Bid Side = iota
	// Ask means the leg buys base with quote (you receive 1/Ask per unit quote).
	Ask
)

func (s Side) String() string {
	if s == Ask {
		return "ASK"
	}
	return "BID"
}

// SymbolInfo describes one listed market as reported by exchange metadata.
type SymbolInfo struct {
	Symbol     string
	BaseAsset  string
	QuoteAsset string
	Status     string
}

// Leg is one directed step of a Path: convert InAsset to OutAsset by trading
// Symbol on the given Side.
type Leg struct {
	Symbol   string
	Side     Side
	InAsset  string
	OutAsset string
}

// Path is an immutable three-leg cycle starting and ending at Start.
type Path struct {
	Start string
	Legs  [3]Leg
}

func (p *Path) String() string {
	return fmt.Sprintf("%s %s(%s) -> %s %s(%s) -> %s %s(%s)",
		p.Legs[0].Side, p.Legs[0].Symbol, p.Legs[0].OutAsset,
		p.Legs[1].Side, p.Legs[1].Symbol, p.Legs[1].OutAsset,
		p.Legs[2].Side, p.Legs[2].Symbol, p.Legs[2].OutAsset)
}

// Symbols returns the three distinct symbols referenced by the path's legs.
func (p *Path) Symbols() [3]string {
	return [3]string{p.Legs[0].Symbol, p.Legs[1].Symbol, p.Legs[2].Symbol}
}

const tradingStatus = "TRADING"

// edge is one directed conversion (in -> out via symbol, on side).
type edge struct {
	to     string
	symbol string
	side   Side
}

// Build derives every valid three-leg home->X->Y->home cycle from metadata.
// When targets is non-empty, only those assets may appear as the X or Y
// intermediate leg; an empty targets list places no restriction (every
// trading asset is a candidate intermediate). Malformed symbol entries
// (empty name, missing base/quote, non-"TRADING" status) are skipped with a
// warning rather than aborting the whole build, per the metadata-failure
// semantics of the spec: an empty result is a legal answer.
func Build(home string, symbols []SymbolInfo, targets []string, logger *slog.Logger) []*Path {
	if logger == nil {
		logger = slog.Default()
	}

	allowed := func(string) bool { return true }
	if len(targets) > 0 {
		set := make(map[string]struct{}, len(targets))
		for _, t := range targets {
			set[t] = struct{}{}
		}
		allowed = func(asset string) bool {
			_, ok := set[asset]
			return ok
		}
	}

	adjacency := make(map[string][]edge)
	for _, sym := range symbols {
		if sym.Status != tradingStatus {
			logger.Warn("pricepath: skipping non-trading symbol", "symbol", sym.Symbol, "status", sym.Status)
			continue
		}
		if sym.Symbol == "" || sym.BaseAsset == "" || sym.QuoteAsset == "" {
			logger.Warn("pricepath: skipping malformed symbol metadata", "symbol", sym.Symbol)
			continue
		}
		if sym.BaseAsset == sym.QuoteAsset {
			logger.Warn("pricepath: skipping self-referential symbol", "symbol", sym.Symbol)
			continue
		}
		// base -> quote: you hold base, sell it (Bid) for quote.
		adjacency[sym.BaseAsset] = append(adjacency[sym.BaseAsset], edge{to: sym.QuoteAsset, symbol: sym.Symbol, side: Bid})
		// quote -> base: you hold quote, buy base with it (Ask).
		adjacency[sym.QuoteAsset] = append(adjacency[sym.QuoteAsset], edge{to: sym.BaseAsset, symbol: sym.Symbol, side: Ask})
	}

	seen := make(map[[3]string]struct{})
	var paths []*Path

	for _, e1 := range adjacency[home] {
		x := e1.to
		if x == home || !allowed(x) {
			continue
		}
		for _, e2 := range adjacency[x] {
			y := e2.to
			if y == home || y == x || e2.symbol == e1.symbol || !allowed(y) {
				continue
			}
			for _, e3 := range adjacency[y] {
				if e3.to != home || e3.symbol == e1.symbol || e3.symbol == e2.symbol {
					continue
				}

				key := [3]string{e1.symbol, e2.symbol, e3.symbol}
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}

				paths = append(paths, &Path{
					Start: home,
					Legs: [3]Leg{
						{Symbol: e1.symbol, Side: e1.side, InAsset: home, OutAsset: x},
						{Symbol: e2.symbol, Side: e2.side, InAsset: x, OutAsset: y},
						{Symbol: e3.symbol, Side: e3.side, InAsset: y, OutAsset: home},
					},
				})
			}
		}
	}

	logger.Info("pricepath: universe constructed", "home", home, "paths", len(paths))
	return paths
}
