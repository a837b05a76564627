// Package quote holds the latest top-of-book snapshot seen for each symbol.
package quote

import "sync"

// Update is the latest known top-of-book state for a single symbol.
type Update struct {
	Symbol       string
	BestBidPrice float64
	BestBidQty   float64
	BestAskPrice float64
	BestAskQty   float64
	UpdateID     uint64
}

// Store is a concurrent symbol -> Update mapping. Many readers and writers may
// operate on it simultaneously; writes to one symbol never block reads of
// another. It uses sync.Map rather than a mutex-guarded map for the same
// reason the order book keeps its id index in a sync.Map: reducing lock
// contention across readers that vastly outnumber writers.
type Store struct {
	m sync.Map
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Put overwrites the stored update for u.Symbol. It never fails.
func (s *Store) Put(u Update) {
	s.m.Store(u.Symbol, u)
}

// Get returns the last update stored for symbol, or false if none has been
// recorded yet.
func (s *Store) Get(symbol string) (Update, bool) {
	v, ok := s.m.Load(symbol)
	if !ok {
		return Update{}, false
	}
	return v.(Update), true
}
