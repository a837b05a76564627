package quote

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreGetAbsent(t *testing.T) {
	s := NewStore()
	_, ok := s.Get("BTCUSDT")
	assert.False(t, ok)
}

func TestStorePutGet(t *testing.T) {
	s := NewStore()
	u := Update{Symbol: "BTCUSDT", BestBidPrice: 30000.1, BestAskPrice: 30000.2, UpdateID: 1}
	s.Put(u)

	got, ok := s.Get("BTCUSDT")
	require.True(t, ok)
	assert.Equal(t, u, got)
}

func TestStoreOverwrite(t *testing.T) {
	s := NewStore()
	s.Put(Update{Symbol: "ETHUSDT", UpdateID: 1, BestBidPrice: 1})
	s.Put(Update{Symbol: "ETHUSDT", UpdateID: 2, BestBidPrice: 2})

	got, ok := s.Get("ETHUSDT")
	require.True(t, ok)
	assert.Equal(t, uint64(2), got.UpdateID)
	assert.Equal(t, 2.0, got.BestBidPrice)
}

func TestStoreConcurrentWritesDoNotTear(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s.Put(Update{Symbol: "BTCUSDT", UpdateID: uint64(n), BestBidPrice: float64(n), BestAskPrice: float64(n) + 1})
		}(i)
	}
	wg.Wait()

	got, ok := s.Get("BTCUSDT")
	require.True(t, ok)
	// Whatever write landed last, bid/ask must come from the same write (not torn).
	assert.Equal(t, got.BestBidPrice+1, got.BestAskPrice)
}
