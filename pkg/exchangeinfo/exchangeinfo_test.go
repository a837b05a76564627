package exchangeinfo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFixture(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "exchangeInfoSpot.json")
	doc := `{"symbols":[
		{"symbol":"BTCUSDT","baseAsset":"BTC","quoteAsset":"USDT","status":"TRADING"},
		{"symbol":"ETHBTC","baseAsset":"ETH","quoteAsset":"BTC","status":"TRADING"},
		{"symbol":"OLDSYM","baseAsset":"OLD","quoteAsset":"USDT","status":"BREAK"}
	]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	symbols, err := LoadFixture(path)
	require.NoError(t, err)
	require.Len(t, symbols, 3)
	assert.Equal(t, "BTCUSDT", symbols[0].Symbol)
	assert.Equal(t, "BTC", symbols[0].BaseAsset)
	assert.Equal(t, "BREAK", symbols[2].Status)
}

func TestLoadFixtureMissingFile(t *testing.T) {
	_, err := LoadFixture(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadFixtureMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadFixture(path)
	assert.Error(t, err)
}
