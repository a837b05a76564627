package parse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMsg = `{"u":123,"s":"BTCUSDT","b":"30000.10","B":"0.5","a":"30000.20","A":"0.25"}`

func TestJSONParserScenario1(t *testing.T) {
	p := JSONParser{}
	u, err := p.Parse([]byte(sampleMsg))
	require.NoError(t, err)
	assertSampleUpdate(t, u)
}

func TestScanParserScenario1(t *testing.T) {
	p := ScanParser{}
	u, err := p.Parse([]byte(sampleMsg))
	require.NoError(t, err)
	assertSampleUpdate(t, u)
}

func assertSampleUpdate(t *testing.T, u Update) {
	t.Helper()
	assert.Equal(t, "BTCUSDT", u.Symbol)
	assert.Equal(t, 30000.10, u.BestBidPrice)
	assert.Equal(t, 0.5, u.BestBidQty)
	assert.Equal(t, 30000.20, u.BestAskPrice)
	assert.Equal(t, 0.25, u.BestAskQty)
	assert.Equal(t, uint64(123), u.UpdateID)
}

func TestParsersAgreeFieldByField(t *testing.T) {
	msgs := []string{
		sampleMsg,
		`{"s":"ETHUSDT","a":"2001.5","A":"3.0","b":"2000.25","B":"1.5","u":7}`,
		`{"A":"10","u":9999999999,"a":"0.067","B":"1","b":"0.066","s":"ETHBTC"}`,
	}
	for _, msg := range msgs {
		jsonResult, jsonErr := JSONParser{}.Parse([]byte(msg))
		scanResult, scanErr := ScanParser{}.Parse([]byte(msg))
		require.NoError(t, jsonErr)
		require.NoError(t, scanErr)
		assert.Equal(t, jsonResult, scanResult)
	}
}

func TestParsersRejectMissingSymbol(t *testing.T) {
	msg := []byte(`{"u":1,"b":"1","B":"1","a":"2","A":"1"}`)
	for _, p := range []BookTickerParser{JSONParser{}, ScanParser{}} {
		_, err := p.Parse(msg)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingField))
	}
}

func TestParsersRejectMissingBid(t *testing.T) {
	msg := []byte(`{"u":1,"s":"BTCUSDT","B":"1","a":"2","A":"1"}`)
	for _, p := range []BookTickerParser{JSONParser{}, ScanParser{}} {
		_, err := p.Parse(msg)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingField))
	}
}

func TestParsersRejectZeroLengthNumeric(t *testing.T) {
	// Scenario 6.
	msg := []byte(`{"u":1,"s":"BTCUSDT","b":"","B":"0","a":"1","A":"0"}`)
	for _, p := range []BookTickerParser{JSONParser{}, ScanParser{}} {
		_, err := p.Parse(msg)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMalformedField))
	}
}

func TestParsersRejectNonNumericCharacter(t *testing.T) {
	msg := []byte(`{"u":1,"s":"BTCUSDT","b":"abc","B":"0","a":"1","A":"0"}`)
	for _, p := range []BookTickerParser{JSONParser{}, ScanParser{}} {
		_, err := p.Parse(msg)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrBadNumber))
	}
}

func TestNewRejectsUnknownVariant(t *testing.T) {
	_, err := New("xml")
	assert.Error(t, err)
}

func TestNewDefaultsAndVariants(t *testing.T) {
	p, err := New("")
	require.NoError(t, err)
	assert.IsType(t, JSONParser{}, p)

	p, err = New("json")
	require.NoError(t, err)
	assert.IsType(t, JSONParser{}, p)

	p, err = New("scan")
	require.NoError(t, err)
	assert.IsType(t, ScanParser{}, p)
}
